package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/transform"
)

func FilterArticleOnline(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_online = ?", true).
		Where("published_at IS NULL OR published_at <= ?", time.Now())
}

func FilterArticleWithCategory(tx *gorm.DB, categoryID uint) *gorm.DB {
	return tx.Where("category_id = ?", categoryID)
}

func FilterArticleWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterArticleWithTag(tx *gorm.DB, slug string) *gorm.DB {
	return tx.
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("tags.slug = ?", slug)
}

func FilterArticleWithType(tx *gorm.DB, kind string) *gorm.DB {
	return tx.Where("type = ?", kind)
}

func CountArticles(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func ListArticles(tx *gorm.DB, take int, offset int) ([]models.Article, error) {
	if take > 100 || take <= 0 {
		take = 100
	}

	var articles []models.Article
	err := tx.
		Preload("Tags").
		Order("published_at DESC NULLS LAST, id DESC").
		Offset(offset).Limit(take).
		Find(&articles).Error

	return articles, err
}

// GetArticle resolves a slug-or-numeric-id path parameter.
func GetArticle(tx *gorm.DB, slugOrID string) (models.Article, error) {
	var article models.Article

	if id, err := strconv.Atoi(slugOrID); err == nil {
		tx = tx.Where("id = ?", id)
	} else {
		tx = tx.Where("slug = ?", slugOrID)
	}

	err := tx.Preload("Tags").First(&article).Error
	return article, err
}

func tagSlugFor(tag models.Tag) string {
	if tag.Slug != "" {
		return strings.ToLower(tag.Slug)
	}
	return transform.MakeSlug(tag.Label)
}

// ensureArticleTags resolves every inbound tag to a persisted row before the
// article is saved, so the association insert never collides with the tag
// slug unique index.
func ensureArticleTags(article *models.Article) error {
	for idx, tag := range article.Tags {
		resolved, err := GetTagOrCreate(tagSlugFor(tag), tag.Label)
		if err != nil {
			return err
		}
		article.Tags[idx] = resolved
	}
	return nil
}

func NewArticle(payload map[string]any) (models.Article, error) {
	var article models.Article
	if err := applyPayload(payload, &article); err != nil {
		return article, err
	}
	if err := ensureArticleTags(&article); err != nil {
		return article, err
	}

	article.Language = DetectLanguage(article.Content)
	if article.PublishedAt == nil && article.IsOnline {
		article.PublishedAt = lo.ToPtr(time.Now())
	}

	if err := database.C.Create(&article).Error; err != nil {
		return article, err
	}

	err := SyncArticleSnapshots(&article)
	return article, err
}

func EditArticle(article models.Article, payload map[string]any) (models.Article, error) {
	wasOnline := article.IsOnline

	if err := applyPayload(payload, &article); err != nil {
		return article, err
	}
	if err := ensureArticleTags(&article); err != nil {
		return article, err
	}

	article.Language = DetectLanguage(article.Content)
	if !wasOnline && article.IsOnline && article.PublishedAt == nil {
		article.PublishedAt = lo.ToPtr(time.Now())
	}

	if err := database.C.Save(&article).Error; err != nil {
		return article, err
	}

	err := SyncArticleSnapshots(&article)
	return article, err
}

func DeleteArticle(article models.Article) error {
	return database.C.Select("Tags").Delete(&article).Error
}

func ToggleArticleOnline(article models.Article) (models.Article, error) {
	article.IsOnline = !article.IsOnline
	if article.IsOnline && article.PublishedAt == nil {
		article.PublishedAt = lo.ToPtr(time.Now())
	}

	if err := database.C.Save(&article).Error; err != nil {
		return article, err
	}
	return article, SyncArticleSnapshots(&article)
}

func ToggleArticleFavorite(article models.Article) (models.Article, error) {
	article.IsFavorite = !article.IsFavorite

	if err := database.C.Save(&article).Error; err != nil {
		return article, err
	}
	return article, SyncArticleSnapshots(&article)
}
