package services

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/bildev/tastebook/pkg/internal/columns"
	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

// Denormalized snapshots stored on each article. They trade staleness for
// read performance; the sync sweep refreshes them after their sources change.

type articleCardSnapshot struct {
	ID               uint    `json:"id"`
	Slug             string  `json:"slug"`
	Type             string  `json:"type"`
	Headline         string  `json:"headline"`
	ShortDescription string  `json:"shortDescription"`
	ImageURL         any     `json:"imageUrl,omitempty"`
	CategoryLabel    *string `json:"categoryLabel,omitempty"`
	AuthorName       *string `json:"authorName,omitempty"`
	PublishedAt      any     `json:"publishedAt,omitempty"`
}

type categorySnapshot struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Depth int    `json:"depth"`
}

type authorSnapshot struct {
	ID       uint   `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	ImageURL any    `json:"imageUrl,omitempty"`
}

func snapshotToMap(snapshot any) datatypes.JSONMap {
	var mapping map[string]any
	raw, _ := json.Marshal(snapshot)
	_ = json.Unmarshal(raw, &mapping)
	return datatypes.JSONMap(mapping)
}

func coverImageURL(codec columns.Codec, imagesJSON string, slots ...string) any {
	parsed := codec.Parse(imagesJSON)
	for _, name := range slots {
		slot, ok := parsed[name].(map[string]any)
		if !ok {
			continue
		}
		if best := columns.BestVariant(slot["variants"]); best != nil {
			return best["url"]
		}
	}
	return nil
}

// SyncArticleSnapshots re-derives the cached card and join snapshots from
// the article's current row and its referenced category and author.
func SyncArticleSnapshots(article *models.Article) error {
	card := articleCardSnapshot{
		ID:               article.ID,
		Slug:             article.Slug,
		Type:             article.Type,
		Headline:         article.Headline,
		ShortDescription: article.ShortDescription,
		ImageURL:         coverImageURL(columns.ArticleImages, article.ImagesJSON, "cover", "thumbnail"),
	}
	if article.PublishedAt != nil {
		card.PublishedAt = article.PublishedAt
	}

	article.CachedCategoryJSON = nil
	if article.CategoryID != nil {
		if category, err := GetCategoryByID(*article.CategoryID); err == nil {
			card.CategoryLabel = lo.ToPtr(category.Label)
			article.CachedCategoryJSON = snapshotToMap(categorySnapshot{
				ID:    category.ID,
				Slug:  category.Slug,
				Label: category.Label,
				Depth: category.Depth,
			})
		} else {
			log.Warn().Err(err).Uint("category", *article.CategoryID).Msg("Unable to snapshot article category...")
		}
	}

	article.CachedAuthorJSON = nil
	if article.AuthorID != nil {
		if author, err := GetAuthorByID(*article.AuthorID); err == nil {
			card.AuthorName = lo.ToPtr(author.Name)
			article.CachedAuthorJSON = snapshotToMap(authorSnapshot{
				ID:       author.ID,
				Slug:     author.Slug,
				Name:     author.Name,
				JobTitle: author.JobTitle,
				ImageURL: coverImageURL(columns.AuthorImages, author.ImagesJSON, "avatar"),
			})
		} else {
			log.Warn().Err(err).Uint("author", *article.AuthorID).Msg("Unable to snapshot article author...")
		}
	}

	article.CachedCardJSON = snapshotToMap(card)

	return database.C.Model(article).Updates(map[string]any{
		"cached_card_json":     article.CachedCardJSON,
		"cached_author_json":   article.CachedAuthorJSON,
		"cached_category_json": article.CachedCategoryJSON,
	}).Error
}

// ResyncAllSnapshots sweeps every article and refreshes its snapshots. Run
// from cron so that edits to categories and authors eventually reach the
// denormalized copies even when no sync endpoint was called.
func ResyncAllSnapshots() {
	var articles []models.Article
	if err := database.C.Find(&articles).Error; err != nil {
		log.Error().Err(err).Msg("Unable to list articles for snapshot resync...")
		return
	}

	count := 0
	for idx := range articles {
		if err := SyncArticleSnapshots(&articles[idx]); err != nil {
			log.Warn().Err(err).Uint("article", articles[idx].ID).Msg("Unable to resync article snapshots...")
			continue
		}
		count++
	}
	log.Info().Int("count", count).Msg("Article snapshots resynced.")
}
