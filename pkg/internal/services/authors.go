package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/bildev/tastebook/pkg/internal/cache"
	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

func authorCacheKey(id uint) string {
	return fmt.Sprintf("author#%d", id)
}

func ListAuthors(take int, offset int, onlineOnly bool) ([]models.Author, error) {
	tx := database.C.Order("name ASC")
	if onlineOnly {
		tx = tx.Where("is_online = ?", true)
	}

	var authors []models.Author
	err := tx.Offset(offset).Limit(take).Find(&authors).Error

	return authors, err
}

func GetAuthor(slugOrID string) (models.Author, error) {
	if id, err := strconv.Atoi(slugOrID); err == nil {
		return GetAuthorByID(uint(id))
	}

	var author models.Author
	if err := database.C.Where("slug = ?", slugOrID).First(&author).Error; err != nil {
		return author, err
	}
	return author, nil
}

func GetAuthorByID(id uint) (models.Author, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, authorCacheKey(id), new(models.Author)); err == nil {
		return *hit.(*models.Author), nil
	}

	var author models.Author
	if err := database.C.Where("id = ?", id).First(&author).Error; err != nil {
		return author, err
	}

	_ = marshal.Set(ctx, authorCacheKey(id), author, store.WithCost(1))
	return author, nil
}

func invalidateAuthorCache(id uint) {
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Delete(context.Background(), authorCacheKey(id))
}

func NewAuthor(payload map[string]any) (models.Author, error) {
	var author models.Author
	if err := applyPayload(payload, &author); err != nil {
		return author, err
	}

	err := database.C.Create(&author).Error
	return author, err
}

func EditAuthor(author models.Author, payload map[string]any) (models.Author, error) {
	if err := applyPayload(payload, &author); err != nil {
		return author, err
	}

	if err := database.C.Save(&author).Error; err != nil {
		return author, err
	}
	invalidateAuthorCache(author.ID)
	return author, nil
}

func DeleteAuthor(author models.Author) error {
	if err := database.C.Delete(&author).Error; err != nil {
		return err
	}
	invalidateAuthorCache(author.ID)
	return nil
}

// RestoreAuthor clears the soft-delete marker so the author shows up in
// reads again.
func RestoreAuthor(id uint) (models.Author, error) {
	var author models.Author
	if err := database.C.Unscoped().Where("id = ?", id).First(&author).Error; err != nil {
		return author, err
	}

	if err := database.C.Unscoped().Model(&author).Update("deleted_at", nil).Error; err != nil {
		return author, err
	}
	invalidateAuthorCache(author.ID)

	author.DeletedAt.Valid = false
	return author, nil
}
