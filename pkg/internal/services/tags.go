package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

func ListTags(take int, offset int, onlineOnly bool) ([]models.Tag, error) {
	tx := database.C.Order("label ASC")
	if onlineOnly {
		tx = tx.Where("is_online = ?", true)
	}

	var tags []models.Tag
	err := tx.Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func GetTag(slug string) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where("slug = ?", strings.ToLower(slug)).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func GetTagOrCreate(slug, label string) (models.Tag, error) {
	slug = strings.ToLower(slug)
	var tag models.Tag
	if err := database.C.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{
				Slug:  slug,
				Label: label,
			}
			err := database.C.Save(&tag).Error
			return tag, err
		}
		return tag, err
	}
	return tag, nil
}

func NewTag(payload map[string]any) (models.Tag, error) {
	var tag models.Tag
	if err := applyPayload(payload, &tag); err != nil {
		return tag, err
	}
	tag.Slug = strings.ToLower(tag.Slug)

	err := database.C.Create(&tag).Error
	return tag, err
}

func EditTag(tag models.Tag, payload map[string]any) (models.Tag, error) {
	if err := applyPayload(payload, &tag); err != nil {
		return tag, err
	}
	tag.Slug = strings.ToLower(tag.Slug)

	err := database.C.Save(&tag).Error
	return tag, err
}

func DeleteTag(tag models.Tag) error {
	return database.C.Delete(&tag).Error
}
