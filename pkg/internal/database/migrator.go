package database

import (
	"github.com/bildev/tastebook/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Author{},
	&models.Category{},
	&models.Tag{},
	&models.Article{},
	&models.MediaFile{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.ArticleView{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
