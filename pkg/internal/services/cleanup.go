package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

// DoAutoDatabaseCleanup purges rows that were soft-deleted more than thirty
// days ago and prunes raw view records once they are folded into counts.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range []any{&models.Category{}, &models.Author{}} {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL").
			Where("deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	viewDeadline := time.Now().Add(-7 * 24 * time.Hour)
	tx := database.C.Where("created_at <= ?", viewDeadline).Delete(&models.ArticleView{})
	if tx.Error == nil {
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
