package services

import (
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

// articleViewQueue buffers raw view rows between flushes. Handlers append
// concurrently with the cron flush, so every access holds articleViewMutex.
var (
	articleViewQueue []models.ArticleView
	articleViewMutex sync.Mutex
)

func AddArticleView(article models.Article) {
	articleViewMutex.Lock()
	defer articleViewMutex.Unlock()
	articleViewQueue = append(articleViewQueue, models.ArticleView{
		ArticleID: article.ID,
	})
}

func FlushArticleViews() {
	articleViewMutex.Lock()
	workingQueue := articleViewQueue
	articleViewQueue = nil
	articleViewMutex.Unlock()

	if len(workingQueue) == 0 {
		return
	}

	increments := make(map[uint]int64)
	for _, item := range workingQueue {
		increments[item.ArticleID]++
	}

	if err := database.C.CreateInBatches(workingQueue, 1000).Error; err != nil {
		log.Warn().Err(err).Int("count", len(workingQueue)).Msg("Unable to persist article view records...")
	}
	for id, delta := range increments {
		if err := database.C.Model(&models.Article{}).Where("id = ?", id).
			Update("view_count", gorm.Expr("view_count + ?", delta)).Error; err != nil {
			log.Warn().Err(err).Uint("article", id).Msg("Unable to increment article view count...")
		}
	}
}
