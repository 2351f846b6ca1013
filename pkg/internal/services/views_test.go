package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bildev/tastebook/pkg/internal/models"
)

func TestAddArticleViewConcurrent(t *testing.T) {
	articleViewMutex.Lock()
	articleViewQueue = nil
	articleViewMutex.Unlock()

	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				AddArticleView(models.Article{BaseModel: models.BaseModel{ID: 1}})
			}
		}()
	}
	wg.Wait()

	articleViewMutex.Lock()
	defer articleViewMutex.Unlock()
	assert.Len(t, articleViewQueue, workers*perWorker)
}
