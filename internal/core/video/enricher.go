package video

import (
	"context"
	"errors"
	"time"

	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// Enricher 為食譜附加影片 ID
type Enricher struct {
	searcher Searcher
	pool     *queue.Manager
	timeout  time.Duration
}

// NewEnricher 創建影片補充器，timeout 為 0 時不另設單次搜尋逾時
func NewEnricher(searcher Searcher, pool *queue.Manager, timeout time.Duration) *Enricher {
	if pool == nil {
		pool = queue.NewManager(4)
	}
	return &Enricher{
		searcher: searcher,
		pool:     pool,
		timeout:  timeout,
	}
}

// SearchQuery 以食譜標題組成搜尋字串
func SearchQuery(title string) string {
	return title + " recipe"
}

// Enrich 並行查詢影片，輸出順序與輸入相同
// 單筆搜尋失敗只會讓該筆沒有 videoId
func (e *Enricher) Enrich(ctx context.Context, recipes []common.Recipe) []common.Recipe {
	out := make([]common.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	if e.searcher == nil || len(out) == 0 {
		return out
	}

	errs := e.pool.Run(ctx, len(out), func(ctx context.Context, i int) error {
		if out[i].VideoID != "" {
			return nil
		}

		callCtx := ctx
		if e.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, e.timeout)
			defer cancel()
		}

		id, err := e.searcher.Search(callCtx, SearchQuery(out[i].Title))
		if err != nil {
			return err
		}
		out[i].VideoID = id
		return nil
	})

	for i, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, common.ErrNoCredential) {
			common.LogDebug("YouTube API key is missing, skipping video lookup", zap.String("title", out[i].Title))
			continue
		}
		common.LogWarn("Video search failed",
			zap.String("component", "video_enricher"),
			zap.String("title", out[i].Title),
			zap.Error(err),
		)
	}

	return out
}
