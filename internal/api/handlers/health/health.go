package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// readyTimeout 就緒檢查連線快取的上限
const readyTimeout = 2 * time.Second

// Pinger 可檢查連線狀態的依賴
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     *cache.Stats           `json:"cache,omitempty"`
	Queue     *queue.Status          `json:"queue,omitempty"`
}

// Handler 健康檢查處理程序
type Handler struct {
	version string
	pinger  Pinger
	memory  *cache.MemoryStore
	pool    *queue.Manager
}

// NewHandler 創建健康檢查處理程序
// store 為記憶體快取時會附上命中統計，pool 可為 nil
func NewHandler(version string, pinger Pinger, store cache.Store, pool *queue.Manager) *Handler {
	h := &Handler{version: version, pinger: pinger, pool: pool}
	if ms, ok := store.(*cache.MemoryStore); ok {
		h.memory = ms
	}
	return h
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":  m.Alloc,
				"sys":    m.Sys,
				"num_gc": m.NumGC,
			},
		},
	}
	if h.memory != nil {
		stats := h.memory.Stats()
		response.Cache = &stats
	}
	if h.pool != nil {
		response.Queue = h.pool.GetStatus()
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，快取無法連線時回傳 503
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			common.LogWarn("Readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
				Code:    common.ErrCodeServiceUnavailable,
				Message: common.ErrServiceUnavailable.Message,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
