package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

var errPanic = errors.New("task panicked")

// Task 單一工作，i 為輸入索引
type Task func(ctx context.Context, i int) error

// Status 工作池狀態
type Status struct {
	Running        int64 `json:"running"`
	ProcessedCount int64 `json:"processed_count"`
	FailedCount    int64 `json:"failed_count"`
	Workers        int   `json:"workers"`
}

// Manager 有上限的並行工作池
// 多個請求共用同一個 Manager 時，同時執行的工作數不會超過 workers
type Manager struct {
	workers   int
	slots     chan struct{}
	running   int64
	processed int64
	failed    int64
}

// NewManager 創建新的工作池
func NewManager(workers int) *Manager {
	if workers <= 0 {
		workers = 1
	}
	return &Manager{
		workers: workers,
		slots:   make(chan struct{}, workers),
	}
}

// Run 並行執行 n 個工作並等待全部結束
// 回傳的錯誤切片與輸入索引一一對應，單一工作失敗不影響其他工作
func (m *Manager) Run(ctx context.Context, n int, task Task) []error {
	errs := make([]error, n)
	if n == 0 {
		return errs
	}

	var wg sync.WaitGroup
	cancelFrom := func(i int) {
		for j := i; j < n; j++ {
			errs[j] = ctx.Err()
		}
	}
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			cancelFrom(i)
			break
		}
		select {
		case m.slots <- struct{}{}:
		case <-ctx.Done():
			cancelFrom(i)
			wg.Wait()
			return errs
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-m.slots }()
			defer func() {
				if r := recover(); r != nil {
					common.LogError("Task panicked", zap.Int("index", i), zap.Any("panic", r))
					errs[i] = errPanic
					atomic.AddInt64(&m.failed, 1)
				}
			}()

			atomic.AddInt64(&m.running, 1)
			defer atomic.AddInt64(&m.running, -1)

			if err := task(ctx, i); err != nil {
				errs[i] = err
				atomic.AddInt64(&m.failed, 1)
			}
			atomic.AddInt64(&m.processed, 1)
		}(i)
	}

	wg.Wait()
	return errs
}

// GetStatus 獲取工作池狀態
func (m *Manager) GetStatus() *Status {
	return &Status{
		Running:        atomic.LoadInt64(&m.running),
		ProcessedCount: atomic.LoadInt64(&m.processed),
		FailedCount:    atomic.LoadInt64(&m.failed),
		Workers:        m.workers,
	}
}
