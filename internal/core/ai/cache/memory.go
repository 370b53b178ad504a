package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"recipe-finder/internal/pkg/common"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// MemoryStore 行程內快取
// ttl 為 0 時永不過期，maxSize 為 0 時不限容量，超過容量時淘汰最久未使用的項目
type MemoryStore struct {
	maxSize int
	lru     *expirable.LRU[string, Entry]

	// putMu 讓「不存在才寫入」成為原子操作
	putMu sync.Mutex

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Stats 緩存統計
type Stats struct {
	Size      int   `json:"size"`
	MaxSize   int   `json:"max_size"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// NewMemoryStore 創建新的記憶體快取
func NewMemoryStore(ttl time.Duration, maxSize int) *MemoryStore {
	if maxSize < 0 {
		maxSize = 0
	}
	m := &MemoryStore{maxSize: maxSize}
	m.lru = expirable.NewLRU[string, Entry](maxSize, m.onEvict, ttl)
	return m
}

// onEvict 在 LRU 內部鎖中執行，不可回呼 m.lru
func (m *MemoryStore) onEvict(key string, _ Entry) {
	m.evictions.Add(1)
	common.LogDebug("快取已淘汰", zap.String("鍵", key))
}

// Get 獲取緩存值
func (m *MemoryStore) Get(ctx context.Context, key string) (*Entry, error) {
	entry, ok := m.lru.Get(key)
	if !ok {
		m.misses.Add(1)
		common.LogCacheMiss("memory", key)
		return nil, common.ErrCacheMiss
	}

	m.hits.Add(1)
	common.LogCacheHit("memory", key)

	entry.Result = entry.Result.Clone()
	return &entry, nil
}

// Put 設置緩存值，已存在且未過期的鍵不覆寫
func (m *MemoryStore) Put(ctx context.Context, key string, result common.RecipeResult) error {
	m.putMu.Lock()
	defer m.putMu.Unlock()

	if _, exists := m.lru.Peek(key); exists {
		return nil
	}

	m.lru.Add(key, Entry{
		Key:       key,
		Result:    result.Clone(),
		CreatedAt: time.Now(),
	})

	common.LogDebug("快取已儲存", zap.String("鍵", key))
	return nil
}

// Stats 獲取緩存統計信息
func (m *MemoryStore) Stats() Stats {
	return Stats{
		Size:      m.lru.Len(),
		MaxSize:   m.maxSize,
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
	}
}

// Ping 記憶體快取永遠可用
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close 清空緩存
func (m *MemoryStore) Close() error {
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.hits.Load()),
		zap.Int64("未命中次數", m.misses.Load()),
		zap.Int64("淘汰次數", m.evictions.Load()),
	)
	m.lru.Purge()
	return nil
}
