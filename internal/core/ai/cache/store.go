package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// Entry 快取條目，建立後不再更新
type Entry struct {
	Key       string
	Result    common.RecipeResult
	CreatedAt time.Time
}

// Store 食譜結果快取
// Get 在找不到時回傳 common.ErrCacheMiss
// Put 只在鍵不存在時寫入，已存在的條目保持不變
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, key string, result common.RecipeResult) error
	Ping(ctx context.Context) error
	Close() error
}

// NewStore 依設定建立快取
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return Disabled{}, nil
	}

	var (
		store Store
		err   error
	)
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory, "":
		store = NewMemoryStore(cfg.Cache.TTL, cfg.Cache.MaxSize)
	case config.CacheDriverRedis:
		store, err = NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL)
	case config.CacheDriverPostgres:
		store, err = NewSQLStore(cfg.Cache.DSN)
	case config.CacheDriverSQLite:
		store, err = NewSQLiteStore(cfg.Cache.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Cache.Driver)
	}
	if err != nil {
		return nil, err
	}

	common.LogInfo("快取已初始化",
		zap.String("driver", cfg.Cache.Driver),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Int("最大容量", cfg.Cache.MaxSize),
	)
	return store, nil
}

// Disabled 停用快取時使用，每次查詢都視為未命中
type Disabled struct{}

func (Disabled) Get(context.Context, string) (*Entry, error) {
	return nil, common.ErrCacheDisabled
}

func (Disabled) Put(context.Context, string, common.RecipeResult) error { return nil }

func (Disabled) Ping(context.Context) error { return nil }

func (Disabled) Close() error { return nil }

func encodeResult(result common.RecipeResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe result: %w", err)
	}
	return data, nil
}

func decodeResult(data []byte) (common.RecipeResult, error) {
	var result common.RecipeResult
	if err := common.ParseJSONBytes(data, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal recipe result: %w", err)
	}
	return result, nil
}
