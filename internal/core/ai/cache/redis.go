package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recipe-finder/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "recipes:"

// RedisStore Redis 快取
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type redisPayload struct {
	Result    common.RecipeResult `json:"result"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewRedisStore 創建 Redis 快取並測試連接
func NewRedisStore(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			common.LogCacheMiss("redis", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var payload redisPayload
	if err := common.ParseJSONBytes(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return &Entry{
		Key:       key,
		Result:    payload.Result,
		CreatedAt: payload.CreatedAt,
	}, nil
}

// Put 設置緩存，鍵已存在時不覆寫
func (s *RedisStore) Put(ctx context.Context, key string, result common.RecipeResult) error {
	data, err := json.Marshal(redisPayload{Result: result, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	// ttl 為 0 時 redis 不設定過期
	if err := s.client.SetNX(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Ping 檢查連線
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
