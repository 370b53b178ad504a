package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-finder/internal/pkg/common"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// RecipeCache recipe_caches 資料表
type RecipeCache struct {
	ID          uint      `gorm:"primaryKey"`
	Ingredients string    `gorm:"uniqueIndex;not null"`
	Result      string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName 指定資料表名稱
func (RecipeCache) TableName() string {
	return "recipe_caches"
}

// SQLStore 以 Postgres 保存的快取
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore 連線 Postgres 並執行遷移
func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newSQLStore(db)
}

func newSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&RecipeCache{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Get 依食材簽章查詢
func (s *SQLStore) Get(ctx context.Context, key string) (*Entry, error) {
	var row RecipeCache
	err := s.db.WithContext(ctx).Where("ingredients = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.LogCacheMiss("postgres", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to query recipe cache: %w", err)
	}

	result, err := decodeResult([]byte(row.Result))
	if err != nil {
		return nil, err
	}

	common.LogCacheHit("postgres", key)
	return &Entry{
		Key:       row.Ingredients,
		Result:    result,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Put 新增條目，衝突時保留原資料
func (s *SQLStore) Put(ctx context.Context, key string, result common.RecipeResult) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}

	row := RecipeCache{
		Ingredients: key,
		Result:      string(data),
		CreatedAt:   time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredients"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to insert recipe cache: %w", err)
	}
	return nil
}

// Ping 檢查連線
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 關閉連線
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
