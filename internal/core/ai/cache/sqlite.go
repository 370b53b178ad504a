package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"recipe-finder/internal/pkg/common"

	_ "modernc.org/sqlite"
)

// SQLiteStore 單機檔案快取
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore 開啟資料庫並建立資料表
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// 單一連線避免 database is locked
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS recipe_caches (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        ingredients TEXT NOT NULL UNIQUE,
        result TEXT NOT NULL,
        created_at TEXT NOT NULL
    );
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Get 依食材簽章查詢
func (s *SQLiteStore) Get(ctx context.Context, key string) (*Entry, error) {
	var payload, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT result, created_at FROM recipe_caches WHERE ingredients = ?`, key,
	).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			common.LogCacheMiss("sqlite", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to query recipe cache: %w", err)
	}

	result, err := decodeResult([]byte(payload))
	if err != nil {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	common.LogCacheHit("sqlite", key)
	return &Entry{
		Key:       key,
		Result:    result,
		CreatedAt: created,
	}, nil
}

// Put 新增條目，已存在時忽略
func (s *SQLiteStore) Put(ctx context.Context, key string, result common.RecipeResult) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO recipe_caches (ingredients, result, created_at) VALUES (?, ?, ?)`,
		key, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe cache: %w", err)
	}
	return nil
}

// Ping 檢查連線
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close 關閉資料庫
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
