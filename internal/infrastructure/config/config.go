package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"recipe-finder/internal/pkg/common"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支援的快取驅動
const (
	CacheDriverMemory   = "memory"
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
	CacheDriverSQLite   = "sqlite"
)

// 支援的 AI 提供者
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config 應用配置
type Config struct {
	App         AppConfig        `mapstructure:"app"`
	Server      ServerConfig     `mapstructure:"server"`
	AI          AIConfig         `mapstructure:"ai"`
	Gemini      GeminiConfig     `mapstructure:"gemini"`
	OpenRouter  OpenRouterConfig `mapstructure:"openrouter"`
	YouTube     YouTubeConfig    `mapstructure:"youtube"`
	Cache       CacheConfig      `mapstructure:"cache"`
	Queue       QueueConfig      `mapstructure:"queue"`
	Recipes     RecipesConfig    `mapstructure:"recipes"`
	RateLimit   RateLimitConfig  `mapstructure:"rate_limit"`
	DedupWindow time.Duration    `mapstructure:"dedup_window"`
	LogLevel    string           `mapstructure:"log_level"`
	LogDir      string           `mapstructure:"log_dir"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// AIConfig AI 配置
type AIConfig struct {
	Provider    string        `mapstructure:"provider"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
}

// GeminiConfig Gemini 配置
type GeminiConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	BaseURL         string  `mapstructure:"base_url"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens"`
	TopP            float64 `mapstructure:"top_p"`
	TopK            int     `mapstructure:"top_k"`
}

// OpenRouterConfig OpenRouter 配置
type OpenRouterConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// YouTubeConfig 影片搜尋配置
type YouTubeConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig 緩存配置
// TTL 為 0 表示永不過期
type CacheConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Driver        string        `mapstructure:"driver"`
	TTL           time.Duration `mapstructure:"ttl"`
	MaxSize       int           `mapstructure:"max_size"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DSN           string        `mapstructure:"dsn"`
	SQLitePath    string        `mapstructure:"sqlite_path"`
}

// QueueConfig 影片查詢的並行設定
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
}

// RecipesConfig 食譜查詢設定
type RecipesConfig struct {
	SingleFlight bool `mapstructure:"single_flight"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，不存在時略過
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// 設定預設值
	setDefaults(v)

	// 設定環境變數前綴
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	_ = v.BindEnv("ai.provider", "AI_PROVIDER")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.model", "GEMINI_MODEL")
	_ = v.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	_ = v.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	_ = v.BindEnv("youtube.api_key", "YOUTUBE_API_KEY", "VITE_YOUTUBE_API_KEY")
	_ = v.BindEnv("cache.enabled", "CACHE_ENABLED")
	_ = v.BindEnv("cache.driver", "CACHE_DRIVER")
	_ = v.BindEnv("cache.dsn", "DATABASE_URL")
	_ = v.BindEnv("cache.redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("cache.sqlite_path", "SQLITE_PATH")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = v.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	_ = v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	_ = v.BindEnv("dedup_window", "DEDUP_WINDOW")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// 讀取設定檔
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// logger 尚未初始化，改用 fmt.Println
	fmt.Println("Loading configuration",
		"ai_provider:", v.GetString("ai.provider"),
		"gemini_api_key:", common.MaskAPIKey(v.GetString("gemini.api_key")),
		"openrouter_api_key:", common.MaskAPIKey(v.GetString("openrouter.api_key")),
		"cache_driver:", v.GetString("cache.driver"),
	)

	// 解析設定
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	config.Cache.Driver = strings.ToLower(strings.TrimSpace(config.Cache.Driver))

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-finder")

	// 伺服器設定
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "45s")
	v.SetDefault("server.max_body_bytes", 1<<20) // 1MB

	// AI 設定
	v.SetDefault("ai.provider", ProviderGemini)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.temperature", 0.7)

	// Gemini 設定
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-pro")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.max_output_tokens", 2048)
	v.SetDefault("gemini.top_p", 0.8)
	v.SetDefault("gemini.top_k", 40)

	// OpenRouter 設定
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.model", "google/gemini-flash-1.5")
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.max_tokens", 2048)

	// YouTube 設定
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.timeout", "10s")

	// 快取設定
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.ttl", "0s")
	v.SetDefault("cache.max_size", 0)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.dsn", "")
	v.SetDefault("cache.sqlite_path", "data/recipes.db")

	// 隊列設定
	v.SetDefault("queue.workers", 4)

	// 食譜設定
	v.SetDefault("recipes.single_flight", false)

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("dedup_window", "0s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "logs")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證 AI 設定
	switch config.AI.Provider {
	case ProviderGemini, ProviderOpenRouter:
	default:
		return fmt.Errorf("unsupported ai provider %q", config.AI.Provider)
	}
	if config.AI.Timeout <= 0 {
		return fmt.Errorf("invalid ai timeout")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		switch config.Cache.Driver {
		case CacheDriverMemory, CacheDriverRedis, CacheDriverSQLite:
		case CacheDriverPostgres:
			if config.Cache.DSN == "" {
				return fmt.Errorf("cache driver postgres requires DATABASE_URL")
			}
		default:
			return fmt.Errorf("unsupported cache driver %q", config.Cache.Driver)
		}
		if config.Cache.TTL < 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.MaxSize < 0 {
			return fmt.Errorf("invalid cache max size")
		}
	}

	// 驗證隊列設定
	if config.Queue.Workers <= 0 {
		return fmt.Errorf("invalid queue workers")
	}

	// 驗證限流設定
	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit")
		}
	}

	return nil
}
