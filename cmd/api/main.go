package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-finder/internal/api"
	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/gemini"
	"recipe-finder/internal/core/ai/openrouter"
	"recipe-finder/internal/core/ai/provider"
	"recipe-finder/internal/core/ai/queue"
	"recipe-finder/internal/core/recipe"
	"recipe-finder/internal/core/video"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("gemini_key", common.MaskAPIKey(cfg.Gemini.APIKey)),
		zap.String("openrouter_key", common.MaskAPIKey(cfg.OpenRouter.APIKey)),
		zap.String("youtube_key", common.MaskAPIKey(cfg.YouTube.APIKey)),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	store, err := cache.NewStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache store", zap.Error(err))
	}
	defer store.Close()

	aiProvider := newProvider(cfg)
	defer aiProvider.Close()

	pool := queue.NewManager(cfg.Queue.Workers)
	generator := recipe.NewGenerator(aiProvider, recipe.NewFallbackMatcher(), cfg.AI.Temperature)
	enricher := video.NewEnricher(video.NewYouTubeClient(cfg), pool, cfg.YouTube.Timeout)
	recipes := recipe.NewService(store, generator, enricher, recipe.NewSubstitutionTable(), cfg.Recipes.SingleFlight)

	router := api.SetupRouter(cfg, api.Dependencies{
		Recipes: recipes,
		Store:   store,
		Pool:    pool,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
			zap.String("model", aiProvider.GetModel()),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("Server exited")
}

// newProvider 依設定選擇 AI 提供者
func newProvider(cfg *config.Config) provider.Provider {
	switch cfg.AI.Provider {
	case config.ProviderOpenRouter:
		return openrouter.NewClient(cfg)
	default:
		return gemini.NewClient(cfg)
	}
}
