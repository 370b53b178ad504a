package api

import (
	"context"
	"time"

	"recipe-finder/internal/api/handlers/health"
	recipeHandler "recipe-finder/internal/api/handlers/recipe"
	"recipe-finder/internal/api/middleware"
	"recipe-finder/internal/core/ai/cache"
	"recipe-finder/internal/core/ai/queue"
	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies 路由需要的服務
type Dependencies struct {
	Recipes *recipeService.Service
	Store   cache.Store
	Pool    *queue.Manager
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	if cfg.DedupWindow > 0 {
		router.Use(middleware.NewDeduplicator(cfg.DedupWindow).Middleware())
	}
	if cfg.Server.RequestTimeout > 0 {
		router.Use(requestTimeout(cfg.Server.RequestTimeout))
	}

	healthHandler := health.NewHandler(cfg.App.Version, deps.Recipes, deps.Store, deps.Pool)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	router.NoRoute(notFound)

	h := recipeHandler.NewHandler(deps.Recipes)
	api := router.Group("/api")
	{
		api.POST("/recipes", h.HandleFindRecipes)
		api.GET("/recipes/search", h.HandleSearchByName)
		api.GET("/substitutes", h.HandleSubstitutes)
	}

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("dedup_window", cfg.DedupWindow),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}

// requestTimeout 為請求設定期限，AI 與影片呼叫逾時後會自行降級，不在此另外回應
func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func notFound(c *gin.Context) {
	c.JSON(common.ErrNotFound.Status, common.ErrorResponse{
		Code:    common.ErrNotFound.Code,
		Message: common.ErrNotFound.Message,
	})
}
