package api

import (
	"context"
	"net/http"
	"time"

	"recipe-importer/internal/api/handlers/health"
	importHandler "recipe-importer/internal/api/handlers/importer"
	"recipe-importer/internal/api/middleware"
	"recipe-importer/internal/core/acquire"
	"recipe-importer/internal/core/ai"
	"recipe-importer/internal/core/ai/cache"
	"recipe-importer/internal/core/ai/provider"
	"recipe-importer/internal/core/blog"
	"recipe-importer/internal/core/pipeline"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，這個 API 只收 URL 和純文字
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheStore cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// 解析 AI 供應商（建構期一次性選擇）
	completionProvider := provider.Resolve(cfg)
	providerName := ""
	if completionProvider != nil {
		providerName = completionProvider.Name()
	}

	// 組裝匯入管線
	extractor := ai.NewExtractor(completionProvider, cacheStore)
	orchestrator := acquire.NewOrchestratorFromConfig(cfg)
	blogClient := blog.NewClient(cfg)
	pipelineService := pipeline.NewService(orchestrator, extractor, blogClient)

	common.LogInfo("Import pipeline initialized",
		zap.String("provider", providerName),
		zap.Bool("cache_enabled", cacheStore != nil),
		zap.Bool("transcript_enabled", cfg.Transcript.BaseURL != ""),
	)

	// 全局中間件：設置超時和共用狀態
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)
		c.Set("provider_name", providerName)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, common.ErrorResponse{
				Code:    common.ErrCodeRequestTimeout,
				Message: common.ErrRequestTimeout.Message,
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := importHandler.NewHandler(pipelineService)

		importGroup := api.Group("/import")
		{
			// 從影片或部落格連結匯入
			importGroup.POST("/url", handler.HandleImportURL)

			// 從手動貼上的文字匯入
			importGroup.POST("/text", handler.HandleImportText)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.String("provider", providerName),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
