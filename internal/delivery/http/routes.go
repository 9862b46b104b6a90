package http

import (
	"github.com/gin-gonic/gin"

	"github.com/deallens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		catalogue := v1.Group("/catalogue")
		{
			catalogue.POST("/extract", handler.ExtractCatalogue)
		}

		v1.POST("/compare", handler.CompareCatalogues)
	}

	return router
}
