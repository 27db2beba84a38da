package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ladle-app/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		ingredients := v1.Group("/ingredients")
		{
			ingredients.POST("/parse", handler.ParseIngredients)
			ingredients.POST("/scale", handler.ScaleIngredients)
			ingredients.POST("/convert", handler.ConvertIngredient)
		}
	}

	return router
}
