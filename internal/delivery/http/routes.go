package http

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/safeglow/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// ClientIP feeds the per-IP limiter; only listed proxies may set X-Forwarded-For
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Printf("WARNING: invalid trusted proxies %v, trusting none: %v", cfg.Server.TrustedProxies, err)
		router.SetTrustedProxies(nil)
	}

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		products := v1.Group("/products")
		{
			products.GET("/recommend", handler.RecommendProducts)
		}

		quiz := v1.Group("/quiz")
		{
			quiz.GET("", handler.GetQuiz)
			quiz.POST("/score", handler.ScoreQuiz)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", handler.Login)
			auth.GET("/me", AuthMiddleware(handler.auth), handler.Me)
		}
	}

	return router
}
