package quote

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rdb *redis.Client, logger *zap.Logger) {
	quotes := r.Group("/quotes")
	quotes.Use(authMW, middleware.ContextLogger(logger))
	{
		quotes.POST("", middleware.RateLimitByUser(1, 5), middleware.Idempotency(rdb), handler.Create)
		quotes.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		quotes.GET("/:id", middleware.RateLimitByUser(5, 20), handler.Get)
		quotes.PUT("/:id", middleware.RateLimitByUser(2, 10), handler.Update)
		quotes.DELETE("/:id", middleware.RateLimitByUser(2, 10), handler.Delete)
	}

	r.GET("/public/quote/:token", middleware.RateLimitByIP(2, 10), handler.Public)
}
