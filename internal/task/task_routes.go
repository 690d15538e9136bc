package task

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	tasks := r.Group("/tasks")
	tasks.Use(authMW, middleware.ContextLogger(logger))
	{
		tasks.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		tasks.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		tasks.PUT("/:id", middleware.RateLimitByUser(2, 10), handler.Update)
		tasks.DELETE("/:id", middleware.RateLimitByUser(2, 10), handler.Delete)
	}
}
