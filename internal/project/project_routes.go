package project

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	projects := r.Group("/projects")
	projects.Use(authMW, middleware.ContextLogger(logger))
	{
		projects.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		projects.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		projects.PUT("/:id", middleware.RateLimitByUser(2, 10), handler.Update)
		projects.DELETE("/:id", middleware.RateLimitByUser(2, 10), handler.Delete)
	}
}
