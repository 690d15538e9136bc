package contact

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	contacts := r.Group("/crm/contacts")
	contacts.Use(authMW, middleware.ContextLogger(logger))
	{
		contacts.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		contacts.GET("", middleware.RateLimitByUser(5, 20), handler.List)

		contacts.POST("/import", middleware.RateLimitByUser(0.2, 2), handler.Import)
		contacts.GET("/export", middleware.RateLimitByUser(0.2, 2), handler.Export)

		contacts.PUT("/:id", middleware.RateLimitByUser(2, 10), handler.Update)
		contacts.DELETE("/:id", middleware.RateLimitByUser(2, 10), handler.Delete)
		contacts.POST("/:id/interactions", middleware.RateLimitByUser(2, 10), handler.AddInteraction)
	}
}
