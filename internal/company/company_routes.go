package company

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	companies := r.Group("/crm/companies")
	companies.Use(authMW, middleware.ContextLogger(logger))
	{
		companies.POST("", middleware.RateLimitByUser(2, 10), handler.Create)
		companies.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		companies.PUT("/:id", middleware.RateLimitByUser(2, 10), handler.Update)
		companies.DELETE("/:id", middleware.RateLimitByUser(2, 10), handler.Delete)
	}
}
