package dashboard

import (
	"go-smbops/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/dashboard")
	group.Use(authMW, middleware.ContextLogger(logger))
	{
		group.GET("/summary", middleware.RateLimitByUser(2, 10), handler.Summary)
	}
}
