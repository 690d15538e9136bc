package settings

import (
	"go-smbops/internal/middleware"
	"go-smbops/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService, logger *zap.Logger) {
	group := r.Group("/settings")
	group.Use(authMW, middleware.ContextLogger(logger))
	{
		group.GET("", middleware.RateLimitByUser(5, 20), handler.Get)
		group.PUT("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSettings, rbac.ActionWrite),
			middleware.RateLimitByUser(1, 5),
			handler.Put,
		)
	}
}
