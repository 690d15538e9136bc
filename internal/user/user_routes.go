package user

import (
	"go-smbops/internal/middleware"
	"go-smbops/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService, logger *zap.Logger) {
	users := r.Group("/users")
	users.Use(authMW, middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUsers, rbac.ActionRead),
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)
		users.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUsers, rbac.ActionCreate),
			middleware.RateLimitByUser(1, 5),
			handler.Create,
		)
	}
}
