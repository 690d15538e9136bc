package middleware

import (
	"go-smbops/internal/domain"
	"go-smbops/internal/shared/apperror"
	"go-smbops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can decide a role/resource/action triple.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		if !allowed {
			response.AbortWithError(c, apperror.New(
				apperror.CodeForbidden,
				"Admins only",
				apperror.ErrForbidden.HTTPStatus,
			))
			return
		}

		c.Next()
	}
}
