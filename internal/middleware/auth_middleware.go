package middleware

import (
	"context"
	"strings"

	autherrors "go-smbops/internal/auth/errors"
	"go-smbops/internal/domain"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextRole     = "role"
	ContextIdentity = "identity"
)

// TokenResolver turns an opaque session token into the caller identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

// AuthMiddleware reads the session token from the "token" query parameter,
// falling back to an Authorization bearer header.
func AuthMiddleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token, _ = strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if token == "" {
			response.AbortWithError(c, autherrors.ErrMissingToken)
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(ContextUserID, identity.ID)
		c.Set(ContextRole, identity.Role)
		c.Set(ContextIdentity, identity)

		ctx := contextutil.WithCaller(c.Request.Context(), identity.ID, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
