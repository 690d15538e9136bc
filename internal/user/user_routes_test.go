package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-smbops/internal/domain"
	"go-smbops/internal/middleware"
	"go-smbops/internal/rbac"
	"go-smbops/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsersRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enforcer, err := rbac.NewEnforcer(rbac.DefaultPolicies())
	require.NoError(t, err)

	svc := &fakeUserService{
		ListFn: func(ctx context.Context) ([]user.UserResponse, error) {
			return []user.UserResponse{{ID: "u-1", Name: "Ada", Role: domain.RoleAdmin}}, nil
		},
	}

	authMW := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Set(middleware.ContextRole, role)
		c.Next()
	}

	r := gin.New()
	user.RegisterRoutes(r.Group(""), setupHandler(svc), authMW, rbac.NewService(enforcer, zap.NewNop()), zap.NewNop())
	return r
}

func TestRoutes_ListUsers(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleEmployee, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			w := httptest.NewRecorder()
			newUsersRouter(t, tc.role).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
