package auth

import (
	"net/http"

	"go-smbops/internal/middleware"
	"go-smbops/internal/shared/apperror"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/shared/response"
	"go-smbops/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Register(ctx, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Debug("login rejected", zap.String("email", req.Email), zap.Error(err))
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	response.Success(c, http.StatusOK, user.UserResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}, nil)
}
