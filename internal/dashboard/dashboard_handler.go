package dashboard

import (
	"net/http"

	"go-smbops/internal/middleware"
	"go-smbops/internal/shared/apperror"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Summary(c *gin.Context) {
	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Summary(ctx, c.GetString(middleware.ContextUserID))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
