package contact

import (
	"io"
	"net/http"

	contacterrors "go-smbops/internal/contact/errors"
	"go-smbops/internal/middleware"
	"go-smbops/internal/shared/apperror"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImportBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("contact.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Create(ctx, c.GetString(middleware.ContextUserID), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListContactsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Update(ctx, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true}, nil)
}

func (h *Handler) AddInteraction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	if err := h.service.AddInteraction(ctx, c.Param("id"), c.GetString(middleware.ContextUserID), req); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true}, nil)
}

func (h *Handler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeServiceError(c, contacterrors.ErrMissingFile)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeServiceError(c, contacterrors.ErrMissingFile.WithCause(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportBytes))
	if err != nil {
		writeServiceError(c, contacterrors.ErrInvalidCSV.WithCause(err))
		return
	}

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	res, err := h.service.Import(ctx, c.GetString(middleware.ContextUserID), data)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// Export streams every contact. Headers are committed before the first
// batch, so a mid-stream failure can only be logged.
func (h *Handler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=contacts.csv")
	c.Status(http.StatusOK)

	ctx := contextutil.EnsureLogger(c.Request.Context(), h.logger)

	if err := h.service.Export(ctx, c.Writer); err != nil {
		contextutil.GetLogger(ctx, h.logger).Error("contact export aborted", zap.Error(err))
		c.Abort()
	}
}
