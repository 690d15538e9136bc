package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-smbops/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		err := apperror.New(apperror.CodePaymentRequired, "limit reached", http.StatusPaymentRequired)

		httpErr := apperror.ToHTTP(fmt.Errorf("create quote: %w", err))

		assert.Equal(t, http.StatusPaymentRequired, httpErr.Status)
		assert.Equal(t, apperror.CodePaymentRequired, httpErr.Code)
		assert.Equal(t, "limit reached", httpErr.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("dial tcp: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "dial tcp")
	})
}

func TestAppError_Is(t *testing.T) {
	quoteNotFound := apperror.New(apperror.CodeNotFound, "Quote not found", http.StatusNotFound)

	assert.True(t, errors.Is(quoteNotFound, apperror.ErrNotFound))
	assert.False(t, errors.Is(quoteNotFound, apperror.ErrForbidden))
	assert.True(t, errors.Is(quoteNotFound.WithCause(errors.New("boom")), apperror.ErrNotFound))
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	type payload struct {
		UnitPrice *float64 `json:"unit_price" binding:"required"`
		Email     string   `json:"email" binding:"omitempty,email"`
	}

	t.Run("required field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&payload{})

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Unit Price is required", appErr.Message)
	})

	t.Run("invalid field", func(t *testing.T) {
		price := 1.0
		err := binding.Validator.ValidateStruct(&payload{UnitPrice: &price, Email: "nope"})

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Email is invalid", appErr.Message)
	})

	t.Run("non validation error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}

func TestMapValidationError_QueryFieldName(t *testing.T) {
	apperror.Init()
	apperror.Init()

	type query struct {
		ProjectID string `form:"project_id" binding:"required"`
	}

	mapped := apperror.MapValidationError(binding.Validator.ValidateStruct(&query{}))

	var appErr *apperror.AppError
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, "Project Id is required", appErr.Message)
}
