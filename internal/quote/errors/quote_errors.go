package quoteerrors

import (
	"fmt"
	"go-smbops/internal/shared/apperror"
	"net/http"
)

var (
	ErrQuoteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Quote not found",
		http.StatusNotFound,
	)

	ErrPublicQuoteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Not found",
		http.StatusNotFound,
	)

	ErrInvalidQuoteID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)

	ErrQuotaExceeded = apperror.New(
		apperror.CodePaymentRequired,
		"Free tier limit reached",
		http.StatusPaymentRequired,
	)
)

func QuotaExceeded(limit int64) *apperror.AppError {
	return apperror.New(
		ErrQuotaExceeded.Code,
		fmt.Sprintf("Free tier limit reached: max %d quotes this month", limit),
		ErrQuotaExceeded.HTTPStatus,
	)
}
