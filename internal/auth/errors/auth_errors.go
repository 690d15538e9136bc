package autherrors

import (
	"go-smbops/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Missing token",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrInvalidSessionUser = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session user",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
)
