package contacterrors

import (
	"go-smbops/internal/shared/apperror"
	"net/http"
)

var (
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contact not found",
		http.StatusNotFound,
	)

	ErrInvalidContactID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)

	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"A CSV file is required in the \"file\" field",
		http.StatusBadRequest,
	)

	ErrInvalidEncoding = apperror.New(
		apperror.CodeInvalidInput,
		"File must be UTF-8 encoded",
		http.StatusBadRequest,
	)

	ErrInvalidCSV = apperror.New(
		apperror.CodeInvalidInput,
		"File is not a readable CSV",
		http.StatusBadRequest,
	)
)
