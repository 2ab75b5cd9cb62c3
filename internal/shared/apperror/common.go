package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrNotImplemented = New(
		CodeNotImplemented,
		"Not implemented",
		http.StatusNotImplemented,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

func FieldTooLong(field, max string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s must be at most %s characters", field, max), http.StatusBadRequest)
}

func FieldOutOfRange(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is out of range", field), http.StatusBadRequest)
}

// Persistence wraps a store failure. The cause stays available through errors.Unwrap
// but is never sent to the client.
func Persistence(err error, message string) *AppError {
	return Wrap(err, CodePersistence, message, http.StatusInternalServerError)
}
