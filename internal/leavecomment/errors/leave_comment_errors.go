package leavecommenterrors

import (
	"net/http"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveRequestForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this leave request",
		http.StatusForbidden,
	)
	ErrInvalidLeaveRequestID = apperror.New(
		apperror.CodeValidation,
		"Leave request id is invalid",
		http.StatusBadRequest,
	)
	ErrInvalidRequestBody = apperror.New(
		apperror.CodeValidation,
		"Request body is invalid",
		http.StatusBadRequest,
	)
	ErrDeleteNotImplemented = apperror.New(
		apperror.CodeNotImplemented,
		"Deleting leave request comments is not supported",
		http.StatusNotImplemented,
	)
	ErrLeaveCommentPersistFailed = apperror.New(
		apperror.CodePersistence,
		"Failed to store leave request comment",
		http.StatusInternalServerError,
	)
	ErrLeaveCommentReferenceMissing = apperror.New(
		apperror.CodePersistence,
		"Leave request comment references a missing record",
		http.StatusInternalServerError,
	)
)
