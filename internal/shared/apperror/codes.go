package apperror

const (
	// Client errors (4xx)
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError  = "INTERNAL_ERROR"
	CodePersistence    = "PERSISTENCE_ERROR"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)
