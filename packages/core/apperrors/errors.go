package apperrors

import "net/http"

// Error codes returned to API clients.
const (
	CodeInvalidArgument  = "invalid-argument"
	CodeNotFound         = "not-found"
	CodePermissionDenied = "permission-denied"
	CodeConflict         = "conflict"
	CodeInternal         = "internal"
)

// Error carries a machine-readable code alongside the human-readable message.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message, nil)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message, nil)
}

func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message, nil)
}

func Conflict(message string) *Error {
	return New(CodeConflict, message, nil)
}

func Internal(message string, cause error) *Error {
	return New(CodeInternal, message, cause)
}

// Code extracts the error code, defaulting to internal for untyped errors.
func Code(err error) string {
	if appErr, ok := err.(*Error); ok {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the HTTP status handlers should respond with.
func HTTPStatus(err error) int {
	switch Code(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
