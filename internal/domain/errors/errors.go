package errors

import (
	"net/http"

	"storelocator/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Directory-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"location not found",
		"",
	)

	ErrSourceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SOURCE_UNAVAILABLE",
		"location source is unavailable",
		"",
	)

	ErrMalformedSchedule = NewBaseError(
		http.StatusUnprocessableEntity,
		"MALFORMED_SCHEDULE",
		"location schedule is malformed",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"coordinates are out of range",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// StaleError reports that a result was served from the last successful
// refresh because the source could not be reached. The accompanying data is
// still valid to use.
type StaleError struct {
	cause error
}

// NewStaleError marks cause as a recoverable staleness warning.
func NewStaleError(cause error) *StaleError {
	return &StaleError{cause: cause}
}

// Error implements the error interface
func (e *StaleError) Error() string {
	return "serving stale directory: " + e.cause.Error()
}

// Unwrap exposes the refresh failure.
func (e *StaleError) Unwrap() error {
	return e.cause
}

// IsStale reports whether err only signals stale-but-available data.
func IsStale(err error) bool {
	var stale *StaleError

	return errors.As(err, &stale)
}
