package response

import (
	"net/http"

	deliverycontext "storelocator/internal/delivery/context"
	domainerrors "storelocator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`        // Request tracking ID
	Count     *int   `json:"count,omitempty"`   // Number of items for list payloads
	Stale     bool   `json:"stale,omitempty"`   // Served from the last good directory
	Warning   string `json:"warning,omitempty"` // Human-readable note accompanying stale data
}

func newMeta(c echo.Context) *MetaInfo {
	meta := &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
	if deliverycontext.IsStale(c) {
		meta.Stale = true
		meta.Warning = "location source unavailable, showing last known directory"
	}

	return meta
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: newMeta(c),
	})
}

// List returns a successful response for a collection, with its size in meta.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	meta := newMeta(c)
	count := len(items)
	meta.Count = &count

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: items,
		Meta: meta,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are never exposed for 5xx errors
	if statusCode >= 500 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: newMeta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

// AcceptStale marks the response stale when err only reports stale data and
// returns nil so the handler can answer normally. Any other error is returned unchanged.
func AcceptStale(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if domainerrors.IsStale(err) {
		deliverycontext.MarkStale(c)

		return nil
	}

	return err
}
