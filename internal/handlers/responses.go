package handlers

import (
	"financial-coach/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures in one of three ways:
//
// 1. SendError for client errors (4xx): malformed bodies, oversized transaction
//    sets, simulation inputs outside the supported range.
// 2. SendSystemError for anything internal (500), SendDatabaseError when the audit
//    store fails. The error is logged by the caller and never returned to the client.
// 3. return err from c.Validate. CustomHTTPErrorHandler turns validator errors into
//    field-keyed details.
//
// Insufficient data is not an error: detectors return empty lists with 200.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers SYSTEM_001 with the generic message
func SendSystemError(c echo.Context) error {
	return sendInternal(c, errors.SystemInternalError)
}

// SendDatabaseError answers SYSTEM_002 when the audit store cannot be read
func SendDatabaseError(c echo.Context) error {
	return sendInternal(c, errors.SystemDatabaseError)
}

func sendInternal(c echo.Context, code errors.ErrorCode) error {
	errorResponse := errors.NewInternalError(code, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
