package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"financial-coach/internal/errors"
	"financial-coach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// requestError is a client error that maps onto one error code
type requestError struct {
	code    errors.ErrorCode
	details []string
}

func (e *requestError) Error() string {
	return string(e.code)
}

func newRequestError(code errors.ErrorCode, details ...string) *requestError {
	return &requestError{code: code, details: details}
}

// bindAndValidate decodes the JSON body into req and runs the struct rules.
// Validator errors are returned untouched for CustomHTTPErrorHandler.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return newRequestError(errors.ValidationGeneral, "Invalid request body")
	}
	return c.Validate(req)
}

// respondError renders request errors directly and hands everything else to echo
func respondError(c echo.Context, err error) error {
	var reqErr *requestError
	if stderrors.As(err, &reqErr) {
		return SendError(c, reqErr.code, errors.WithDetails(reqErr.details...))
	}
	return err
}

// operationTimer records the request counter and duration for one named operation
type operationTimer struct {
	metrics   services.MetricsRecorderInterface
	operation string
	start     time.Time
}

func startOperation(metrics services.MetricsRecorderInterface, operation string) *operationTimer {
	return &operationTimer{metrics: metrics, operation: operation, start: time.Now()}
}

// done classifies the request by the returned error or the written status
func (t *operationTimer) done(c echo.Context, err error) {
	status := statusOK
	if err != nil || c.Response().Status >= http.StatusBadRequest {
		status = statusError
	}
	t.metrics.IncrementCounter(services.MetricAnalyticsRequest, map[string]string{
		"operation": t.operation,
		"status":    status,
	})
	t.metrics.RecordProcessingTime(services.MetricAnalyticsDurationPrefix+t.operation, time.Since(t.start))
}
