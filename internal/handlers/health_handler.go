package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"financial-coach/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by the audit store connection
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store Pinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports liveness and audit store connectivity
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Audit store unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.HealthCheck(ctx); err != nil {
		slog.Warn("Health check failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
