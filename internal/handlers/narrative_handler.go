package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"financial-coach/internal/dto"
	"financial-coach/internal/errors"
	"financial-coach/internal/models"
	"financial-coach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	OperationNarrative          = "narrative"
	OperationExplainUntouchable = "explain_untouchable"
	OperationExplainCredit      = "explain_credit"
)

// NarrativeHandler serves the coaching text endpoints. Text generation never fails
// from the caller's point of view: collaborator problems come back as fallback text.
type NarrativeHandler struct {
	narrator services.NarratorServiceInterface
	metrics  services.MetricsRecorderInterface
}

// NewNarrativeHandler creates a new narrative handler
func NewNarrativeHandler(narrator services.NarratorServiceInterface, metrics services.MetricsRecorderInterface) *NarrativeHandler {
	return &NarrativeHandler{narrator: narrator, metrics: metrics}
}

// Narrate turns summary metrics into one coaching sentence
// @Summary Coaching narrative
// @Tags Narrative
// @Accept json
// @Produce json
// @Param request body dto.NarrativeRequest true "Summary metrics"
// @Success 200 {object} dto.NarrativeResponse
// @Router /ai/narrative [post]
func (h *NarrativeHandler) Narrate(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationNarrative)
	defer func() { timer.done(c, err) }()

	var req dto.NarrativeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	text := h.narrator.Narrate(c.Request().Context(), req.Metrics.ToMetrics())
	return c.JSON(http.StatusOK, dto.NarrativeResponse{Narrative: text.Text, Source: text.Source})
}

// ExplainUntouchable explains a chosen untouchable percentage
// @Summary Explain untouchable percentage
// @Tags Narrative
// @Accept json
// @Produce json
// @Param request body dto.ExplainUntouchableRequest true "Forecast summary"
// @Success 200 {object} dto.ExplanationResponse
// @Router /ai/explain/untouchable [post]
func (h *NarrativeHandler) ExplainUntouchable(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationExplainUntouchable)
	defer func() { timer.done(c, err) }()

	var req dto.ExplainUntouchableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	text := h.narrator.ExplainUntouchable(c.Request().Context(), req.ToParams())
	return c.JSON(http.StatusOK, explanation(text))
}

// ExplainCredit explains a credit repayment comparison
// @Summary Explain credit repayment
// @Tags Narrative
// @Accept json
// @Produce json
// @Param request body dto.ExplainCreditRequest true "Repayment summary"
// @Success 200 {object} dto.ExplanationResponse
// @Router /ai/explain/credit [post]
func (h *NarrativeHandler) ExplainCredit(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationExplainCredit)
	defer func() { timer.done(c, err) }()

	var req dto.ExplainCreditRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	text := h.narrator.ExplainCredit(c.Request().Context(), req.ToParams())
	return c.JSON(http.StatusOK, explanation(text))
}

// CollaboratorHealth probes the text-completion collaborator. Always 200; the body
// carries the outcome.
// @Summary Collaborator health probe
// @Tags Narrative
// @Produce json
// @Success 200 {object} models.CollaboratorHealth
// @Router /ai/llm/health [get]
func (h *NarrativeHandler) CollaboratorHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, h.narrator.HealthCheck(c.Request().Context()))
}

// RecentCalls lists audit records of recent collaborator calls, newest first
// @Summary Recent collaborator calls
// @Tags Narrative
// @Produce json
// @Param operation query string false "Filter by operation"
// @Param outcome query string false "Filter by outcome (ok, fallback, skipped)"
// @Param limit query int false "Maximum records (default 50, max 200)"
// @Success 200 {object} dto.CollaboratorCallsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid limit"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Audit store unavailable"
// @Router /ai/llm/calls [get]
func (h *NarrativeHandler) RecentCalls(c echo.Context) error {
	var filters dto.CollaboratorCallFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	limit := services.DefaultRecentCallsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("limit must be an integer"))
		}
		limit = parsed
	}

	if filters.Outcome != "" && !models.IsValidCallOutcome(filters.Outcome) {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("outcome must be one of ok, fallback, skipped"))
	}

	calls, total, err := h.narrator.RecentCalls(c.Request().Context(), filters, limit)
	if err != nil {
		slog.Error("Failed to list collaborator calls",
			"trace_id", getTraceID(c),
			"error", err,
		)
		return SendDatabaseError(c)
	}

	return c.JSON(http.StatusOK, dto.CollaboratorCallsResponse{
		Calls: calls,
		Total: total,
		Limit: services.ClampRecentCallsLimit(limit),
	})
}

func explanation(text models.GeneratedText) dto.ExplanationResponse {
	return dto.ExplanationResponse{Explanation: text.Text, Source: text.Source}
}
