package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"financial-coach/internal/dto"
	"financial-coach/internal/errors"
	"financial-coach/internal/models"
	"financial-coach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	OperationSpendInsights       = "spend_insights"
	OperationSpendMovers         = "spend_movers"
	OperationSpendOverview       = "spend_overview"
	OperationSubscriptionsDetect = "subscriptions_detect"
)

// AnalyticsHandler serves the spend analysis endpoints. Every request carries the
// full transaction history; nothing is stored between calls.
type AnalyticsHandler struct {
	normalizer services.TransactionNormalizerInterface
	analysis   services.SpendAnalysisServiceInterface
	metrics    services.MetricsRecorderInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	normalizer services.TransactionNormalizerInterface,
	analysis services.SpendAnalysisServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		normalizer: normalizer,
		analysis:   analysis,
		metrics:    metrics,
	}
}

// readTransactions binds, validates and normalizes the shared transactions body
func (h *AnalyticsHandler) readTransactions(c echo.Context) (*models.NormalizedTransactions, error) {
	var req dto.TransactionsRequest
	if err := c.Bind(&req); err != nil {
		return nil, newRequestError(errors.ValidationGeneral, "Invalid request body")
	}

	if len(req.Transactions) > dto.MaxTransactionsPerRequest {
		return nil, newRequestError(errors.TransactionTooMany,
			fmt.Sprintf("at most %d transactions are accepted per request, got %d", dto.MaxTransactionsPerRequest, len(req.Transactions)))
	}

	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	normalized, err := h.normalizer.Normalize(req.Transactions)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidAccountType) {
			return nil, newRequestError(errors.TransactionInvalidAccountType, err.Error())
		}
		return nil, newRequestError(errors.TransactionInvalidRecord, err.Error())
	}

	h.metrics.RecordGauge(services.MetricTransactionsAnalyzed, float64(len(normalized.All)), nil)
	return normalized, nil
}

// DetectSpikes returns categories whose latest month is a statistical outlier
// @Summary Category spending spikes
// @Tags Spend
// @Accept json
// @Produce json
// @Param request body dto.TransactionsRequest true "Transaction history"
// @Success 200 {object} dto.SpikesResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* or TRANSACTION_* - Invalid transactions"
// @Failure 413 {object} errors.ErrorResponse "TRANSACTION_003 - Too many transactions"
// @Router /ai/spend/insights [post]
func (h *AnalyticsHandler) DetectSpikes(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationSpendInsights)
	defer func() { timer.done(c, err) }()

	txns, err := h.readTransactions(c)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SpikesResponse{Spikes: h.analysis.DetectSpikes(txns)})
}

// RankMovers returns the categories that moved most against their history
// @Summary Category movers
// @Tags Spend
// @Accept json
// @Produce json
// @Param request body dto.TransactionsRequest true "Transaction history"
// @Success 200 {object} dto.MoversResponse
// @Router /ai/spend/movers [post]
func (h *AnalyticsHandler) RankMovers(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationSpendMovers)
	defer func() { timer.done(c, err) }()

	txns, err := h.readTransactions(c)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MoversResponse{Movers: h.analysis.RankMovers(txns)})
}

// DetectSubscriptions returns recurring charge groups
// @Summary Recurring charges
// @Tags Spend
// @Accept json
// @Produce json
// @Param request body dto.TransactionsRequest true "Transaction history"
// @Success 200 {object} dto.SubscriptionsResponse
// @Router /ai/subscriptions/detect [post]
func (h *AnalyticsHandler) DetectSubscriptions(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationSubscriptionsDetect)
	defer func() { timer.done(c, err) }()

	txns, err := h.readTransactions(c)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SubscriptionsResponse{Subscriptions: h.analysis.DetectRecurring(txns)})
}

// Overview runs all spend detectors over one history
// @Summary Spend overview
// @Tags Spend
// @Accept json
// @Produce json
// @Param request body dto.TransactionsRequest true "Transaction history"
// @Success 200 {object} models.SpendOverview
// @Router /ai/spend/overview [post]
func (h *AnalyticsHandler) Overview(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationSpendOverview)
	defer func() { timer.done(c, err) }()

	txns, err := h.readTransactions(c)
	if err != nil {
		return respondError(c, err)
	}

	overview, err := h.analysis.Overview(c.Request().Context(), txns)
	if err != nil {
		slog.Error("Spend overview failed",
			"trace_id", getTraceID(c),
			"error", err,
		)
		return SendSystemError(c)
	}

	return c.JSON(http.StatusOK, overview)
}
