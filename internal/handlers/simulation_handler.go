package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"financial-coach/internal/dto"
	"financial-coach/internal/errors"
	"financial-coach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	OperationUntouchableForecast = "untouchable_forecast"
	OperationCreditRepayment     = "credit_repayment"
	OperationInsuranceNudge      = "insurance_nudge"
)

// SimulationHandler serves the savings, credit and insurance planners
type SimulationHandler struct {
	cashflow  services.CashflowSimulatorInterface
	credit    services.CreditSimulatorInterface
	insurance services.InsuranceAdvisorInterface
	metrics   services.MetricsRecorderInterface
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(
	cashflow services.CashflowSimulatorInterface,
	credit services.CreditSimulatorInterface,
	insurance services.InsuranceAdvisorInterface,
	metrics services.MetricsRecorderInterface,
) *SimulationHandler {
	return &SimulationHandler{
		cashflow:  cashflow,
		credit:    credit,
		insurance: insurance,
		metrics:   metrics,
	}
}

// ForecastUntouchable projects savings under an untouchable percentage
// @Summary Untouchable savings forecast
// @Tags Simulation
// @Accept json
// @Produce json
// @Param request body dto.CashflowForecastRequest true "Savings policy"
// @Success 200 {object} models.CashflowForecast
// @Failure 422 {object} errors.ErrorResponse "SIMULATION_001 - Horizon out of range"
// @Router /ai/untouchable/forecast [post]
func (h *SimulationHandler) ForecastUntouchable(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationUntouchableForecast)
	defer func() { timer.done(c, err) }()

	var req dto.CashflowForecastRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	forecast, err := h.cashflow.Simulate(req.ToParams())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidHorizon):
			return SendError(c, errors.SimulationInvalidHorizon, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidCashflowInput):
			return SendError(c, errors.SimulationInvalidInput, errors.WithDetails(err.Error()))
		default:
			slog.Error("Cash-flow forecast failed", "trace_id", getTraceID(c), "error", err)
			return SendSystemError(c)
		}
	}

	return c.JSON(http.StatusOK, forecast)
}

// CreditRepayment compares minimum-only and minimum-plus-extra payoff schedules
// @Summary Credit repayment plan
// @Tags Simulation
// @Accept json
// @Produce json
// @Param request body dto.CreditRepaymentRequest true "Credit balance"
// @Success 200 {object} models.CreditRepaymentPlan
// @Failure 422 {object} errors.ErrorResponse "SIMULATION_002 - Invalid credit input"
// @Router /ai/credit/repayment [post]
func (h *SimulationHandler) CreditRepayment(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationCreditRepayment)
	defer func() { timer.done(c, err) }()

	var req dto.CreditRepaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	plan, err := h.credit.Plan(req.ToParams())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCreditInput) {
			return SendError(c, errors.SimulationInvalidInput, errors.WithDetails(err.Error()))
		}
		slog.Error("Credit repayment plan failed", "trace_id", getTraceID(c), "error", err)
		return SendSystemError(c)
	}

	return c.JSON(http.StatusOK, plan)
}

// InsuranceNudge suggests coverage from a household profile
// @Summary Insurance suggestions
// @Tags Simulation
// @Accept json
// @Produce json
// @Param request body dto.InsuranceProfileRequest true "Household profile"
// @Success 200 {object} dto.InsuranceNudgeResponse
// @Router /ai/insurance/nudge [post]
func (h *SimulationHandler) InsuranceNudge(c echo.Context) (err error) {
	timer := startOperation(h.metrics, OperationInsuranceNudge)
	defer func() { timer.done(c, err) }()

	var req dto.InsuranceProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.InsuranceNudgeResponse{
		Suggestions: h.insurance.Suggest(req.ToProfile()),
	})
}
