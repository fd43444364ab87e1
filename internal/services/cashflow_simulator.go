package services

import (
	"errors"
	"fmt"
	"math"

	"financial-coach/internal/models"
)

const (
	MinCashflowMonths = 1
	MaxCashflowMonths = 600

	bufferWeeksFactor = 1.2
	weeksPerMonth     = 4.0
	pctAdjustmentStep = 0.05
	minSuggestedPct   = 0.05
	maxSuggestedPct   = 0.5

	// removes float noise left by the 0.05 step, e.g. 0.2-0.05 = 0.15000000000000002
	suggestedPctNoisePlaces = 10
)

var (
	ErrInvalidHorizon       = errors.New("forecast horizon out of range")
	ErrInvalidCashflowInput = errors.New("cash-flow inputs must be finite numbers")
)

type cashflowSimulator struct{}

func NewCashflowSimulator() CashflowSimulatorInterface {
	return &cashflowSimulator{}
}

// Simulate projects savings month by month. Each month depends only on the previous
// month's running total and the fixed policy.
func (s *cashflowSimulator) Simulate(params models.CashflowParams) (*models.CashflowForecast, error) {
	if params.Months < MinCashflowMonths || params.Months > MaxCashflowMonths {
		return nil, fmt.Errorf("%w: months must be between %d and %d, got %d",
			ErrInvalidHorizon, MinCashflowMonths, MaxCashflowMonths, params.Months)
	}
	if !isFinite(params.MonthlyIncome, params.MonthlyBaselineSpend, params.UntouchablePct, params.StartingSavings) {
		return nil, ErrInvalidCashflowInput
	}

	savings := params.StartingSavings
	series := make([]models.CashflowMonth, 0, params.Months)

	for m := 1; m <= params.Months; m++ {
		toSave := params.MonthlyIncome * params.UntouchablePct
		spendable := params.MonthlyIncome - toSave
		net := spendable - params.MonthlyBaselineSpend
		// Surplus accrues and shortfall draws down savings. The two terms always sum
		// to net; a capped draw was never applied.
		savings += toSave + math.Max(net, 0) + math.Min(net, 0)

		series = append(series, models.CashflowMonth{
			MonthIndex:       m,
			ProjectedSavings: round(savings, 2),
			Spendable:        round(spendable, 2),
			NetAfterBaseline: round(net, 2),
		})
	}

	targetBuffer := bufferWeeksFactor * (params.MonthlyBaselineSpend / weeksPerMonth)
	forecast := &models.CashflowForecast{
		Series:       series,
		SuggestedPct: suggestUntouchablePct(series[0].ProjectedSavings, targetBuffer, params.UntouchablePct),
		TargetBuffer: round(targetBuffer, 2),
	}

	return forecast, nil
}

// suggestUntouchablePct compares the rounded first-month savings with the buffer and
// moves the rate by exactly one step. An unchanged rate is returned exactly as given.
func suggestUntouchablePct(firstMonthSavings, targetBuffer, pct float64) float64 {
	switch {
	case firstMonthSavings < targetBuffer:
		return round(math.Max(minSuggestedPct, pct-pctAdjustmentStep), suggestedPctNoisePlaces)
	case firstMonthSavings > 2*targetBuffer:
		return round(math.Min(maxSuggestedPct, pct+pctAdjustmentStep), suggestedPctNoisePlaces)
	default:
		return pct
	}
}
