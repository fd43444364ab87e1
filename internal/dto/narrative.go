package dto

import "financial-coach/internal/models"

type NarrativeRequest struct {
	Metrics *NarrativeMetricsInput `json:"metrics" validate:"required"`
}

// NarrativeMetricsInput accepts the recognized metric keys; unknown keys are ignored
type NarrativeMetricsInput struct {
	TopSpikeCategory   *string              `json:"top_spike_category" validate:"omitempty,max=100"`
	UntouchablePct     *float64             `json:"untouchable_pct" validate:"omitempty,finite"`
	CreditUtilization  *models.MetricNumber `json:"credit_utilization"`
	SubscriptionsCount *int                 `json:"subscriptions_count" validate:"omitempty,gte=0"`
}

func (m *NarrativeMetricsInput) ToMetrics() models.NarrativeMetrics {
	if m == nil {
		return models.NarrativeMetrics{}
	}
	return models.NarrativeMetrics{
		TopSpikeCategory:   m.TopSpikeCategory,
		UntouchablePct:     m.UntouchablePct,
		CreditUtilization:  m.CreditUtilization,
		SubscriptionsCount: m.SubscriptionsCount,
	}
}

type NarrativeResponse struct {
	Narrative string `json:"narrative"`
	Source    string `json:"source"`
}

type ExplainUntouchableRequest struct {
	MonthlyIncome    *float64 `json:"monthly_income" validate:"required,finite"`
	BaselineSpend    *float64 `json:"baseline_spend" validate:"required,finite"`
	ChosenPct        *float64 `json:"chosen_pct" validate:"required,finite"`
	SuggestedPct     *float64 `json:"suggested_pct" validate:"required,finite"`
	FirstMonthBuffer *float64 `json:"first_month_buffer" validate:"required,finite"`
}

func (r *ExplainUntouchableRequest) ToParams() models.ExplainUntouchableParams {
	return models.ExplainUntouchableParams{
		MonthlyIncome:    derefFloat(r.MonthlyIncome),
		BaselineSpend:    derefFloat(r.BaselineSpend),
		ChosenPct:        derefFloat(r.ChosenPct),
		SuggestedPct:     derefFloat(r.SuggestedPct),
		FirstMonthBuffer: derefFloat(r.FirstMonthBuffer),
	}
}

type ExplainCreditRequest struct {
	Balance      *float64 `json:"balance" validate:"required,finite"`
	APRAnnual    *float64 `json:"apr_annual" validate:"required,finite"`
	MinMonths    *int     `json:"min_months" validate:"omitempty,gte=0"`
	MinInterest  *float64 `json:"min_interest" validate:"omitempty,finite"`
	PlusMonths   *int     `json:"plus_months" validate:"omitempty,gte=0"`
	PlusInterest *float64 `json:"plus_interest" validate:"omitempty,finite"`
	Utilization  *float64 `json:"utilization" validate:"required,finite"`
}

func (r *ExplainCreditRequest) ToParams() models.ExplainCreditParams {
	return models.ExplainCreditParams{
		Balance:      derefFloat(r.Balance),
		APRAnnual:    derefFloat(r.APRAnnual),
		MinMonths:    r.MinMonths,
		MinInterest:  r.MinInterest,
		PlusMonths:   r.PlusMonths,
		PlusInterest: r.PlusInterest,
		Utilization:  derefFloat(r.Utilization),
	}
}

type ExplanationResponse struct {
	Explanation string `json:"explanation"`
	Source      string `json:"source"`
}

// CollaboratorCallFilters narrows the diagnostic call listing
type CollaboratorCallFilters struct {
	Operation string `query:"operation"`
	Outcome   string `query:"outcome"`
}

type CollaboratorCallsResponse struct {
	Calls []*models.CollaboratorCall `json:"calls"`
	Total int64                      `json:"total"`
	Limit int                        `json:"limit"`
}
