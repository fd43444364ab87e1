package models

// CashflowParams is the savings policy projected month by month
type CashflowParams struct {
	MonthlyIncome        float64
	MonthlyBaselineSpend float64
	UntouchablePct       float64
	StartingSavings      float64
	Months               int
}

type CashflowMonth struct {
	MonthIndex       int     `json:"month_index"`
	ProjectedSavings float64 `json:"projected_savings"`
	Spendable        float64 `json:"spendable"`
	NetAfterBaseline float64 `json:"net_after_baseline"`
}

type CashflowForecast struct {
	Series       []CashflowMonth `json:"series"`
	SuggestedPct float64         `json:"suggested_pct"`
	TargetBuffer float64         `json:"target_buffer"`
}

// FirstMonthSavings returns the projected savings after the first month
func (f *CashflowForecast) FirstMonthSavings() float64 {
	if f == nil || len(f.Series) == 0 {
		return 0
	}
	return f.Series[0].ProjectedSavings
}

// CreditParams describes one credit card balance and its repayment policy
type CreditParams struct {
	Balance      float64
	APRAnnual    float64
	MinPayment   float64
	ExtraPayment float64
	CreditLimit  float64
}

type PayoffRow struct {
	Month    int     `json:"month"`
	Balance  float64 `json:"balance"`
	Interest float64 `json:"interest"`
	Payment  float64 `json:"payment"`
}

// PayoffSchedule is one amortization run. Months and TotalInterest are nil when the
// payment never reduces the balance; they marshal as JSON null.
type PayoffSchedule struct {
	Months        *int        `json:"months"`
	TotalInterest *float64    `json:"total_interest"`
	Schedule      []PayoffRow `json:"schedule"`
	Note          string      `json:"note,omitempty"`
}

// IsStuck reports whether the run ended without a payoff horizon
func (p *PayoffSchedule) IsStuck() bool {
	return p.Months == nil
}

type CreditPayoffSimulation struct {
	MinOnly      PayoffSchedule `json:"min_only"`
	MinPlusExtra PayoffSchedule `json:"min_plus_extra"`
}

// UtilizationGuardrails carries utilization as a percentage with one decimal
type UtilizationGuardrails struct {
	Utilization float64  `json:"utilization"`
	Alerts      []string `json:"alerts"`
}

type CreditRepaymentPlan struct {
	Simulation CreditPayoffSimulation `json:"simulation"`
	Guardrails UtilizationGuardrails  `json:"guardrails"`
}
