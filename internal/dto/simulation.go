package dto

import "financial-coach/internal/models"

const (
	DefaultForecastMonths = 6
	DefaultCreditLimit    = 1000.0
)

// CashflowForecastRequest describes a savings policy. Months defaults to 6.
type CashflowForecastRequest struct {
	MonthlyIncome        *float64 `json:"monthly_income" validate:"required,finite"`
	MonthlyBaselineSpend *float64 `json:"monthly_baseline_spend" validate:"required,finite"`
	UntouchablePct       *float64 `json:"untouchable_pct" validate:"required,finite"`
	StartingSavings      float64  `json:"starting_savings" validate:"finite"`
	Months               *int     `json:"months"`
}

// ToParams applies defaults and converts the request to simulator input
func (r *CashflowForecastRequest) ToParams() models.CashflowParams {
	months := DefaultForecastMonths
	if r.Months != nil {
		months = *r.Months
	}

	return models.CashflowParams{
		MonthlyIncome:        derefFloat(r.MonthlyIncome),
		MonthlyBaselineSpend: derefFloat(r.MonthlyBaselineSpend),
		UntouchablePct:       derefFloat(r.UntouchablePct),
		StartingSavings:      r.StartingSavings,
		Months:               months,
	}
}

// CreditRepaymentRequest describes a credit card balance. CreditLimit defaults to 1000;
// an explicit 0 is kept and read as fully utilized.
type CreditRepaymentRequest struct {
	Balance      *float64 `json:"balance" validate:"required,finite"`
	APRAnnual    *float64 `json:"apr_annual" validate:"required,finite"`
	MinPayment   *float64 `json:"min_payment" validate:"required,finite"`
	ExtraPayment float64  `json:"extra_payment" validate:"finite"`
	CreditLimit  *float64 `json:"credit_limit" validate:"omitempty,finite"`
}

func (r *CreditRepaymentRequest) ToParams() models.CreditParams {
	limit := DefaultCreditLimit
	if r.CreditLimit != nil {
		limit = *r.CreditLimit
	}

	return models.CreditParams{
		Balance:      derefFloat(r.Balance),
		APRAnnual:    derefFloat(r.APRAnnual),
		MinPayment:   derefFloat(r.MinPayment),
		ExtraPayment: r.ExtraPayment,
		CreditLimit:  limit,
	}
}

type InsuranceProfileRequest struct {
	MonthlyRent               float64 `json:"monthly_rent" validate:"finite,gte=0"`
	AssetsValue               float64 `json:"assets_value" validate:"finite,gte=0"`
	InternationalTripsPerYear int     `json:"international_trips_per_year" validate:"gte=0"`
	DrivesAndHasAutoLoan      bool    `json:"drives_and_has_auto_loan"`
	Dependents                int     `json:"dependents" validate:"gte=0"`
	DoctorVisitsLastYear      int     `json:"doctor_visits_last_year" validate:"gte=0"`
}

func (r *InsuranceProfileRequest) ToProfile() models.InsuranceProfile {
	return models.InsuranceProfile{
		MonthlyRent:               r.MonthlyRent,
		AssetsValue:               r.AssetsValue,
		InternationalTripsPerYear: r.InternationalTripsPerYear,
		DrivesAndHasAutoLoan:      r.DrivesAndHasAutoLoan,
		Dependents:                r.Dependents,
		DoctorVisitsLastYear:      r.DoctorVisitsLastYear,
	}
}

type InsuranceNudgeResponse struct {
	Suggestions []models.InsuranceSuggestion `json:"suggestions"`
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
