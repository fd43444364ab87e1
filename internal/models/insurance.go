package models

const (
	InsuranceTypeRenters       = "renters"
	InsuranceTypeTravelMedical = "travel_medical"
	InsuranceTypeAutoGap       = "auto/gap"
	InsuranceTypeHealthAddon   = "health_addon"
)

type InsuranceProfile struct {
	MonthlyRent               float64
	AssetsValue               float64
	InternationalTripsPerYear int
	DrivesAndHasAutoLoan      bool
	Dependents                int
	DoctorVisitsLastYear      int
}

// InsuranceSuggestion carries exactly one of the two cost estimates
type InsuranceSuggestion struct {
	Type            string   `json:"type"`
	EstCostPerMonth *float64 `json:"est_cost_per_month,omitempty"`
	EstCostPerTrip  *float64 `json:"est_cost_per_trip,omitempty"`
	Why             string   `json:"why"`
}
