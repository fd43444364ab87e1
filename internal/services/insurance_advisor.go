package services

import (
	"fmt"

	"financial-coach/internal/models"
)

const maxInsuranceSuggestions = 3

type insuranceRule struct {
	applies func(p models.InsuranceProfile) bool
	build   func(p models.InsuranceProfile) models.InsuranceSuggestion
}

// insuranceRules are evaluated in declaration order; there is no other priority
var insuranceRules = []insuranceRule{
	{
		applies: func(p models.InsuranceProfile) bool {
			return p.MonthlyRent >= 800 && p.AssetsValue >= 3000
		},
		build: func(p models.InsuranceProfile) models.InsuranceSuggestion {
			return models.InsuranceSuggestion{
				Type:            models.InsuranceTypeRenters,
				EstCostPerMonth: costOf(15),
				Why:             fmt.Sprintf("Protect ~$%d of belongings; common claims cost >$1,000.", int64(p.AssetsValue)),
			}
		},
	},
	{
		applies: func(p models.InsuranceProfile) bool {
			return p.InternationalTripsPerYear >= 1
		},
		build: func(models.InsuranceProfile) models.InsuranceSuggestion {
			return models.InsuranceSuggestion{
				Type:           models.InsuranceTypeTravelMedical,
				EstCostPerTrip: costOf(30),
				Why:            "International trips can have out-of-network care. Short-term coverage prevents large expenses.",
			}
		},
	},
	{
		applies: func(p models.InsuranceProfile) bool {
			return p.DrivesAndHasAutoLoan
		},
		build: func(models.InsuranceProfile) models.InsuranceSuggestion {
			return models.InsuranceSuggestion{
				Type:            models.InsuranceTypeAutoGap,
				EstCostPerMonth: costOf(8),
				Why:             "If car is totaled early in loan, gap covers difference between value and remaining loan.",
			}
		},
	},
	{
		applies: func(p models.InsuranceProfile) bool {
			return p.DoctorVisitsLastYear >= 3 && p.Dependents >= 1
		},
		build: func(models.InsuranceProfile) models.InsuranceSuggestion {
			return models.InsuranceSuggestion{
				Type:            models.InsuranceTypeHealthAddon,
				EstCostPerMonth: costOf(20),
				Why:             "Frequent visits + dependents → consider lower co-pay/urgent care add-ons.",
			}
		},
	},
}

type insuranceAdvisor struct {
	rules []insuranceRule
}

func NewInsuranceAdvisor() InsuranceAdvisorInterface {
	return &insuranceAdvisor{rules: insuranceRules}
}

// Suggest returns the first three matching rules
func (a *insuranceAdvisor) Suggest(profile models.InsuranceProfile) []models.InsuranceSuggestion {
	suggestions := make([]models.InsuranceSuggestion, 0, maxInsuranceSuggestions)
	for _, rule := range a.rules {
		if len(suggestions) == maxInsuranceSuggestions {
			break
		}
		if rule.applies(profile) {
			suggestions = append(suggestions, rule.build(profile))
		}
	}
	return suggestions
}

func costOf(amount float64) *float64 {
	return &amount
}
