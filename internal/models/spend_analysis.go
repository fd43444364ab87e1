package models

import (
	"sort"
	"time"
)

// MonthlyCategoryTotal is the summed spend of one category within one month
type MonthlyCategoryTotal struct {
	Month    time.Time `json:"month"`
	Category string    `json:"category"`
	Total    float64   `json:"total"`
}

// MonthlyCategoryAggregate holds exactly one row per (month, category) pair seen in the
// spend view. Rows are ordered by category, then month.
type MonthlyCategoryAggregate struct {
	Rows        []MonthlyCategoryTotal
	LatestMonth time.Time
}

func (a *MonthlyCategoryAggregate) IsEmpty() bool {
	return a == nil || len(a.Rows) == 0
}

// Categories returns the distinct categories in ascending order
func (a *MonthlyCategoryAggregate) Categories() []string {
	if a.IsEmpty() {
		return nil
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, row := range a.Rows {
		if !seen[row.Category] {
			seen[row.Category] = true
			categories = append(categories, row.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// LatestTotal returns the category's total for the latest month, 0 when the category
// had no spend that month.
func (a *MonthlyCategoryAggregate) LatestTotal(category string) float64 {
	if a.IsEmpty() {
		return 0
	}

	var total float64
	for _, row := range a.Rows {
		if row.Category == category && row.Month.Equal(a.LatestMonth) {
			total += row.Total
		}
	}
	return total
}

// History returns the category's monthly totals strictly before the latest month,
// oldest first.
func (a *MonthlyCategoryAggregate) History(category string) []float64 {
	if a.IsEmpty() {
		return nil
	}

	history := make([]float64, 0)
	for _, row := range a.Rows {
		if row.Category == category && row.Month.Before(a.LatestMonth) {
			history = append(history, row.Total)
		}
	}
	return history
}

// LatestMonthLabel formats the latest month as YYYY-MM-DD
func (a *MonthlyCategoryAggregate) LatestMonthLabel() string {
	if a.IsEmpty() {
		return ""
	}
	return a.LatestMonth.Format(DateLayout)
}

// DateLayout is the calendar date format used on the wire
const DateLayout = "2006-01-02"

// RecurringChargeGroup is a merchant that charges on a roughly monthly cadence.
// Probable groups are inferred from a single charge at a known subscription brand.
type RecurringChargeGroup struct {
	Merchant       string  `json:"merchant"`
	AvgAmount      float64 `json:"avg_amount"`
	AvgCadenceDays float64 `json:"avg_cadence_days"`
	VarianceDays   float64 `json:"variance_days"`
	Count          int     `json:"count"`
	Probable       bool    `json:"probable"`
}

// AnomalySpike is a category whose latest month deviates from its history
type AnomalySpike struct {
	Category    string  `json:"category"`
	LatestMonth string  `json:"latest_month"`
	ZScore      float64 `json:"zscore"`
	AvgPrior    float64 `json:"avg_prior"`
	LatestTotal float64 `json:"latest_total"`
}

// CategoryMover reports the signed change of a category's latest month against its
// historical average.
type CategoryMover struct {
	Category    string  `json:"category"`
	LatestMonth string  `json:"latest_month"`
	Delta       float64 `json:"delta"`
	AvgPrior    float64 `json:"avg_prior"`
	LatestTotal float64 `json:"latest_total"`
}

// SpendOverview bundles the three detector outputs for one transaction set
type SpendOverview struct {
	Subscriptions []RecurringChargeGroup `json:"subscriptions"`
	Spikes        []AnomalySpike         `json:"spikes"`
	Movers        []CategoryMover        `json:"movers"`
}
