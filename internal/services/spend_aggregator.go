package services

import (
	"sort"
	"time"

	"financial-coach/internal/models"
)

// buildMonthlyCategoryAggregate sums spend per (month, category). Amounts are added in
// input order.
func buildMonthlyCategoryAggregate(spend []models.Transaction) *models.MonthlyCategoryAggregate {
	type monthCategory struct {
		month    time.Time
		category string
	}

	totals := make(map[monthCategory]float64)
	keys := make([]monthCategory, 0)
	var latest time.Time

	for i := range spend {
		txn := &spend[i]
		if !txn.IsSpend() {
			continue
		}
		key := monthCategory{month: txn.Month(), category: txn.Category}
		if _, seen := totals[key]; !seen {
			keys = append(keys, key)
		}
		totals[key] += txn.Amount
		if key.month.After(latest) {
			latest = key.month
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].month.Before(keys[j].month)
	})

	rows := make([]models.MonthlyCategoryTotal, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, models.MonthlyCategoryTotal{Month: key.month, Category: key.category, Total: totals[key]})
	}

	return &models.MonthlyCategoryAggregate{Rows: rows, LatestMonth: latest}
}
