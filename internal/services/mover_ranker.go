package services

import (
	"sort"

	"financial-coach/internal/models"
)

const maxMovers = 5

// RankMovers reports each category's latest total against its historical mean. A
// category with no history is measured against zero.
func (s *spendAnalysisService) RankMovers(txns *models.NormalizedTransactions) []models.CategoryMover {
	movers := make([]models.CategoryMover, 0)
	if txns.IsEmpty() {
		return movers
	}

	agg := buildMonthlyCategoryAggregate(txns.Spend)
	latestMonth := agg.LatestMonthLabel()

	for _, category := range agg.Categories() {
		history := agg.History(category)
		latest := agg.LatestTotal(category)

		mover := models.CategoryMover{
			Category:    category,
			LatestMonth: latestMonth,
			Delta:       round(latest, 2),
			AvgPrior:    0.0,
			LatestTotal: round(latest, 2),
		}
		if len(history) > 0 {
			mu := mean(history)
			mover.Delta = round(latest-mu, 2)
			mover.AvgPrior = round(mu, 2)
		}
		movers = append(movers, mover)
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return abs(movers[i].Delta) > abs(movers[j].Delta)
	})

	if len(movers) > maxMovers {
		movers = movers[:maxMovers]
	}
	return movers
}
