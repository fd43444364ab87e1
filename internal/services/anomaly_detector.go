package services

import (
	"sort"

	"financial-coach/internal/models"
)

const (
	spikeZScoreThreshold = 1.2
	minHistoryMonths     = 2
	maxSpikes            = 5
)

// DetectSpikes flags categories whose latest month is more than 1.2 standard
// deviations from their own history. Categories with fewer than two prior months or
// with zero variance are skipped.
func (s *spendAnalysisService) DetectSpikes(txns *models.NormalizedTransactions) []models.AnomalySpike {
	spikes := make([]models.AnomalySpike, 0)
	if txns.IsEmpty() {
		return spikes
	}

	agg := buildMonthlyCategoryAggregate(txns.Spend)
	latestMonth := agg.LatestMonthLabel()

	for _, category := range agg.Categories() {
		history := agg.History(category)
		if len(history) < minHistoryMonths {
			continue
		}

		mu := mean(history)
		sigma := populationStdDev(history)
		if sigma == 0 {
			continue
		}

		latest := agg.LatestTotal(category)
		z := (latest - mu) / sigma
		if abs(z) <= spikeZScoreThreshold {
			continue
		}

		spikes = append(spikes, models.AnomalySpike{
			Category:    category,
			LatestMonth: latestMonth,
			ZScore:      round(z, 2),
			AvgPrior:    round(mu, 2),
			LatestTotal: round(latest, 2),
		})
	}

	sort.SliceStable(spikes, func(i, j int) bool {
		return abs(spikes[i].ZScore) > abs(spikes[j].ZScore)
	})

	if len(spikes) > maxSpikes {
		spikes = spikes[:maxSpikes]
	}
	return spikes
}
