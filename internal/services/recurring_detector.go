package services

import (
	"sort"
	"strings"
	"time"

	"financial-coach/internal/models"
)

const (
	recurringMinCadenceDays = 20.0
	recurringMaxCadenceDays = 40.0
	probableCadenceDays     = 30.0
	maxRecurringGroups      = 6
	day                     = 24 * time.Hour
)

// knownSubscriptionBrands are lower-case fragments matched against a merchant name
var knownSubscriptionBrands = []string{
	"spotify",
	"netflix",
	"hulu",
	"disney",
	"apple",
	"gym",
	"nytimes",
	"washington post",
	"amazon prime",
	"prime video",
}

// DetectRecurring finds merchants charged on a 20-40 day cadence, plus single charges
// at known subscription brands. Probable groups sort first, then larger amounts.
func (s *spendAnalysisService) DetectRecurring(txns *models.NormalizedTransactions) []models.RecurringChargeGroup {
	groups := make([]models.RecurringChargeGroup, 0)
	if txns.IsEmpty() {
		return groups
	}

	byMerchant := make(map[string][]models.Transaction)
	for _, txn := range txns.Spend {
		byMerchant[txn.Merchant] = append(byMerchant[txn.Merchant], txn)
	}

	for merchant, charges := range byMerchant {
		if group, ok := confirmedRecurringGroup(merchant, charges); ok {
			groups = append(groups, group)
			continue
		}
		if len(charges) == 1 && isKnownSubscriptionBrand(merchant) {
			groups = append(groups, models.RecurringChargeGroup{
				Merchant:       merchant,
				AvgAmount:      round(charges[0].Amount, 2),
				AvgCadenceDays: probableCadenceDays,
				VarianceDays:   0.0,
				Count:          1,
				Probable:       true,
			})
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Probable != b.Probable {
			return a.Probable
		}
		magA, magB := abs(a.AvgAmount), abs(b.AvgAmount)
		if magA != magB {
			return magA > magB
		}
		return a.Merchant < b.Merchant
	})

	if len(groups) > maxRecurringGroups {
		groups = groups[:maxRecurringGroups]
	}
	return groups
}

func confirmedRecurringGroup(merchant string, charges []models.Transaction) (models.RecurringChargeGroup, bool) {
	if len(charges) < 2 {
		return models.RecurringChargeGroup{}, false
	}

	sorted := make([]models.Transaction, len(charges))
	copy(sorted, charges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant().Before(sorted[j].Instant())
	})

	gaps := make([]float64, 0, len(sorted)-1)
	amounts := make([]float64, 0, len(sorted))
	amounts = append(amounts, sorted[0].Amount)
	for i := 1; i < len(sorted); i++ {
		// whole days elapsed, so 10:00 to 09:00 thirty dates later is 29
		days := sorted[i].Instant().Sub(sorted[i-1].Instant()) / day
		gaps = append(gaps, float64(days))
		amounts = append(amounts, sorted[i].Amount)
	}

	meanGap := mean(gaps)
	if meanGap < recurringMinCadenceDays || meanGap > recurringMaxCadenceDays {
		return models.RecurringChargeGroup{}, false
	}

	return models.RecurringChargeGroup{
		Merchant:       merchant,
		AvgAmount:      round(mean(amounts), 2),
		AvgCadenceDays: round(meanGap, 1),
		VarianceDays:   round(populationStdDev(gaps), 1),
		Count:          len(sorted),
		Probable:       false,
	}, true
}

func isKnownSubscriptionBrand(merchant string) bool {
	lower := strings.ToLower(merchant)
	for _, brand := range knownSubscriptionBrands {
		if strings.Contains(lower, brand) {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
