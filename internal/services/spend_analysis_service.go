package services

import (
	"context"

	"financial-coach/internal/models"

	"golang.org/x/sync/errgroup"
)

type spendAnalysisService struct{}

// NewSpendAnalysisService returns a stateless detector set; it is safe for concurrent use
func NewSpendAnalysisService() SpendAnalysisServiceInterface {
	return &spendAnalysisService{}
}

// Overview runs the detectors concurrently. Each one reads the same normalized input
// and writes only its own result.
func (s *spendAnalysisService) Overview(ctx context.Context, txns *models.NormalizedTransactions) (*models.SpendOverview, error) {
	overview := &models.SpendOverview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		overview.Subscriptions = s.DetectRecurring(txns)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		overview.Spikes = s.DetectSpikes(txns)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		overview.Movers = s.RankMovers(txns)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
