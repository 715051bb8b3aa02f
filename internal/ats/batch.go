package ats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/types"
)

// ScorePair names one resume/job combination for batch scoring.
type ScorePair struct {
	Resume *types.ResumeContent
	Job    *types.JobRequirements
}

// CalculateBatch scores every pair concurrently, bounded by limit workers
// (limit <= 0 means unbounded). Results come back in input order and are
// identical to scoring the pairs sequentially. The only error source is
// context cancellation.
func (s *Scorer) CalculateBatch(ctx context.Context, pairs []ScorePair, limit int) ([]*types.ATSScoreResult, error) {
	results := make([]*types.ATSScoreResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Calculate(ctx, pair.Resume, pair.Job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
