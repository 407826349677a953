package reduct

import (
	"context"
	"runtime"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
	"golang.org/x/sync/errgroup"
)

// ScoreAll evaluates the significance of every candidate subset. Candidates
// are scored concurrently by at most workers goroutines, each holding its own
// calculator; workers <= 0 uses GOMAXPROCS. The scores are returned in
// candidate order.
func ScoreAll(ctx context.Context, u *api.Universe, candidates []api.AttributeSet, m significance.Measure, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	calcs := make(chan *significance.Calculator, workers)
	for w := 0; w < workers; w++ {
		calcs <- significance.NewCalculator(u, m)
	}

	scores := make([]float64, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			calc := <-calcs
			defer func() { calcs <- calc }()
			s, err := calc.FromScratch(candidates[i])
			if err != nil {
				return err
			}
			scores[i] = s.Value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
