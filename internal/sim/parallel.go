package sim

import (
	"context"

	"github.com/san-kum/termgrid/internal/life"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same rule over randomly seeded boards, one per seed.
type Ensemble struct {
	base      *Simulator
	newMetric []func() Metric
	numRuns   int
	seedStart int64
	limit     int
}

func NewEnsemble(s *Simulator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: s, numRuns: numRuns, seedStart: seedStart, limit: -1}
}

// AddMetric registers a metric constructor; every run gets its own instance.
func (e *Ensemble) AddMetric(fn func() Metric) { e.newMetric = append(e.newMetric, fn) }

// SetLimit caps the number of concurrent runs. Negative means no limit.
func (e *Ensemble) SetLimit(n int) { e.limit = n }

func (e *Ensemble) Run(ctx context.Context, width, height int, density float64, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i := 0; i < e.numRuns; i++ {
		i := i
		g.Go(func() error {
			sim := New(e.base.rule)
			for _, fn := range e.newMetric {
				sim.AddMetric(fn())
			}

			board := life.Random(width, height, density, e.seedStart+int64(i))
			res, err := sim.Run(ctx, board, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
