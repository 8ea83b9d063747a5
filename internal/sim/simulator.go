package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/termgrid/internal/life"
)

type Simulator struct {
	rule      life.Rule
	metrics   []Metric
	observers []Observer
}

func New(rule life.Rule) *Simulator {
	return &Simulator{
		rule:      rule,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) Rule() life.Rule { return s.rule }

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances a copy of b for cfg.Generations generations. On cancellation
// the partial result is returned with the context error.
func (s *Simulator) Run(ctx context.Context, b *life.Board, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	cur := b.Clone()
	result.Populations = append(result.Populations, cur.Population())

	for gen := 1; gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			s.finish(result, cur)
			return result, ctx.Err()
		default:
		}

		next := cur.Next(s.rule, cfg.Wrap)

		for _, m := range s.metrics {
			m.Observe(gen, cur, next)
		}
		for _, obs := range s.observers {
			obs.OnGeneration(gen, next)
		}

		stable := next.Equal(cur)
		cur = next
		result.Generations = gen
		result.Populations = append(result.Populations, cur.Population())

		if cfg.StopWhenStable && stable {
			result.Stable = true
			break
		}
	}

	s.finish(result, cur)
	return result, nil
}

func (s *Simulator) finish(result *Result, final *life.Board) {
	result.Final = final
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", cfg.Generations)
	}
	return nil
}

// RunWithCallback advances b until the callback returns false, the
// configured generation count is reached (0 means unbounded) or ctx is done.
func (s *Simulator) RunWithCallback(ctx context.Context, b *life.Board, cfg Config, callback func(gen int, b *life.Board) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	cur := b.Clone()
	for gen := 0; cfg.Generations == 0 || gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(gen, cur) {
			return nil
		}
		cur = cur.Next(s.rule, cfg.Wrap)
	}

	return nil
}
