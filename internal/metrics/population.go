package metrics

import (
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/sim"
)

// Population is the mean live-cell count over observed generations.
type Population struct {
	samples int
	total   int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(gen int, prev, cur *life.Board) {
	p.total += cur.Population()
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *Population) Reset() {
	p.samples = 0
	p.total = 0
}

// PeakPopulation is the largest live-cell count seen.
type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(gen int, prev, cur *life.Board) {
	p.peak = max(p.peak, prev.Population(), cur.Population())
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }

// Churn is the mean number of cells that change state per generation, the
// number of cells a diff renderer has to repaint.
type Churn struct {
	samples int
	changed int
}

func NewChurn() *Churn { return &Churn{} }

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Observe(gen int, prev, cur *life.Board) {
	c.changed += prev.Diff(cur)
	c.samples++
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.changed) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.samples = 0
	c.changed = 0
}

// Defaults returns fresh instances of every metric.
func Defaults() []sim.Metric {
	return []sim.Metric{NewPopulation(), NewPeakPopulation(), NewChurn()}
}

// Constructors returns per-run constructors for sim.Ensemble.
func Constructors() []func() sim.Metric {
	return []func() sim.Metric{
		func() sim.Metric { return NewPopulation() },
		func() sim.Metric { return NewPeakPopulation() },
		func() sim.Metric { return NewChurn() },
	}
}
