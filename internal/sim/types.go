package sim

import "github.com/san-kum/termgrid/internal/life"

// Metric accumulates a statistic over the generations of a run.
type Metric interface {
	Name() string
	Observe(gen int, prev, cur *life.Board)
	Value() float64
	Reset()
}

// Observer is notified after every generation.
type Observer interface {
	OnGeneration(gen int, b *life.Board)
}

type Config struct {
	Generations int
	Wrap        bool
	// StopWhenStable ends the run early once a generation equals the one
	// before it.
	StopWhenStable bool
}

type Result struct {
	Populations []int // index 0 is the initial board
	Generations int
	Final       *life.Board
	Stable      bool
	Metrics     map[string]float64
}
