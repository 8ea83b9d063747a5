package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/metrics"
	"github.com/san-kum/termgrid/internal/sim"
	"github.com/san-kum/termgrid/internal/storage"
)

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

type ScenarioStep struct {
	Pattern        string  `yaml:"pattern"`
	Rule           string  `yaml:"rule"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Generations    int     `yaml:"generations"`
	Wrap           bool    `yaml:"wrap"`
	Seed           int64   `yaml:"seed"`
	Density        float64 `yaml:"density"`
	StopWhenStable bool    `yaml:"stop_when_stable"`
	Save           bool    `yaml:"save"`
}

// StepResult pairs a step's outcome with the run id it was stored under, if
// any.
type StepResult struct {
	Step   ScenarioStep
	RunID  string
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range scenario.Steps {
		scenario.Steps[i].applyDefaults()
	}
	return &scenario, nil
}

func (s *ScenarioStep) applyDefaults() {
	if s.Pattern == "" {
		s.Pattern = "random"
	}
	if s.Rule == "" {
		s.Rule = "conway"
	}
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 24
	}
	if s.Generations <= 0 {
		s.Generations = 100
	}
	if s.Density <= 0 {
		s.Density = 0.25
	}
}

// RunScenario executes every step in order. store may be nil when no step
// saves. Results of completed steps are returned alongside any error.
func RunScenario(ctx context.Context, scenario *Scenario, reg *life.Registry, store *storage.Store) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		slog.Info("scenario step", "scenario", scenario.Name, "step", i+1, "pattern", step.Pattern)

		board, err := buildBoard(reg, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		rule, err := reg.Rule(step.Rule)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s := sim.New(rule)
		for _, m := range metrics.Defaults() {
			s.AddMetric(m)
		}
		res, err := s.Run(ctx, board, sim.Config{
			Generations:    step.Generations,
			Wrap:           step.Wrap,
			StopWhenStable: step.StopWhenStable,
		})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Step: step, Result: res}
		if step.Save {
			if store == nil {
				return results, fmt.Errorf("step %d: save requested without a store", i+1)
			}
			sr.RunID, err = store.Save(storage.RunMetadata{
				Pattern: step.Pattern,
				Rule:    rule.String(),
				Seed:    step.Seed,
				Wrap:    step.Wrap,
			}, res)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}

func buildBoard(reg *life.Registry, step ScenarioStep) (*life.Board, error) {
	if step.Pattern == "random" {
		return life.Random(step.Width, step.Height, step.Density, step.Seed), nil
	}
	p, err := reg.Pattern(step.Pattern)
	if err != nil {
		return nil, err
	}
	b := life.NewBoard(step.Width, step.Height)
	p.PlaceCentered(b, step.Wrap)
	return b, nil
}

// DensitySweep runs random boards across a range of initial densities.
type DensitySweep struct {
	Rule        life.Rule
	Width       int
	Height      int
	Generations int
	Wrap        bool
	Seed        int64
	MinDensity  float64
	MaxDensity  float64
	NumSteps    int
}

type SweepResult struct {
	Density         float64
	FinalPopulation int
	PeakPopulation  int
	Churn           float64
	Stable          bool
}

func RunSweep(ctx context.Context, sweep *DensitySweep) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	if sweep.MinDensity < 0 || sweep.MaxDensity > 1 || sweep.MinDensity > sweep.MaxDensity {
		return nil, fmt.Errorf("invalid density range [%g, %g]", sweep.MinDensity, sweep.MaxDensity)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	step := (sweep.MaxDensity - sweep.MinDensity) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		density := sweep.MinDensity + float64(i)*step

		s := sim.New(sweep.Rule)
		churn := metrics.NewChurn()
		peak := metrics.NewPeakPopulation()
		s.AddMetric(churn)
		s.AddMetric(peak)

		board := life.Random(sweep.Width, sweep.Height, density, sweep.Seed)
		res, err := s.Run(ctx, board, sim.Config{Generations: sweep.Generations, Wrap: sweep.Wrap, StopWhenStable: true})
		if err != nil {
			return results, err
		}

		results = append(results, SweepResult{
			Density:         density,
			FinalPopulation: res.Final.Population(),
			PeakPopulation:  int(peak.Value()),
			Churn:           churn.Value(),
			Stable:          res.Stable,
		})
		slog.Debug("sweep step", "density", density, "final", res.Final.Population())
	}

	return results, nil
}
