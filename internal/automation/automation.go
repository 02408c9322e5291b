package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Scenario is a scripted list of headless sorting runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Omitted fields fall back to the defaults.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Bars      *int   `yaml:"bars"`
	MinHeight *int   `yaml:"min_height"`
	MaxHeight *int   `yaml:"max_height"`
	Seed      int64  `yaml:"seed"`
	Heights   []int  `yaml:"heights"`

	// ExpectComparisons, when positive, fails the step on any other count.
	ExpectComparisons int `yaml:"expect_comparisons"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (s ScenarioStep) config() *config.Config {
	cfg := config.DefaultConfig()
	if s.Algorithm != "" {
		cfg.Algorithm = s.Algorithm
	}
	if s.Bars != nil {
		cfg.Bars.Count = *s.Bars
	}
	if s.MinHeight != nil {
		cfg.Bars.MinHeight = *s.MinHeight
	}
	if s.MaxHeight != nil {
		cfg.Bars.MaxHeight = *s.MaxHeight
	}
	cfg.Seed = s.Seed
	cfg.Heights = s.Heights
	return cfg
}

// RunScenario executes every step without rendering and stops at the first
// failing one.
func RunScenario(ctx context.Context, scenario *Scenario, logger *log.Logger) ([]*sim.Result, error) {
	results := make([]*sim.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "algorithm", step.Algorithm)

		s, err := sim.Build(step.config(), render.Discard, render.DefaultLayout(), 0)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.SetLogger(logger)

		res, err := s.RunToCompletion(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, res)

		if !res.Sorted {
			return results, fmt.Errorf("step %d: %s left the array unsorted", i+1, res.Algorithm)
		}
		if step.ExpectComparisons > 0 && res.Stats.Comparisons != step.ExpectComparisons {
			return results, fmt.Errorf("step %d: %d comparisons, expected %d", i+1, res.Stats.Comparisons, step.ExpectComparisons)
		}
	}

	return results, nil
}

// Sweep runs every algorithm over arrays of increasing size.
type Sweep struct {
	Algorithms []string
	Counts     []int
	MinHeight  int
	MaxHeight  int
	Seed       int64
}

type SweepResult struct {
	Algorithm string        `json:"algorithm"`
	Bars      int           `json:"bars"`
	Stats     sorting.Stats `json:"stats"`
}

// RunSweep sorts one seeded array per count with each algorithm; all
// algorithms see the same array for a given count.
func RunSweep(ctx context.Context, sweep *Sweep) ([]SweepResult, error) {
	registry := sorting.NewRegistry()
	results := make([]SweepResult, 0, len(sweep.Algorithms)*len(sweep.Counts))

	for _, n := range sweep.Counts {
		cfg := config.DefaultConfig()
		cfg.Bars = config.BarsConfig{Count: n, MinHeight: sweep.MinHeight, MaxHeight: sweep.MaxHeight}
		cfg.Seed = sweep.Seed
		initial, err := sim.NewArray(cfg)
		if err != nil {
			return results, fmt.Errorf("sweep %d bars: %w", n, err)
		}

		for _, name := range sweep.Algorithms {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			d, err := registry.Get(name)
			if err != nil {
				return results, err
			}
			stats, err := sorting.Run(d, initial.Clone(), nil)
			if err != nil {
				return results, fmt.Errorf("sweep %s/%d: %w", name, n, err)
			}
			results = append(results, SweepResult{Algorithm: d.Name(), Bars: n, Stats: stats})
		}
	}

	return results, nil
}
