package sim

import (
	"context"
	"sync"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Ensemble sorts one random array per seed without rendering, to measure
// how much work an algorithm does on average. Each run owns its own array
// and driver.
type Ensemble struct {
	Algorithm string
	Bars      int
	MinHeight int
	MaxHeight int
	Runs      int
	SeedStart int64
}

func (e *Ensemble) Run(ctx context.Context) ([]sorting.Stats, error) {
	registry := sorting.NewRegistry()
	if _, err := registry.Resolve(e.Algorithm); err != nil {
		return nil, err
	}

	results := make([]sorting.Stats, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			a, err := bars.New(e.Bars, e.MinHeight, e.MaxHeight, e.SeedStart+int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			d, _ := registry.Get(e.Algorithm)
			results[idx], errs[idx] = sorting.Run(d, a, nil)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Mean averages the stats of an ensemble run.
func Mean(stats []sorting.Stats) (comparisons, swaps, writes float64) {
	if len(stats) == 0 {
		return 0, 0, 0
	}
	for _, s := range stats {
		comparisons += float64(s.Comparisons)
		swaps += float64(s.Swaps)
		writes += float64(s.Writes)
	}
	n := float64(len(stats))
	return comparisons / n, swaps / n, writes / n
}
