package metrics

import (
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Metric accumulates a value over the frames of a sort.
type Metric interface {
	Name() string
	Observe(f render.Frame, stats sorting.Stats)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics. It satisfies sim.Observer.
type Set []Metric

func (s Set) OnFrame(f render.Frame, stats sorting.Stats) {
	for _, m := range s {
		m.Observe(f, stats)
	}
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Values returns the current value of every metric keyed by name.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}
