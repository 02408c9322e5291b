package metrics

import (
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// AdjacentOrder is the fraction of neighbouring pairs already in
// non-decreasing order. Arrays shorter than two bars count as sorted.
func AdjacentOrder(h []int) float64 {
	if len(h) < 2 {
		return 1
	}
	ordered := 0
	for i := 1; i < len(h); i++ {
		if h[i-1] <= h[i] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(h)-1)
}

// Sortedness tracks AdjacentOrder of every observed frame.
type Sortedness struct {
	name    string
	history []float64
}

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness"}
}

func (s *Sortedness) Name() string { return s.name }

func (s *Sortedness) OnFrame(f render.Frame, stats sorting.Stats) { s.Observe(f, stats) }

func (s *Sortedness) Observe(f render.Frame, _ sorting.Stats) {
	s.history = append(s.history, AdjacentOrder(f.Heights))
}

// Value is the sortedness of the latest frame, 0 before any frame.
func (s *Sortedness) Value() float64 {
	if len(s.history) == 0 {
		return 0
	}
	return s.history[len(s.history)-1]
}

// History returns the per-frame values, optionally downsampled to at most
// maxPoints evenly spaced samples. maxPoints <= 0 returns everything.
func (s *Sortedness) History(maxPoints int) []float64 {
	if maxPoints <= 0 || len(s.history) <= maxPoints {
		out := make([]float64, len(s.history))
		copy(out, s.history)
		return out
	}
	if maxPoints == 1 {
		return []float64{s.Value()}
	}
	out := make([]float64, maxPoints)
	last := len(s.history) - 1
	for i := range out {
		out[i] = s.history[i*last/(maxPoints-1)]
	}
	return out
}

func (s *Sortedness) Reset() {
	s.history = s.history[:0]
}
