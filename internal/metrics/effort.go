package metrics

import (
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// WriteEffort is the number of array mutations (swaps plus writes) per
// comparison seen so far.
type WriteEffort struct {
	name  string
	stats sorting.Stats
}

func NewWriteEffort() *WriteEffort {
	return &WriteEffort{name: "write_effort"}
}

func (w *WriteEffort) Name() string {
	return w.name
}

func (w *WriteEffort) OnFrame(f render.Frame, stats sorting.Stats) { w.Observe(f, stats) }

func (w *WriteEffort) Observe(_ render.Frame, stats sorting.Stats) {
	w.stats = stats
}

func (w *WriteEffort) Value() float64 {
	if w.stats.Comparisons == 0 {
		return 0
	}
	return float64(w.stats.Swaps+w.stats.Writes) / float64(w.stats.Comparisons)
}

func (w *WriteEffort) Reset() {
	w.stats = sorting.Stats{}
}
