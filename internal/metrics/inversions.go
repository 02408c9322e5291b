package metrics

import (
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// CountInversions counts pairs i < j with h[i] > h[j].
func CountInversions(h []int) int {
	if len(h) < 2 {
		return 0
	}
	buf := make([]int, len(h))
	work := make([]int, len(h))
	copy(work, h)
	return mergeCount(work, buf)
}

func mergeCount(a, buf []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := mergeCount(a[:mid], buf[:mid]) + mergeCount(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			n += mid - i
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:])
	copy(a, buf[:len(a)])
	return n
}

// Disorder is the remaining inversions of the latest frame relative to the
// worst case n(n-1)/2: 1 for reverse order, 0 once sorted.
type Disorder struct {
	name       string
	inversions int
	n          int
	samples    int
}

func NewDisorder() *Disorder {
	return &Disorder{name: "disorder"}
}

func (d *Disorder) Name() string { return d.name }

func (d *Disorder) OnFrame(f render.Frame, stats sorting.Stats) { d.Observe(f, stats) }

func (d *Disorder) Observe(f render.Frame, _ sorting.Stats) {
	d.inversions = CountInversions(f.Heights)
	d.n = len(f.Heights)
	d.samples++
}

func (d *Disorder) Inversions() int { return d.inversions }

func (d *Disorder) Value() float64 {
	worst := d.n * (d.n - 1) / 2
	if d.samples == 0 || worst == 0 {
		return 0
	}
	return float64(d.inversions) / float64(worst)
}

func (d *Disorder) Reset() {
	d.inversions = 0
	d.n = 0
	d.samples = 0
}
