package bars

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	DefaultCount     = 50
	DefaultMinHeight = 10
	DefaultMaxHeight = 300
)

// Array is a fixed-length sequence of bar heights. Bars are identified by
// position; heights are not unique.
type Array struct {
	heights  []int
	min, max int
}

// New returns n heights drawn uniformly from [min, max]. The same seed always
// yields the same array.
func New(n, min, max int, seed int64) (*Array, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if min < 0 || min > max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, min, max)
	}

	rng := rand.New(rand.NewSource(seed))
	heights := make([]int, n)
	for i := range heights {
		heights[i] = min + rng.Intn(max-min+1)
	}
	return &Array{heights: heights, min: min, max: max}, nil
}

// NewRandom is New seeded from the wall clock.
func NewRandom(n, min, max int) (*Array, error) {
	return New(n, min, max, time.Now().UnixNano())
}

// FromHeights copies h into a new Array whose bounds are the smallest and
// largest of the given heights.
func FromHeights(h []int) (*Array, error) {
	a := &Array{heights: make([]int, len(h))}
	copy(a.heights, h)
	for i, v := range h {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative height %d at %d", ErrInvalidBounds, v, i)
		}
		if i == 0 || v < a.min {
			a.min = v
		}
		if i == 0 || v > a.max {
			a.max = v
		}
	}
	return a, nil
}

func (a *Array) Len() int { return len(a.heights) }

// Bounds returns the generation range every height stays within.
func (a *Array) Bounds() (min, max int) { return a.min, a.max }

func (a *Array) check(op string, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= len(a.heights) {
			return &IndexError{Op: op, Index: i, Len: len(a.heights)}
		}
	}
	return nil
}

// Compare returns -1, 0 or +1 as the height at i is less than, equal to or
// greater than the height at j.
func (a *Array) Compare(i, j int) (int, error) {
	if err := a.check("compare", i, j); err != nil {
		return 0, err
	}
	switch x, y := a.heights[i], a.heights[j]; {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

func (a *Array) Get(i int) (int, error) {
	if err := a.check("get", i); err != nil {
		return 0, err
	}
	return a.heights[i], nil
}

func (a *Array) Swap(i, j int) error {
	if err := a.check("swap", i, j); err != nil {
		return err
	}
	a.heights[i], a.heights[j] = a.heights[j], a.heights[i]
	return nil
}

// Set overwrites the height at i. Values outside the generation bounds are
// rejected so sorting can never introduce a new height.
func (a *Array) Set(i, v int) error {
	if err := a.check("set", i); err != nil {
		return err
	}
	if v < a.min || v > a.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfBounds, v, a.min, a.max)
	}
	a.heights[i] = v
	return nil
}

// Heights returns a copy of the current heights.
func (a *Array) Heights() []int {
	c := make([]int, len(a.heights))
	copy(c, a.heights)
	return c
}

func (a *Array) Clone() *Array {
	return &Array{heights: a.Heights(), min: a.min, max: a.max}
}

// IsSorted reports whether the heights are non-decreasing.
func (a *Array) IsSorted() bool {
	for i := 1; i < len(a.heights); i++ {
		if a.heights[i-1] > a.heights[i] {
			return false
		}
	}
	return true
}
