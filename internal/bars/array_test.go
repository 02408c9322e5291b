package bars

import (
	"errors"
	"sort"
	"testing"
)

func TestNew_SizeAndBounds(t *testing.T) {
	tests := []struct {
		n, min, max int
	}{
		{1, 0, 0},
		{5, 3, 3},
		{50, 10, 300},
		{200, 1, 2},
	}

	for _, tt := range tests {
		a, err := New(tt.n, tt.min, tt.max, 7)
		if err != nil {
			t.Fatalf("New(%d, %d, %d): %v", tt.n, tt.min, tt.max, err)
		}
		if a.Len() != tt.n {
			t.Errorf("expected %d bars, got %d", tt.n, a.Len())
		}
		for i, h := range a.Heights() {
			if h < tt.min || h > tt.max {
				t.Errorf("bar %d height %d outside [%d, %d]", i, h, tt.min, tt.max)
			}
		}
		if lo, hi := a.Bounds(); lo != tt.min || hi != tt.max {
			t.Errorf("Bounds() = (%d, %d), want (%d, %d)", lo, hi, tt.min, tt.max)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, _ := New(50, DefaultMinHeight, DefaultMaxHeight, 42)
	b, _ := New(50, DefaultMinHeight, DefaultMaxHeight, 42)

	ha, hb := a.Heights(), b.Heights()
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("same seed produced different arrays at %d: %d vs %d", i, ha[i], hb[i])
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		n, min, max int
		want        error
	}{
		{"zero bars", 0, 10, 300, ErrInvalidSize},
		{"negative bars", -3, 10, 300, ErrInvalidSize},
		{"inverted bounds", 5, 300, 10, ErrInvalidBounds},
		{"negative min", 5, -1, 10, ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.min, tt.max, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFromHeights(t *testing.T) {
	src := []int{5, 3, 4, 1, 2}
	a, err := FromHeights(src)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}
	src[0] = 99
	if h, _ := a.Get(0); h != 5 {
		t.Errorf("FromHeights did not copy input, got %d", h)
	}
	if lo, hi := a.Bounds(); lo != 1 || hi != 5 {
		t.Errorf("Bounds() = (%d, %d), want (1, 5)", lo, hi)
	}

	if _, err := FromHeights([]int{1, -2}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds for negative height, got %v", err)
	}

	empty, err := FromHeights(nil)
	if err != nil || empty.Len() != 0 {
		t.Errorf("expected empty array, got len %d err %v", empty.Len(), err)
	}
}

func TestCompare(t *testing.T) {
	a, _ := FromHeights([]int{2, 7, 2})

	tests := []struct {
		i, j, want int
	}{
		{0, 1, -1},
		{1, 0, 1},
		{0, 2, 0},
		{1, 1, 0},
	}
	for _, tt := range tests {
		got, err := a.Compare(tt.i, tt.j)
		if err != nil {
			t.Fatalf("Compare(%d, %d): %v", tt.i, tt.j, err)
		}
		if got != tt.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestSwapAndSet(t *testing.T) {
	a, _ := FromHeights([]int{1, 2, 3})

	if err := a.Swap(0, 2); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if err := a.Set(1, 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := a.Heights()
	want := []int{3, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Heights() = %v, want %v", got, want)
		}
	}

	if err := a.Set(0, 4); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	a, _ := FromHeights([]int{4, 5, 6})

	ops := map[string]func(i int) error{
		"compare-left":  func(i int) error { _, err := a.Compare(i, 0); return err },
		"compare-right": func(i int) error { _, err := a.Compare(0, i); return err },
		"swap":          func(i int) error { return a.Swap(i, 1) },
		"set":           func(i int) error { return a.Set(i, 5) },
		"get":           func(i int) error { _, err := a.Get(i); return err },
	}

	for name, op := range ops {
		for _, idx := range []int{-1, 3, 100} {
			err := op(idx)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("%s(%d): expected ErrIndexOutOfRange, got %v", name, idx, err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) || ie.Index != idx || ie.Len != 3 {
				t.Errorf("%s(%d): expected IndexError with index and len, got %#v", name, idx, err)
			}
		}
	}

	if got := a.Heights(); got[0] != 4 || got[1] != 5 || got[2] != 6 {
		t.Errorf("failed operations mutated the array: %v", got)
	}
}

func TestIsSortedAndClone(t *testing.T) {
	a, _ := FromHeights([]int{3, 1, 2})
	if a.IsSorted() {
		t.Error("expected unsorted")
	}

	c := a.Clone()
	h := c.Heights()
	sort.Ints(h)
	for i, v := range h {
		_ = c.Set(i, v)
	}
	if !c.IsSorted() {
		t.Error("expected clone to be sorted")
	}
	if a.IsSorted() {
		t.Error("sorting the clone changed the original")
	}
}
