package render

import (
	"math"
	"testing"
)

func TestBarX(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		k, n int
		want float64
	}{
		{0, 50, 100},
		{1, 50, 112},
		{49, 50, 688},
		{0, 1, 394},
		{0, 100, -200},
	}

	for _, tt := range tests {
		if got := l.BarX(tt.k, tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BarX(%d, %d) = %v, want %v", tt.k, tt.n, got, tt.want)
		}
	}
}

func TestBarX_RowIsCentred(t *testing.T) {
	l := DefaultLayout()
	n := 50
	left := l.BarX(0, n)
	right := l.BarX(n-1, n) + l.BarWidth + l.Spacing
	if math.Abs(left-(l.CanvasWidth-right)) > 1e-9 {
		t.Errorf("row not centred: left margin %v, right margin %v", left, l.CanvasWidth-right)
	}
	if math.Abs(right-left-l.RowWidth(n)) > 1e-9 {
		t.Errorf("RowWidth(%d) = %v, span %v", n, l.RowWidth(n), right-left)
	}
}

func TestBarY(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		h    int
		want float64
	}{
		{300, 150},
		{10, 295},
		{0, 300},
	}
	for _, tt := range tests {
		if got := l.BarY(tt.h); got != tt.want {
			t.Errorf("BarY(%d) = %v, want %v", tt.h, got, tt.want)
		}
	}

	r := l.BarRect(2, 50, 100)
	if r.X != 124 || r.Y != 250 || r.W != 10 || r.H != 100 {
		t.Errorf("BarRect = %+v", r)
	}
}

func TestFitHeight(t *testing.T) {
	l := Layout{CanvasHeight: 20, BarWidth: 1, Spacing: 1}
	fit := l.FitHeight(300, 0.5)
	if got := fit.BarHeight(300); math.Abs(got-10) > 1e-9 {
		t.Errorf("tallest bar height = %v, want 10", got)
	}
	if l.Scale != 0 {
		t.Error("FitHeight modified the receiver")
	}
	if same := l.FitHeight(0, 0.5); same != l {
		t.Error("FitHeight with no bars should be a no-op")
	}
	if l.BarHeight(7) != 7 {
		t.Error("zero scale should mean 1")
	}
}
