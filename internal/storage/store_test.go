package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

func testResult() *sim.Result {
	return &sim.Result{
		Algorithm: "bubble",
		Stats:     sorting.Stats{Comparisons: 10, Swaps: 8},
		Frames:    10,
		Initial:   []int{5, 3, 4, 1, 2},
		Final:     []int{1, 2, 3, 4, 5},
		Sorted:    true,
		Elapsed:   1500 * time.Millisecond,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	series := []float64{0.25, 0.5, 1}
	id, err := s.Save(testResult(), "red", 7, series)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Algorithm != "bubble" || meta.Color != "red" || meta.Seed != 7 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Bars != 5 || meta.Stats.Swaps != 8 || meta.Elapsed != 1.5 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	got, err := s.LoadSortedness(id)
	if err != nil {
		t.Fatalf("load sortedness: %v", err)
	}
	if len(got) != len(series) {
		t.Fatalf("expected %d points, got %d", len(series), len(got))
	}
	for i := range series {
		if got[i] != series[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], series[i])
		}
	}
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	runs, err := s.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("empty store: %v, %d runs", err, len(runs))
	}

	first, err := s.Save(testResult(), "red", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	res := testResult()
	res.Algorithm = "selection"
	if _, err := s.Save(res, "blue", 2, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].Algorithm != "selection" {
		t.Errorf("unexpected order %+v", runs)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := s.LoadSortedness("nope"); err == nil {
		t.Error("expected error for missing series")
	}
}
