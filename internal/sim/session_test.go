package sim

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

type recordingSurface struct {
	presents int
	err      error
	errAfter int
}

func (s *recordingSurface) Clear(color.RGBA)                                       {}
func (s *recordingSurface) FillRect(render.Rect, color.RGBA)                       {}
func (s *recordingSurface) DrawLabel(string, render.Point, color.RGBA, color.RGBA) {}

func (s *recordingSurface) Present() error {
	s.presents++
	if s.err != nil && s.presents > s.errAfter {
		return s.err
	}
	return nil
}

type frameLog struct {
	frames []render.Frame
	done   []Result
}

func (f *frameLog) OnFrame(fr render.Frame, _ sorting.Stats) { f.frames = append(f.frames, fr) }
func (f *frameLog) OnDone(res Result)                        { f.done = append(f.done, res) }

func newSession(t *testing.T, algo string, heights []int) (*Session, *recordingSurface) {
	t.Helper()
	a, err := bars.FromHeights(heights)
	if err != nil {
		t.Fatalf("FromHeights: %v", err)
	}
	d, err := sorting.NewRegistry().Get(algo)
	if err != nil {
		t.Fatalf("Get(%q): %v", algo, err)
	}
	surf := &recordingSurface{}
	r := render.NewRenderer(surf, render.DefaultLayout(), color.RGBA{R: 255, A: 255}, 0)
	return New(d, a, r), surf
}

func TestRun_ToCompletion(t *testing.T) {
	s, surf := newSession(t, "bubble", []int{5, 3, 4, 1, 2})
	log := &frameLog{}
	s.AddObserver(log)

	res, err := s.RunToCompletion(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !res.Sorted || res.Closed {
		t.Errorf("expected sorted and not closed, got %+v", res)
	}
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if res.Final[i] != want[i] {
			t.Fatalf("final = %v, want %v", res.Final, want)
		}
	}
	if res.Initial[0] != 5 {
		t.Errorf("initial = %v", res.Initial)
	}
	if res.Stats.Comparisons != 10 || res.Stats.Swaps != 8 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.Frames != 10 || surf.presents != 10 || len(log.frames) != 10 {
		t.Errorf("frames = %d, presents = %d, observed = %d, want 10", res.Frames, surf.presents, len(log.frames))
	}
	if len(log.done) != 1 || log.done[0].Stats != res.Stats {
		t.Errorf("OnDone called %d times", len(log.done))
	}
}

func TestRun_FramesShowPreMutationState(t *testing.T) {
	s, _ := newSession(t, "bubble", []int{2, 1})
	log := &frameLog{}
	s.AddObserver(log)

	if _, err := s.Run(context.Background(), nil, Config{StopWhenSorted: true}); err != nil {
		t.Fatal(err)
	}
	f := log.frames[0]
	if f.Heights[0] != 2 || f.Heights[1] != 1 {
		t.Errorf("frame heights = %v, want [2 1]", f.Heights)
	}
	if len(f.Highlight) != 2 || f.Highlight[0] != 0 || f.Highlight[1] != 1 {
		t.Errorf("highlight = %v", f.Highlight)
	}
	if f.Label != "bubble" {
		t.Errorf("label = %q", f.Label)
	}
}

func TestRun_ClosePolledEveryStep(t *testing.T) {
	s, surf := newSession(t, "selection", []int{9, 8, 7, 6, 5, 4, 3, 2, 1})

	polls := 0
	events := EventsFunc(func() bool {
		polls++
		return polls > 4
	})

	res, err := s.Run(context.Background(), events, DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !res.Closed {
		t.Error("expected Closed")
	}
	if res.Frames != 4 || surf.presents != 4 {
		t.Errorf("expected 4 frames before close, got %d (presents %d)", res.Frames, surf.presents)
	}
	if res.Sorted {
		t.Error("array should not be sorted yet")
	}
}

func TestRun_IdlesUntilClose(t *testing.T) {
	s, surf := newSession(t, "insertion", []int{1, 2, 3})

	polls := 0
	events := EventsFunc(func() bool {
		polls++
		return polls > 6
	})

	res, err := s.Run(context.Background(), events, Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// 2 comparisons, then the finishing step, then idle frames until poll 7.
	if res.Frames != 2 {
		t.Errorf("step frames = %d, want 2", res.Frames)
	}
	if surf.presents != 5 {
		t.Errorf("presents = %d, want 2 step frames + 3 idle frames", surf.presents)
	}
	if !res.Closed || !res.Sorted {
		t.Errorf("result = %+v", res)
	}
}

func TestRun_Degenerate(t *testing.T) {
	for _, h := range [][]int{nil, {7}} {
		s, surf := newSession(t, "bubble", h)
		res, err := s.Run(context.Background(), nil, Config{StopWhenSorted: true})
		if err != nil {
			t.Fatal(err)
		}
		if res.Stats.Comparisons != 0 || surf.presents != 0 {
			t.Errorf("%v: expected no comparisons or frames, got %+v", h, res)
		}
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	s, _ := newSession(t, "bubble", []int{3, 2, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx, nil, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res == nil || res.Frames != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestRun_IdleRespectsContext(t *testing.T) {
	s, _ := newSession(t, "none", []int{3, 2, 1})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := s.Run(ctx, nil, Config{IdleInterval: time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestRun_RenderError(t *testing.T) {
	s, surf := newSession(t, "bubble", []int{3, 2, 1})
	surf.err = errors.New("window lost")
	surf.errAfter = 1

	res, err := s.Run(context.Background(), nil, Config{StopWhenSorted: true})
	if !errors.Is(err, surf.err) {
		t.Fatalf("expected render error, got %v", err)
	}
	if res.Frames != 1 || res.Stats.Comparisons != 1 {
		t.Errorf("frames = %d, comparisons = %d, want 1 each", res.Frames, res.Stats.Comparisons)
	}
	// the failed second frame stops the swap of bars 1 and 2
	if res.Stats.Swaps != 1 {
		t.Errorf("swaps = %d, want 1", res.Stats.Swaps)
	}
	if want := []int{2, 3, 1}; !equalInts(res.Final, want) {
		t.Errorf("final = %v, want the last presented order %v", res.Final, want)
	}
}

func TestRun_RenderErrorOnFirstFrame(t *testing.T) {
	for _, algo := range []string{"bubble", "selection", "insertion"} {
		t.Run(algo, func(t *testing.T) {
			s, surf := newSession(t, algo, []int{3, 2, 1})
			surf.err = errors.New("window lost")

			res, err := s.Run(context.Background(), nil, Config{StopWhenSorted: true})
			if !errors.Is(err, surf.err) {
				t.Fatalf("expected render error, got %v", err)
			}
			if res.Frames != 0 || res.Stats != (sorting.Stats{}) {
				t.Errorf("frames = %d, stats = %+v, want nothing counted", res.Frames, res.Stats)
			}
			if !equalInts(res.Final, res.Initial) {
				t.Errorf("final = %v, want untouched %v", res.Final, res.Initial)
			}
		})
	}
}

func TestAdvanceAndReset(t *testing.T) {
	s, _ := newSession(t, "insertion", []int{3, 1, 2})

	steps := 0
	for {
		done, err := s.Advance()
		if err != nil {
			t.Fatal(err)
		}
		if done {
			break
		}
		steps++
	}
	if !s.Done() || !s.Array().IsSorted() {
		t.Fatal("expected sorted after advancing")
	}
	if done, _ := s.Advance(); !done {
		t.Error("Advance after done should stay done")
	}

	s.Reset()
	if s.Done() || s.Stats().Comparisons != 0 {
		t.Error("Reset did not clear progress")
	}
	if h := s.Array().Heights(); h[0] != 3 || h[1] != 1 || h[2] != 2 {
		t.Errorf("Reset array = %v, want initial", h)
	}

	again := 0
	for {
		done, _ := s.Advance()
		if done {
			break
		}
		again++
	}
	if again != steps {
		t.Errorf("rerun took %d steps, first run %d", again, steps)
	}
}

func TestEnsemble(t *testing.T) {
	e := &Ensemble{Algorithm: "bubble", Bars: 20, MinHeight: 10, MaxHeight: 300, Runs: 4, SeedStart: 1}
	stats, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 4 {
		t.Fatalf("expected 4 results, got %d", len(stats))
	}
	for _, st := range stats {
		if st.Comparisons != 190 {
			t.Errorf("bubble on 20 bars: %d comparisons, want 190", st.Comparisons)
		}
	}
	c, _, _ := Mean(stats)
	if c != 190 {
		t.Errorf("mean comparisons = %v", c)
	}

	bad := &Ensemble{Algorithm: "quick", Bars: 5, MinHeight: 1, MaxHeight: 2, Runs: 1}
	if _, err := bad.Run(context.Background()); !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Algorithm = " Insertion_Sort "
	cfg.Color = "blue"
	cfg.Heights = []int{4, 2, 9, 1}

	surf := &recordingSurface{}
	s, err := Build(cfg, surf, render.DefaultLayout(), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Label() != "Insertion_Sort" {
		t.Errorf("label = %q", s.Label())
	}
	if s.Array().Len() != 4 {
		t.Errorf("expected explicit heights, got %v", s.Array().Heights())
	}
	if s.Renderer().Highlight != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("highlight = %v", s.Renderer().Highlight)
	}

	res, err := s.RunToCompletion(context.Background())
	if err != nil || !res.Sorted || res.Algorithm != "insertion" {
		t.Errorf("result %+v err %v", res, err)
	}
}

func TestBuild_Seeded(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 7

	a, err := NewArray(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewArray(cfg)
	if a.Len() != cfg.Bars.Count {
		t.Fatalf("len = %d", a.Len())
	}
	ha, hb := a.Heights(), b.Heights()
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatal("same seed produced different arrays")
		}
	}
}

func TestBuild_Invalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Algorithm = "bogo"

	_, err := Build(cfg, &recordingSurface{}, render.DefaultLayout(), 0)
	var cerr *config.Error
	if !errors.As(err, &cerr) || cerr.Field != "algorithm" {
		t.Errorf("expected algorithm config error, got %v", err)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
