package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Session runs one sorting visualisation: it owns the bar array, the driver
// and the renderer, and turns every comparison into one presented frame.
type Session struct {
	driver   sorting.Driver
	initial  *bars.Array
	array    *bars.Array
	counter  *sorting.Counting
	renderer *render.Renderer
	label    string

	observers []Observer
	logger    *log.Logger

	done    bool
	frames  int
	started time.Time
	elapsed time.Duration
}

// New creates a session over a. The label defaults to the driver name.
func New(d sorting.Driver, a *bars.Array, r *render.Renderer) *Session {
	s := &Session{
		driver:   d,
		initial:  a.Clone(),
		renderer: r,
		label:    d.Name(),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	s.reset(a)
	return s
}

func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

func (s *Session) SetLabel(label string) { s.label = label }

func (s *Session) Label() string { return s.label }

func (s *Session) Done() bool { return s.done }

func (s *Session) Array() *bars.Array { return s.array }

func (s *Session) Stats() sorting.Stats { return s.counter.Stats }

func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Reset restores the initial array and restarts the driver.
func (s *Session) Reset() {
	s.reset(s.initial.Clone())
}

func (s *Session) reset(a *bars.Array) {
	s.driver.Reset()
	s.array = a
	s.counter = &sorting.Counting{Array: a}
	s.done = false
	s.frames = 0
	s.started = time.Time{}
	s.elapsed = 0
}

// emit renders the comparison's frame. A failed present is returned to the
// driver, which then leaves the array as the last frame showed it.
func (s *Session) emit(idx ...int) error {
	f := render.Frame{Heights: s.array.Heights(), Highlight: idx, Label: s.label}
	if err := s.renderer.Render(f); err != nil {
		return err
	}
	s.counter.Stats.Comparisons++
	s.frames++
	for _, o := range s.observers {
		o.OnFrame(f, s.counter.Stats)
	}
	return nil
}

// Advance performs one step of the sort, rendering its frame. It reports
// done once the driver has nothing left to compare.
func (s *Session) Advance() (bool, error) {
	if s.done {
		return true, nil
	}
	if s.started.IsZero() {
		s.started = time.Now()
		s.logger.Debug("sort started", "algorithm", s.driver.Name(), "bars", s.array.Len())
	}

	done, err := s.driver.Step(s.counter, s.emit)
	if err != nil {
		return false, fmt.Errorf("step %d: %w", s.counter.Stats.Comparisons+1, err)
	}
	if !done {
		return false, nil
	}

	s.done = true
	s.elapsed = time.Since(s.started)
	res := s.Result()
	s.logger.Info("sort finished",
		"algorithm", res.Algorithm,
		"comparisons", res.Stats.Comparisons,
		"swaps", res.Stats.Swaps,
		"writes", res.Stats.Writes,
		"elapsed", res.Elapsed.Round(time.Millisecond),
	)
	for _, o := range s.observers {
		if d, ok := o.(DoneObserver); ok {
			d.OnDone(res)
		}
	}
	return true, nil
}

// RenderIdle presents the current array with nothing highlighted.
func (s *Session) RenderIdle() error {
	return s.renderer.Render(render.Frame{Heights: s.array.Heights(), Label: s.label})
}

// Run is the single visualisation loop. Each iteration first polls events
// and ctx; while sorting it advances one step, afterwards it re-presents the
// final frame every IdleInterval. A close request ends the run normally with
// Closed set. A nil events never requests a close.
func (s *Session) Run(ctx context.Context, events Events, cfg Config) (*Result, error) {
	for {
		select {
		case <-ctx.Done():
			res := s.Result()
			return &res, ctx.Err()
		default:
		}

		if events != nil && events.CloseRequested() {
			s.logger.Info("close requested", "frames", s.frames, "sorted", s.done)
			res := s.Result()
			res.Closed = true
			return &res, nil
		}

		if !s.done {
			done, err := s.Advance()
			if err != nil {
				res := s.Result()
				return &res, err
			}
			if done && cfg.StopWhenSorted {
				res := s.Result()
				return &res, nil
			}
			continue
		}

		if err := s.RenderIdle(); err != nil {
			res := s.Result()
			return &res, err
		}
		if cfg.IdleInterval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(cfg.IdleInterval):
			}
		}
	}
}

func (s *Session) Result() Result {
	elapsed := s.elapsed
	if !s.done && !s.started.IsZero() {
		elapsed = time.Since(s.started)
	}
	return Result{
		Algorithm: s.driver.Name(),
		Stats:     s.counter.Stats,
		Frames:    s.frames,
		Initial:   s.initial.Heights(),
		Final:     s.array.Heights(),
		Sorted:    s.array.IsSorted(),
		Elapsed:   elapsed,
	}
}

// RunToCompletion sorts without polling for close and returns once the
// driver is done.
func (s *Session) RunToCompletion(ctx context.Context) (*Result, error) {
	return s.Run(ctx, nil, Config{StopWhenSorted: true})
}
