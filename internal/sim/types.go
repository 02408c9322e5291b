package sim

import (
	"time"

	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Events is polled once per step for a close request.
type Events interface {
	CloseRequested() bool
}

// EventsFunc adapts a function to Events.
type EventsFunc func() bool

func (f EventsFunc) CloseRequested() bool { return f() }

// Observer sees every presented step frame.
type Observer interface {
	OnFrame(f render.Frame, stats sorting.Stats)
}

// DoneObserver is an Observer that also wants the final result.
type DoneObserver interface {
	Observer
	OnDone(res Result)
}

type Config struct {
	// IdleInterval spaces the re-presented final frame once sorting is over.
	IdleInterval time.Duration
	// StopWhenSorted returns as soon as the driver finishes instead of
	// idling until a close request.
	StopWhenSorted bool
}

func DefaultConfig() Config {
	return Config{
		IdleInterval: 16 * time.Millisecond,
	}
}

type Result struct {
	Algorithm string        `json:"algorithm"`
	Stats     sorting.Stats `json:"stats"`
	Frames    int           `json:"frames"`
	Initial   []int         `json:"initial"`
	Final     []int         `json:"final"`
	Sorted    bool          `json:"sorted"`
	Closed    bool          `json:"closed"`
	Elapsed   time.Duration `json:"elapsed"`
}
