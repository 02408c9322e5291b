package sim

import (
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Build validates cfg and creates a session drawing on surf. The label is
// the algorithm name as configured.
func Build(cfg *config.Config, surf render.Surface, layout render.Layout, interval time.Duration) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d, err := sorting.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	highlight, err := cfg.HighlightColor()
	if err != nil {
		return nil, err
	}
	a, err := NewArray(cfg)
	if err != nil {
		return nil, err
	}

	s := New(d, a, render.NewRenderer(surf, layout, highlight, interval))
	s.SetLabel(strings.TrimSpace(cfg.Algorithm))
	return s, nil
}

// NewArray builds the bar array described by cfg. Explicit heights win over
// random generation; a zero seed draws from the clock.
func NewArray(cfg *config.Config) (*bars.Array, error) {
	if len(cfg.Heights) > 0 {
		return bars.FromHeights(cfg.Heights)
	}
	if cfg.Seed == 0 {
		return bars.NewRandom(cfg.Bars.Count, cfg.Bars.MinHeight, cfg.Bars.MaxHeight)
	}
	return bars.New(cfg.Bars.Count, cfg.Bars.MinHeight, cfg.Bars.MaxHeight, cfg.Seed)
}
