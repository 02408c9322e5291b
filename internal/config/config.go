package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm     = "bubble"
	DefaultColor         = "red"
	DefaultTheme         = "classic"
	DefaultIdleInterval  = 16 * time.Millisecond
	DefaultFrameInterval = render.DefaultFrameInterval
)

type Config struct {
	Algorithm     string        `yaml:"algorithm"`
	Color         string        `yaml:"color"`
	Bars          BarsConfig    `yaml:"bars"`
	Seed          int64         `yaml:"seed"`
	Heights       []int         `yaml:"heights,omitempty"` // replaces the random array when set
	Canvas        render.Layout `yaml:"canvas"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	IdleInterval  time.Duration `yaml:"idle_interval"`
	FontPath      string        `yaml:"font"`
	Theme         string        `yaml:"theme"`
}

type BarsConfig struct {
	Count     int `yaml:"count"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// Error reports a configuration value that cannot be used.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Color:     DefaultColor,
		Bars: BarsConfig{
			Count:     bars.DefaultCount,
			MinHeight: bars.DefaultMinHeight,
			MaxHeight: bars.DefaultMaxHeight,
		},
		Canvas:        render.DefaultLayout(),
		FrameInterval: DefaultFrameInterval,
		IdleInterval:  DefaultIdleInterval,
		Theme:         DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field a session is built from. The first problem
// found is returned as an *Error.
func (c *Config) Validate() error {
	if _, err := sorting.NewRegistry().Resolve(c.Algorithm); err != nil {
		return &Error{Field: "algorithm", Reason: err.Error()}
	}
	if _, err := render.ParseColor(c.Color); err != nil {
		return &Error{Field: "color", Reason: err.Error()}
	}

	switch {
	case c.Bars.Count <= 0:
		return &Error{Field: "bars.count", Reason: fmt.Sprintf("must be positive, got %d", c.Bars.Count)}
	case c.Bars.MinHeight < 0:
		return &Error{Field: "bars.min_height", Reason: fmt.Sprintf("must not be negative, got %d", c.Bars.MinHeight)}
	case c.Bars.MinHeight > c.Bars.MaxHeight:
		return &Error{Field: "bars.max_height", Reason: fmt.Sprintf("%d is below min_height %d", c.Bars.MaxHeight, c.Bars.MinHeight)}
	}

	for i, h := range c.Heights {
		if h < 0 {
			return &Error{Field: "heights", Reason: fmt.Sprintf("negative height %d at index %d", h, i)}
		}
	}

	switch {
	case c.Canvas.CanvasWidth <= 0 || c.Canvas.CanvasHeight <= 0:
		return &Error{Field: "canvas", Reason: "width and height must be positive"}
	case c.Canvas.BarWidth <= 0:
		return &Error{Field: "canvas.bar_width", Reason: "must be positive"}
	case c.Canvas.Spacing < 0:
		return &Error{Field: "canvas.spacing", Reason: "must not be negative"}
	case c.Canvas.Scale < 0:
		return &Error{Field: "canvas.scale", Reason: "must not be negative"}
	}

	if c.FrameInterval < 0 {
		return &Error{Field: "frame_interval", Reason: "must not be negative"}
	}
	if c.IdleInterval < 0 {
		return &Error{Field: "idle_interval", Reason: "must not be negative"}
	}
	return nil
}

// HighlightColor parses Color. Call Validate first.
func (c *Config) HighlightColor() (color.RGBA, error) {
	return render.ParseColor(c.Color)
}
