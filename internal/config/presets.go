package config

import (
	"sort"
	"time"

	"github.com/san-kum/sortviz/internal/render"
)

// Presets are complete configurations selectable with --preset.
var Presets = map[string]*Config{
	"classic": {
		Algorithm: "bubble", Color: "red", Theme: "classic",
		Bars:          BarsConfig{Count: 50, MinHeight: 10, MaxHeight: 300},
		Canvas:        render.DefaultLayout(),
		FrameInterval: time.Millisecond, IdleInterval: 16 * time.Millisecond,
	},
	"dense": {
		Algorithm: "insertion", Color: "cornflowerblue", Theme: "ocean",
		Bars: BarsConfig{Count: 150, MinHeight: 5, MaxHeight: 400},
		Canvas: render.Layout{
			CanvasWidth: 1200, CanvasHeight: 800, BarWidth: 6, Spacing: 1, Scale: 1, LabelY: 40,
		},
		FrameInterval: 0, IdleInterval: 16 * time.Millisecond,
	},
	"tiny": {
		Algorithm: "selection", Color: "seagreen", Theme: "forest",
		Bars: BarsConfig{Count: 12, MinHeight: 20, MaxHeight: 200},
		Canvas: render.Layout{
			CanvasWidth: 400, CanvasHeight: 300, BarWidth: 20, Spacing: 4, Scale: 1, LabelY: 30,
		},
		FrameInterval: 50 * time.Millisecond, IdleInterval: 16 * time.Millisecond,
	},
	"slow": {
		Algorithm: "bubble", Color: "orange", Theme: "classic",
		Bars:          BarsConfig{Count: 20, MinHeight: 10, MaxHeight: 300},
		Canvas:        render.DefaultLayout(),
		FrameInterval: 200 * time.Millisecond, IdleInterval: 50 * time.Millisecond,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
