package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/render"
)

// Theme defines the terminal colours. Background and Bars also feed the
// renderer; the highlight colour always comes from the configuration.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Bars       lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Background: lipgloss.Color("#ffffff"),
		Bars:       lipgloss.Color("#000000"),
		Primary:    lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#000000"),
		Bars:       lipgloss.Color("#cccccc"),
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"), // deep blue
		Bars:       lipgloss.Color("#4488aa"),
		Primary:    lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	ThemeForest = Theme{
		Name:       "forest",
		Background: lipgloss.Color("#001100"),
		Bars:       lipgloss.Color("#00cc00"), // green phosphor
		Primary:    lipgloss.Color("#00ff00"),
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Bars:       lipgloss.Color("#feca57"),
		Primary:    lipgloss.Color("#ff6b6b"), // coral
		Accent:     lipgloss.Color("#ff9ff3"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeMinimal,
		ThemeOcean,
		ThemeForest,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Apply sets the renderer's background and neutral bar colours.
func (t Theme) Apply(r *render.Renderer) {
	r.Background = themeColor(t.Background, render.ColBackground)
	r.Neutral = themeColor(t.Bars, render.ColNeutral)
}

func themeColor(c lipgloss.Color, fallback color.RGBA) color.RGBA {
	rgba, err := render.ParseColor(string(c))
	if err != nil {
		return fallback
	}
	return rgba
}
