package gui

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sim"
)

const Title = "Sorting Algo Visualiser"

// raylib must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

// Options describe the window a Session is shown in.
type Options struct {
	Width, Height int
	FontPath      string
	FontSize      float32
	TargetFPS     int
}

// App owns the raylib window for the lifetime of one visualisation.
type App struct {
	Surface *Surface

	opts   Options
	logger *log.Logger
	custom bool
}

// initWindow opens the window and disables the default exit key so only the
// close button ends the run.
func initWindow(opts Options) {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), Title)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	rl.SetExitKey(0)
}

// loadFont loads the label font. An empty path selects raylib's built-in
// font. A missing or unreadable file is an asset error.
func loadFont(path string, size float32) (rl.Font, bool, error) {
	if path == "" {
		return rl.GetFontDefault(), false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, false, fmt.Errorf("%w: %w", render.ErrAssetLoad, err)
	}
	font := rl.LoadFontEx(path, int32(size), nil, 0)
	if font.BaseSize == 0 || font.Texture.ID == 0 {
		return rl.Font{}, false, fmt.Errorf("%w: %s: not a usable font", render.ErrAssetLoad, path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true, nil
}

// NewApp opens the window and loads the font. Close must be called when
// done.
func NewApp(opts Options, logger *log.Logger) (*App, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = render.DefaultLabelSize
	}

	initWindow(opts)
	font, custom, err := loadFont(opts.FontPath, opts.FontSize)
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}
	logger.Debug("window open", "width", opts.Width, "height", opts.Height, "font", opts.FontPath)

	return &App{
		Surface: &Surface{Font: font, FontSize: opts.FontSize, Spacing: 1},
		opts:    opts,
		logger:  logger,
		custom:  custom,
	}, nil
}

// Run drives s in the window until the user closes it.
func (a *App) Run(ctx context.Context, s *sim.Session, cfg sim.Config) (*sim.Result, error) {
	return s.Run(ctx, a.Surface, cfg)
}

func (a *App) Close() {
	if a.custom {
		rl.UnloadFont(a.Surface.Font)
	}
	rl.CloseWindow()
	a.logger.Debug("window closed")
}
