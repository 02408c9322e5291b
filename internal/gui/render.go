package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/render"
)

// Surface draws frames into the raylib window. Clear opens the raylib
// drawing block and Present closes it, which also swaps buffers and polls
// window events.
type Surface struct {
	Font     rl.Font
	FontSize float32
	Spacing  float32

	drawing bool
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) Clear(bg color.RGBA) {
	if !s.drawing {
		rl.BeginDrawing()
		s.drawing = true
	}
	rl.ClearBackground(toColor(bg))
}

func (s *Surface) FillRect(r render.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H)), toColor(c))
}

func (s *Surface) DrawLabel(text string, center render.Point, fg, bg color.RGBA) {
	size := rl.MeasureTextEx(s.Font, text, s.FontSize, s.Spacing)
	x := float32(center.X) - size.X/2
	y := float32(center.Y) - size.Y/2
	rl.DrawRectangleRec(rl.NewRectangle(x, y, size.X, size.Y), toColor(bg))
	rl.DrawTextEx(s.Font, text, rl.NewVector2(x, y), s.FontSize, s.Spacing, toColor(fg))
}

func (s *Surface) Present() error {
	if s.drawing {
		rl.EndDrawing()
		s.drawing = false
	}
	return nil
}

// CloseRequested reports whether the user closed the window. raylib updates
// it while presenting.
func (s *Surface) CloseRequested() bool {
	return rl.WindowShouldClose()
}
