package render

import (
	"image/color"
	"time"
)

// DefaultFrameInterval keeps each step on screen long enough to follow.
const DefaultFrameInterval = time.Millisecond

// Surface is a drawing target. Clear starts a frame and Present shows it.
type Surface interface {
	Clear(bg color.RGBA)
	FillRect(r Rect, c color.RGBA)
	DrawLabel(text string, center Point, fg, bg color.RGBA)
	Present() error
}

// Frame is one rendered snapshot of the bar array.
type Frame struct {
	Heights   []int
	Highlight []int
	Label     string
}

// Renderer draws frames onto a Surface and paces them.
type Renderer struct {
	Surface    Surface
	Layout     Layout
	Highlight  color.RGBA
	Neutral    color.RGBA
	Background color.RGBA

	// MinFrameInterval is slept after every presented frame. Zero disables
	// pacing.
	MinFrameInterval time.Duration
	Sleep            func(time.Duration)

	frames int
}

func NewRenderer(s Surface, layout Layout, highlight color.RGBA, interval time.Duration) *Renderer {
	return &Renderer{
		Surface:          s,
		Layout:           layout,
		Highlight:        highlight,
		Neutral:          ColNeutral,
		Background:       ColBackground,
		MinFrameInterval: interval,
		Sleep:            time.Sleep,
	}
}

// Render clears the surface, draws the label and every bar, presents the
// frame and then blocks for MinFrameInterval. Bars whose index is in
// f.Highlight use the highlight colour.
func (r *Renderer) Render(f Frame) error {
	r.Surface.Clear(r.Background)
	if f.Label != "" {
		r.Surface.DrawLabel(f.Label, r.Layout.LabelCenter(), LabelColor(r.Highlight), r.Highlight)
	}

	n := len(f.Heights)
	for k, h := range f.Heights {
		c := r.Neutral
		if highlighted(f.Highlight, k) {
			c = r.Highlight
		}
		r.Surface.FillRect(r.Layout.BarRect(k, n, h), c)
	}

	if err := r.Surface.Present(); err != nil {
		return err
	}
	r.frames++

	if r.MinFrameInterval > 0 && r.Sleep != nil {
		r.Sleep(r.MinFrameInterval)
	}
	return nil
}

// RenderFrame is Render with the frame fields passed separately.
func (r *Renderer) RenderFrame(heights, highlight []int, label string) error {
	return r.Render(Frame{Heights: heights, Highlight: highlight, Label: label})
}

// Frames is the number of frames presented so far.
func (r *Renderer) Frames() int { return r.frames }

func highlighted(set []int, k int) bool {
	for _, i := range set {
		if i == k {
			return true
		}
	}
	return false
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear(color.RGBA)                                {}
func (discard) FillRect(Rect, color.RGBA)                       {}
func (discard) DrawLabel(string, Point, color.RGBA, color.RGBA) {}
func (discard) Present() error                                  { return nil }
