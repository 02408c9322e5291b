package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/render"
)

// Canvas is a terminal drawing surface. Every cell holds two vertical
// sub-pixels drawn with an upper half block, so the canvas is Width x
// Height*2 pixels.
type Canvas struct {
	Width, Height int

	top, bottom [][]color.RGBA

	label            string
	labelFg, labelBg color.RGBA
	presented        int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		top:    make([][]color.RGBA, h),
		bottom: make([][]color.RGBA, h),
	}
	for i := range c.top {
		c.top[i] = make([]color.RGBA, w)
		c.bottom[i] = make([]color.RGBA, w)
	}
	return c
}

// Set colours the pixel at (x, y), where y counts sub-pixels.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height*2 {
		return
	}
	if y%2 == 0 {
		c.top[y/2][x] = col
	} else {
		c.bottom[y/2][x] = col
	}
}

func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height*2 {
		return color.RGBA{}
	}
	if y%2 == 0 {
		return c.top[y/2][x]
	}
	return c.bottom[y/2][x]
}

func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.top {
		for j := range c.top[i] {
			c.top[i][j] = bg
			c.bottom[i][j] = bg
		}
	}
	c.label = ""
}

func (c *Canvas) FillRect(r render.Rect, col color.RGBA) {
	x0, x1 := int(math.Round(r.X)), int(math.Round(r.X+r.W))
	y0, y1 := int(math.Round(r.Y)), int(math.Round(r.Y+r.H))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// DrawLabel keeps the label for the header line; cells are too coarse for
// text.
func (c *Canvas) DrawLabel(text string, _ render.Point, fg, bg color.RGBA) {
	c.label, c.labelFg, c.labelBg = text, fg, bg
}

func (c *Canvas) Present() error {
	c.presented++
	return nil
}

func (c *Canvas) Presented() int { return c.presented }

// Label renders the last drawn label in its colours, or "".
func (c *Canvas) Label() string {
	if c.label == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(render.Hex(c.labelFg))).
		Background(lipgloss.Color(render.Hex(c.labelBg))).
		Render(c.label)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		start := 0
		for x := 1; x <= c.Width; x++ {
			if x < c.Width && c.top[row][x] == c.top[row][start] && c.bottom[row][x] == c.bottom[row][start] {
				continue
			}
			b.WriteString(cellStyle(c.top[row][start], c.bottom[row][start]).Render(strings.Repeat("▀", x-start)))
			start = x
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellStyle(top, bottom color.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.Hex(top))).
		Background(lipgloss.Color(render.Hex(bottom)))
}

// TerminalLayout fits n bars into a rows-high terminal canvas: one column
// per bar, a gap column while the row stays narrow enough, and heights
// scaled so maxHeight fills most of the canvas.
func TerminalLayout(n, maxHeight, rows int) render.Layout {
	spacing := 1.0
	if n > 60 {
		spacing = 0
	}
	l := render.Layout{
		CanvasWidth:  float64(n)*(1+spacing) + 2,
		CanvasHeight: float64(rows * 2),
		BarWidth:     1,
		Spacing:      spacing,
		Scale:        1,
	}
	return l.FitHeight(maxHeight, 0.95)
}
