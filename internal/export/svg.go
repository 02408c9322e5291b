package export

import (
	"fmt"
	"html"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/sortviz/internal/render"
)

// SVGSurface is a render.Surface that writes each frame as an SVG document.
// The document of the last presented frame is kept.
type SVGSurface struct {
	Width, Height float64
	// FontSize of the label text.
	FontSize float64

	sb        strings.Builder
	doc       string
	presented int
}

func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{Width: width, Height: height, FontSize: render.DefaultLabelSize}
}

func (s *SVGSurface) Clear(bg color.RGBA) {
	s.sb.Reset()
	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, render.Hex(bg)))
}

func (s *SVGSurface) FillRect(r render.Rect, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, r.X, r.Y, r.W, r.H, render.Hex(c)))
}

func (s *SVGSurface) DrawLabel(text string, center render.Point, fg, bg color.RGBA) {
	// rough box; the viewer lays out the actual glyphs
	w := float64(len(text)) * s.FontSize * 0.6
	h := s.FontSize * 1.2
	s.FillRect(render.Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}, bg)
	s.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>
`, center.X, center.Y, s.FontSize, render.Hex(fg), html.EscapeString(text)))
}

func (s *SVGSurface) Present() error {
	s.sb.WriteString("</svg>")
	s.doc = s.sb.String()
	s.presented++
	return nil
}

// String returns the last presented document, or "" before any frame.
func (s *SVGSurface) String() string { return s.doc }

func (s *SVGSurface) Presented() int { return s.presented }

func (s *SVGSurface) Save(path string) error {
	if s.doc == "" {
		return ErrNoFrames
	}
	return os.WriteFile(path, []byte(s.doc), 0644)
}

// SeriesToSVG plots values in [0, 1] against their index as a polyline,
// e.g. a sortedness history.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	pad := float64(height) * 0.05
	plotH := float64(height) - 2*pad
	last := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		x := float64(i) / last * float64(width)
		y := pad + (1-v)*plotH

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
