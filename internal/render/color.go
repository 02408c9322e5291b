package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	ColBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColNeutral    = color.RGBA{A: 255}
	ColLabelDark  = color.RGBA{A: 255}
	ColLabelLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ParseColor accepts a CSS colour name ("red", "cornflowerblue"), a hex code
// ("#f00", "#ff8800") or an r,g,b triple ("255,136,0" or "(255, 136, 0)").
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrUnknownColor)
	}

	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}

	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	v = strings.Trim(v, "()")
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q: component %q", ErrUnknownColor, s, p)
		}
		rgb[i] = uint8(n)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LabelColor picks black or white text for a label drawn on bg.
func LabelColor(bg color.RGBA) color.RGBA {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return ColLabelDark
	}
	l, _, _ := c.Lab()
	if l < 0.5 {
		return ColLabelLight
	}
	return ColLabelDark
}
