package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultLabelSize matches the 32px title of the window front end.
const DefaultLabelSize = 32

// LoadFace parses the TrueType font at path, or the bundled Go Regular font
// when path is empty.
func LoadFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", ErrAssetLoad, path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: face %q: %w", ErrAssetLoad, path, err)
	}
	return face, nil
}

// ImageSurface draws into an in-memory RGBA image. It is the headless
// surface used for recording and tests.
type ImageSurface struct {
	img  *image.RGBA
	face font.Face

	// OnPresent, when set, receives the image after each Present. The image
	// is reused for the next frame.
	OnPresent func(img *image.RGBA) error

	presented int
}

// NewImageSurface creates a w x h surface. A nil face skips label text and
// only draws the label background.
func NewImageSurface(w, h int, face font.Face) *ImageSurface {
	return &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: face,
	}
}

func (s *ImageSurface) Image() *image.RGBA { return s.img }

func (s *ImageSurface) Presented() int { return s.presented }

func (s *ImageSurface) Clear(bg color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (s *ImageSurface) FillRect(r Rect, c color.RGBA) {
	rect := image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(s.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *ImageSurface) DrawLabel(text string, center Point, fg, bg color.RGBA) {
	if s.face == nil {
		s.FillRect(Rect{X: center.X - 40, Y: center.Y - 10, W: 80, H: 20}, bg)
		return
	}

	m := s.face.Metrics()
	width := font.MeasureString(s.face, text).Round()
	ascent, descent := m.Ascent.Round(), m.Descent.Round()
	x := int(math.Round(center.X)) - width/2
	top := int(math.Round(center.Y)) - (ascent+descent)/2

	s.FillRect(Rect{X: float64(x), Y: float64(top), W: float64(width), H: float64(ascent + descent)}, bg)

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(fg),
		Face: s.face,
		Dot:  fixed.P(x, top+ascent),
	}
	d.DrawString(text)
}

func (s *ImageSurface) Present() error {
	s.presented++
	if s.OnPresent != nil {
		return s.OnPresent(s.img)
	}
	return nil
}
