package render

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestImageSurface_DrawsBars(t *testing.T) {
	s := NewImageSurface(800, 600, nil)
	r := NewRenderer(s, DefaultLayout(), red, 0)

	if err := r.RenderFrame([]int{100, 200}, []int{1}, ""); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img := s.Image()
	// Two bars of width 10 + 2 spacing are centred: x = 388 and 400.
	if got := img.RGBAAt(393, 300); got != ColNeutral {
		t.Errorf("bar 0 pixel = %v, want neutral", got)
	}
	if got := img.RGBAAt(405, 300); got != red {
		t.Errorf("bar 1 pixel = %v, want highlight", got)
	}
	if got := img.RGBAAt(393, 240); got != ColBackground {
		t.Errorf("above bar 0 = %v, want background", got)
	}
	if got := img.RGBAAt(405, 240); got != red {
		t.Errorf("bar 1 should reach y=200, got %v", got)
	}
	if s.Presented() != 1 {
		t.Errorf("Presented() = %d", s.Presented())
	}
}

func TestImageSurface_OnPresent(t *testing.T) {
	s := NewImageSurface(40, 30, nil)
	var got []*image.RGBA
	s.OnPresent = func(img *image.RGBA) error {
		got = append(got, img)
		return nil
	}
	s.Clear(color.RGBA{A: 255})
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != s.Image() {
		t.Errorf("OnPresent not called with the surface image")
	}
}

func TestImageSurface_ClipsRects(t *testing.T) {
	s := NewImageSurface(10, 10, nil)
	s.Clear(ColBackground)
	s.FillRect(Rect{X: -5, Y: -5, W: 8, H: 8}, red)
	s.FillRect(Rect{X: 50, Y: 50, W: 8, H: 8}, red)

	if s.Image().RGBAAt(0, 0) != red {
		t.Error("expected clipped fill at origin")
	}
	if s.Image().RGBAAt(5, 5) != ColBackground {
		t.Error("fill leaked past its rect")
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace("", DefaultLabelSize)
	if err != nil {
		t.Fatalf("bundled font: %v", err)
	}

	s := NewImageSurface(200, 100, face)
	s.Clear(ColBackground)
	s.DrawLabel("bubble", Point{X: 100, Y: 50}, ColLabelDark, red)
	if s.Image().RGBAAt(100, 50) == ColBackground {
		t.Error("label not drawn at its centre")
	}

	_, err = LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	if !errors.Is(err, ErrAssetLoad) {
		t.Errorf("expected ErrAssetLoad, got %v", err)
	}
}
