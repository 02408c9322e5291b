package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"
)

// DefaultFinalHold keeps the sorted frame on screen before the GIF loops.
const DefaultFinalHold = 2 * time.Second

// GIFRecorder collects presented frames into an animated GIF. Capture has
// the signature of render.ImageSurface.OnPresent.
type GIFRecorder struct {
	// Every keeps one frame out of Every presented frames. Values below 1
	// keep all of them.
	Every int
	// Delay between kept frames, rounded to GIF centiseconds.
	Delay time.Duration
	// FinalHold is the delay of the frame added by CaptureFinal.
	FinalHold time.Duration

	palette color.Palette
	anim    gif.GIF
	seen    int
}

// NewGIFRecorder builds a recorder whose palette holds the given colours
// followed by a gray ramp for antialiased label text.
func NewGIFRecorder(every int, delay time.Duration, colors ...color.Color) *GIFRecorder {
	p := make(color.Palette, 0, len(colors)+16)
	p = append(p, colors...)
	for i := 0; i < 16; i++ {
		v := uint8(i * 17)
		p = append(p, color.RGBA{R: v, G: v, B: v, A: 255})
	}
	return &GIFRecorder{
		Every:     every,
		Delay:     delay,
		FinalHold: DefaultFinalHold,
		palette:   p,
		anim:      gif.GIF{LoopCount: 0},
	}
}

func (r *GIFRecorder) Capture(img *image.RGBA) error {
	r.seen++
	if r.Every > 1 && (r.seen-1)%r.Every != 0 {
		return nil
	}
	r.add(img, r.Delay)
	return nil
}

// CaptureFinal always keeps img, held for FinalHold.
func (r *GIFRecorder) CaptureFinal(img *image.RGBA) error {
	r.add(img, r.FinalHold)
	return nil
}

func (r *GIFRecorder) add(img *image.RGBA, delay time.Duration) {
	p := image.NewPaletted(img.Bounds(), r.palette)
	draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)
	r.anim.Image = append(r.anim.Image, p)
	r.anim.Delay = append(r.anim.Delay, centiseconds(delay))
}

func centiseconds(d time.Duration) int {
	cs := int(d / (10 * time.Millisecond))
	if cs < 2 {
		// viewers clamp delays below 2cs
		return 2
	}
	return cs
}

// Frames is the number of frames kept so far.
func (r *GIFRecorder) Frames() int { return len(r.anim.Image) }

// Seen is the number of frames offered to Capture.
func (r *GIFRecorder) Seen() int { return r.seen }

func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &r.anim)
}

func (r *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
