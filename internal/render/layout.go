package render

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// Layout holds the geometry used to place bars on the canvas.
type Layout struct {
	CanvasWidth  float64 `yaml:"width"`
	CanvasHeight float64 `yaml:"height"`
	BarWidth     float64 `yaml:"bar_width"`
	Spacing      float64 `yaml:"spacing"`
	// Scale converts a bar height to canvas units. Zero means 1.
	Scale  float64 `yaml:"scale"`
	LabelY float64 `yaml:"label_y"`
}

func DefaultLayout() Layout {
	return Layout{
		CanvasWidth:  800,
		CanvasHeight: 600,
		BarWidth:     10,
		Spacing:      2,
		Scale:        1,
		LabelY:       50,
	}
}

// BarX is the left edge of bar k out of n; the whole row is centred
// horizontally.
func (l Layout) BarX(k, n int) float64 {
	return float64(k)*(l.BarWidth+l.Spacing) + (l.CanvasWidth-l.RowWidth(n))/2
}

func (l Layout) BarHeight(h int) float64 {
	if l.Scale == 0 {
		return float64(h)
	}
	return float64(h) * l.Scale
}

// BarY is the top edge of a bar of height h centred on the canvas midline.
func (l Layout) BarY(h int) float64 {
	return (l.CanvasHeight - l.BarHeight(h)) / 2
}

func (l Layout) BarRect(k, n, h int) Rect {
	return Rect{X: l.BarX(k, n), Y: l.BarY(h), W: l.BarWidth, H: l.BarHeight(h)}
}

func (l Layout) LabelCenter() Point {
	return Point{X: l.CanvasWidth / 2, Y: l.LabelY}
}

// RowWidth is the horizontal extent of n bars including spacing.
func (l Layout) RowWidth(n int) float64 {
	return float64(n) * (l.BarWidth + l.Spacing)
}

// FitHeight returns a copy of l scaled so a bar of maxHeight fills at most
// frac of the canvas height.
func (l Layout) FitHeight(maxHeight int, frac float64) Layout {
	if maxHeight <= 0 || frac <= 0 {
		return l
	}
	l.Scale = l.CanvasHeight * frac / float64(maxHeight)
	return l
}
