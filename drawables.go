package aspen

import "strings"

// Concrete drawables. The engine itself only knows the Drawable capability;
// these kinds are the batteries shipped alongside it. Each demonstrates one
// override seam: Box opts into invalidating setters, Disc replaces the hit
// region, Label feeds the text ops.

// Box draws a solid or stroked rectangle covering the node's bounds. It is
// hit-testable by default.
type Box struct {
	Node
	Color  Color
	Filled bool
	// StrokeWidth applies when Filled is false; 0 means a 1px hairline.
	StrokeWidth float64
}

// NewBox creates a filled, hit-testable rectangle.
func NewBox(name string, width, height float64, color Color) *Box {
	b := &Box{Color: color, Filled: true}
	b.Name = name
	b.Width = width
	b.Height = height
	b.HitTestInBounds = true
	return b
}

// Render emits the rectangle as a closed shape.
func (b *Box) Render(t *RenderTools) {
	t.Shape(ShapeSpec{
		Points: []Point{
			{0, 0},
			{b.Width, 0},
			{b.Width, b.Height},
			{0, b.Height},
		},
		Color:       b.Color,
		Filled:      b.Filled,
		StrokeWidth: b.StrokeWidth,
	})
}

// SetSize stores the new bounds and emits Updated. This is the opt-in
// invalidation model: plain field writes never redraw, this setter does.
func (b *Box) SetSize(width, height float64) {
	b.Width = width
	b.Height = height
	b.Invalidate()
}

// SetColor stores the new color and emits Updated.
func (b *Box) SetColor(c Color) {
	b.Color = c
	b.Invalidate()
}

// Disc draws a circle of Radius centered at (Radius, Radius), so the node's
// bounds are the circle's bounding square.
type Disc struct {
	Node
	Radius float64
	Color  Color
	Filled bool
	// StrokeWidth applies when Filled is false; 0 means a 1px hairline.
	StrokeWidth float64
}

// NewDisc creates a filled circle.
func NewDisc(name string, radius float64, color Color) *Disc {
	d := &Disc{Radius: radius, Color: color, Filled: true}
	d.Name = name
	d.Width = radius * 2
	d.Height = radius * 2
	return d
}

// Render emits the circle command.
func (d *Disc) Render(t *RenderTools) {
	t.Circle(CircleSpec{
		X:           d.Radius,
		Y:           d.Radius,
		Radius:      d.Radius,
		Color:       d.Color,
		Filled:      d.Filled,
		StrokeWidth: d.StrokeWidth,
	})
}

// HitTest uses the circular area instead of the bounding box, so corners of
// the bounds fall through to whatever is underneath.
func (d *Disc) HitTest(x, y float64) bool {
	dx := x - d.Radius
	dy := y - d.Radius
	return dx*dx+dy*dy <= d.Radius*d.Radius
}

// SetRadius stores the new radius, updates the bounds, and emits Updated.
func (d *Disc) SetRadius(radius float64) {
	d.Radius = radius
	d.Width = radius * 2
	d.Height = radius * 2
	d.Invalidate()
}

// Label draws one or more lines of text anchored at the node origin. Text
// metrics belong to the backend, so the label's Width/Height are whatever
// the caller sets them to; they matter only for hit testing and layout.
type Label struct {
	Node
	Color Color
	Size  float64
	Align TextAlign
	// LineHeight is the per-line advance for multi-line text;
	// 0 lets the backend derive it from Size.
	LineHeight float64

	lines []string
}

// NewLabel creates a label. Newlines in text split it into lines.
func NewLabel(name, text string, size float64, color Color) *Label {
	l := &Label{Color: color, Size: size}
	l.Name = name
	l.lines = splitLines(text)
	return l
}

// SetText replaces the label's content and emits Updated.
func (l *Label) SetText(text string) {
	l.lines = splitLines(text)
	l.Invalidate()
}

// Text returns the label's content with lines rejoined by newlines.
func (l *Label) Text() string {
	return strings.Join(l.lines, "\n")
}

// Render emits a single text command, or a textLines command for multi-line
// content.
func (l *Label) Render(t *RenderTools) {
	props := TextProps{
		Size:       l.Size,
		Color:      l.Color,
		Align:      l.Align,
		LineHeight: l.LineHeight,
	}
	switch len(l.lines) {
	case 0:
	case 1:
		t.Text(l.lines[0], props)
	default:
		t.TextLines(l.lines, props)
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
