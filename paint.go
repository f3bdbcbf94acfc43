package aspen

// PaintOp identifies the kind of paint command.
type PaintOp uint8

const (
	OpLine      PaintOp = iota // stroked polyline through Points
	OpCircle                   // filled or stroked circle (Circle field)
	OpShape                    // closed polygon through Points
	OpText                     // single line of text (Text + Props)
	OpTextLines                // multiple lines of text (Lines + Props)
)

// CircleSpec describes a circle in the emitting node's local space.
type CircleSpec struct {
	X, Y   float64 // center
	Radius float64
	Color  Color
	Filled bool
	// StrokeWidth applies when Filled is false; 0 means a 1px hairline.
	StrokeWidth float64
}

// ShapeSpec describes a closed polygon in the emitting node's local space.
// The last point connects back to the first.
type ShapeSpec struct {
	Points []Point
	Color  Color
	Filled bool
	// StrokeWidth applies when Filled is false; 0 means a 1px hairline.
	StrokeWidth float64
}

// TextProps carries the placement and style data for text commands. Font
// resolution and metrics are the backend's responsibility; the buffer does
// no validation beyond structural shape.
type TextProps struct {
	X, Y  float64 // baseline-left anchor in local space
	Size  float64 // point size; 0 means the backend default
	Color Color   // zero value means the backend default (white)
	Align TextAlign
	// LineHeight is the per-line advance for OpTextLines;
	// 0 lets the backend derive it from Size.
	LineHeight float64
}

// PaintCommand is a single paint instruction. One flat record covers all
// ops; which fields are meaningful depends on Op.
type PaintCommand struct {
	Op          PaintOp
	Points      []Point // OpLine, OpShape
	Color       Color   // OpLine, OpShape
	StrokeWidth float64 // OpLine, OpShape (0 = hairline)
	Filled      bool    // OpShape
	Circle      CircleSpec
	Text        string   // OpText
	Lines       []string // OpTextLines
	Props       TextProps
}

const defaultCommandCap = 64

// PaintBuffer accumulates the paint commands one Render call emits.
// Builder methods append and return the buffer, so calls chain:
//
//	t.Line(pts, color).Circle(spec).Text("hi", props)
//
// The buffer is append-only during a render; the Stage snapshots it via
// RenderProps after each node and clears it before the next, so commands
// never alias across nodes or frames.
type PaintBuffer struct {
	cmds []PaintCommand
}

// NewPaintBuffer creates a buffer with the usual preallocated capacity.
func NewPaintBuffer() *PaintBuffer {
	return &PaintBuffer{cmds: make([]PaintCommand, 0, defaultCommandCap)}
}

// Line appends a stroked polyline through points.
func (b *PaintBuffer) Line(points []Point, color Color) *PaintBuffer {
	b.cmds = append(b.cmds, PaintCommand{Op: OpLine, Points: points, Color: color})
	return b
}

// Circle appends a circle command.
func (b *PaintBuffer) Circle(spec CircleSpec) *PaintBuffer {
	b.cmds = append(b.cmds, PaintCommand{Op: OpCircle, Circle: spec})
	return b
}

// Shape appends a closed polygon command.
func (b *PaintBuffer) Shape(spec ShapeSpec) *PaintBuffer {
	b.cmds = append(b.cmds, PaintCommand{
		Op:          OpShape,
		Points:      spec.Points,
		Color:       spec.Color,
		Filled:      spec.Filled,
		StrokeWidth: spec.StrokeWidth,
	})
	return b
}

// Text appends a single-line text command.
func (b *PaintBuffer) Text(s string, props TextProps) *PaintBuffer {
	b.cmds = append(b.cmds, PaintCommand{Op: OpText, Text: s, Props: props})
	return b
}

// TextLines appends a multi-line text command.
func (b *PaintBuffer) TextLines(lines []string, props TextProps) *PaintBuffer {
	b.cmds = append(b.cmds, PaintCommand{Op: OpTextLines, Lines: lines, Props: props})
	return b
}

// RenderProps returns a stable snapshot of the accumulated, ordered command
// list. Returns nil when nothing was emitted. The snapshot is safe to keep
// after the buffer is reset.
func (b *PaintBuffer) RenderProps() []PaintCommand {
	if len(b.cmds) == 0 {
		return nil
	}
	return append([]PaintCommand(nil), b.cmds...)
}

// Len returns the number of accumulated commands.
func (b *PaintBuffer) Len() int {
	return len(b.cmds)
}

// reset truncates the buffer for reuse, keeping its capacity.
func (b *PaintBuffer) reset() {
	b.cmds = b.cmds[:0]
}

// RenderTools is what a node's Render receives: the paint buffer for the
// current render call.
type RenderTools struct {
	*PaintBuffer
}
