package aspen

// Stack arrangers: containers that reposition their children before the
// encompassing-box computation runs. They demonstrate the UpdateLayout
// override seam — the stage still drives the call bottom-up, so children
// carry their final sizes by the time the arranger runs.

// VStack lays children out top-to-bottom with Gap pixels between them.
// Children keep their own X.
type VStack struct {
	Container
	Gap float64
}

// NewVStack creates a vertical arranger.
func NewVStack(name string, gap float64) *VStack {
	v := &VStack{Gap: gap}
	v.Name = name
	return v
}

// UpdateLayout repositions children, then grows to enclose them.
func (v *VStack) UpdateLayout() {
	y := 0.0
	for _, d := range v.Children() {
		b := d.Base()
		b.Y = y
		y += b.Height + v.Gap
	}
	v.Container.UpdateLayout()
}

// HStack lays children out left-to-right with Gap pixels between them.
// Children keep their own Y.
type HStack struct {
	Container
	Gap float64
}

// NewHStack creates a horizontal arranger.
func NewHStack(name string, gap float64) *HStack {
	h := &HStack{Gap: gap}
	h.Name = name
	return h
}

// UpdateLayout repositions children, then grows to enclose them.
func (h *HStack) UpdateLayout() {
	x := 0.0
	for _, d := range h.Children() {
		b := d.Base()
		b.X = x
		x += b.Width + h.Gap
	}
	h.Container.UpdateLayout()
}
