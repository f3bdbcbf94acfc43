package aspen

// FrameCommand pairs one node's paint output with the node's origin in
// surface coordinates. A frame is an ordered sequence of these, depth-first
// pre-order: a container's own visuals come before its children, children in
// insertion order.
type FrameCommand struct {
	Origin   Point
	Commands []PaintCommand
}

// Surface is the external painting backend the Stage drives. Bit-for-bit
// drawing fidelity is its responsibility, not the engine's.
//
// Present receives the frame's full ordered command stream once per update.
// The implementation must not retain the slice past the call — the Stage
// reuses it for the next frame.
type Surface interface {
	Clear()
	Resize(width, height float64)
	Present(frame []FrameCommand)
}
