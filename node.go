package aspen

// Drawable is the capability every scene-graph participant satisfies. The
// engine traverses Drawables; concrete node kinds embed Node and override
// whichever methods they need. Dispatch always happens through this
// interface, never through the embedded base, so overrides take effect
// everywhere the Stage touches a node.
type Drawable interface {
	// Base exposes the shared Node state (geometry, signals, parent link).
	Base() *Node
	// Render appends this node's paint commands to the supplied tools.
	// It must not mutate the tree.
	Render(t *RenderTools)
	// HitTest receives a pointer position already transformed into this
	// node's local coordinate space and reports whether the node owns it.
	HitTest(x, y float64) bool
	// UpdateLayout recomputes layout-derived geometry. The Stage calls it
	// depth-first, children before parents.
	UpdateLayout()
	// Dispose releases the node's listener lists and any owned resources.
	// Must be idempotent.
	Dispose()
}

// Branch is the capability implemented by drawables that own an ordered
// child sequence. Traversal code uses it to tell sub-trees from leaves.
type Branch interface {
	Drawable
	Children() []Drawable
}

// IsContainer reports whether d exposes the container capability set.
func IsContainer(d Drawable) bool {
	_, ok := d.(Branch)
	return ok
}

// Node is the base drawable unit of the scene graph. Identity is pointer
// identity: two Drawables are the same node exactly when their Base pointers
// are equal. The zero value is usable; embed Node in a concrete type and set
// fields directly.
//
// Geometry fields are plain value stores. Changing them does NOT emit
// Updated — invalidation is opt-in. A node that wants redraw-on-resize emits
// from its own setter (see Box.SetSize) or calls Invalidate directly.
type Node struct {
	// Position relative to the parent's origin.
	X, Y float64
	// Bounding size. Default 0; does not auto-resize visuals.
	Width, Height float64
	// Name is an optional label for debugging. Not unique.
	Name string
	// Cursor is the pointer-shape hint shown while this node is hovered.
	Cursor Cursor
	// HitTestInBounds opts the default HitTest into the node's rectangle.
	// When false (the default) the node is transparent to pointer routing
	// unless HitTest is overridden.
	HitTestInBounds bool

	parent   *Container
	disposed bool

	click     *Signal[PointerEvent]
	mouseMove *Signal[PointerEvent]
	mouseOver *Signal[PointerEvent]
	mouseOut  *Signal[PointerEvent]
	updated   *Signal[struct{}]
}

// NewNode creates a plain node. Mostly useful in tests; real scenes use
// concrete kinds (Box, Disc, Label, Container) or client types embedding Node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Base returns the node itself, satisfying the Drawable capability.
func (n *Node) Base() *Node { return n }

// Parent returns the owning container, or nil when detached. The reference
// is a relation, not ownership; it is cleared on detach.
func (n *Node) Parent() *Container { return n.parent }

// --- Signals (allocated on first use) ---

// Click fires when a click sample routes to this node.
func (n *Node) Click() *Signal[PointerEvent] {
	if n.click == nil {
		n.click = NewSignal[PointerEvent]()
	}
	return n.click
}

// MouseMove fires on every move sample routed to this node.
func (n *Node) MouseMove() *Signal[PointerEvent] {
	if n.mouseMove == nil {
		n.mouseMove = NewSignal[PointerEvent]()
	}
	return n.mouseMove
}

// MouseOver fires once when the pointer enters this node.
func (n *Node) MouseOver() *Signal[PointerEvent] {
	if n.mouseOver == nil {
		n.mouseOver = NewSignal[PointerEvent]()
	}
	return n.mouseOver
}

// MouseOut fires once when the pointer leaves this node.
func (n *Node) MouseOut() *Signal[PointerEvent] {
	if n.mouseOut == nil {
		n.mouseOut = NewSignal[PointerEvent]()
	}
	return n.mouseOut
}

// Updated is the opt-in invalidation signal. A Stage that has registered
// this node listens on it and re-runs the frame protocol when it fires.
func (n *Node) Updated() *Signal[struct{}] {
	if n.updated == nil {
		n.updated = NewSignal[struct{}]()
	}
	return n.updated
}

// Invalidate emits Updated, requesting a redraw from any registering Stage.
func (n *Node) Invalidate() {
	n.Updated().Emit(struct{}{})
}

// --- Drawable defaults ---

// Render is a no-op on the base node.
func (n *Node) Render(t *RenderTools) {}

// HitTest reports whether (x, y), in local coordinates, hits this node.
// The default only ever hits when HitTestInBounds is set.
func (n *Node) HitTest(x, y float64) bool {
	if !n.HitTestInBounds {
		return false
	}
	return x >= 0 && x <= n.Width && y >= 0 && y <= n.Height
}

// UpdateLayout is a no-op on a plain node.
func (n *Node) UpdateLayout() {}

// Dispose releases the node's signal listener lists and detaches it from its
// parent. Safe to call more than once.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.RemoveFromParent()
	n.clearSignals()
}

// IsDisposed reports whether Dispose has run on this node.
func (n *Node) IsDisposed() bool { return n.disposed }

// RemoveFromParent detaches this node from its owning container.
// No-op when already detached.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.removeByBase(n)
	n.parent = nil
}

func (n *Node) clearSignals() {
	if n.click != nil {
		n.click.Clear()
		n.click = nil
	}
	if n.mouseMove != nil {
		n.mouseMove.Clear()
		n.mouseMove = nil
	}
	if n.mouseOver != nil {
		n.mouseOver.Clear()
		n.mouseOver = nil
	}
	if n.mouseOut != nil {
		n.mouseOut.Clear()
		n.mouseOut = nil
	}
	if n.updated != nil {
		n.updated.Clear()
		n.updated = nil
	}
}

// isAncestor reports whether candidate appears on node's parent chain,
// node itself included.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; {
		if p == candidate {
			return true
		}
		if p.parent == nil {
			return false
		}
		p = &p.parent.Node
	}
	return false
}
