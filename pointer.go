package aspen

// Pointer routing. The host event source forwards raw samples in surface
// space; the stage resolves the topmost node under the cursor and drives the
// hover state machine. Hit-test priority is the reverse of paint order, so
// the last-drawn sibling wins when nodes overlap.

type sampleKind uint8

const (
	sampleMove sampleKind = iota
	sampleClick
)

// PointerMove routes a move sample at (x, y) in surface space. Hover
// transitions are edge-triggered: MouseOut fires once on the node being
// left, MouseOver once on the node being entered, and MouseMove on the
// current hit target for every sample.
func (st *Stage) PointerMove(x, y float64) {
	st.routePointer(x, y, sampleMove)
}

// PointerClick routes a click sample at (x, y) in surface space, emitting
// Click on the topmost hit node. Hover state is kept consistent first, so a
// click at a new position behaves like a move to it followed by the click.
func (st *Stage) PointerClick(x, y float64) {
	st.routePointer(x, y, sampleClick)
}

func (st *Stage) routePointer(x, y float64, kind sampleKind) {
	target := hitSearch(st, x, y)

	if !sameDrawable(target, st.hovered) {
		if old := st.hovered; old != nil {
			// Only nodes still on the stage get the exit event; a node
			// detached between samples is simply forgotten.
			if _, err := st.LocalToGlobal(old); err == nil {
				st.emitPointer(old, old.Base().MouseOut(), x, y)
			}
		}
		if target != nil {
			st.emitPointer(target, target.Base().MouseOver(), x, y)
		}
		st.hovered = target
	}

	if target == nil {
		return
	}
	switch kind {
	case sampleMove:
		st.emitPointer(target, target.Base().MouseMove(), x, y)
	case sampleClick:
		st.emitPointer(target, target.Base().Click(), x, y)
	}
}

// hitSearch finds the topmost drawable at (x, y), where the point is given
// in d's parent's coordinate space. Children are searched depth-first in
// reverse insertion order before the node itself is tested, so the visually
// topmost descendant claims the sample.
func hitSearch(d Drawable, x, y float64) Drawable {
	b := d.Base()
	lx, ly := x-b.X, y-b.Y
	if br, ok := d.(Branch); ok {
		children := br.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if hit := hitSearch(children[i], lx, ly); hit != nil {
				return hit
			}
		}
	}
	if d.HitTest(lx, ly) {
		return d
	}
	return nil
}

// sameDrawable compares two drawables by node identity.
func sameDrawable(a, b Drawable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base() == b.Base()
}

// emitPointer builds the event payload for d and fires sig. Local
// coordinates are derived from the node's global origin; for a node that is
// somehow off-stage they fall back to the global sample.
func (st *Stage) emitPointer(d Drawable, sig *Signal[PointerEvent], x, y float64) {
	lx, ly := x, y
	if origin, err := st.LocalToGlobal(d); err == nil {
		lx, ly = x-origin.X, y-origin.Y
	}
	sig.Emit(PointerEvent{
		Target:  d,
		GlobalX: x,
		GlobalY: y,
		LocalX:  lx,
		LocalY:  ly,
	})
}
