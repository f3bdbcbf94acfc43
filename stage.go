package aspen

import (
	"errors"
	"time"
)

// ErrNotOnStage is returned by Stage.LocalToGlobal for a node that is not
// currently reachable from the stage.
var ErrNotOnStage = errors.New("aspen: node is not reachable from this stage")

// Stage is the tree root and frame driver. It owns the link to the external
// painting surface, tracks the set of reachable nodes as of the last update,
// and records which node the pointer currently hovers.
//
// The stage is itself a container: all tree operations (AddChild, geometry,
// signals) apply to it directly.
//
// Everything here is single-threaded and synchronous. One update runs to
// completion before another may start; the host's loop decides when updates
// happen. Mutating the tree from within a Render, UpdateLayout, or signal
// listener of the current pass is the one reentrancy hazard to avoid.
type Stage struct {
	Container
	surface Surface

	// registered is the flattened reachable subtree as of the last update.
	registered map[*Node]Drawable
	// hovered is the node under the pointer, for hover-transition
	// detection. Reset when the node leaves the reachable set.
	hovered Drawable

	// Reused per-frame buffers.
	buf   PaintBuffer
	frame []FrameCommand
	reach []Drawable
	seen  map[*Node]struct{}

	updating     bool
	lastW, lastH float64
	debug        bool
}

// NewStage creates a stage of the given size driving the given surface.
// Panics if surface is nil — the stage is meaningless without one.
func NewStage(surface Surface, width, height float64) *Stage {
	if surface == nil {
		panic("aspen: stage requires a surface")
	}
	st := &Stage{
		surface:    surface,
		registered: make(map[*Node]Drawable),
		seen:       make(map[*Node]struct{}),
	}
	st.Name = "stage"
	st.Width = width
	st.Height = height
	st.buf.cmds = make([]PaintCommand, 0, defaultCommandCap)
	st.frame = make([]FrameCommand, 0, defaultCommandCap)
	return st
}

// Surface returns the painting backend this stage drives.
func (st *Stage) Surface() Surface { return st.surface }

// Hovered returns the node currently under the pointer, or nil.
func (st *Stage) Hovered() Drawable { return st.hovered }

// HoverCursor returns the cursor hint of the hovered node, falling back to
// CursorDefault when nothing is hovered or the node declares no hint.
func (st *Stage) HoverCursor() Cursor {
	if st.hovered != nil {
		if c := st.hovered.Base().Cursor; c != "" {
			return c
		}
	}
	return CursorDefault
}

// Update runs the per-frame protocol, atomically and synchronously:
//
//  1. clear the surface
//  2. reconcile the registered node set against the reachable tree
//  3. (new nodes registered as part of 2)
//  4. layout, depth-first, children before parents, once per node
//  5. resize the surface if the stage's resolved size changed
//  6. render pre-order, collect one ordered command stream, present it
//
// A node emitting Updated while an update is in progress is ignored; the
// in-flight pass already reflects the tree.
func (st *Stage) Update() {
	if st.updating {
		return
	}
	st.updating = true
	defer func() { st.updating = false }()

	var stats frameStats
	var t0 time.Time
	if st.debug {
		t0 = time.Now()
	}

	st.surface.Clear()
	st.reconcile()

	if st.debug {
		stats.reconcileTime = time.Since(t0)
		stats.nodeCount = len(st.reach)
		t0 = time.Now()
	}

	layoutSubtree(st)

	if st.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	if st.Width != st.lastW || st.Height != st.lastH {
		st.surface.Resize(st.Width, st.Height)
		st.lastW, st.lastH = st.Width, st.Height
	}

	st.frame = st.frame[:0]
	tools := &RenderTools{&st.buf}
	st.renderNode(st, 0, 0, tools)
	st.surface.Present(st.frame)

	if st.debug {
		stats.renderTime = time.Since(t0)
		for i := range st.frame {
			stats.commandCount += len(st.frame[i].Commands)
		}
		st.debugLog(stats)
	}
}

// ForceUpdate triggers the frame protocol outside the Updated-signal path.
// Not every redraw cause can be routed through a node's own emission.
func (st *Stage) ForceUpdate() {
	st.Update()
}

// reconcile recomputes the reachable node set. Nodes no longer reachable are
// unregistered: the stage's Updated listener is dropped and the hovered
// record is reset if it pointed at them. Unregistering is bookkeeping only —
// disposal stays the owner's responsibility. Newly reachable nodes are
// registered and their Updated signal wired to re-run Update.
func (st *Stage) reconcile() {
	st.reach = st.reach[:0]
	st.reach = collectReachable(st, st.reach)

	clear(st.seen)
	for _, d := range st.reach {
		st.seen[d.Base()] = struct{}{}
	}

	for b := range st.registered {
		if _, ok := st.seen[b]; ok {
			continue
		}
		b.Updated().RemoveOwner(st)
		delete(st.registered, b)
		if st.hovered != nil && st.hovered.Base() == b {
			st.hovered = nil
		}
	}

	for _, d := range st.reach {
		b := d.Base()
		if _, ok := st.registered[b]; ok {
			continue
		}
		st.registered[b] = d
		b.Updated().Add(func(struct{}) { st.Update() }, st)
	}
}

// collectReachable appends the subtree rooted at d to buf in paint order.
func collectReachable(d Drawable, buf []Drawable) []Drawable {
	buf = append(buf, d)
	if br, ok := d.(Branch); ok {
		for _, child := range br.Children() {
			buf = collectReachable(child, buf)
		}
	}
	return buf
}

// layoutSubtree invokes UpdateLayout depth-first, children before parents,
// so a parent's encompassing-box computation sees each child's final size.
// Each node is laid out exactly once per frame.
func layoutSubtree(d Drawable) {
	if br, ok := d.(Branch); ok {
		for _, child := range br.Children() {
			layoutSubtree(child)
		}
	}
	d.UpdateLayout()
}

// renderNode renders d and its subtree pre-order, accumulating the parent
// origin so every frame command carries absolute surface coordinates.
func (st *Stage) renderNode(d Drawable, ox, oy float64, tools *RenderTools) {
	b := d.Base()
	gx, gy := ox+b.X, oy+b.Y

	st.buf.reset()
	d.Render(tools)
	if cmds := st.buf.RenderProps(); cmds != nil {
		st.frame = append(st.frame, FrameCommand{Origin: Point{X: gx, Y: gy}, Commands: cmds})
	}

	if br, ok := d.(Branch); ok {
		for _, child := range br.Children() {
			st.renderNode(child, gx, gy, tools)
		}
	}
}

// LocalToGlobal walks the parent chain from d up to this stage, summing each
// ancestor's offset (d's own position included), and returns the node's
// origin in absolute surface coordinates. Returns ErrNotOnStage when d's
// root is not this stage.
func (st *Stage) LocalToGlobal(d Drawable) (Point, error) {
	var p Point
	b := d.Base()
	for {
		p.X += b.X
		p.Y += b.Y
		if b.parent == nil {
			break
		}
		b = &b.parent.Node
	}
	if b != &st.Container.Node {
		return Point{}, ErrNotOnStage
	}
	return p, nil
}
