package aspen

// Container is a node that owns an ordered sequence of child drawables.
// Insertion order is paint order; its reverse is hit-test priority. A child
// belongs to at most one container at a time — AddChild detaches from any
// previous owner first, so cycles and duplicate ownership are prevented by
// construction.
type Container struct {
	Node
	children []Drawable
}

// NewContainer creates an empty container.
func NewContainer(name string) *Container {
	return &Container{Node: Node{Name: name}}
}

// Children returns the child list in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (c *Container) Children() []Drawable {
	return c.children
}

// NumChildren returns the number of children.
func (c *Container) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *Container) ChildAt(index int) Drawable {
	return c.children[index]
}

// AddChild appends d to this container's children and returns d for
// chaining. If d currently belongs to another container it is detached
// there first. Panics if d is nil or if adding it would create a cycle.
func (c *Container) AddChild(d Drawable) Drawable {
	if d == nil {
		panic("aspen: cannot add nil child")
	}
	b := d.Base()
	if globalDebug {
		debugCheckDisposed(&c.Node, "AddChild (parent)")
		debugCheckDisposed(b, "AddChild (child)")
	}
	if isAncestor(b, &c.Node) {
		panic("aspen: adding child would create a cycle")
	}
	if b.parent != nil {
		b.parent.removeByBase(b)
	}
	b.parent = c
	c.children = append(c.children, d)
	if globalDebug {
		debugCheckTreeDepth(b)
		debugCheckChildCount(c)
	}
	return d
}

// RemoveChild detaches d from this container and clears its parent
// reference. It does NOT dispose d — detachment and end-of-life are
// separate (see RemoveAll). No-op if d is not a current child; debug mode
// warns on stderr so the misuse stays visible.
func (c *Container) RemoveChild(d Drawable) {
	if d == nil {
		return
	}
	b := d.Base()
	if b.parent != c {
		if globalDebug {
			debugWarnNotAChild(c, b)
		}
		return
	}
	c.removeByBase(b)
	b.parent = nil
}

// RemoveAll detaches every child. When dispose is true, each removed child
// is disposed after detachment.
func (c *Container) RemoveAll(dispose bool) {
	detached := append([]Drawable(nil), c.children...)
	for i := range c.children {
		c.children[i] = nil
	}
	c.children = c.children[:0]
	for _, d := range detached {
		d.Base().parent = nil
	}
	if !dispose {
		return
	}
	for _, d := range detached {
		d.Dispose()
	}
}

// ForeachChild invokes fn once per current child, in insertion order.
// Iteration runs over a snapshot, mirroring the Signal contract, so fn
// observing the pre-call sequence is guaranteed even if it mutates the tree
// — though mutating from within fn remains behavior to avoid.
func (c *Container) ForeachChild(fn func(Drawable)) {
	snapshot := append([]Drawable(nil), c.children...)
	for _, d := range snapshot {
		fn(d)
	}
}

// UpdateLayout grows this container's Width and Height to the smallest
// rectangle enclosing all children's bounding boxes. Dimensions never
// shrink. Subclasses that reposition children (VStack, HStack) do so first
// and then fall through to this computation.
func (c *Container) UpdateLayout() {
	for _, d := range c.children {
		b := d.Base()
		if r := b.X + b.Width; r > c.Width {
			c.Width = r
		}
		if bt := b.Y + b.Height; bt > c.Height {
			c.Height = bt
		}
	}
}

// Dispose disposes the whole subtree — every descendant first, then this
// container's own node state. Safe to call more than once.
func (c *Container) Dispose() {
	if c.disposed {
		return
	}
	detached := append([]Drawable(nil), c.children...)
	for i := range c.children {
		c.children[i] = nil
	}
	c.children = nil
	for _, d := range detached {
		d.Base().parent = nil
		d.Dispose()
	}
	c.Node.Dispose()
}

// removeByBase removes the child whose base is b, compacting the slice with
// copy+nil so no dangling reference lingers in the backing array. The
// child's parent pointer is the caller's responsibility.
func (c *Container) removeByBase(b *Node) {
	for i, d := range c.children {
		if d.Base() == b {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}
