package aspen

import "testing"

// pointerLog subscribes to a node's pointer signals and records emissions.
type pointerLog struct {
	entries []string
	last    PointerEvent
}

func (l *pointerLog) watch(d Drawable, tag string) {
	b := d.Base()
	b.MouseOver().Add(func(ev PointerEvent) {
		l.entries = append(l.entries, tag+":over")
		l.last = ev
	}, l)
	b.MouseOut().Add(func(ev PointerEvent) {
		l.entries = append(l.entries, tag+":out")
		l.last = ev
	}, l)
	b.MouseMove().Add(func(ev PointerEvent) {
		l.entries = append(l.entries, tag+":move")
		l.last = ev
	}, l)
	b.Click().Add(func(ev PointerEvent) {
		l.entries = append(l.entries, tag+":click")
		l.last = ev
	}, l)
}

func (l *pointerLog) check(t *testing.T, want ...string) {
	t.Helper()
	if len(l.entries) != len(want) {
		t.Fatalf("events = %v, want %v", l.entries, want)
	}
	for i := range want {
		if l.entries[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, l.entries[i], want[i])
		}
	}
}

func TestPointerTopmostWins(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)

	under := NewBox("under", 50, 50, ColorWhite)
	over := NewBox("over", 50, 50, ColorWhite)
	over.X, over.Y = 25, 25
	st.AddChild(under)
	st.AddChild(over)

	var log pointerLog
	log.watch(under, "under")
	log.watch(over, "over")

	// (30, 30) is inside both; the later-added sibling paints on top and
	// therefore claims the sample.
	st.PointerClick(30, 30)
	log.check(t, "over:over", "over:click")
}

func TestPointerHoverTransitions(t *testing.T) {
	st := NewStage(&recordSurface{}, 200, 100)

	left := NewBox("left", 50, 50, ColorWhite)
	right := NewBox("right", 50, 50, ColorWhite)
	right.X = 100
	st.AddChild(left)
	st.AddChild(right)

	var log pointerLog
	log.watch(left, "left")
	log.watch(right, "right")

	st.PointerMove(10, 10)  // enter left
	st.PointerMove(20, 10)  // still left: move only, no second over
	st.PointerMove(110, 10) // leave left, enter right
	st.PointerMove(75, 10)  // empty space: leave right, hover nothing
	st.PointerMove(76, 10)  // still nothing

	log.check(t,
		"left:over", "left:move",
		"left:move",
		"left:out", "right:over", "right:move",
		"right:out",
	)
	if st.Hovered() != nil {
		t.Error("nothing should be hovered over empty space")
	}
}

func TestPointerClickUpdatesHoverFirst(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)
	box := NewBox("box", 50, 50, ColorWhite)
	st.AddChild(box)

	var log pointerLog
	log.watch(box, "box")

	// A click with no preceding move still enters the node first.
	st.PointerClick(10, 10)
	log.check(t, "box:over", "box:click")
}

func TestPointerEventCoordinates(t *testing.T) {
	st := NewStage(&recordSurface{}, 200, 200)

	panel := NewContainer("panel")
	panel.X, panel.Y = 40, 40
	st.AddChild(panel)

	box := NewBox("box", 50, 50, ColorWhite)
	box.X, box.Y = 10, 10
	panel.AddChild(box)

	var log pointerLog
	log.watch(box, "box")

	st.PointerClick(60, 70)

	ev := log.last
	if ev.Target == nil || ev.Target.Base() != box.Base() {
		t.Fatal("event target should be the box")
	}
	if ev.GlobalX != 60 || ev.GlobalY != 70 {
		t.Errorf("global = (%v, %v), want (60, 70)", ev.GlobalX, ev.GlobalY)
	}
	// Box origin is at (50, 50) in surface space.
	if ev.LocalX != 10 || ev.LocalY != 20 {
		t.Errorf("local = (%v, %v), want (10, 20)", ev.LocalX, ev.LocalY)
	}
}

func TestPointerMissEmitsNothing(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)
	box := NewBox("box", 10, 10, ColorWhite)
	st.AddChild(box)

	var log pointerLog
	log.watch(box, "box")

	st.PointerClick(50, 50)
	log.check(t)
}

func TestPointerNonHittableFallsThrough(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)

	under := NewBox("under", 50, 50, ColorWhite)
	st.AddChild(under)

	// A plain node on top without HitTestInBounds never claims samples.
	cover := NewNode("cover")
	cover.Width, cover.Height = 100, 100
	st.AddChild(cover)

	var log pointerLog
	log.watch(under, "under")
	log.watch(cover, "cover")

	st.PointerClick(10, 10)
	log.check(t, "under:over", "under:click")
}

func TestPointerRemovedHoveredGetsNoMouseOut(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)
	box := NewBox("box", 50, 50, ColorWhite)
	st.AddChild(box)

	var log pointerLog
	log.watch(box, "box")

	st.PointerMove(10, 10)
	st.RemoveChild(box)
	st.PointerMove(90, 90)

	// Detached between samples: forgotten silently, no exit event.
	log.check(t, "box:over", "box:move")
	if st.Hovered() != nil {
		t.Error("hovered should be cleared")
	}
}

func TestHoverCursor(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)
	box := NewBox("box", 50, 50, ColorWhite)
	box.Cursor = CursorPointer
	st.AddChild(box)

	if st.HoverCursor() != CursorDefault {
		t.Errorf("cursor = %q with nothing hovered, want default", st.HoverCursor())
	}

	st.PointerMove(10, 10)
	if st.HoverCursor() != CursorPointer {
		t.Errorf("cursor = %q, want pointer", st.HoverCursor())
	}

	st.PointerMove(90, 90)
	if st.HoverCursor() != CursorDefault {
		t.Errorf("cursor = %q after leaving, want default", st.HoverCursor())
	}
}

func TestPointerHitTestOverride(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)
	disc := NewDisc("disc", 20, ColorWhite)
	st.AddChild(disc)

	var log pointerLog
	log.watch(disc, "disc")

	st.PointerClick(1, 1)   // inside the bounds, outside the circle
	st.PointerClick(20, 20) // center
	log.check(t, "disc:over", "disc:click")
}
