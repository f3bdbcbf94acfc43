package aspen

import (
	"errors"
	"testing"
)

// recordSurface is a Surface that records everything the stage asks of it.
type recordSurface struct {
	clears  int
	resizes []Point
	frames  [][]FrameCommand
	events  []string
}

func (s *recordSurface) Clear() {
	s.clears++
	s.events = append(s.events, "clear")
}

func (s *recordSurface) Resize(width, height float64) {
	s.resizes = append(s.resizes, Point{X: width, Y: height})
	s.events = append(s.events, "resize")
}

func (s *recordSurface) Present(frame []FrameCommand) {
	// Present must not retain the slice, so keep a copy.
	cp := make([]FrameCommand, len(frame))
	copy(cp, frame)
	s.frames = append(s.frames, cp)
	s.events = append(s.events, "present")
}

func (s *recordSurface) lastFrame(t *testing.T) []FrameCommand {
	t.Helper()
	if len(s.frames) == 0 {
		t.Fatal("no frame presented")
	}
	return s.frames[len(s.frames)-1]
}

func TestNewStageNilSurfacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil surface")
		}
	}()
	NewStage(nil, 100, 100)
}

func TestStageUpdateOrder(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 200, 150)
	st.AddChild(NewBox("b", 10, 10, ColorWhite))

	st.ForceUpdate()

	want := []string{"clear", "resize", "present"}
	if len(surf.events) != len(want) {
		t.Fatalf("events = %v, want %v", surf.events, want)
	}
	for i := range want {
		if surf.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, surf.events[i], want[i])
		}
	}
}

func TestStageResizeOnlyOnChange(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 200, 150)

	st.ForceUpdate()
	st.ForceUpdate()

	if len(surf.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", surf.resizes)
	}
	if surf.resizes[0] != (Point{X: 200, Y: 150}) {
		t.Errorf("resize = %v, want (200, 150)", surf.resizes[0])
	}

	st.Width = 320
	st.ForceUpdate()
	if len(surf.resizes) != 2 {
		t.Fatalf("resizes = %v, want a second entry after size change", surf.resizes)
	}
	if surf.resizes[1] != (Point{X: 320, Y: 150}) {
		t.Errorf("second resize = %v, want (320, 150)", surf.resizes[1])
	}
}

func TestStageFrameOriginsAreAbsolute(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 200, 200)

	panel := NewContainer("panel")
	panel.X, panel.Y = 10, 10
	st.AddChild(panel)

	box := NewBox("box", 20, 20, ColorWhite)
	box.X, box.Y = 5, 5
	panel.AddChild(box)

	st.ForceUpdate()

	frame := surf.lastFrame(t)
	if len(frame) != 1 {
		t.Fatalf("frame has %d commands, want 1 (only the box paints)", len(frame))
	}
	if frame[0].Origin != (Point{X: 15, Y: 15}) {
		t.Errorf("origin = %v, want (15, 15)", frame[0].Origin)
	}
	if len(frame[0].Commands) != 1 || frame[0].Commands[0].Op != OpShape {
		t.Errorf("commands = %v, want one OpShape", frame[0].Commands)
	}
}

func TestStageRenderPreOrder(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)

	a := NewBox("a", 10, 10, ColorWhite)
	b := NewContainer("group")
	inner := NewBox("inner", 10, 10, ColorWhite)
	c := NewBox("c", 10, 10, ColorWhite)

	st.AddChild(a)
	st.AddChild(b)
	b.AddChild(inner)
	b.X = 50
	st.AddChild(c)
	c.X = 90

	st.ForceUpdate()

	frame := surf.lastFrame(t)
	got := make([]float64, len(frame))
	for i := range frame {
		got[i] = frame[i].Origin.X
	}
	// a at 0, inner at 50 (before c: depth-first), c at 90.
	want := []float64{0, 50, 90}
	if len(got) != len(want) {
		t.Fatalf("frame origins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin %d X = %v, want %v (depth-first pre-order)", i, got[i], want[i])
		}
	}
}

func TestStageLayoutBeforeRender(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 200, 200)

	stack := NewVStack("stack", 0)
	st.AddChild(stack)

	first := NewBox("first", 10, 30, ColorWhite)
	second := NewBox("second", 10, 10, ColorWhite)
	stack.AddChild(first)
	stack.AddChild(second)

	st.ForceUpdate()

	frame := surf.lastFrame(t)
	if len(frame) != 2 {
		t.Fatalf("frame has %d commands, want 2", len(frame))
	}
	// The stack repositioned second before rendering sampled its origin.
	if frame[1].Origin.Y != 30 {
		t.Errorf("second box origin Y = %v, want 30", frame[1].Origin.Y)
	}
}

func TestStageUpdatedSignalRedraws(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)
	box := NewBox("box", 10, 10, ColorWhite)
	st.AddChild(box)

	st.ForceUpdate()
	if len(surf.frames) != 1 {
		t.Fatalf("frames = %d after initial update, want 1", len(surf.frames))
	}

	box.SetColor(Color{R: 1, A: 1})
	if len(surf.frames) != 2 {
		t.Errorf("frames = %d after SetColor, want 2 (Updated drives a redraw)", len(surf.frames))
	}

	// Plain field writes do not redraw.
	box.Color = ColorWhite
	if len(surf.frames) != 2 {
		t.Errorf("frames = %d after raw field write, want still 2", len(surf.frames))
	}
}

func TestStageUnregistersRemovedNodes(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)
	box := NewBox("box", 10, 10, ColorWhite)
	st.AddChild(box)

	st.ForceUpdate()
	st.RemoveChild(box)

	// Still registered from the last frame, so this triggers the update that
	// reconciles it away.
	box.Invalidate()
	n := len(surf.frames)

	box.Invalidate()
	if len(surf.frames) != n {
		t.Errorf("frames grew to %d after invalidating a removed node, want %d", len(surf.frames), n)
	}
	if box.Updated().Len() != 0 {
		t.Errorf("removed node still carries %d Updated listeners", box.Updated().Len())
	}
}

func TestStageHoverResetOnRemoval(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)
	box := NewBox("box", 20, 20, ColorWhite)
	st.AddChild(box)
	st.ForceUpdate()

	st.PointerMove(5, 5)
	if st.Hovered() == nil || st.Hovered().Base() != box.Base() {
		t.Fatal("box should be hovered")
	}

	st.RemoveChild(box)
	st.ForceUpdate()

	if st.Hovered() != nil {
		t.Error("hovered should reset when the node leaves the tree")
	}
}

// A Render that emits Updated must not recurse into a nested update.
type selfInvalidatingBox struct {
	Box
	renders int
}

func (b *selfInvalidatingBox) Render(t *RenderTools) {
	b.renders++
	b.Invalidate()
	b.Box.Render(t)
}

func TestStageUpdateReentrancyGuard(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)
	box := &selfInvalidatingBox{}
	box.Width, box.Height = 10, 10
	box.Filled = true
	st.AddChild(box)

	st.ForceUpdate()

	if box.renders != 1 {
		t.Errorf("rendered %d times in one update, want 1", box.renders)
	}
	if len(surf.frames) != 1 {
		t.Errorf("frames = %d, want 1", len(surf.frames))
	}
}

func TestStageLocalToGlobal(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)

	panel := NewContainer("panel")
	panel.X, panel.Y = 10, 30
	st.AddChild(panel)

	box := NewBox("box", 5, 5, ColorWhite)
	box.X, box.Y = 20, 20
	panel.AddChild(box)

	p, err := st.LocalToGlobal(box)
	if err != nil {
		t.Fatalf("LocalToGlobal: %v", err)
	}
	if p != (Point{X: 30, Y: 50}) {
		t.Errorf("global origin = %v, want (30, 50)", p)
	}
}

func TestStageLocalToGlobalNotOnStage(t *testing.T) {
	st := NewStage(&recordSurface{}, 100, 100)

	loose := NewNode("loose")
	if _, err := st.LocalToGlobal(loose); !errors.Is(err, ErrNotOnStage) {
		t.Errorf("err = %v, want ErrNotOnStage for a detached node", err)
	}

	other := NewStage(&recordSurface{}, 50, 50)
	box := NewBox("box", 5, 5, ColorWhite)
	other.AddChild(box)
	if _, err := st.LocalToGlobal(box); !errors.Is(err, ErrNotOnStage) {
		t.Errorf("err = %v, want ErrNotOnStage for a node on another stage", err)
	}
}

func TestStageEmptyFrame(t *testing.T) {
	surf := &recordSurface{}
	st := NewStage(surf, 100, 100)

	st.ForceUpdate()

	if len(surf.lastFrame(t)) != 0 {
		t.Error("an empty stage should present an empty frame")
	}
}
