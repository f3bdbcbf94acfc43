// Package aspen is a retained-mode 2D scene-graph engine.
//
// Aspen keeps a tree of positionable, drawable nodes and traverses it once
// per frame to resolve layout, emit an ordered paint-command stream for an
// external surface, and route pointer input to the topmost node under the
// cursor. The painting backend and the event loop stay outside the engine;
// a reference ebiten backend ([EbitenSurface]) and host loop ([Run]) ship
// alongside it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and host
// loop for you:
//
//	surface, err := aspen.NewEbitenSurface(640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	stage := aspen.NewStage(surface, 640, 480)
//	// ... add nodes ...
//	aspen.Run(stage, aspen.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, drive the stage yourself: call [Stage.ForceUpdate] (or
// let nodes trigger redraws via [Node.Invalidate]) and forward pointer
// samples with [Stage.PointerMove] and [Stage.PointerClick].
//
// # Scene graph
//
// Every visual element satisfies [Drawable] by embedding [Node]. Nodes form
// a tree rooted at a [Stage]; child coordinates are relative to the parent's
// origin, paint order is depth-first pre-order, and hit-test priority is its
// reverse (the last-drawn sibling wins).
//
//	panel := aspen.NewContainer("panel")
//	stage.AddChild(panel)
//
//	box := aspen.NewBox("button", 80, 24, aspen.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	box.X, box.Y = 100, 50
//	box.Cursor = aspen.CursorPointer
//	panel.AddChild(box)
//
//	box.Click().Add(func(ev aspen.PointerEvent) {
//		box.SetColor(aspen.ColorWhite) // emits Updated, stage redraws
//	}, nil)
//
// Invalidation is opt-in: geometry fields are plain stores, and a node
// requests a redraw only by emitting its Updated signal ([Node.Invalidate],
// or a setter like [Box.SetSize] that emits for you).
//
// Custom drawables embed [Node] (or [Container]) and override [Drawable]
// methods as needed — Render to paint, HitTest for non-rectangular hit
// areas, UpdateLayout for arrangers like [VStack].
package aspen
