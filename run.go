package aspen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window Run creates.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// OnFrame, when set, runs once per host tick before input is sampled.
	// Returning an error stops the loop.
	OnFrame func() error
}

// Run opens a window and drives the stage with ebiten as the host event
// loop: it forwards pointer samples to the stage, applies the hovered
// node's cursor hint to the OS cursor, and blits the surface each frame.
// The stage's surface must be an [EbitenSurface].
//
// Run performs one ForceUpdate before the loop starts; afterwards redraws
// happen when nodes emit Updated (or the application calls ForceUpdate).
// Blocks until the window is closed or OnFrame returns an error.
func Run(st *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(st.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(st.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	st.ForceUpdate()
	return ebiten.RunGame(&hostGame{stage: st, cfg: cfg, lastX: -1, lastY: -1})
}

// hostGame adapts a Stage to ebiten.Game. Input edge detection is manual:
// a click sample is emitted on the release edge of the left button, matching
// the press-then-release-over-the-node convention.
type hostGame struct {
	stage *Stage
	cfg   RunConfig

	lastX, lastY int
	pressed      bool
	lastCursor   Cursor
}

func (g *hostGame) Update() error {
	if g.cfg.OnFrame != nil {
		if err := g.cfg.OnFrame(); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.lastX || my != g.lastY {
		g.stage.PointerMove(float64(mx), float64(my))
		g.lastX, g.lastY = mx, my
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if g.pressed && !pressed {
		g.stage.PointerClick(float64(mx), float64(my))
	}
	g.pressed = pressed

	if c := g.stage.HoverCursor(); c != g.lastCursor {
		ebiten.SetCursorShape(cursorShape(c))
		g.lastCursor = c
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if es, ok := g.stage.Surface().(*EbitenSurface); ok {
		screen.DrawImage(es.Image(), nil)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// cursorShape maps the engine's cursor tags to ebiten cursor shapes.
func cursorShape(c Cursor) ebiten.CursorShapeType {
	switch c {
	case CursorPointer:
		return ebiten.CursorShapePointer
	case CursorText:
		return ebiten.CursorShapeText
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
