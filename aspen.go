package aspen

import "image/color"

// Point is a 2D coordinate. Node positions are relative to the immediate
// parent's origin; Stage methods produce points in surface space.
type Point struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default paint color used by backends when a command
// carries the zero-value color.
var ColorWhite = Color{1, 1, 1, 1}

// toNRGBA converts to the stdlib straight-alpha representation.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Cursor is a hint naming the pointer shape a host should show while a node
// is hovered. The engine only carries the tag; applying it is host business
// (see Run, which maps tags to OS cursor shapes).
type Cursor string

const (
	CursorDefault    Cursor = "default"
	CursorPointer    Cursor = "pointer"
	CursorText       Cursor = "text"
	CursorMove       Cursor = "move"
	CursorCrosshair  Cursor = "crosshair"
	CursorNotAllowed Cursor = "not-allowed"
)

// TextAlign controls horizontal text alignment for text paint commands.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// PointerEvent is the payload carried by the Click, MouseMove, MouseOver,
// and MouseOut signals. Global coordinates are in surface space; local
// coordinates are relative to the target node's origin.
type PointerEvent struct {
	Target  Drawable
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
}
