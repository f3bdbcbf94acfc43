package aspen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenSurface is the reference painting backend: it executes the stage's
// command stream onto an offscreen [ebiten.Image], which a host game blits
// to the screen (see Run). Commands carrying the zero-value color are drawn
// in white, and text with Size 0 uses the default size — the engine performs
// no validation, so the defaults live here.
type EbitenSurface struct {
	// Background fills the canvas on Clear.
	Background Color

	canvas     *ebiten.Image
	fontSource *text.GoTextFaceSource
}

const defaultTextSize = 14.0

// NewEbitenSurface creates a surface with a canvas of the given pixel size
// and the bundled Go Regular typeface.
func NewEbitenSurface(width, height int) (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load default typeface: %w", err)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &EbitenSurface{
		Background: Color{0, 0, 0, 1},
		canvas:     ebiten.NewImage(width, height),
		fontSource: src,
	}, nil
}

// Image returns the canvas holding the most recently presented frame.
// The caller must not deallocate it; Resize may replace it.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.canvas
}

// Clear fills the canvas with the background color.
func (s *EbitenSurface) Clear() {
	s.canvas.Fill(s.Background.toNRGBA())
}

// Resize replaces the canvas when the requested size differs from the
// current one. Fractional sizes round up so content is never clipped.
func (s *EbitenSurface) Resize(width, height float64) {
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	bounds := s.canvas.Bounds()
	if bounds.Dx() == w && bounds.Dy() == h {
		return
	}
	s.canvas.Deallocate()
	s.canvas = ebiten.NewImage(w, h)
	s.canvas.Fill(s.Background.toNRGBA())
}

// Present executes the frame's command stream in order.
func (s *EbitenSurface) Present(frame []FrameCommand) {
	for i := range frame {
		origin := frame[i].Origin
		cmds := frame[i].Commands
		for j := range cmds {
			s.execute(origin, &cmds[j])
		}
	}
}

func (s *EbitenSurface) execute(origin Point, cmd *PaintCommand) {
	switch cmd.Op {
	case OpLine:
		s.strokePolyline(origin, cmd.Points, paintColor(cmd.Color), strokeWidth(cmd.StrokeWidth), false)
	case OpCircle:
		spec := cmd.Circle
		cx := float32(origin.X + spec.X)
		cy := float32(origin.Y + spec.Y)
		r := float32(spec.Radius)
		if spec.Filled {
			vector.DrawFilledCircle(s.canvas, cx, cy, r, paintColor(spec.Color), true)
		} else {
			vector.StrokeCircle(s.canvas, cx, cy, r, strokeWidth(spec.StrokeWidth), paintColor(spec.Color), true)
		}
	case OpShape:
		if cmd.Filled {
			s.fillPolygon(origin, cmd.Points, cmd.Color)
		} else {
			s.strokePolyline(origin, cmd.Points, paintColor(cmd.Color), strokeWidth(cmd.StrokeWidth), true)
		}
	case OpText:
		s.drawText(origin, cmd.Text, cmd.Props)
	case OpTextLines:
		props := cmd.Props
		advance := props.LineHeight
		if advance <= 0 {
			size := props.Size
			if size <= 0 {
				size = defaultTextSize
			}
			advance = size * 1.25
		}
		for _, line := range cmd.Lines {
			s.drawText(origin, line, props)
			props.Y += advance
		}
	}
}

// strokePolyline strokes consecutive segments through points; closed adds a
// final segment back to the first point.
func (s *EbitenSurface) strokePolyline(origin Point, points []Point, clr color.Color, width float32, closed bool) {
	if len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.canvas,
			float32(origin.X+a.X), float32(origin.Y+a.Y),
			float32(origin.X+b.X), float32(origin.Y+b.Y),
			width, clr, true)
	}
	if closed && len(points) > 2 {
		a, b := points[len(points)-1], points[0]
		vector.StrokeLine(s.canvas,
			float32(origin.X+a.X), float32(origin.Y+a.Y),
			float32(origin.X+b.X), float32(origin.Y+b.Y),
			width, clr, true)
	}
}

// fillPolygon tessellates the closed polygon and submits it as tinted
// triangles against a white source image.
func (s *EbitenSurface) fillPolygon(origin Point, points []Point, clr Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(origin.X+points[0].X), float32(origin.Y+points[0].Y))
	for _, pt := range points[1:] {
		path.LineTo(float32(origin.X+pt.X), float32(origin.Y+pt.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if clr == (Color{}) {
		clr = ColorWhite
	}
	r := float32(clamp01(clr.R))
	g := float32(clamp01(clr.G))
	b := float32(clamp01(clr.B))
	a := float32(clamp01(clr.A))
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	s.canvas.DrawTriangles(vs, is, ensureWhiteSub(), op)
}

func (s *EbitenSurface) drawText(origin Point, str string, props TextProps) {
	if str == "" {
		return
	}
	size := props.Size
	if size <= 0 {
		size = defaultTextSize
	}
	face := &text.GoTextFace{Source: s.fontSource, Size: size}

	op := &text.DrawOptions{}
	switch props.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(origin.X+props.X, origin.Y+props.Y)
	op.ColorScale.ScaleWithColor(paintColor(props.Color))
	text.Draw(s.canvas, str, face, op)
}

// paintColor maps the zero-value color to white, the backend default.
func paintColor(c Color) color.Color {
	if c == (Color{}) {
		c = ColorWhite
	}
	return c.toNRGBA()
}

// strokeWidth maps 0 to the 1px hairline.
func strokeWidth(w float64) float32 {
	if w <= 0 {
		return 1
	}
	return float32(w)
}

// whiteSub is the shared solid-white source for triangle fills. A 3x3 image
// with a 1x1 interior sub-image keeps sampling away from the texel edge.
var whiteSub *ebiten.Image

func ensureWhiteSub() *ebiten.Image {
	if whiteSub == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSub = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSub
}
