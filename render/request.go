// Package render collects draw requests per layer and hands them to a
// Painter in a stable order.
package render

import (
	"image"
	"image/color"

	"github.com/automoto/tuxrun/shared/gamemath"
)

// Layers used by the game, lowest drawn first.
const (
	LayerBackground = -300
	LayerTiles      = 0
	LayerObjects    = 50
	LayerForeground = 200
	LayerHUD        = 400
	LayerGUI        = 500
)

// Texture is any image the painter can draw from.
type Texture interface {
	Bounds() image.Rectangle
}

// Painter executes draw requests against a graphics context.
type Painter interface {
	DrawTexture(r TextureRequest)
	DrawTextureBatch(r TextureBatchRequest)
	DrawGradient(r GradientRequest)
	DrawFilledRect(r FilledRectRequest)
	DrawInverseEllipse(r InverseEllipseRequest)
	DrawLine(r LineRequest)
	DrawTriangle(r TriangleRequest)
	DrawText(r TextRequest)
}

// Drawer is anything that submits requests to a Canvas.
type Drawer interface {
	Draw(c *Canvas)
}

// Request is one queued draw operation.
type Request interface {
	Execute(p Painter)
	// Translated returns the request moved by v.
	Translated(v gamemath.Vector) Request
}

// TextureRequest draws Src of Texture into Dst. An Alpha of 0 draws opaque.
type TextureRequest struct {
	Texture Texture
	Src     image.Rectangle
	Dst     gamemath.Rect
	FlipX   bool
	Alpha   float32
}

func (r TextureRequest) Execute(p Painter) { p.DrawTexture(r) }

func (r TextureRequest) Translated(v gamemath.Vector) Request {
	r.Dst = r.Dst.Moved(v)
	return r
}

// TextureBatchRequest draws several regions of one texture.
type TextureBatchRequest struct {
	Texture Texture
	Srcs    []image.Rectangle
	Dsts    []gamemath.Rect
	Alpha   float32
}

func (r TextureBatchRequest) Execute(p Painter) { p.DrawTextureBatch(r) }

func (r TextureBatchRequest) Translated(v gamemath.Vector) Request {
	dsts := make([]gamemath.Rect, len(r.Dsts))
	for i, d := range r.Dsts {
		dsts[i] = d.Moved(v)
	}
	r.Dsts = dsts
	return r
}

// GradientDirection selects the axis a gradient runs along.
type GradientDirection int

const (
	Vertical GradientDirection = iota
	Horizontal
)

// GradientRequest fills Rect blending From into To.
type GradientRequest struct {
	Rect      gamemath.Rect
	From, To  color.RGBA
	Direction GradientDirection
}

func (r GradientRequest) Execute(p Painter) { p.DrawGradient(r) }

func (r GradientRequest) Translated(v gamemath.Vector) Request {
	r.Rect = r.Rect.Moved(v)
	return r
}

// FilledRectRequest fills Rect, optionally with rounded corners.
type FilledRectRequest struct {
	Rect   gamemath.Rect
	Color  color.RGBA
	Radius float64
}

func (r FilledRectRequest) Execute(p Painter) { p.DrawFilledRect(r) }

func (r FilledRectRequest) Translated(v gamemath.Vector) Request {
	r.Rect = r.Rect.Moved(v)
	return r
}

// InverseEllipseRequest fills Bounds except for the ellipse at Center.
type InverseEllipseRequest struct {
	Center gamemath.Vector
	Size   gamemath.Vector
	Bounds gamemath.Rect
	Color  color.RGBA
}

func (r InverseEllipseRequest) Execute(p Painter) { p.DrawInverseEllipse(r) }

func (r InverseEllipseRequest) Translated(v gamemath.Vector) Request {
	r.Center = r.Center.Add(v)
	return r
}

// LineRequest draws a line segment.
type LineRequest struct {
	From, To gamemath.Vector
	Color    color.RGBA
	Width    float64
}

func (r LineRequest) Execute(p Painter) { p.DrawLine(r) }

func (r LineRequest) Translated(v gamemath.Vector) Request {
	r.From, r.To = r.From.Add(v), r.To.Add(v)
	return r
}

// TriangleRequest fills the triangle A, B, C.
type TriangleRequest struct {
	A, B, C gamemath.Vector
	Color   color.RGBA
}

func (r TriangleRequest) Execute(p Painter) { p.DrawTriangle(r) }

func (r TriangleRequest) Translated(v gamemath.Vector) Request {
	r.A, r.B, r.C = r.A.Add(v), r.B.Add(v), r.C.Add(v)
	return r
}

// TextRequest draws a line of text with its top-left corner at Pos.
type TextRequest struct {
	Text  string
	Pos   gamemath.Vector
	Color color.RGBA
	Size  float64
}

func (r TextRequest) Execute(p Painter) { p.DrawText(r) }

func (r TextRequest) Translated(v gamemath.Vector) Request {
	r.Pos = r.Pos.Add(v)
	return r
}
