// Package ebitenpainter executes render requests on an ebiten image.
package ebitenpainter

import (
	"image"
	"image/color"

	"github.com/automoto/tuxrun/fonts"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseStep is the strip height used to approximate inverse ellipses.
const ellipseStep = 2

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Painter draws onto Target.
type Painter struct {
	Target *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawImageOptions
}

var _ render.Painter = (*Painter)(nil)

func New(target *ebiten.Image) *Painter {
	return &Painter{Target: target}
}

func (p *Painter) DrawTexture(r render.TextureRequest) {
	img, ok := r.Texture.(*ebiten.Image)
	if !ok {
		return
	}
	p.drawRegion(img, r.Src, r.Dst, r.FlipX, r.Alpha)
}

func (p *Painter) DrawTextureBatch(r render.TextureBatchRequest) {
	img, ok := r.Texture.(*ebiten.Image)
	if !ok {
		return
	}
	for i := range r.Srcs {
		if i >= len(r.Dsts) {
			break
		}
		p.drawRegion(img, r.Srcs[i], r.Dsts[i], false, r.Alpha)
	}
}

func (p *Painter) drawRegion(img *ebiten.Image, src image.Rectangle, dst gamemath.Rect, flipX bool, alpha float32) {
	if src.Empty() {
		src = img.Bounds()
	}
	sub := img.SubImage(src).(*ebiten.Image)

	p.op.GeoM.Reset()
	p.op.ColorScale.Reset()
	sx := dst.Width() / float64(src.Dx())
	sy := dst.Height() / float64(src.Dy())
	if flipX {
		p.op.GeoM.Scale(-1, 1)
		p.op.GeoM.Translate(float64(src.Dx()), 0)
	}
	p.op.GeoM.Scale(sx, sy)
	p.op.GeoM.Translate(dst.Left(), dst.Top())
	if alpha > 0 && alpha < 1 {
		p.op.ColorScale.ScaleAlpha(alpha)
	}
	p.Target.DrawImage(sub, &p.op)
}

func (p *Painter) DrawGradient(r render.GradientRequest) {
	corners := render.GradientVertices(r)
	p.vertices = p.vertices[:0]
	for _, c := range corners {
		p.vertices = append(p.vertices, vertex(c.X, c.Y, c.Color))
	}
	p.indices = append(p.indices[:0], 0, 1, 2, 0, 2, 3)
	p.Target.DrawTriangles(p.vertices, p.indices, white(), nil)
}

func (p *Painter) DrawFilledRect(r render.FilledRectRequest) {
	x, y := float32(r.Rect.Left()), float32(r.Rect.Top())
	w, h := float32(r.Rect.Width()), float32(r.Rect.Height())
	radius := float32(r.Radius)
	if radius <= 0 {
		vector.FillRect(p.Target, x, y, w, h, r.Color, false)
		return
	}
	radius = min(radius, w/2, h/2)

	var path vector.Path
	path.MoveTo(x+radius, y)
	path.LineTo(x+w-radius, y)
	path.ArcTo(x+w, y, x+w, y+radius, radius)
	path.LineTo(x+w, y+h-radius)
	path.ArcTo(x+w, y+h, x+w-radius, y+h, radius)
	path.LineTo(x+radius, y+h)
	path.ArcTo(x, y+h, x, y+h-radius, radius)
	path.LineTo(x, y+radius)
	path.ArcTo(x, y, x+radius, y, radius)
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	p.fill(r.Color)
}

func (p *Painter) DrawInverseEllipse(r render.InverseEllipseRequest) {
	for _, s := range render.InverseEllipseStrips(r, ellipseStep) {
		vector.FillRect(p.Target,
			float32(s.Left()), float32(s.Top()),
			float32(s.Width()), float32(s.Height()),
			r.Color, false)
	}
}

func (p *Painter) DrawLine(r render.LineRequest) {
	width := float32(r.Width)
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(p.Target,
		float32(r.From.X), float32(r.From.Y),
		float32(r.To.X), float32(r.To.Y),
		width, r.Color, true)
}

func (p *Painter) DrawTriangle(r render.TriangleRequest) {
	p.vertices = append(p.vertices[:0],
		vertex(float32(r.A.X), float32(r.A.Y), r.Color),
		vertex(float32(r.B.X), float32(r.B.Y), r.Color),
		vertex(float32(r.C.X), float32(r.C.Y), r.Color),
	)
	p.indices = append(p.indices[:0], 0, 1, 2)
	p.Target.DrawTriangles(p.vertices, p.indices, white(), nil)
}

func (p *Painter) DrawText(r render.TextRequest) {
	face := fonts.Regular.Get()
	switch {
	case r.Size >= 30:
		face = fonts.Title.Get()
	case r.Size >= 18:
		face = fonts.Bold.Get()
	case r.Size > 0 && r.Size < 12:
		face = fonts.Small.Get()
	}
	baseline := int(r.Pos.Y) + face.Metrics().Ascent.Ceil()
	text.Draw(p.Target, r.Text, face, int(r.Pos.X), baseline, r.Color)
}

// fill draws the current vertex buffer as a solid color.
func (p *Painter) fill(clr color.RGBA) {
	for i := range p.vertices {
		v := &p.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(clr.R) / 0xff
		v.ColorG = float32(clr.G) / 0xff
		v.ColorB = float32(clr.B) / 0xff
		v.ColorA = float32(clr.A) / 0xff
	}
	p.Target.DrawTriangles(p.vertices, p.indices, white(), nil)
}

func vertex(x, y float32, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 0xff,
		ColorG: float32(clr.G) / 0xff,
		ColorB: float32(clr.B) / 0xff,
		ColorA: float32(clr.A) / 0xff,
	}
}
