package render

import (
	"image/color"
	"math"

	"github.com/automoto/tuxrun/shared/gamemath"
)

// Vertex is a colored corner used by gradient and triangle painters.
type Vertex struct {
	X, Y  float32
	Color color.RGBA
}

// GradientVertices returns the four corners of r in the order top-left,
// top-right, bottom-right, bottom-left with the blend colors applied.
func GradientVertices(r GradientRequest) [4]Vertex {
	tl, tr, br, bl := r.From, r.From, r.To, r.To
	if r.Direction == Horizontal {
		tl, tr, br, bl = r.From, r.To, r.To, r.From
	}
	return [4]Vertex{
		{X: float32(r.Rect.Left()), Y: float32(r.Rect.Top()), Color: tl},
		{X: float32(r.Rect.Right()), Y: float32(r.Rect.Top()), Color: tr},
		{X: float32(r.Rect.Right()), Y: float32(r.Rect.Bottom()), Color: br},
		{X: float32(r.Rect.Left()), Y: float32(r.Rect.Bottom()), Color: bl},
	}
}

// InverseEllipseStrips decomposes the area of r.Bounds outside the ellipse
// into horizontal rectangles of height step.
func InverseEllipseStrips(r InverseEllipseRequest, step float64) []gamemath.Rect {
	if step <= 0 {
		step = 1
	}
	b := r.Bounds
	rx, ry := r.Size.X/2, r.Size.Y/2
	var strips []gamemath.Rect

	for y := b.Top(); y < b.Bottom(); y += step {
		h := math.Min(step, b.Bottom()-y)
		mid := y + h/2
		dy := mid - r.Center.Y
		if ry <= 0 || rx <= 0 || math.Abs(dy) >= ry {
			strips = append(strips, gamemath.NewRect(b.Left(), y, b.Width(), h))
			continue
		}
		half := rx * math.Sqrt(1-(dy*dy)/(ry*ry))
		left := math.Max(b.Left(), r.Center.X-half)
		right := math.Min(b.Right(), r.Center.X+half)
		if left > b.Left() {
			strips = append(strips, gamemath.NewRect(b.Left(), y, left-b.Left(), h))
		}
		if right < b.Right() {
			strips = append(strips, gamemath.NewRect(right, y, b.Right()-right, h))
		}
	}
	return strips
}
