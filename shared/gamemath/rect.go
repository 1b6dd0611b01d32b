package gamemath

// Rect is an axis-aligned box stored as top-left corner and size, so moving
// a box never changes its size.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints builds the box spanning p1 (top-left) to p2 (bottom-right).
func RectFromPoints(p1, p2 Vector) Rect {
	return Rect{X: p1.X, Y: p1.Y, W: p2.X - p1.X, H: p2.Y - p1.Y}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Width() float64 { return r.W }
func (r Rect) Height() float64 { return r.H }

func (r Rect) Pos() Vector { return Vector{r.X, r.Y} }

// BottomRight returns the corner opposite Pos.
func (r Rect) BottomRight() Vector { return Vector{r.Right(), r.Bottom()} }

func (r Rect) Middle() Vector {
	return Vector{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Moved(v Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

func (r Rect) WithPos(p Vector) Rect {
	return Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}
}

func (r Rect) WithSize(w, h float64) Rect {
	return Rect{X: r.X, Y: r.Y, W: w, H: h}
}

// Grown returns the box extended by d on every side.
func (r Rect) Grown(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Overlaps reports whether the interiors of r and o intersect. Boxes that
// only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() && r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
