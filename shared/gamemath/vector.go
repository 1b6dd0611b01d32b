package gamemath

import "math"

// Vector is a 2D position, velocity or acceleration.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(f float64) Vector { return Vector{v.X * f, v.Y * f} }
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }
func (v Vector) Equals(o Vector) bool { return v.X == o.X && v.Y == o.Y }

// Direction is a facing or release direction.
type Direction int

const (
	DirAuto Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "auto"
}

// Sign returns -1 for left, 1 for right and 0 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	return 0
}

// Opposite flips left/right and up/down.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return d
}
