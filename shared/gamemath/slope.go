package gamemath

import "math"

// SlopeKind identifies a 45 degree ramp tile.
type SlopeKind int

const (
	SlopeNone SlopeKind = iota
	SlopeUpRight
	SlopeUpLeft
)

// ParseSlope maps the Tiled "slope" property to a SlopeKind.
func ParseSlope(s string) SlopeKind {
	switch s {
	case "45_up_right":
		return SlopeUpRight
	case "45_up_left":
		return SlopeUpLeft
	}
	return SlopeNone
}

// SlopeSurfaceY calculates the ramp surface Y below centerX.
func SlopeSurfaceY(ramp Rect, kind SlopeKind, centerX float64) float64 {
	relativeX := ClampFloat(centerX-ramp.Left(), 0, ramp.Width())
	slope := relativeX / ramp.Width()

	switch kind {
	case SlopeUpRight:
		return ramp.Top() + ramp.Height()*(1-slope)
	case SlopeUpLeft:
		return ramp.Top() + ramp.Height()*slope
	}
	return ramp.Top()
}

// SlopeNormal returns the unit surface normal of a ramp. A ramp rising to the
// right leans left, so its normal points up and to the left.
func SlopeNormal(kind SlopeKind) Vector {
	h := math.Sqrt2 / 2
	switch kind {
	case SlopeUpRight:
		return Vector{-h, -h}
	case SlopeUpLeft:
		return Vector{h, -h}
	}
	return Vector{0, -1}
}
