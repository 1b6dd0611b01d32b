// Package collision defines the contract between sector geometry and the
// objects moving through it.
package collision

import "github.com/automoto/tuxrun/shared/gamemath"

// Hit describes which sides of a box touched something this frame.
type Hit struct {
	Left, Right, Top, Bottom bool
	// Crush is set when the object was squeezed from opposite sides.
	Crush bool
	// SlopeNormal is the floor normal on a bottom hit; (0, -1) on flat ground.
	SlopeNormal gamemath.Vector
}

// Mirrored returns the hit as seen from the other object.
func (h Hit) Mirrored() Hit {
	return Hit{
		Left:        h.Right,
		Right:       h.Left,
		Top:         h.Bottom,
		Bottom:      h.Top,
		Crush:       h.Crush,
		SlopeNormal: h.SlopeNormal.Scale(-1),
	}
}

// Any reports whether any side was hit.
func (h Hit) Any() bool {
	return h.Left || h.Right || h.Top || h.Bottom
}

// Response tells the sector what to do with an object's movement after an
// object-object collision.
type Response int

const (
	// Continue lets the sector resolve the movement normally.
	Continue Response = iota
	// AbortMove cancels this frame's movement.
	AbortMove
	// ForceMove keeps the movement even though the boxes overlap.
	ForceMove
)

// Group decides what an object collides with.
type Group int

const (
	// GroupDisabled objects collide with nothing.
	GroupDisabled Group = iota
	// GroupMovingOnlyStatic objects collide with tiles and statics only.
	GroupMovingOnlyStatic
	// GroupMovingStatic objects are solid for everything moving.
	GroupMovingStatic
	// GroupMoving objects collide with tiles, statics and each other.
	GroupMoving
	// GroupTouchable objects do not block but report touches.
	GroupTouchable
)

// TileAttr is a bit set of tile properties.
type TileAttr uint32

const (
	AttrSolid TileAttr = 1 << iota
	AttrUnisolid
	AttrSlope
	AttrIce
	AttrHurts
	AttrWater
)

func (a TileAttr) Has(f TileAttr) bool { return a&f != 0 }

// Classify derives the hit sides between a moving box and an obstacle from
// the axis of least penetration.
func Classify(mover, other gamemath.Rect) Hit {
	var hit Hit
	overlapX := minf(mover.Right(), other.Right()) - maxf(mover.Left(), other.Left())
	overlapY := minf(mover.Bottom(), other.Bottom()) - maxf(mover.Top(), other.Top())
	mc, oc := mover.Middle(), other.Middle()

	if overlapX < overlapY {
		if mc.X < oc.X {
			hit.Right = true
		} else {
			hit.Left = true
		}
	} else {
		if mc.Y < oc.Y {
			hit.Bottom = true
			hit.SlopeNormal = gamemath.Vector{X: 0, Y: -1}
		} else {
			hit.Top = true
			hit.SlopeNormal = gamemath.Vector{X: 0, Y: 1}
		}
	}
	return hit
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
