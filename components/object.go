package components

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv mirror. The resolv object's
// Data field points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SectorObject is a collision object that can also draw itself.
type SectorObject interface {
	collision.Object
	render.Drawer
}

// ActorData holds a moving sector object.
type ActorData struct {
	Object SectorObject
	// Prev is the position before this frame's movement, used to undo it.
	Prev gamemath.Vector
	// Order is the insertion index; objects update in ascending order.
	Order int
}

var Actor = donburi.NewComponentType[ActorData]()

// TileData is one static tile of the level geometry.
type TileData struct {
	Rect  gamemath.Rect
	Attr  collision.TileAttr
	Slope gamemath.SlopeKind
}

var Tile = donburi.NewComponentType[TileData]()
