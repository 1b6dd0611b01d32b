// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import (
	"errors"

	"github.com/automoto/tuxrun/shared/gamemath"
)

// ErrNoSpawn is returned for levels without a player spawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// TileKind says how a tile blocks movement.
type TileKind int

const (
	// TileSolid blocks from every side.
	TileSolid TileKind = iota
	// TilePlatform only blocks objects falling onto it from above.
	TilePlatform
	// TileRamp is a 45 degree slope.
	TileRamp
	// TileArea does not block; it only carries attributes such as water.
	TileArea
)

// Tile is one collision tile of the "tiles" layer.
type Tile struct {
	Rect  gamemath.Rect
	Kind  TileKind
	Slope gamemath.SlopeKind
	Ice   bool
	Hurts bool
	Water bool
}

// Spawn is an object from the "objects" group.
type Spawn struct {
	// Kind is the object's type, e.g. "igel", "crate" or "coin".
	Kind  string
	Name  string
	Rect  gamemath.Rect
	Dir   gamemath.Direction
	Props map[string]string
}

// Level holds everything parsed from a TMX file.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	TileSize    float64
	Tiles       []Tile
	Spawns      []Spawn
	PlayerSpawn gamemath.Vector
	Music       string
	Script      string
}
