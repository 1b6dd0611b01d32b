package sector

import (
	"log"

	"github.com/automoto/tuxrun/badguy"
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/objects"
	"github.com/automoto/tuxrun/player"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/shared/leveldata"
	"github.com/automoto/tuxrun/status"
)

var (
	_ player.Sector  = (*Sector)(nil)
	_ badguy.Sector  = (*Sector)(nil)
	_ objects.Sounds = (*Sector)(nil)
)

// FromLevel builds a sector holding lvl's tiles and objects. The player is
// not part of it; see SetPlayer.
func FromLevel(lvl *leveldata.Level, st *status.Status, seed int64) *Sector {
	s := New(lvl.Width, lvl.Height, st, seed)
	components.Level.Get(s.level).Level = lvl

	for _, t := range lvl.Tiles {
		s.AddStatic(tileData(t))
	}
	for _, sp := range lvl.Spawns {
		if o := s.spawn(sp); o != nil {
			s.Add(o)
		}
	}
	if id, ok := config.ParseMusic(lvl.Music); ok {
		s.PlayMusic(id)
	} else if lvl.Music != "" {
		log.Printf("Warning: unknown music %q", lvl.Music)
	}
	return s
}

// Level returns the level the sector was built from, or nil.
func (s *Sector) Level() *leveldata.Level { return components.Level.Get(s.level).Level }

func tileData(t leveldata.Tile) components.TileData {
	var attr collision.TileAttr
	switch t.Kind {
	case leveldata.TileSolid:
		attr |= collision.AttrSolid
	case leveldata.TilePlatform:
		attr |= collision.AttrUnisolid
	case leveldata.TileRamp:
		attr |= collision.AttrSlope
	}
	if t.Ice {
		attr |= collision.AttrIce
	}
	if t.Hurts {
		attr |= collision.AttrHurts
	}
	if t.Water {
		attr |= collision.AttrWater
	}
	return components.TileData{Rect: t.Rect, Attr: attr, Slope: t.Slope}
}

func (s *Sector) spawn(sp leveldata.Spawn) components.SectorObject {
	pos := sp.Rect.Pos()
	dir := sp.Dir
	if dir == gamemath.DirAuto {
		dir = gamemath.DirLeft
	}

	switch sp.Kind {
	case "igel":
		return badguy.NewIgel(s, pos, dir)
	case "jumpy":
		return badguy.NewJumpy(s, pos, dir)
	case "zeekling":
		return badguy.NewZeekling(s, pos, dir)
	case "crate":
		return objects.NewCrate(pos)
	case "coin":
		return objects.NewCoin(pos, s)
	case "powerup":
		kind, ok := objects.ParsePowerUp(sp.Props["kind"])
		if !ok {
			log.Printf("Warning: unknown power-up %q at %v", sp.Props["kind"], pos)
			return nil
		}
		return objects.NewPowerUp(pos, kind)
	case "climbable":
		return objects.NewClimbable(sp.Rect)
	case "trigger":
		return objects.NewScriptTrigger(sp.Rect, sp.Name, sp.Props["touch"] == "true", s.fireTrigger)
	case "resetpoint":
		spot := gamemath.Vector{X: sp.Rect.X, Y: sp.Rect.Bottom()}
		return objects.NewScriptTrigger(sp.Rect, sp.Name, true, func(name string) {
			s.SetResetPoint(spot)
			s.fireTrigger(name)
		})
	}
	log.Printf("Warning: unknown object type %q", sp.Kind)
	return nil
}

// SetPlayer adds p to the sector.
func (s *Sector) SetPlayer(p components.SectorObject) {
	s.Add(p)
}
