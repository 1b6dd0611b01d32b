package badguy

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// Jumpy hops in place and keeps looking at the nearest player.
type Jumpy struct {
	groundHit    gamemath.Vector
	groundHitSet bool
}

// NewJumpy returns a freezable snowball that jumps on every landing.
func NewJumpy(sector Sector, pos gamemath.Vector, dir gamemath.Direction) *BadGuy {
	b := newBadGuy(sector, "jumpy", pos, dir, &Jumpy{})
	b.freezable = true
	return b
}

func (j *Jumpy) Init(b *BadGuy) {
	b.SetAction("middle")
}

func (j *Jumpy) ActiveUpdate(b *BadGuy, dt float64) {
	b.Move(dt)
	if b.frozen {
		return
	}
	if p := b.sector.NearestPlayer(b.Pos()); p != nil {
		if p.BBox().Pos().X > b.Pos().X {
			b.dir = gamemath.DirRight
		} else {
			b.dir = gamemath.DirLeft
		}
	}
	if !j.groundHitSet {
		b.SetAction("middle")
		return
	}
	y := b.Pos().Y
	switch {
	case y < j.groundHit.Y-config.Jumpy.MidTolerance:
		b.SetAction("up")
	case y < j.groundHit.Y-config.Jumpy.LowTolerance:
		b.SetAction("middle")
	default:
		b.SetAction("down")
	}
}

func (j *Jumpy) CollisionSolid(b *BadGuy, hit collision.Hit) {
	j.hit(b, hit)
}

func (j *Jumpy) CollisionBadguy(b *BadGuy, other collision.Badguy, hit collision.Hit) collision.Response {
	return j.hit(b, hit)
}

func (j *Jumpy) hit(b *BadGuy, hit collision.Hit) collision.Response {
	switch {
	case hit.Bottom:
		if !j.groundHitSet {
			j.groundHit = b.Pos()
			j.groundHitSet = true
		}
		if b.frozen || b.state == StateFalling {
			b.body.SetVelocityY(0)
		} else {
			b.body.SetVelocityY(config.Jumpy.JumpSpeed)
		}
	case hit.Top:
		b.body.SetVelocityY(0)
	}
	return collision.Continue
}
