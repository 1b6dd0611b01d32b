package player

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/shared/gamemath"
)

func (p *Player) CollisionTile(attrs collision.TileAttr) {
	if attrs.Has(collision.AttrHurts) {
		p.Kill(false)
	}

	if attrs.Has(collision.AttrWater) {
		p.contact.Water = true
		if !p.swimming {
			p.swimming = true
			p.sector.PlaySound(config.SoundSplash)
		}
	} else {
		p.swimming = false
	}

	if attrs.Has(collision.AttrIce) {
		p.contact.Ice = true
		p.onIce = true
	}
}

func (p *Player) CollisionSolid(hit collision.Hit) {
	if hit.Bottom {
		if p.body.VelocityY() > 0 {
			p.body.SetVelocityY(0)
		}
		p.onGround = true
		p.floorNormal = hit.SlopeNormal

		if p.doesButtjump {
			p.doesButtjump = false
			p.body.SetVelocityY(config.Player.ButtjumpRebound)
			p.onGround = false
			b := p.BBox()
			rng := p.sector.Rand()
			p.sector.AddEffect(effects.NewDust(rng, gamemath.Vector{X: b.Right(), Y: b.Bottom()}, 290, 310))
			p.sector.AddEffect(effects.NewDust(rng, gamemath.Vector{X: b.Left(), Y: b.Bottom()}, 50, 70))
		}
	} else if hit.Top {
		if p.body.VelocityY() < 0 {
			p.body.SetVelocityY(.2)
		}
	}

	if hit.Left || hit.Right {
		p.body.SetVelocityX(0)
	}

	if hit.Crush {
		if hit.Left || hit.Right {
			p.Kill(true)
		} else if hit.Top || hit.Bottom {
			p.Kill(false)
		}
	}
}

// Collision resolves a touch with another object by letting other dispatch
// back to the player's handler.
func (p *Player) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return other.Dispatch(playerHandler{p: p}, hit)
}

func (p *Player) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnPlayer(p, hit)
}

type playerHandler struct {
	p *Player
}

func (h playerHandler) OnPlayer(other collision.Player, hit collision.Hit) collision.Response {
	return h.OnObject(other, hit)
}

func (h playerHandler) OnBullet(b collision.Bullet, hit collision.Hit) collision.Response {
	return collision.ForceMove
}

func (h playerHandler) OnTrigger(t collision.Trigger, hit collision.Hit) collision.Response {
	if t.Group() != collision.GroupTouchable {
		return h.OnObject(t, hit)
	}
	h.grabOnSideHit(hit)
	if !h.p.deactivated && h.p.controller.Pressed(controller.Up) {
		t.Activate(h.p)
	}
	return collision.ForceMove
}

func (h playerHandler) OnBadguy(b collision.Badguy, hit collision.Hit) collision.Response {
	h.grabOnSideHit(hit)
	if b.Group() == collision.GroupTouchable || h.p.IsShielded() {
		return collision.ForceMove
	}
	return collision.Continue
}

func (h playerHandler) OnPortable(o collision.Portable, hit collision.Hit) collision.Response {
	return h.OnObject(o, hit)
}

func (h playerHandler) OnObject(o collision.Object, hit collision.Hit) collision.Response {
	h.grabOnSideHit(hit)
	if o.Group() == collision.GroupTouchable {
		return collision.ForceMove
	}
	return collision.Continue
}

// grab right away, the next update would be too late
func (h playerHandler) grabOnSideHit(hit collision.Hit) {
	if hit.Left || hit.Right {
		h.p.tryGrab()
	}
}

var _ collision.Player = (*Player)(nil)
