package objects

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

// Sounds plays sound effects on behalf of an object.
type Sounds interface {
	PlaySound(id config.SoundID)
}

// Coin is collected on touch.
type Coin struct {
	collision.MovingObject
	sounds Sounds
}

func NewCoin(pos gamemath.Vector, sounds Sounds) *Coin {
	return &Coin{
		MovingObject: collision.NewMovingObject(gamemath.NewRect(pos.X, pos.Y, 31.8, 31.8), collision.GroupTouchable),
		sounds:       sounds,
	}
}

func (c *Coin) Update(dt float64) {}

func (c *Coin) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return other.Dispatch(coinHandler{c: c}, hit)
}

func (c *Coin) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnObject(c, hit)
}

func (c *Coin) Draw(cv *render.Canvas) {
	b := c.BBox()
	cv.Submit(render.LayerObjects, render.FilledRectRequest{Rect: b, Color: config.Yellow, Radius: b.Width() / 2})
}

type coinHandler struct {
	collision.BaseHandler
	c *Coin
}

func (h coinHandler) OnPlayer(p collision.Player, hit collision.Hit) collision.Response {
	if h.c.Removed() {
		return collision.Continue
	}
	p.AddCoins(1)
	h.c.sounds.PlaySound(config.SoundCoin)
	h.c.Remove()
	return collision.Continue
}

// PowerUpKind selects what a PowerUp gives.
type PowerUpKind int

const (
	PowerUpEgg PowerUpKind = iota
	PowerUpFireFlower
	PowerUpIceFlower
	PowerUpStar
)

// ParsePowerUp maps level property names to kinds.
func ParsePowerUp(name string) (PowerUpKind, bool) {
	switch name {
	case "egg", "grow":
		return PowerUpEgg, true
	case "fireflower":
		return PowerUpFireFlower, true
	case "iceflower":
		return PowerUpIceFlower, true
	case "star":
		return PowerUpStar, true
	}
	return 0, false
}

// PowerUp is a bonus item. Eggs and stars walk, flowers stay put.
type PowerUp struct {
	collision.MovingObject
	body physics.Body
	kind PowerUpKind
}

func NewPowerUp(pos gamemath.Vector, kind PowerUpKind) *PowerUp {
	p := &PowerUp{
		MovingObject: collision.NewMovingObject(gamemath.NewRect(pos.X, pos.Y, 31.8, 31.8), collision.GroupMoving),
		body:         physics.New(config.Physics.Gravity),
		kind:         kind,
	}
	if kind == PowerUpEgg || kind == PowerUpStar {
		p.body.SetVelocityX(100)
	}
	return p
}

func (p *PowerUp) Kind() PowerUpKind { return p.kind }

func (p *PowerUp) Update(dt float64) {
	p.SetMovement(p.body.Movement(dt))
}

func (p *PowerUp) CollisionSolid(hit collision.Hit) {
	if hit.Bottom {
		p.body.SetVelocityY(0)
		if p.kind == PowerUpStar {
			p.body.SetVelocityY(-300)
		}
	}
	if hit.Top {
		p.body.SetVelocityY(0)
	}
	if hit.Left || hit.Right {
		p.body.InverseVelocityX()
	}
}

func (p *PowerUp) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return other.Dispatch(powerUpHandler{p: p}, hit)
}

func (p *PowerUp) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnObject(p, hit)
}

func (p *PowerUp) Draw(c *render.Canvas) {
	clr := config.Green
	switch p.kind {
	case PowerUpFireFlower:
		clr = config.Red
	case PowerUpIceFlower:
		clr = config.LightBlue
	case PowerUpStar:
		clr = config.Yellow
	}
	b := p.BBox()
	if p.kind == PowerUpStar {
		c.DrawTriangle(
			gamemath.Vector{X: b.Middle().X, Y: b.Top()},
			gamemath.Vector{X: b.Right(), Y: b.Bottom()},
			gamemath.Vector{X: b.Left(), Y: b.Bottom()}, clr, render.LayerObjects)
		return
	}
	c.Submit(render.LayerObjects, render.FilledRectRequest{Rect: b, Color: clr, Radius: 6})
}

type powerUpHandler struct {
	collision.BaseHandler
	p *PowerUp
}

func (h powerUpHandler) OnPlayer(pl collision.Player, hit collision.Hit) collision.Response {
	if h.p.Removed() {
		return collision.ForceMove
	}
	switch h.p.kind {
	case PowerUpEgg:
		if !pl.AddBonus(status.GrowUpBonus, true) {
			// no room to grow yet
			return collision.ForceMove
		}
	case PowerUpFireFlower:
		if !pl.AddBonus(status.FireBonus, true) {
			return collision.ForceMove
		}
	case PowerUpIceFlower:
		if !pl.AddBonus(status.IceBonus, true) {
			return collision.ForceMove
		}
	case PowerUpStar:
		pl.MakeInvincible()
	}
	h.p.Remove()
	return collision.ForceMove
}
