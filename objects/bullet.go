// Package objects contains the sector's non-enemy moving objects: bullets,
// carryable crates, climbable vines, triggers and pickups.
package objects

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

// Bullet is a fire or ice projectile shot by the player.
type Bullet struct {
	collision.MovingObject
	body      physics.Body
	kind      status.BonusType
	lifeCount int
	age       float64
}

// NewBullet spawns a bullet at pos travelling in dir, inheriting the
// shooter's horizontal speed xm.
func NewBullet(pos gamemath.Vector, xm float64, dir gamemath.Direction, kind status.BonusType) *Bullet {
	b := &Bullet{
		MovingObject: collision.NewMovingObject(
			gamemath.NewRect(pos.X, pos.Y, config.Bullet.Width, config.Bullet.Height), collision.GroupMoving),
		body:      physics.New(config.Physics.Gravity),
		kind:      kind,
		lifeCount: config.Bullet.LifeCount,
	}
	speed := config.Bullet.Speed
	if dir == gamemath.DirLeft {
		speed = -speed
	}
	b.body.SetVelocityX(speed + xm)
	if kind == status.IceBonus {
		b.body.EnableGravity(false)
	}
	return b
}

func (b *Bullet) Kind() status.BonusType { return b.kind }

func (b *Bullet) Velocity() gamemath.Vector { return b.body.Velocity() }

func (b *Bullet) Update(dt float64) {
	b.age += dt
	if b.lifeCount <= 0 || b.age >= config.Bullet.LifeTime {
		b.Remove()
		return
	}
	b.SetMovement(b.body.Movement(dt))
}

func (b *Bullet) CollisionSolid(hit collision.Hit) {
	switch {
	case hit.Bottom:
		b.body.SetVelocityY(config.Bullet.Bounce)
		b.lifeCount--
	case hit.Top:
		b.body.SetVelocityY(-b.body.VelocityY())
		b.lifeCount--
	case hit.Left || hit.Right:
		if b.kind == status.IceBonus {
			b.body.InverseVelocityX()
			b.lifeCount--
		} else {
			b.Remove()
		}
	}
}

// Ricochet bounces the bullet off something it could not hurt.
func (b *Bullet) Ricochet(other collision.Object, hit collision.Hit) {
	b.body.InverseVelocityX()
	b.lifeCount--
	if b.lifeCount <= 0 {
		b.Remove()
	}
}

func (b *Bullet) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return collision.ForceMove
}

func (b *Bullet) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnBullet(b, hit)
}

func (b *Bullet) Draw(c *render.Canvas) {
	clr := config.Orange
	if b.kind == status.IceBonus {
		clr = config.LightBlue
	}
	c.Submit(render.LayerObjects, render.FilledRectRequest{Rect: b.BBox(), Color: clr, Radius: b.BBox().Width() / 2})
}
