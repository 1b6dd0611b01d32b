// Package badguy implements the enemies. Every enemy is a BadGuy body with
// a Behavior composed in; shared walking logic lives in Walker and the
// enemy-specific parts are injected as strategies.
package badguy

import (
	"image/color"
	"math/rand"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/sprite"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/timer"
)

// Sector is the part of the world an enemy needs.
type Sector interface {
	IsFreeOfStatics(r gamemath.Rect, ignore collision.Object, ignoreUnisolid bool) bool
	// Bullets lists the live bullets of the sector.
	Bullets() []collision.Bullet
	// NearestPlayer returns nil when no player is alive.
	NearestPlayer(pos gamemath.Vector) collision.Player
	Height() float64
	Clock() *timer.Clock
	Rand() *rand.Rand
	PlaySound(id config.SoundID)
}

// State is the lifecycle of a badguy.
type State int

const (
	StateNormal State = iota
	StateSquished
	StateFalling
)

// squishMargin is how far into the top of a badguy a stomp may land.
const squishMargin = 16

// Behavior is the enemy-specific part of a badguy's frame.
type Behavior interface {
	// Init sets the initial velocity and action.
	Init(b *BadGuy)
	ActiveUpdate(b *BadGuy, dt float64)
	CollisionSolid(b *BadGuy, hit collision.Hit)
	CollisionBadguy(b *BadGuy, other collision.Badguy, hit collision.Hit) collision.Response
}

// BulletResponse decides what a bullet hit does.
type BulletResponse interface {
	HitByBullet(b *BadGuy, bullet collision.Bullet, hit collision.Hit) collision.Response
}

// SquishResponse is asked when something lands on top of the badguy. It
// returns false when the stomp fails and the stomper gets hurt instead.
type SquishResponse interface {
	Squished(b *BadGuy) bool
}

// BadGuy is the body shared by every enemy.
type BadGuy struct {
	collision.MovingObject
	body     physics.Body
	sector   Sector
	kind     string
	dir      gamemath.Direction
	state    State
	startPos gamemath.Vector

	onGround    bool
	floorNormal gamemath.Vector

	frozen    bool
	freezable bool
	flammable bool

	squishedTimer timer.Timer
	sprite        *sprite.Sprite

	behavior Behavior
	bullets  BulletResponse
	squish   SquishResponse
}

func newBadGuy(sector Sector, kind string, pos gamemath.Vector, dir gamemath.Direction, behavior Behavior) *BadGuy {
	b := &BadGuy{
		MovingObject: collision.NewMovingObject(
			gamemath.NewRect(pos.X, pos.Y, config.Badguy.Width, config.Badguy.Height), collision.GroupMoving),
		body:          physics.New(config.Physics.Gravity),
		sector:        sector,
		kind:          kind,
		dir:           dir,
		startPos:      pos,
		flammable:     true,
		squishedTimer: timer.New(sector.Clock()),
		sprite:        sprite.New(kind + "-walking-" + dir.String()),
		behavior:      behavior,
		bullets:       DefaultBulletResponse{},
		squish:        SquishKills{},
	}
	behavior.Init(b)
	return b
}

func (b *BadGuy) Kind() string { return b.kind }
func (b *BadGuy) Dir() gamemath.Direction { return b.dir }
func (b *BadGuy) State() State { return b.state }
func (b *BadGuy) Frozen() bool { return b.frozen }
func (b *BadGuy) OnGround() bool { return b.onGround }
func (b *BadGuy) Velocity() gamemath.Vector { return b.body.Velocity() }
func (b *BadGuy) Body() *physics.Body { return &b.body }
func (b *BadGuy) Sprite() *sprite.Sprite { return b.sprite }
func (b *BadGuy) StartPos() gamemath.Vector { return b.startPos }

// IsActive reports whether the badguy still takes part in collisions.
func (b *BadGuy) IsActive() bool { return b.state == StateNormal && !b.Removed() }

// SetDir changes direction without touching velocity.
func (b *BadGuy) SetDir(d gamemath.Direction) { b.dir = d }

// SetAction sets the sprite to "<kind>-<name>-<dir>".
func (b *BadGuy) SetAction(name string) {
	b.sprite.SetActionContinued(b.kind + "-" + name + "-" + b.dir.String())
}

func (b *BadGuy) Update(dt float64) {
	switch b.state {
	case StateNormal:
		b.behavior.ActiveUpdate(b, dt)
	case StateSquished:
		if b.squishedTimer.Check() {
			b.Remove()
			return
		}
		b.SetMovement(b.body.Movement(dt))
	case StateFalling:
		if b.BBox().Top() > b.sector.Height() {
			b.Remove()
			return
		}
		b.SetMovement(b.body.Movement(dt))
	}
	b.sprite.Update(dt)
	b.onGround = false
}

// Move applies the physics of this frame. Behaviors call it from
// ActiveUpdate.
func (b *BadGuy) Move(dt float64) {
	b.SetMovement(b.body.Movement(dt))
}

func (b *BadGuy) CollisionSolid(hit collision.Hit) {
	if hit.Bottom {
		b.onGround = true
		b.floorNormal = hit.SlopeNormal
	}
	if b.state != StateNormal {
		if hit.Bottom && b.body.VelocityY() > 0 {
			b.body.SetVelocityY(0)
		}
		return
	}
	b.behavior.CollisionSolid(b, hit)
}

func (b *BadGuy) Collision(other collision.Object, hit collision.Hit) collision.Response {
	if b.state != StateNormal {
		return collision.ForceMove
	}
	return other.Dispatch(badguyHandler{b: b}, hit)
}

func (b *BadGuy) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnBadguy(b, hit)
}

// MightFall reports whether there is no ground within height pixels below
// the leading edge.
func (b *BadGuy) MightFall(height float64) bool {
	box := b.BBox()
	x := box.Right()
	if b.dir == gamemath.DirLeft {
		x = box.Left() - 1
	}
	return b.sector.IsFreeOfStatics(gamemath.NewRect(x, box.Bottom()+1, 1, height), b, false)
}

// KillFall launches the badguy up and lets it fall out of the sector.
func (b *BadGuy) KillFall() {
	if b.state == StateFalling {
		return
	}
	b.sector.PlaySound(config.SoundFall)
	b.state = StateFalling
	b.frozen = false
	b.body.SetAcceleration(0, 0)
	b.body.SetVelocity(0, config.Badguy.KillFallSpeed)
	b.body.EnableGravity(true)
	b.SetGroup(collision.GroupDisabled)
}

// KillSquished flattens the badguy. The stomper bounces off on its own.
func (b *BadGuy) KillSquished() {
	b.sector.PlaySound(config.SoundSquish)
	b.state = StateSquished
	b.body.SetVelocity(0, 0)
	b.body.SetAcceleration(0, 0)
	b.SetGroup(collision.GroupMovingOnlyStatic)
	b.SetAction("squished")
	b.squishedTimer.Start(config.Badguy.SquishedLifetime)
}

// Freeze turns a freezable badguy into a solid block of ice.
func (b *BadGuy) Freeze() {
	if !b.freezable {
		return
	}
	b.frozen = true
	b.body.SetVelocityX(0)
	b.body.SetVelocityY(max(0, b.body.VelocityY()))
	b.SetGroup(collision.GroupMovingStatic)
	b.SetAction("iced")
}

func (b *BadGuy) Unfreeze() {
	if !b.frozen {
		return
	}
	b.frozen = false
	b.SetGroup(collision.GroupMoving)
	b.behavior.Init(b)
}

func (b *BadGuy) Draw(c *render.Canvas) {
	box := b.BBox()
	clr := badguyColors[b.kind]
	if b.frozen {
		clr = config.LightBlue
	}
	if b.state == StateSquished {
		box = gamemath.NewRect(box.Left(), box.Bottom()-box.Height()/4, box.Width(), box.Height()/4)
	}
	c.Submit(render.LayerObjects, render.FilledRectRequest{Rect: box, Color: clr, Radius: 4})
	eyeX := box.Left() + 6
	if b.dir == gamemath.DirRight {
		eyeX = box.Right() - 10
	}
	c.DrawFilledRect(gamemath.NewRect(eyeX, box.Top()+6, 4, 4), config.White, render.LayerObjects+1)
}

var badguyColors = map[string]color.RGBA{
	"igel":     config.Gray,
	"jumpy":    config.Blue,
	"zeekling": config.Purple,
}

type badguyHandler struct {
	collision.BaseHandler
	b *BadGuy
}

func (h badguyHandler) OnPlayer(p collision.Player, hit collision.Hit) collision.Response {
	b := h.b
	if b.frozen {
		return collision.Continue
	}
	if p.BBox().Bottom() < b.BBox().Top()+squishMargin {
		if b.squish.Squished(b) {
			p.Bounce()
			return collision.ForceMove
		}
	}
	if p.IsInvincible() {
		b.KillFall()
		return collision.AbortMove
	}
	p.Kill(false)
	return collision.ForceMove
}

func (h badguyHandler) OnBadguy(other collision.Badguy, hit collision.Hit) collision.Response {
	b := h.b
	if !other.IsActive() || other.Group() != collision.GroupMoving {
		return collision.Continue
	}
	if other.BBox().Bottom() < b.BBox().Top()+squishMargin {
		if b.squish.Squished(b) {
			return collision.AbortMove
		}
	}
	return b.behavior.CollisionBadguy(b, other, hit)
}

func (h badguyHandler) OnBullet(bullet collision.Bullet, hit collision.Hit) collision.Response {
	return h.b.bullets.HitByBullet(h.b, bullet, hit)
}

// DefaultBulletResponse: fire thaws or kills, ice freezes, anything else
// ricochets.
type DefaultBulletResponse struct{}

func (DefaultBulletResponse) HitByBullet(b *BadGuy, bullet collision.Bullet, hit collision.Hit) collision.Response {
	switch {
	case b.frozen && bullet.Kind() == status.FireBonus:
		b.Unfreeze()
		bullet.Remove()
		return collision.AbortMove
	case b.frozen:
		bullet.Ricochet(b, hit)
		return collision.ForceMove
	case bullet.Kind() == status.FireBonus && b.flammable:
		b.KillFall()
		bullet.Remove()
		return collision.AbortMove
	case bullet.Kind() == status.IceBonus && b.freezable:
		b.Freeze()
		bullet.Remove()
		return collision.AbortMove
	}
	bullet.Ricochet(b, hit)
	return collision.ForceMove
}

// SquishKills flattens the badguy on every stomp.
type SquishKills struct{}

func (SquishKills) Squished(b *BadGuy) bool {
	b.KillSquished()
	return true
}

// SquishHurts never lets a stomp succeed.
type SquishHurts struct{}

func (SquishHurts) Squished(*BadGuy) bool { return false }
