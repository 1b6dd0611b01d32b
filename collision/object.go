package collision

import (
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

// Object is anything the sector moves and collides.
type Object interface {
	BBox() gamemath.Rect
	Movement() gamemath.Vector
	SetPos(p gamemath.Vector)
	Group() Group
	Removed() bool

	// Update runs the object's per-frame logic and sets its movement.
	Update(dt float64)

	// CollisionSolid is called after the move with the sides that touched
	// solid geometry.
	CollisionSolid(hit Hit)
	// CollisionTile reports the attributes of tiles touched this frame.
	CollisionTile(attrs TileAttr)
	// Collision is called when this object touches other. Implementations
	// resolve the kind of other by calling other.Dispatch.
	Collision(other Object, hit Hit) Response
	// Dispatch calls the Handler method for the concrete kind of the
	// receiver.
	Dispatch(h Handler, hit Hit) Response
}

// Handler receives the concrete kind of a collision partner. Embed
// BaseHandler to get Continue for every kind not handled.
type Handler interface {
	OnPlayer(p Player, hit Hit) Response
	OnBadguy(b Badguy, hit Hit) Response
	OnBullet(b Bullet, hit Hit) Response
	OnTrigger(t Trigger, hit Hit) Response
	OnPortable(p Portable, hit Hit) Response
	OnObject(o Object, hit Hit) Response
}

// BaseHandler answers Continue to everything.
type BaseHandler struct{}

func (BaseHandler) OnPlayer(Player, Hit) Response { return Continue }
func (BaseHandler) OnBadguy(Badguy, Hit) Response { return Continue }
func (BaseHandler) OnBullet(Bullet, Hit) Response { return Continue }
func (BaseHandler) OnTrigger(Trigger, Hit) Response { return Continue }
func (BaseHandler) OnPortable(Portable, Hit) Response { return Continue }
func (BaseHandler) OnObject(Object, Hit) Response { return Continue }

// Player is what other objects may do to the player.
type Player interface {
	Object
	Kill(completely bool)
	Bounce()
	Kick()
	IsShielded() bool
	IsInvincible() bool
	IsBig() bool
	Velocity() gamemath.Vector
	AddCoins(count int)
	AddBonus(b status.BonusType, animate bool) bool
	MakeInvincible()
	StartClimbing(c Climbable)
	StopClimbing(c Climbable)
	Climbing() Climbable
	UpPressed() bool
}

// Badguy is what other objects may do to an enemy.
type Badguy interface {
	Object
	IsActive() bool
	KillFall()
}

// Bullet is a fire or ice projectile.
type Bullet interface {
	Object
	Kind() status.BonusType
	Ricochet(other Object, hit Hit)
	Remove()
}

// Trigger is a touchable area the player activates by pressing up.
type Trigger interface {
	Object
	Activate(p Player)
}

// Portable objects can be carried.
type Portable interface {
	Object
	IsPortable() bool
	Grab(holder Object, pos gamemath.Vector, dir gamemath.Direction)
	Ungrab(holder Object, dir gamemath.Direction)
}

// Climbable marks objects that can be climbed. Handles are compared by
// identity.
type Climbable interface {
	Object
	Climbable() bool
}
