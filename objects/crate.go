package objects

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

const crateSize = 31.8

// Crate is a solid box the player can pick up and throw.
type Crate struct {
	collision.MovingObject
	body     physics.Body
	grabbed  bool
	onGround bool
	holder   collision.Object
}

func NewCrate(pos gamemath.Vector) *Crate {
	return &Crate{
		MovingObject: collision.NewMovingObject(
			gamemath.NewRect(pos.X, pos.Y, crateSize, crateSize), collision.GroupMovingStatic),
		body: physics.New(config.Physics.Gravity),
	}
}

func (c *Crate) IsPortable() bool { return true }

func (c *Crate) Grabbed() bool { return c.grabbed }

func (c *Crate) Holder() collision.Object { return c.holder }

func (c *Crate) Velocity() gamemath.Vector { return c.body.Velocity() }

// Grab attaches the crate to holder. The crate travels to pos in the next
// sector step without colliding.
func (c *Crate) Grab(holder collision.Object, pos gamemath.Vector, dir gamemath.Direction) {
	c.SetMovement(pos.Sub(c.Pos()))
	c.SetGroup(collision.GroupTouchable)
	c.grabbed = true
	c.onGround = true
	c.holder = holder
}

// Ungrab drops the crate, tossing it upwards for DirUp.
func (c *Crate) Ungrab(holder collision.Object, dir gamemath.Direction) {
	c.SetGroup(collision.GroupMovingStatic)
	c.grabbed = false
	c.onGround = false
	c.holder = nil
	c.body.Reset()
	if dir == gamemath.DirUp {
		c.body.SetVelocityY(-500)
	} else {
		c.body.SetVelocityX(dir.Sign() * 100)
	}
}

func (c *Crate) Update(dt float64) {
	if c.grabbed {
		return
	}
	c.SetMovement(c.body.Movement(dt))
}

func (c *Crate) CollisionSolid(hit collision.Hit) {
	if hit.Bottom || hit.Top {
		c.body.SetVelocityY(0)
		c.body.SetVelocityX(0)
	}
	if hit.Left || hit.Right {
		c.body.SetVelocityX(0)
	}
	if hit.Bottom {
		c.onGround = true
	}
}

func (c *Crate) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnPortable(c, hit)
}

func (c *Crate) Draw(cv *render.Canvas) {
	cv.DrawFilledRect(c.BBox(), config.Orange, render.LayerObjects)
	cv.DrawLine(c.BBox().Pos(), c.BBox().BottomRight(), config.Gray, render.LayerObjects)
}
