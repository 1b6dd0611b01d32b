package objects

import (
	"image/color"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

var vineColor = color.RGBA{R: 40, G: 140, B: 40, A: 255}

// Climbable is an area, like a vine or ladder, the player can hang on to by
// pressing up inside it.
type Climbable struct {
	collision.MovingObject
	climbedBy collision.Player
}

func NewClimbable(area gamemath.Rect) *Climbable {
	return &Climbable{MovingObject: collision.NewMovingObject(area, collision.GroupTouchable)}
}

func (c *Climbable) Climbable() bool { return true }

// ClimbedBy returns the player currently on this climbable, if any.
func (c *Climbable) ClimbedBy() collision.Player { return c.climbedBy }

func (c *Climbable) Update(dt float64) {
	if c.climbedBy == nil {
		return
	}
	p := c.climbedBy
	if p.Climbing() != collision.Climbable(c) {
		c.climbedBy = nil
		return
	}
	// let go once the player's middle leaves the area
	if !c.BBox().Contains(p.BBox().Middle()) {
		c.climbedBy = nil
		p.StopClimbing(c)
	}
}

func (c *Climbable) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return other.Dispatch(climbableHandler{c: c}, hit)
}

func (c *Climbable) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnObject(c, hit)
}

func (c *Climbable) Draw(cv *render.Canvas) {
	b := c.BBox()
	mid := b.Middle().X
	cv.DrawLine(gamemath.Vector{X: mid, Y: b.Top()}, gamemath.Vector{X: mid, Y: b.Bottom()}, vineColor, render.LayerTiles+1)
}

type climbableHandler struct {
	collision.BaseHandler
	c *Climbable
}

func (h climbableHandler) OnPlayer(p collision.Player, hit collision.Hit) collision.Response {
	if !p.UpPressed() || p.Climbing() != nil {
		return collision.Continue
	}
	if !h.c.BBox().Contains(p.BBox().Middle()) {
		return collision.Continue
	}
	p.StartClimbing(h.c)
	h.c.climbedBy = p
	return collision.Continue
}
