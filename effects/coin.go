package effects

import (
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// FallingCoin is a coin knocked out of a dying player. It cannot be collected.
type FallingCoin struct {
	pos  gamemath.Vector
	body physics.Body
	age  float64
}

func NewFallingCoin(pos, vel gamemath.Vector) *FallingCoin {
	body := physics.New(config.Effects.CoinGravity)
	body.SetVelocity(vel.X, vel.Y)
	return &FallingCoin{pos: pos, body: body}
}

func (c *FallingCoin) Update(dt float64) {
	c.age += dt
	c.pos = c.pos.Add(c.body.Movement(dt))
}

func (c *FallingCoin) Draw(cv *render.Canvas) {
	cv.DrawFilledRect(gamemath.NewRect(c.pos.X, c.pos.Y, 16, 16), config.Yellow, render.LayerObjects+2)
}

func (c *FallingCoin) Done() bool { return c.age >= config.Effects.CoinLifetime }

func (c *FallingCoin) Pos() gamemath.Vector { return c.pos }

func (c *FallingCoin) Velocity() gamemath.Vector { return c.body.Velocity() }
