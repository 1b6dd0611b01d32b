package effects

import (
	"image/color"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/sprite"
)

var spriteParticleColors = map[string]color.RGBA{
	"fire-helmet": config.Orange,
	"ice-cap":     config.LightBlue,
	"small":       config.White,
	"medium":      config.Yellow,
	"dark":        config.Gray,
}

// SpriteParticle is a single animated particle, e.g. a lost helmet or an
// invincibility sparkle.
type SpriteParticle struct {
	sprite   *sprite.Sprite
	pos      gamemath.Vector
	body     physics.Body
	lifetime float64
	age      float64
	size     float64
	layer    int
}

// NewSpriteParticle plays action once at pos. A zero lifetime keeps the
// particle until its animation finishes.
func NewSpriteParticle(action string, pos, vel, accel gamemath.Vector, lifetime float64, layer int) *SpriteParticle {
	body := physics.New(0)
	body.EnableGravity(false)
	body.SetVelocity(vel.X, vel.Y)
	body.SetAcceleration(accel.X, accel.Y)

	s := sprite.New(action)
	s.SetAction(action, 1)
	return &SpriteParticle{
		sprite:   s,
		pos:      pos,
		body:     body,
		lifetime: lifetime,
		size:     8,
		layer:    layer,
	}
}

// NewSparkle is the star left behind by an invincible player.
func NewSparkle(action string, pos gamemath.Vector) *SpriteParticle {
	p := NewSpriteParticle(action, pos, gamemath.Vector{}, gamemath.Vector{}, config.Effects.SparkleLife, render.LayerObjects+1)
	p.size = 3
	return p
}

// NewHeadgear is the helmet or cap a fire/ice player loses when hit.
func NewHeadgear(action string, pos gamemath.Vector, facingLeft bool) *SpriteParticle {
	vx := -config.Effects.HeadgearSpeedX
	if facingLeft {
		vx = config.Effects.HeadgearSpeedX
	}
	p := NewSpriteParticle(action, pos,
		gamemath.Vector{X: vx, Y: config.Effects.HeadgearSpeedY},
		gamemath.Vector{X: 0, Y: config.Effects.HeadgearAccelY},
		config.Effects.CoinLifetime, render.LayerObjects-1)
	p.size = 12
	return p
}

func (p *SpriteParticle) Update(dt float64) {
	p.age += dt
	p.pos = p.pos.Add(p.body.Movement(dt))
	p.sprite.Update(dt)
}

func (p *SpriteParticle) Draw(c *render.Canvas) {
	clr, ok := spriteParticleColors[p.sprite.Action()]
	if !ok {
		clr = config.White
	}
	c.DrawFilledRect(gamemath.NewRect(p.pos.X-p.size/2, p.pos.Y-p.size/2, p.size, p.size), clr, p.layer)
}

func (p *SpriteParticle) Done() bool {
	if p.lifetime > 0 {
		return p.age >= p.lifetime
	}
	return p.sprite.AnimationDone()
}

func (p *SpriteParticle) Action() string { return p.sprite.Action() }

func (p *SpriteParticle) Pos() gamemath.Vector { return p.pos }

func (p *SpriteParticle) Velocity() gamemath.Vector { return p.body.Velocity() }
