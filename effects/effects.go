// Package effects holds short-lived cosmetic objects: dust bursts, sparkles,
// lost headgear and scattered coins. None of them take part in collisions.
package effects

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// Effect is a cosmetic object owned by the sector.
type Effect interface {
	Update(dt float64)
	Draw(c *render.Canvas)
	Done() bool
}

type particle struct {
	pos gamemath.Vector
	vel gamemath.Vector
}

// Particles is a burst of square particles sharing color, size and lifetime.
type Particles struct {
	particles []particle
	accel     gamemath.Vector
	color     color.RGBA
	size      float64
	lifetime  float64
	age       float64
	layer     int
}

// NewParticles emits number particles at pos. Each particle gets a random
// angle in [minAngle, maxAngle] degrees and starts with velocity
// (sin(a)*initial.X, cos(a)*initial.Y).
func NewParticles(rng *rand.Rand, pos gamemath.Vector, minAngle, maxAngle int, initial, accel gamemath.Vector,
	number int, clr color.RGBA, size, lifetime float64, layer int) *Particles {
	p := &Particles{
		particles: make([]particle, 0, number),
		accel:     accel,
		color:     clr,
		size:      size,
		lifetime:  lifetime,
		layer:     layer,
	}
	for i := 0; i < number; i++ {
		angle := float64(minAngle)
		if maxAngle > minAngle {
			angle += float64(rng.Intn(maxAngle - minAngle + 1))
		}
		rad := angle * math.Pi / 180
		p.particles = append(p.particles, particle{
			pos: pos,
			vel: gamemath.Vector{X: math.Sin(rad) * initial.X, Y: math.Cos(rad) * initial.Y},
		})
	}
	return p
}

// NewDust is the grey puff used for skids and butt-jump landings.
func NewDust(rng *rand.Rand, pos gamemath.Vector, minAngle, maxAngle int) *Particles {
	return NewParticles(rng, pos, minAngle, maxAngle,
		gamemath.Vector{X: 280, Y: -260}, gamemath.Vector{X: 0, Y: 300},
		config.Effects.DustCount, config.Effects.DustColor, 3, config.Effects.DustLifetime, render.LayerObjects+1)
}

func (p *Particles) Update(dt float64) {
	p.age += dt
	for i := range p.particles {
		pt := &p.particles[i]
		pt.pos = pt.pos.Add(pt.vel.Scale(dt))
		pt.vel = pt.vel.Add(p.accel.Scale(dt))
	}
}

func (p *Particles) Draw(c *render.Canvas) {
	for _, pt := range p.particles {
		c.DrawFilledRect(gamemath.NewRect(pt.pos.X, pt.pos.Y, p.size, p.size), p.color, p.layer)
	}
}

func (p *Particles) Done() bool { return p.age >= p.lifetime }

// Count returns the number of particles in the burst.
func (p *Particles) Count() int { return len(p.particles) }

// Velocities returns the current particle velocities.
func (p *Particles) Velocities() []gamemath.Vector {
	out := make([]gamemath.Vector, len(p.particles))
	for i, pt := range p.particles {
		out[i] = pt.vel
	}
	return out
}
