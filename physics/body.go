// Package physics integrates the motion of a single body.
package physics

import "github.com/automoto/tuxrun/shared/gamemath"

// Body holds velocity, acceleration and gravity for one moving object.
// Setters never clamp; limiting speed is the caller's job.
type Body struct {
	vx, vy float64
	ax, ay float64

	baseGravity    float64
	gravity        float64
	gravityEnabled bool
}

// New returns a body at rest with gravity enabled.
func New(gravity float64) Body {
	return Body{
		baseGravity:    gravity,
		gravity:        gravity,
		gravityEnabled: true,
	}
}

// Reset zeroes velocity and acceleration, re-enables gravity and restores
// the base gravity. Callers that need gravity off must disable it again.
func (b *Body) Reset() {
	b.vx, b.vy = 0, 0
	b.ax, b.ay = 0, 0
	b.gravity = b.baseGravity
	b.gravityEnabled = true
}

// Movement advances velocity by one step of semi-implicit Euler and returns
// the position delta for this frame.
func (b *Body) Movement(dt float64) gamemath.Vector {
	grav := 0.0
	if b.gravityEnabled {
		grav = b.gravity
	}
	b.vx += b.ax * dt
	b.vy += (b.ay + grav) * dt
	return gamemath.Vector{X: b.vx * dt, Y: b.vy * dt}
}

func (b *Body) VelocityX() float64 { return b.vx }
func (b *Body) VelocityY() float64 { return b.vy }

func (b *Body) Velocity() gamemath.Vector { return gamemath.Vector{X: b.vx, Y: b.vy} }

func (b *Body) SetVelocityX(vx float64) { b.vx = vx }
func (b *Body) SetVelocityY(vy float64) { b.vy = vy }

func (b *Body) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

// InverseVelocityX flips the horizontal direction of travel.
func (b *Body) InverseVelocityX() { b.vx = -b.vx }

func (b *Body) AccelerationX() float64 { return b.ax }
func (b *Body) AccelerationY() float64 { return b.ay }

func (b *Body) SetAccelerationX(ax float64) { b.ax = ax }
func (b *Body) SetAccelerationY(ay float64) { b.ay = ay }

func (b *Body) SetAcceleration(ax, ay float64) {
	b.ax, b.ay = ax, ay
}

func (b *Body) Gravity() float64 { return b.gravity }

// SetGravity replaces the current gravity, e.g. to shorten a jump.
func (b *Body) SetGravity(g float64) { b.gravity = g }

func (b *Body) EnableGravity(enable bool) { b.gravityEnabled = enable }

func (b *Body) GravityEnabled() bool { return b.gravityEnabled }
