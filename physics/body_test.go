package physics

import (
	"math"
	"testing"
)

func TestMovementSemiImplicitEuler(t *testing.T) {
	b := New(1000)
	b.SetVelocity(100, -500)
	b.SetAcceleration(300, 0)

	mov := b.Movement(0.1)

	// velocity is updated before the delta is taken
	if b.VelocityX() != 130 {
		t.Errorf("vx = %v, want 130", b.VelocityX())
	}
	if b.VelocityY() != -400 {
		t.Errorf("vy = %v, want -400", b.VelocityY())
	}
	if math.Abs(mov.X-13) > 1e-9 || math.Abs(mov.Y+40) > 1e-9 {
		t.Errorf("movement = %+v, want (13, -40)", mov)
	}
}

func TestMovementWithoutGravity(t *testing.T) {
	b := New(1000)
	b.EnableGravity(false)
	b.SetVelocity(0, 10)

	mov := b.Movement(0.5)
	if b.VelocityY() != 10 || mov.Y != 5 {
		t.Errorf("vy = %v, mov.Y = %v; want 10, 5", b.VelocityY(), mov.Y)
	}
}

func TestSettersDoNotClamp(t *testing.T) {
	b := New(1000)
	b.SetVelocityX(1e9)
	b.SetVelocityX(1e9)
	if b.VelocityX() != 1e9 {
		t.Errorf("vx = %v", b.VelocityX())
	}
}

func TestReset(t *testing.T) {
	b := New(1000)
	b.SetVelocity(1, 2)
	b.SetAcceleration(3, 4)
	b.SetGravity(3000)
	b.EnableGravity(false)

	b.Reset()

	if b.Velocity().X != 0 || b.Velocity().Y != 0 || b.AccelerationX() != 0 || b.AccelerationY() != 0 {
		t.Error("reset must zero velocity and acceleration")
	}
	if !b.GravityEnabled() {
		t.Error("reset must re-enable gravity")
	}
	if b.Gravity() != 1000 {
		t.Errorf("gravity = %v, want base 1000", b.Gravity())
	}
}
