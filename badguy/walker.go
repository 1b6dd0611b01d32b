package badguy

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/timer"
)

// WalkerState is the state of a Walker.
type WalkerState int

const (
	Walking WalkerState = iota
	// Fleeing lasts for the recover time after a turn. Vision cannot turn
	// the walker again while it lasts.
	Fleeing
)

func (s WalkerState) String() string {
	if s == Fleeing {
		return "fleeing"
	}
	return "walking"
}

// Vision decides whether the walker has seen something to run from.
type Vision interface {
	WantsToFlee(b *BadGuy) bool
}

// Blind never sees anything.
type Blind struct{}

func (Blind) WantsToFlee(*BadGuy) bool { return false }

const (
	dizzyTurns  = 10
	dizzyWindow = 1.0
)

// Walker patrols back and forth, turning at walls, at other badguys and
// at ledges deeper than MaxDropHeight.
type Walker struct {
	WalkSpeed float64
	// MaxDropHeight is the deepest step the walker walks off. Negative
	// means it walks off anything.
	MaxDropHeight float64
	RecoverTime   float64

	vision       Vision
	state        WalkerState
	recoverTimer timer.Timer
	dizzyTimer   timer.Timer
	dizzyCount   int
}

func NewWalker(clock *timer.Clock, walkSpeed, maxDropHeight, recoverTime float64, vision Vision) *Walker {
	if vision == nil {
		vision = Blind{}
	}
	return &Walker{
		WalkSpeed:     walkSpeed,
		MaxDropHeight: maxDropHeight,
		RecoverTime:   recoverTime,
		vision:        vision,
		recoverTimer:  timer.New(clock),
		dizzyTimer:    timer.New(clock),
	}
}

func (w *Walker) State() WalkerState { return w.state }

func (w *Walker) Init(b *BadGuy) {
	b.body.SetVelocityX(b.dir.Sign() * w.WalkSpeed)
	b.SetAction("walking")
}

func (w *Walker) ActiveUpdate(b *BadGuy, dt float64) {
	if w.state == Fleeing && !w.recoverTimer.Started() {
		w.state = Walking
	}
	if w.vision.WantsToFlee(b) && !w.recoverTimer.Started() {
		w.TurnAround(b)
		b.Move(dt)
		return
	}
	b.Move(dt)
	if w.MaxDropHeight >= 0 && b.OnGround() && b.MightFall(w.MaxDropHeight+1) {
		w.TurnAround(b)
	}
}

func (w *Walker) CollisionSolid(b *BadGuy, hit collision.Hit) {
	if hit.Top && b.body.VelocityY() < 0 {
		b.body.SetVelocityY(0)
	}
	if hit.Bottom && b.body.VelocityY() > 0 {
		b.body.SetVelocityY(0)
	}
	if facing(b, hit) {
		w.TurnAround(b)
	}
}

func (w *Walker) CollisionBadguy(b *BadGuy, other collision.Badguy, hit collision.Hit) collision.Response {
	if facing(b, hit) {
		w.TurnAround(b)
	}
	return collision.Continue
}

// TurnAround reverses direction and starts the recover window. A walker
// that turns more than ten times within a second gets dizzy and falls.
func (w *Walker) TurnAround(b *BadGuy) {
	if b.frozen {
		return
	}
	b.dir = b.dir.Opposite()
	b.SetAction("walking")
	b.body.SetVelocityX(-b.body.VelocityX())
	if w.RecoverTime > 0 {
		w.state = Fleeing
		w.recoverTimer.Start(w.RecoverTime)
	}

	if w.dizzyTimer.Started() {
		w.dizzyCount++
		if w.dizzyCount > dizzyTurns {
			b.KillFall()
		}
		return
	}
	w.dizzyTimer.Start(dizzyWindow)
	w.dizzyCount = 0
}

// facing reports whether hit is on the side the badguy is walking to.
func facing(b *BadGuy, hit collision.Hit) bool {
	return (hit.Left && b.dir == gamemath.DirLeft) || (hit.Right && b.dir == gamemath.DirRight)
}
