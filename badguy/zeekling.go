package badguy

import (
	"math"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// ZeeklingState is the flight phase of a Zeekling.
type ZeeklingState int

const (
	Flying ZeeklingState = iota
	Diving
	Climbing
)

// Zeekling flies back and forth and swoops down when its linear guess says
// it would meet the player.
type Zeekling struct {
	speed float64
	state ZeeklingState

	lastPlayer    collision.Player
	lastPlayerPos gamemath.Vector
	lastSelfPos   gamemath.Vector
}

// NewZeekling draws its flying speed from the sector's random source.
func NewZeekling(sector Sector, pos gamemath.Vector, dir gamemath.Direction) *BadGuy {
	lo, hi := config.Zeekling.MinSpeed, config.Zeekling.MaxSpeed
	z := &Zeekling{speed: float64(lo + sector.Rand().Intn(hi-lo))}
	b := newBadGuy(sector, "zeekling", pos, dir, z)
	b.body.EnableGravity(false)
	return b
}

func (z *Zeekling) Speed() float64 { return z.speed }
func (z *Zeekling) State() ZeeklingState { return z.state }

func (z *Zeekling) Init(b *BadGuy) {
	b.body.SetVelocityX(b.dir.Sign() * z.speed)
	b.SetAction("flying")
}

func (z *Zeekling) ActiveUpdate(b *BadGuy, dt float64) {
	switch z.state {
	case Flying:
		if z.shouldDive(b) {
			z.state = Diving
			b.body.SetVelocityY(2 * math.Abs(b.body.VelocityX()))
			b.SetAction("diving")
		}
	case Climbing:
		if b.Pos().Y <= b.startPos.Y {
			z.state = Flying
			b.body.SetVelocityY(0)
		}
	}
	b.Move(dt)
}

// shouldDive predicts where the player and the zeekling will be when the
// zeekling has descended to the player's height.
func (z *Zeekling) shouldDive(b *BadGuy) bool {
	p := b.sector.NearestPlayer(b.Pos())
	if p != nil && z.lastPlayer != nil && p == z.lastPlayer {
		playerPos := p.BBox().Pos()
		playerMov := playerPos.Sub(z.lastPlayerPos)
		selfPos := b.Pos()
		selfMov := selfPos.Sub(z.lastSelfPos)

		vy := 2 * math.Abs(selfMov.X)
		height := playerPos.Y - selfPos.Y
		if height <= 0 || height > config.Zeekling.MaxDiveHeight {
			return false
		}
		relSpeed := vy - playerMov.Y
		if relSpeed <= 0 {
			return false
		}
		frames := height / relSpeed
		estPlayerX := playerPos.X + frames*playerMov.X
		estSelfX := selfPos.X + frames*selfMov.X
		if math.Abs(estPlayerX-estSelfX) < config.Zeekling.NearMissDistance {
			return true
		}
	}

	z.lastPlayer = p
	if p != nil {
		z.lastPlayerPos = p.BBox().Pos()
		z.lastSelfPos = b.Pos()
	}
	return false
}

func (z *Zeekling) CollisionSolid(b *BadGuy, hit collision.Hit) {
	switch {
	case hit.Top || hit.Bottom:
		z.bumpVertical(b)
	case hit.Left || hit.Right:
		z.bumpHorizontal(b)
	}
}

func (z *Zeekling) CollisionBadguy(b *BadGuy, other collision.Badguy, hit collision.Hit) collision.Response {
	return collision.Continue
}

func (z *Zeekling) bumpHorizontal(b *BadGuy) {
	b.dir = b.dir.Opposite()
	b.body.SetVelocityX(b.dir.Sign() * z.speed)
	if z.state == Diving {
		z.state = Flying
		b.body.SetVelocityY(0)
	}
	b.SetAction("flying")
}

func (z *Zeekling) bumpVertical(b *BadGuy) {
	switch z.state {
	case Flying:
		b.body.SetVelocityY(0)
	case Diving:
		z.state = Climbing
		b.body.SetVelocityY(-z.speed)
		b.SetAction("flying")
	case Climbing:
		z.state = Flying
		b.body.SetVelocityY(0)
	}
}
