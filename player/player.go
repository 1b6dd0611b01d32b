// Package player implements Tux: input handling, movement, the bonus and
// damage state machine and sprite action selection. It talks to the world
// only through the Sector interface.
package player

import (
	"math/rand"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/physics"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/sprite"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/timer"
)

// ErrUnknownBonus is returned by AddBonusName for names it does not know.
var ErrUnknownBonus = status.ErrUnknownBonus

// Sector is the part of the world the player queries and spawns into.
type Sector interface {
	// IsFreeOfStatics reports whether r overlaps no solid tile or moving
	// static object other than ignore. One-way platforms are skipped when
	// ignoreUnisolid is set.
	IsFreeOfStatics(r gamemath.Rect, ignore collision.Object, ignoreUnisolid bool) bool
	IsFreeOfMovingStatics(r gamemath.Rect) bool
	Portables() []collision.Portable
	Contains(o collision.Object) bool
	AddBullet(pos gamemath.Vector, xm float64, dir gamemath.Direction, kind status.BonusType) bool
	AddEffect(e effects.Effect)
	Width() float64
	Height() float64
	Clock() *timer.Clock
	Rand() *rand.Rand
	PlaySound(id config.SoundID)
	PlayMusic(id config.MusicID)
	StopMusic(fadeTime float64)
	FadeOut(seconds float64)
	HasResetPoint() bool
	ClearResetPoint()
}

// Controller is the input source the player reads each frame.
type Controller interface {
	Hold(c controller.Control) bool
	Pressed(c controller.Control) bool
	Released(c controller.Control) bool
}

// FallMode classifies vertical travel for animation and landing logic.
type FallMode int

const (
	OnGround FallMode = iota
	Jumping
	Falling
)

func (m FallMode) String() string {
	switch m {
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	}
	return "on-ground"
}

// Contact is the terrain the player touched during the last collision pass.
// It is handed to Step at the start of the next frame.
type Contact struct {
	Water bool
	Ice   bool
}

var idleStages = [...]string{"stand", "idle", "stand", "idle", "stand"}

// idle stage durations in seconds; 0 plays the action once
var idleTimes = [...]float64{5, 0, 2.5, 0, 2.5}

type Player struct {
	collision.MovingObject

	body   physics.Body
	sector Sector
	status *status.Status
	sprite *sprite.Sprite

	controller          Controller
	savedController     Controller
	scriptingController *controller.Controller

	dir    gamemath.Direction
	oldDir gamemath.Direction
	peekX  gamemath.Direction
	peekY  gamemath.Direction

	fallMode    FallMode
	lastGroundY float64
	floorNormal gamemath.Vector
	onGround    bool
	contact     Contact

	duck              bool
	dying             bool
	dead              bool
	growing           bool
	backflipping      bool
	backflipDirection float64
	climbing          collision.Climbable
	ghostMode         bool
	editMode          bool
	deactivated       bool
	swimming          bool
	onIce             bool
	doesButtjump      bool
	wantsButtjump     bool
	jumping           bool
	canJump           bool
	jumpEarlyApex     bool
	visible           bool
	speedLimit        float64

	grabbed collision.Portable

	idleStage int

	idleTimer       timer.Timer
	invincibleTimer timer.Timer
	safeTimer       timer.Timer
	skiddingTimer   timer.Timer
	kickTimer       timer.Timer
	shootingTimer   timer.Timer
	jumpButtonTimer timer.Timer
	unduckHurtTimer timer.Timer
	backflipTimer   timer.Timer
	dyingTimer      timer.Timer
}

// New creates a player in sector reading input from ctrl. st is shared with
// the HUD and survives respawns.
func New(sector Sector, st *status.Status, ctrl Controller) *Player {
	clock := sector.Clock()
	p := &Player{
		MovingObject:        collision.NewMovingObject(gamemath.Rect{}, collision.GroupMoving),
		body:                physics.New(config.Physics.Gravity),
		sector:              sector,
		status:              st,
		sprite:              sprite.New("small-stand-right"),
		controller:          ctrl,
		scriptingController: controller.New(),

		idleTimer:       timer.New(clock),
		invincibleTimer: timer.New(clock),
		safeTimer:       timer.New(clock),
		skiddingTimer:   timer.New(clock),
		kickTimer:       timer.New(clock),
		shootingTimer:   timer.New(clock),
		jumpButtonTimer: timer.New(clock),
		unduckHurtTimer: timer.New(clock),
		backflipTimer:   timer.New(clock),
		dyingTimer:      timer.New(clock),
	}
	p.idleTimer.Start(idleTimes[0])
	p.Init()
	return p
}

// Init resets the player to a fresh state, keeping position and status.
func (p *Player) Init() {
	row := config.Sizes.Init
	if p.IsBig() {
		p.SetSize(row.Width, row.BigHeight)
	} else {
		p.SetSize(row.Width, row.SmallHeight)
	}

	p.dir = gamemath.DirRight
	p.oldDir = p.dir
	p.duck = false
	p.dead = false
	p.dying = false
	p.peekX = gamemath.DirAuto
	p.peekY = gamemath.DirAuto
	p.lastGroundY = 0
	p.fallMode = OnGround
	p.jumping = false
	p.jumpEarlyApex = false
	p.canJump = true
	p.wantsButtjump = false
	p.doesButtjump = false
	p.growing = false
	p.deactivated = false
	p.backflipping = false
	p.backflipDirection = 0
	p.visible = true
	p.swimming = false
	p.onIce = false
	p.contact = Contact{}
	p.speedLimit = 0
	p.onGround = false
	p.grabbed = nil
	p.climbing = nil
	p.SetGroup(collision.GroupMoving)

	p.body.Reset()
}

// Update runs one frame using the terrain contact gathered since the last
// frame.
func (p *Player) Update(dt float64) {
	env := p.contact
	p.contact = Contact{}
	p.Step(dt, env)
}

// Step advances the player by dt. env is the terrain contact of the previous
// collision pass.
func (p *Player) Step(dt float64, env Contact) {
	defer p.scriptingController.Update()

	if !env.Water {
		p.swimming = false
	}

	if p.dying && p.dyingTimer.Check() {
		p.dead = true
		return
	}

	if !p.dying && !p.deactivated {
		p.handleInput()
	}

	// handleInput applies friction itself when no direction is held
	if p.deactivated {
		p.applyFriction()
	}

	// a wider box walks over single tile holes at speed
	if abs(p.body.VelocityX()) > config.Player.MaxWalkSpeed {
		p.SetWidth(config.Player.WideWidth)
	} else {
		p.SetWidth(config.Sizes.Init.Width)
	}

	// stick to downward slopes
	if p.onGround && p.floorNormal.X != 0 {
		if p.floorNormal.X*p.body.VelocityX() >= 0 {
			p.body.SetVelocityY(config.Player.SlopeGlueSpeed)
		}
	}

	if p.backflipping {
		if p.backflipDirection == 1 {
			p.dir = gamemath.DirLeft
		} else {
			p.dir = gamemath.DirRight
		}
		if p.backflipTimer.Started() {
			p.body.SetVelocityX(config.Player.BackflipSpeedX * p.backflipDirection)
		}
	}

	if p.onGround {
		p.fallMode = OnGround
		p.lastGroundY = p.Pos().Y
	} else {
		if p.Pos().Y > p.lastGroundY {
			p.fallMode = Falling
		} else if p.fallMode == OnGround {
			p.fallMode = Jumping
		}
	}

	if p.onGround {
		p.jumping = false
		if p.backflipping && !p.backflipTimer.Started() {
			p.backflipping = false
			p.backflipDirection = 0
			if p.deactivated {
				p.doStandup()
			}
		}
	}

	p.SetMovement(p.body.Movement(dt))

	if p.grabbed != nil && !p.dying {
		p.grabbed.Grab(p, p.carryPos(16), p.dir)
	}
	if p.grabbed != nil && p.dying {
		p.grabbed.Ungrab(p, p.dir)
		p.grabbed = nil
	}

	if !env.Ice && p.onGround {
		p.onIce = false
	}
	p.onGround = false

	if p.invincibleTimer.Started() && !p.dying {
		p.emitSparkle()
	}

	p.sprite.Update(dt)
	if p.growing && p.sprite.AnimationDone() {
		p.growing = false
	}
}

// carryPos is where a held object sits, offset horizontally towards the
// facing direction.
func (p *Player) carryPos(offsetX float64) gamemath.Vector {
	dx := offsetX
	if p.dir == gamemath.DirLeft {
		dx = -offsetX
	}
	return p.Pos().Add(gamemath.Vector{X: dx, Y: p.BBox().Height()*0.66666 - 32})
}

func (p *Player) emitSparkle() {
	rng := p.sector.Rand()
	if rng.Intn(3) != 0 {
		return
	}
	b := p.BBox()
	pos := gamemath.Vector{
		X: b.Left() + rng.Float64()*b.Width(),
		Y: b.Top() + rng.Float64()*b.Height(),
	}
	action := "dark"
	if p.invincibleTimer.TimeLeft() > config.Player.InvincibleTimeWarning {
		// alternate so the trail looks fuzzy
		if int(p.sector.Clock().Now()*20)%2 == 1 {
			action = "small"
		} else {
			action = "medium"
		}
	}
	p.sector.AddEffect(effects.NewSparkle(action, pos))
}

func (p *Player) playJumpSound() {
	if p.IsBig() {
		p.sector.PlaySound(config.SoundBigJump)
	} else {
		p.sector.PlaySound(config.SoundJump)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Player) Dir() gamemath.Direction { return p.dir }
func (p *Player) Velocity() gamemath.Vector { return p.body.Velocity() }
func (p *Player) Status() *status.Status { return p.status }
func (p *Player) Sprite() *sprite.Sprite { return p.sprite }
func (p *Player) FallMode() FallMode { return p.fallMode }
func (p *Player) Climbing() collision.Climbable { return p.climbing }
func (p *Player) Grabbed() collision.Portable { return p.grabbed }
func (p *Player) Peeking() (x, y gamemath.Direction) { return p.peekX, p.peekY }

func (p *Player) IsBig() bool { return p.status.Bonus != status.NoBonus }
func (p *Player) IsDucking() bool { return p.duck }
func (p *Player) IsDying() bool { return p.dying }
func (p *Player) IsDead() bool { return p.dead }
func (p *Player) IsGrowing() bool { return p.growing }
func (p *Player) IsBackflipping() bool { return p.backflipping }
func (p *Player) IsGhost() bool { return p.ghostMode }
func (p *Player) IsSwimming() bool { return p.swimming }
func (p *Player) IsOnIce() bool { return p.onIce }
func (p *Player) IsDeactivated() bool { return p.deactivated }
func (p *Player) IsVisible() bool { return p.visible }
func (p *Player) CanJump() bool { return p.canJump }
func (p *Player) IsJumping() bool { return p.jumping }
func (p *Player) OnGround() bool { return p.onGround }

// IsInvincible reports whether a star is active.
func (p *Player) IsInvincible() bool { return p.invincibleTimer.Started() }

// InvincibleLeft returns the seconds of star power left.
func (p *Player) InvincibleLeft() float64 {
	if !p.invincibleTimer.Started() {
		return 0
	}
	return p.invincibleTimer.TimeLeft()
}

// IsShielded reports whether non-fatal damage is currently ignored.
func (p *Player) IsShielded() bool {
	return p.safeTimer.Started() || p.invincibleTimer.Started()
}

// UpPressed reports an edge-triggered UP on the active controller.
func (p *Player) UpPressed() bool { return p.controller.Pressed(controller.Up) }
