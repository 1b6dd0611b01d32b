package player

import (
	"log"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

func (p *Player) handleInput() {
	if p.ghostMode {
		p.handleInputGhost()
		return
	}
	if p.climbing != nil {
		p.handleInputClimbing()
		return
	}

	p.handlePeeking()

	if !p.backflipping {
		p.handleHorizontalInput()
	}

	if p.onGround {
		p.canJump = true
	}

	p.handleVerticalInput()

	if p.controller.Pressed(controller.Action) &&
		(p.status.Bonus == status.FireBonus || p.status.Bonus == status.IceBonus) {
		offset := gamemath.Vector{X: 32, Y: p.BBox().Height() / 2}
		if p.dir == gamemath.DirLeft {
			offset.X = 0
		}
		if p.sector.AddBullet(p.Pos().Add(offset), p.body.VelocityX(), p.dir, p.status.Bonus) {
			p.shootingTimer.Start(config.Player.ShootingTime)
		}
	}

	if p.controller.Hold(controller.Down) {
		p.doDuck()
	} else {
		p.doStandup()
	}

	p.tryGrab()

	if !p.controller.Hold(controller.Action) && p.grabbed != nil {
		p.releaseGrabbed()
	}
}

func (p *Player) handlePeeking() {
	c := p.controller
	if c.Released(controller.PeekLeft) || c.Released(controller.PeekRight) {
		p.peekX = gamemath.DirAuto
	}
	if c.Released(controller.PeekUp) || c.Released(controller.PeekDown) {
		p.peekY = gamemath.DirAuto
	}
	if c.Pressed(controller.PeekLeft) {
		p.peekX = gamemath.DirLeft
	}
	if c.Pressed(controller.PeekRight) {
		p.peekX = gamemath.DirRight
	}
	if !p.backflipping && !p.jumping && p.onGround {
		if c.Pressed(controller.PeekUp) {
			p.peekY = gamemath.DirUp
		} else if c.Pressed(controller.PeekDown) {
			p.peekY = gamemath.DirDown
		}
	}
}

func (p *Player) handleHorizontalInput() {
	cfg := config.Player
	vx, vy := p.body.VelocityX(), p.body.VelocityY()
	ay := p.body.AccelerationY()
	var ax float64

	dirsign := 0.0
	if !p.duck || vy != 0 {
		left, right := p.controller.Hold(controller.Left), p.controller.Hold(controller.Right)
		if left && !right {
			p.oldDir = p.dir
			p.dir = gamemath.DirLeft
			dirsign = -1
		} else if right && !left {
			p.oldDir = p.dir
			p.dir = gamemath.DirRight
			dirsign = 1
		}
	}

	// no running while shooting or carrying
	maxSpeed := cfg.MaxRunSpeed
	if p.controller.Hold(controller.Action) || p.grabbed != nil {
		ax = dirsign * cfg.WalkAcceleration
		maxSpeed = cfg.MaxWalkSpeed
	} else if vx*dirsign < cfg.MaxWalkSpeed {
		ax = dirsign * cfg.WalkAcceleration
	} else {
		ax = dirsign * cfg.RunAcceleration
	}
	if vx >= maxSpeed && dirsign > 0 {
		vx = maxSpeed
		ax = 0
	} else if vx <= -maxSpeed && dirsign < 0 {
		vx = -maxSpeed
		ax = 0
	}

	// walking starts at WalkSpeed without ramping up
	if dirsign != 0 && abs(vx) < cfg.WalkSpeed {
		vx = dirsign * cfg.WalkSpeed
	}

	if p.speedLimit > 0 && vx*dirsign >= p.speedLimit {
		vx = dirsign * p.speedLimit
		ax = 0
	}

	if p.onGround && ((vx < 0 && dirsign > 0) || (vx > 0 && dirsign < 0)) {
		if abs(vx) > cfg.SkidSpeed && !p.skiddingTimer.Started() {
			p.skiddingTimer.Start(cfg.SkidTime)
			p.sector.PlaySound(config.SoundSkid)
			p.emitSkidDust()
			ax *= 2.5
		} else {
			ax *= 2
		}
	}

	if p.onIce {
		ax *= cfg.IceAccelerationMult
	}

	p.body.SetVelocity(vx, vy)
	p.body.SetAcceleration(ax, ay)

	if dirsign == 0 {
		p.applyFriction()
	}
}

func (p *Player) emitSkidDust() {
	b := p.BBox()
	pos := gamemath.Vector{X: b.Left(), Y: b.Bottom()}
	minAngle, maxAngle := 50, 70
	if p.dir == gamemath.DirRight {
		pos.X = b.Right()
		minAngle, maxAngle = 290, 310
	}
	p.sector.AddEffect(effects.NewDust(p.sector.Rand(), pos, minAngle, maxAngle))
}

func (p *Player) applyFriction() {
	cfg := config.Player
	if p.onGround && abs(p.body.VelocityX()) < cfg.WalkSpeed {
		p.body.SetVelocityX(0)
		p.body.SetAccelerationX(0)
		return
	}
	mult := cfg.NormalFrictionMultiplier
	if p.onIce {
		mult = cfg.IceFrictionMultiplier
	}
	friction := cfg.WalkAcceleration * mult
	switch {
	case p.body.VelocityX() < 0:
		p.body.SetAccelerationX(friction)
	case p.body.VelocityX() > 0:
		p.body.SetAccelerationX(-friction)
	}
}

func (p *Player) handleVerticalInput() {
	cfg := config.Player
	c := p.controller

	if c.Pressed(controller.Jump) {
		p.jumpButtonTimer.Start(cfg.JumpGraceTime)
	}
	if c.Hold(controller.Jump) && p.jumpButtonTimer.Started() && p.canJump {
		p.jumpButtonTimer.Stop()
		if p.duck {
			// moving: hop, standing still: backflip
			if p.body.VelocityX() != 0 || c.Hold(controller.Left) || c.Hold(controller.Right) {
				p.doJump(cfg.SmallJumpSpeed)
			} else {
				p.doBackflip()
			}
		} else if abs(p.body.VelocityX()) > cfg.MaxWalkSpeed {
			p.doJump(cfg.RunJumpSpeed)
		} else {
			p.doJump(cfg.JumpSpeed)
		}
	} else if !c.Hold(controller.Jump) {
		if !p.backflipping && p.jumping && p.body.VelocityY() < 0 {
			p.jumping = false
			p.earlyJumpApex()
		}
	}

	if p.jumpEarlyApex && p.body.VelocityY() >= 0 {
		p.doJumpApex()
	}

	if c.Hold(controller.Down) && !p.duck && p.IsBig() && !p.onGround {
		p.wantsButtjump = true
		if p.body.VelocityY() >= cfg.ButtjumpMinVelocityY {
			p.doesButtjump = true
		}
	}
	if !c.Hold(controller.Down) {
		p.wantsButtjump = false
		p.doesButtjump = false
	}

	p.body.SetAccelerationY(0)
	if p.swimming {
		if c.Hold(controller.Up) || c.Hold(controller.Jump) {
			p.body.SetAccelerationY(cfg.SwimAcceleration)
		}
		p.body.SetVelocityY(p.body.VelocityY() * cfg.SwimDamping)
	}
}

func (p *Player) doJump(speed float64) {
	if !p.onGround {
		return
	}
	p.body.SetVelocityY(speed)
	p.jumping = true
	p.onGround = false
	p.canJump = false
	p.playJumpSound()
}

func (p *Player) doBackflip() {
	if !p.duck || !p.onGround {
		return
	}
	p.backflipDirection = -1
	if p.dir == gamemath.DirLeft {
		p.backflipDirection = 1
	}
	p.backflipping = true
	p.doJump(config.Player.BackflipSpeed)
	p.sector.PlaySound(config.SoundFlip)
	p.backflipTimer.Start(config.Player.BackflipTime)
}

func (p *Player) earlyJumpApex() {
	if p.jumpEarlyApex {
		return
	}
	p.jumpEarlyApex = true
	p.body.SetGravity(p.body.Gravity() * config.Player.JumpEarlyApexFactor)
}

func (p *Player) doJumpApex() {
	if !p.jumpEarlyApex {
		return
	}
	p.jumpEarlyApex = false
	p.body.SetGravity(p.body.Gravity() / config.Player.JumpEarlyApexFactor)
}

func (p *Player) doDuck() {
	if p.duck || !p.IsBig() {
		return
	}
	if p.body.VelocityY() != 0 || !p.onGround || p.doesButtjump {
		return
	}
	if p.AdjustHeight(config.Sizes.Move.SmallHeight) {
		p.duck = true
		p.growing = false
		p.unduckHurtTimer.Stop()
	}
}

func (p *Player) doStandup() {
	if !p.duck || !p.IsBig() || p.backflipping {
		return
	}
	if p.AdjustHeight(config.Sizes.Move.BigHeight) {
		p.duck = false
		p.unduckHurtTimer.Stop()
		return
	}
	// stuck under something: get hurt if it lasts
	if p.unduckHurtTimer.Period() == 0 {
		p.unduckHurtTimer.Start(config.Player.UnduckHurtTime)
	} else if p.unduckHurtTimer.Check() {
		p.Kill(false)
	}
}

// DoCheer plays the victory move: duck, backflip, stand up.
func (p *Player) DoCheer() {
	p.doDuck()
	p.doBackflip()
	p.doStandup()
}

func (p *Player) tryGrab() {
	if !p.controller.Hold(controller.Action) || p.grabbed != nil || p.duck {
		return
	}
	b := p.BBox()
	reach := gamemath.Vector{X: b.Right() + 5, Y: b.Bottom() - 16}
	if p.dir == gamemath.DirLeft {
		reach.X = b.Left() - 5
	}

	for _, portable := range p.sector.Portables() {
		if !portable.IsPortable() {
			continue
		}
		if !p.sector.Contains(portable) {
			log.Printf("Warning: Grab candidate %T is not part of the sector, skipping", portable)
			continue
		}
		if portable.Group() == collision.GroupDisabled {
			continue
		}
		if portable.BBox().Contains(reach) {
			if p.climbing != nil {
				p.StopClimbing(p.climbing)
			}
			p.grabbed = portable
			p.grabbed.Grab(p, p.Pos(), p.dir)
			return
		}
	}
}

func (p *Player) releaseGrabbed() {
	pos := p.carryPos(p.BBox().Width() + 1)
	dest := gamemath.NewRect(pos.X, pos.Y, 32, 32)
	if !p.sector.IsFreeOfMovingStatics(dest) {
		return
	}
	p.grabbed.SetPos(pos)
	if p.controller.Hold(controller.Up) {
		p.grabbed.Ungrab(p, gamemath.DirUp)
	} else {
		p.grabbed.Ungrab(p, p.dir)
	}
	p.grabbed = nil
}

func (p *Player) handleInputGhost() {
	speed := config.Player.MaxRunSpeed * config.Player.GhostSpeedFactor
	c := p.controller
	var vx, vy float64
	if c.Hold(controller.Left) {
		p.dir = gamemath.DirLeft
		vx -= speed
	}
	if c.Hold(controller.Right) {
		p.dir = gamemath.DirRight
		vx += speed
	}
	if c.Hold(controller.Up) || c.Hold(controller.Jump) {
		vy -= speed
	}
	if c.Hold(controller.Down) {
		vy += speed
	}
	if c.Hold(controller.Action) {
		p.SetGhostMode(false)
	}
	p.body.SetVelocity(vx, vy)
	p.body.SetAcceleration(0, 0)
}

func (p *Player) handleInputClimbing() {
	if p.climbing == nil {
		log.Printf("Warning: Climbing input handled while not climbing, skipping")
		return
	}
	cfg := config.Player
	c := p.controller
	var vx, vy float64
	if c.Hold(controller.Left) {
		p.dir = gamemath.DirLeft
		vx -= cfg.MaxClimbSpeedX
	}
	if c.Hold(controller.Right) {
		p.dir = gamemath.DirRight
		vx += cfg.MaxClimbSpeedX
	}
	if c.Hold(controller.Up) {
		vy -= cfg.MaxClimbSpeedY
	}
	if c.Hold(controller.Down) {
		vy += cfg.MaxClimbSpeedY
	}
	if c.Hold(controller.Jump) {
		if p.canJump {
			p.StopClimbing(p.climbing)
			return
		}
	} else {
		p.canJump = true
	}
	if c.Hold(controller.Action) {
		p.StopClimbing(p.climbing)
		return
	}
	p.body.SetVelocity(vx, vy)
	p.body.SetAcceleration(0, 0)
}

// StartClimbing attaches the player to c. A carried object is dropped first.
func (p *Player) StartClimbing(c collision.Climbable) {
	if p.climbing == c {
		return
	}
	if p.grabbed != nil {
		p.grabbed.Ungrab(p, p.dir)
		p.grabbed = nil
	}
	p.climbing = c
	p.body.EnableGravity(false)
	p.body.SetVelocity(0, 0)
	p.body.SetAcceleration(0, 0)
}

// StopClimbing lets go of the current climbable. Holding jump or up while
// letting go hops off.
func (p *Player) StopClimbing(c collision.Climbable) {
	if p.climbing == nil {
		return
	}
	p.climbing = nil

	if p.grabbed != nil {
		p.grabbed.Ungrab(p, p.dir)
		p.grabbed = nil
	}

	p.body.EnableGravity(true)
	p.body.SetVelocity(0, 0)
	p.body.SetAcceleration(0, 0)

	if p.controller.Hold(controller.Jump) || p.controller.Hold(controller.Up) {
		p.onGround = true
		p.doJump(config.Player.SmallJumpSpeed)
	}
}
