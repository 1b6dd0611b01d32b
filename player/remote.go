package player

import (
	"log"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// RemoteControl is what level scripts may do to a player. It is kept apart
// from the per-frame update so a scripting runtime only needs this.
type RemoteControl interface {
	Activate()
	Deactivate()
	UseScriptingController(enable bool)
	DoScriptingController(control string, pressed bool)
	Walk(speed float64)
	SetGhostMode(enable bool)
	SetEditMode(enable bool)
	SetVisible(visible bool)
	AddBonusName(name string) (bool, error)
	AddCoins(count int)
	Coins() int
	MakeInvincible()
	Kill(completely bool)
	SetSpeedLimit(limit float64)
	Position() gamemath.Vector
	Move(pos gamemath.Vector)
	DoCheer()
}

var _ RemoteControl = (*Player)(nil)

// Deactivate freezes input handling; the player slides to a halt.
func (p *Player) Deactivate() {
	if p.deactivated {
		return
	}
	p.deactivated = true
	p.body.SetVelocity(0, 0)
	p.body.SetAcceleration(0, 0)
	if p.climbing != nil {
		p.StopClimbing(p.climbing)
	}
}

func (p *Player) Activate() {
	p.deactivated = false
}

// UseScriptingController switches input to the script-driven controller, or
// back to the one used before.
func (p *Player) UseScriptingController(enable bool) {
	scripted := Controller(p.scriptingController)
	if enable && p.controller != scripted {
		p.savedController = p.controller
		p.controller = scripted
	}
	if !enable && p.controller == scripted {
		p.controller = p.savedController
		p.savedController = nil
	}
}

// DoScriptingController presses or releases a control on the scripting
// controller by name, e.g. "jump".
func (p *Player) DoScriptingController(name string, pressed bool) {
	c, ok := controller.ParseControl(name)
	if !ok {
		log.Printf("Warning: Unknown control %q", name)
		return
	}
	p.scriptingController.Press(c, pressed)
}

// SetController replaces the input source.
func (p *Player) SetController(c Controller) {
	p.controller = c
}

func (p *Player) Walk(speed float64) {
	p.body.SetVelocityX(speed)
}

// SetGhostMode lets the player fly through everything.
func (p *Player) SetGhostMode(enable bool) {
	if p.ghostMode == enable {
		return
	}
	if p.climbing != nil {
		p.StopClimbing(p.climbing)
	}
	p.ghostMode = enable
	if enable {
		p.SetGroup(collision.GroupDisabled)
		p.body.EnableGravity(false)
		log.Printf("Ghost mode on: fly with the movement controls, press action to land")
	} else {
		p.SetGroup(collision.GroupMoving)
		p.body.EnableGravity(true)
		log.Printf("Ghost mode off")
	}
}

// SetEditMode makes fatal hits switch to ghost mode instead of dying.
func (p *Player) SetEditMode(enable bool) {
	p.editMode = enable
}

func (p *Player) SetVisible(visible bool) {
	p.visible = visible
	if visible {
		p.SetGroup(collision.GroupMoving)
	} else {
		p.SetGroup(collision.GroupDisabled)
	}
}

// SetSpeedLimit caps horizontal speed; 0 removes the cap.
func (p *Player) SetSpeedLimit(limit float64) {
	p.speedLimit = limit
}

func (p *Player) SpeedLimit() float64 { return p.speedLimit }

func (p *Player) Position() gamemath.Vector { return p.Pos() }

// Bounce is the hop after stomping a badguy, higher while jump is held.
func (p *Player) Bounce() {
	if p.controller.Hold(controller.Jump) {
		p.body.SetVelocityY(config.Player.BounceHighSpeed)
	} else {
		p.body.SetVelocityY(config.Player.BounceLowSpeed)
	}
}

// Kick shows the kick animation.
func (p *Player) Kick() {
	p.kickTimer.Start(config.Player.KickTime)
}
