package player

import (
	"image/color"
	"strings"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/sprite"
	"github.com/automoto/tuxrun/status"
)

func (p *Player) actionPrefix() string {
	switch p.status.Bonus {
	case status.GrowUpBonus:
		return "big"
	case status.FireBonus:
		return "fire"
	case status.IceBonus:
		return "ice"
	}
	return "small"
}

func (p *Player) actionPostfix() string {
	if p.dir == gamemath.DirLeft {
		return "-left"
	}
	return "-right"
}

// UpdateAction picks the sprite action for the current state.
func (p *Player) UpdateAction() {
	prefix, postfix := p.actionPrefix(), p.actionPostfix()
	s := p.sprite

	switch {
	case p.dying:
		s.SetAction("gameover", sprite.Continuous)
	case p.growing:
		// keep growing until the animation ends
		s.SetActionContinued("grow" + postfix)
	case p.climbing != nil:
		s.SetAction(prefix+"-skid"+postfix, sprite.Continuous)
	case p.backflipping:
		s.SetAction(prefix+"-backflip"+postfix, sprite.Continuous)
	case p.duck && p.IsBig():
		s.SetAction(prefix+"-duck"+postfix, sprite.Continuous)
	case p.skiddingTimer.Started() && !p.skiddingTimer.Check():
		s.SetAction(prefix+"-skid"+postfix, sprite.Continuous)
	case p.kickTimer.Started() && !p.kickTimer.Check():
		s.SetAction(prefix+"-kick"+postfix, sprite.Continuous)
	case (p.wantsButtjump || p.doesButtjump) && p.IsBig():
		s.SetAction(prefix+"-buttjump"+postfix, sprite.Continuous)
	case !p.onGround:
		s.SetAction(prefix+"-jump"+postfix, sprite.Continuous)
	case abs(p.body.VelocityX()) < 1:
		p.updateIdle(prefix, postfix)
	default:
		s.SetAction(prefix+"-walk"+postfix, sprite.Continuous)
	}
}

func (p *Player) updateIdle(prefix, postfix string) {
	s := p.sprite
	action := s.Action()
	if !strings.Contains(action, "-stand-") && !strings.Contains(action, "-idle-") {
		p.idleStage = 0
		p.idleTimer.Start(idleTimes[0])
		s.SetActionContinued(prefix + "-" + idleStages[0] + postfix)
		return
	}
	if p.idleTimer.Check() || (idleTimes[p.idleStage] == 0 && s.AnimationDone()) {
		p.idleStage++
		if p.idleStage >= len(idleStages) {
			p.idleStage = 1
		}
		p.idleTimer.Start(idleTimes[p.idleStage])
		name := prefix + "-" + idleStages[p.idleStage] + postfix
		if idleTimes[p.idleStage] == 0 {
			s.SetAction(name, 1)
		} else {
			s.SetAction(name, sprite.Continuous)
		}
		return
	}
	s.SetActionContinued(prefix + "-" + idleStages[p.idleStage] + postfix)
}

var bonusColors = map[status.BonusType]color.RGBA{
	status.NoBonus:     {R: 60, G: 60, B: 80, A: 255},
	status.GrowUpBonus: {R: 40, G: 40, B: 60, A: 255},
	status.FireBonus:   config.Red,
	status.IceBonus:    config.LightBlue,
}

// Draw selects the sprite action and draws the player. The player blinks
// while the safe timer runs.
func (p *Player) Draw(c *render.Canvas) {
	if !p.visible {
		return
	}
	p.UpdateAction()

	if p.safeTimer.Started() && int(p.sector.Clock().Now()*40)%2 == 1 {
		return
	}

	layer := render.LayerObjects + 1
	b := p.BBox()
	c.Submit(layer, render.FilledRectRequest{Rect: b, Color: bonusColors[p.status.Bonus], Radius: 4})

	// belly
	belly := gamemath.NewRect(b.Left()+b.Width()*0.2, b.Top()+b.Height()*0.35, b.Width()*0.6, b.Height()*0.55)
	c.DrawFilledRect(belly, config.White, layer)

	// beak points where we face
	eyeY := b.Top() + min(12, b.Height()*0.3)
	tip := gamemath.Vector{X: b.Right() + 6, Y: eyeY}
	base := b.Right() - 2
	if p.dir == gamemath.DirLeft {
		tip.X = b.Left() - 6
		base = b.Left() + 2
	}
	c.DrawTriangle(tip,
		gamemath.Vector{X: base, Y: eyeY - 4},
		gamemath.Vector{X: base, Y: eyeY + 4}, config.Orange, layer)

	if p.sprite.Action() == "gameover" {
		c.DrawText("x_x", gamemath.Vector{X: b.Left(), Y: b.Top() - 14}, config.White, layer)
	}
}
