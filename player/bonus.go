package player

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

// AddBonus gives the player a power-up. NoBonus and growing while already
// big are accepted without effect. It returns false when there is no room
// to grow.
func (p *Player) AddBonus(b status.BonusType, animate bool) bool {
	if b == status.NoBonus {
		return true
	}
	if b == status.GrowUpBonus && p.IsBig() {
		return true
	}
	return p.SetBonus(b, animate)
}

// AddBonusName is AddBonus for level scripts.
func (p *Player) AddBonusName(name string) (bool, error) {
	b, err := status.ParseBonus(name)
	if err != nil {
		return false, err
	}
	return p.AddBonus(b, true), nil
}

// SetBonus switches the bonus unconditionally, growing the player when
// coming from NoBonus.
func (p *Player) SetBonus(b status.BonusType, animate bool) bool {
	current := p.status.Bonus

	if current == status.NoBonus && b != status.NoBonus {
		if !p.AdjustHeight(config.Sizes.Init.BigHeight) {
			return false
		}
		if animate {
			p.growing = true
			p.sprite.SetAction("grow"+p.actionPostfix(), 1)
		}
		if p.climbing != nil {
			p.StopClimbing(p.climbing)
		}
	}

	if b == status.NoBonus {
		p.doesButtjump = false
	}

	if b == status.NoBonus || b == status.GrowUpBonus {
		if animate && (current == status.FireBonus || current == status.IceBonus) {
			p.loseHeadgear(current)
			if p.climbing != nil {
				p.StopClimbing(p.climbing)
			}
		}
		p.status.MaxFireBullets = 0
		p.status.MaxIceBullets = 0
	}
	switch b {
	case status.FireBonus:
		p.status.MaxFireBullets++
	case status.IceBonus:
		p.status.MaxIceBullets++
	}

	p.status.Bonus = b
	return true
}

func (p *Player) loseHeadgear(from status.BonusType) {
	b := p.BBox()
	action := "fire-helmet"
	if from == status.IceBonus {
		action = "ice-cap"
	}
	pos := gamemath.Vector{X: b.Middle().X, Y: b.Top()}
	p.sector.AddEffect(effects.NewHeadgear(action, pos, p.dir == gamemath.DirLeft))
}

// Kill hurts the player. Big players lose one bonus tier unless completely
// is set; everyone else starts dying.
func (p *Player) Kill(completely bool) {
	if p.dying || p.deactivated {
		return
	}
	if !completely && p.IsShielded() {
		return
	}

	p.growing = false
	p.sector.PlaySound(config.SoundHurt)
	if p.climbing != nil {
		p.StopClimbing(p.climbing)
	}
	p.body.SetVelocityX(0)

	if !completely && p.IsBig() {
		switch p.status.Bonus {
		case status.FireBonus, status.IceBonus:
			p.safeTimer.Start(config.Player.SafeTime)
			p.SetBonus(status.GrowUpBonus, true)
		case status.GrowUpBonus:
			p.safeTimer.Start(config.Player.SafeTime)
			p.AdjustHeight(config.Sizes.Init.SmallHeight)
			p.duck = false
			p.backflipping = false
			p.SetBonus(status.NoBonus, true)
		}
		return
	}

	if p.editMode {
		p.SetGhostMode(true)
		return
	}

	cfg := config.Player
	if p.status.Coins >= cfg.CoinScatterThreshold && p.sector.HasResetPoint() {
		p.scatterCoins()
		loss := p.status.Coins / 10
		if loss < cfg.CoinScatterMinLoss {
			loss = cfg.CoinScatterMinLoss
		}
		p.status.AddCoins(-loss)
	} else {
		p.sector.ClearResetPoint()
	}

	p.body.EnableGravity(true)
	p.body.SetAcceleration(0, 0)
	p.body.SetVelocity(0, cfg.DeathLaunchSpeed)
	p.SetBonus(status.NoBonus, true)
	p.dying = true
	p.dyingTimer.Start(cfg.DyingTime)
	p.SetGroup(collision.GroupDisabled)

	p.sector.FadeOut(cfg.DyingTime)
	p.sector.StopMusic(cfg.DyingTime)
}

func (p *Player) scatterCoins() {
	rng := p.sector.Rand()
	for i := 0; i < config.Player.CoinScatterCount; i++ {
		pos := p.Pos().Add(gamemath.Vector{
			X: float64(rng.Intn(5)),
			Y: float64(rng.Intn(50) - 32),
		})
		vy := float64(rng.Intn(200) - 100)
		p.sector.AddEffect(effects.NewFallingCoin(pos, gamemath.Vector{Y: vy}))
	}
}

// MakeInvincible starts the star power.
func (p *Player) MakeInvincible() {
	p.sector.PlaySound(config.SoundInvincibleStart)
	p.invincibleTimer.Start(config.Player.InvincibleTime)
	p.sector.PlayMusic(config.MusicInvincible)
}

func (p *Player) AddCoins(count int) {
	p.status.AddCoins(count)
}

func (p *Player) Coins() int { return p.status.Coins }
