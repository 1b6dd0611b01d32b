// Package status holds the player progress that outlives a single Player:
// bonus level, coins and special ammo.
package status

import (
	"errors"
	"fmt"
)

// BonusType is the player's power level.
type BonusType int

const (
	NoBonus BonusType = iota
	GrowUpBonus
	FireBonus
	IceBonus
)

// ErrUnknownBonus is returned for bonus names outside grow, fireflower,
// iceflower and none.
var ErrUnknownBonus = errors.New("unknown bonus type")

func (b BonusType) String() string {
	switch b {
	case GrowUpBonus:
		return "grow"
	case FireBonus:
		return "fireflower"
	case IceBonus:
		return "iceflower"
	}
	return "none"
}

// ParseBonus maps a bonus name to its BonusType.
func ParseBonus(name string) (BonusType, error) {
	switch name {
	case "grow":
		return GrowUpBonus, nil
	case "fireflower":
		return FireBonus, nil
	case "iceflower":
		return IceBonus, nil
	case "none":
		return NoBonus, nil
	}
	return NoBonus, fmt.Errorf("%w %q", ErrUnknownBonus, name)
}

// MaxCoins caps the coin counter.
const MaxCoins = 9999

// Status is shared between the player, the HUD and persistence.
type Status struct {
	Bonus          BonusType `json:"bonus"`
	Coins          int       `json:"coins"`
	MaxFireBullets int       `json:"maxFireBullets"`
	MaxIceBullets  int       `json:"maxIceBullets"`
}

// New returns a fresh status for a new game.
func New() *Status {
	return &Status{}
}

// AddCoins adds count coins, clamped to [0, MaxCoins].
func (s *Status) AddCoins(count int) {
	s.Coins += count
	if s.Coins > MaxCoins {
		s.Coins = MaxCoins
	}
	if s.Coins < 0 {
		s.Coins = 0
	}
}

// MaxBullets returns how many bullets of the given kind may be alive.
func (s *Status) MaxBullets(kind BonusType) int {
	switch kind {
	case FireBonus:
		return s.MaxFireBullets
	case IceBonus:
		return s.MaxIceBullets
	}
	return 0
}
