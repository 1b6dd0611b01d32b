package badguy

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

// NewIgel returns a hedgehog that walks, turns away from fire bullets it
// can see, only takes bullet damage to its face and cannot be stomped.
func NewIgel(sector Sector, pos gamemath.Vector, dir gamemath.Direction) *BadGuy {
	w := NewWalker(sector.Clock(), config.Igel.WalkSpeed, config.Igel.MaxDropHeight,
		config.Igel.TurnRecoverTime, igelVision{sector: sector})
	b := newBadGuy(sector, "igel", pos, dir, w)
	b.freezable = true
	b.bullets = igelBullets{}
	b.squish = SquishHurts{}
	return b
}

type igelVision struct {
	sector Sector
}

func (v igelVision) WantsToFlee(b *BadGuy) bool {
	for _, bullet := range v.sector.Bullets() {
		if bullet.Kind() != status.FireBonus {
			continue
		}
		if CanSee(b.BBox(), b.dir, bullet.BBox(), config.Igel.RangeOfVision) {
			return true
		}
	}
	return false
}

// CanSee reports whether other lies within reach pixels in front of self
// and overlaps its vertical extent.
func CanSee(self gamemath.Rect, dir gamemath.Direction, other gamemath.Rect, reach float64) bool {
	leftReach, rightReach := 0.0, 0.0
	if dir == gamemath.DirLeft {
		leftReach = reach
	}
	if dir == gamemath.DirRight {
		rightReach = reach
	}
	inLeft := other.Right() < self.Left() && other.Right() >= self.Left()-leftReach
	inRight := other.Left() > self.Right() && other.Left() <= self.Right()+rightReach
	inTop := other.Bottom() >= self.Top()
	inBottom := other.Top() <= self.Bottom()
	return (inLeft || inRight) && inTop && inBottom
}

type igelBullets struct{}

func (igelBullets) HitByBullet(b *BadGuy, bullet collision.Bullet, hit collision.Hit) collision.Response {
	if facing(b, hit) {
		return DefaultBulletResponse{}.HitByBullet(b, bullet, hit)
	}
	bullet.Ricochet(b, hit)
	return collision.ForceMove
}
