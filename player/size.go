package player

import (
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// AdjustHeight resizes the box keeping its bottom edge. Growing fails without
// changes when the added space is occupied.
func (p *Player) AdjustHeight(height float64) bool {
	b := p.BBox()
	resized := gamemath.NewRect(b.Left(), b.Bottom()-height, b.Width(), height)

	if height > b.Height() {
		added := gamemath.NewRect(resized.Left(), resized.Top(), resized.Width(), height-b.Height())
		if !p.sector.IsFreeOfStatics(added, p, true) {
			return false
		}
	}

	p.SetBBox(resized)
	return true
}

// MoveHeight is the box height Move gives the player for its current bonus.
func (p *Player) MoveHeight() float64 {
	if p.IsBig() {
		return config.Sizes.Move.BigHeight
	}
	return config.Sizes.Move.SmallHeight
}

// Move teleports the player to pos.
func (p *Player) Move(pos gamemath.Vector) {
	p.SetPos(pos)
	p.SetSize(config.Sizes.Move.Width, p.MoveHeight())
	p.duck = false
	p.lastGroundY = pos.Y
	if p.climbing != nil {
		p.StopClimbing(p.climbing)
	}
	p.body.Reset()
	p.jumpEarlyApex = false
	p.body.EnableGravity(!p.ghostMode)
}

// CheckBounds keeps the player inside the sector and the camera window.
// Falling out of the bottom kills.
func (p *Player) CheckBounds(cameraX, screenWidth float64) {
	pos := p.Pos()
	if pos.X < 0 {
		p.SetPos(gamemath.Vector{X: 0, Y: pos.Y})
	}
	if p.BBox().Right() > p.sector.Width() {
		p.SetPos(gamemath.Vector{X: p.sector.Width() - p.BBox().Width(), Y: p.Pos().Y})
	}

	if p.Pos().Y > p.sector.Height() && !p.ghostMode {
		p.Kill(true)
		return
	}

	if p.Pos().X < cameraX {
		p.SetPos(gamemath.Vector{X: cameraX, Y: p.Pos().Y})
	}
	if right := cameraX + screenWidth - p.BBox().Width(); p.Pos().X >= right {
		p.SetPos(gamemath.Vector{X: right, Y: p.Pos().Y})
	}
}

func (p *Player) AddVelocity(v gamemath.Vector) {
	p.body.SetVelocity(p.body.VelocityX()+v.X, p.body.VelocityY()+v.Y)
}

// AddVelocityCapped adds v but does not push past end on any axis where end
// is non-zero.
func (p *Player) AddVelocityCapped(v, end gamemath.Vector) {
	vx, vy := p.body.VelocityX()+v.X, p.body.VelocityY()+v.Y
	switch {
	case end.X > 0:
		p.body.SetVelocityX(min(vx, end.X))
	case end.X < 0:
		p.body.SetVelocityX(max(vx, end.X))
	}
	switch {
	case end.Y > 0:
		p.body.SetVelocityY(min(vy, end.Y))
	case end.Y < 0:
		p.body.SetVelocityY(max(vy, end.Y))
	}
}
