package systems

import (
	"math"

	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// GetCamera returns the camera singleton, or nil before the scene added it.
func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// UpdateCamera follows the player, eases towards the peek offset the player
// asked for and keeps the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	camera := GetCamera(e)
	s := GetSession(e)
	if camera == nil || s == nil {
		return
	}
	dt := float32(1 / float64(config.C.TPS))

	peekX, peekY := s.Player.Peeking()
	target := dmath.Vec2{
		X: peekX.Sign() * config.Camera.PeekDistanceX,
		Y: verticalSign(peekY) * config.Camera.PeekDistanceY,
	}
	if target != camera.PeekTarget {
		camera.PeekTarget = target
		camera.PeekTweenX = gween.New(float32(camera.Peek.X), float32(target.X), config.Camera.PeekTime, ease.OutQuad)
		camera.PeekTweenY = gween.New(float32(camera.Peek.Y), float32(target.Y), config.Camera.PeekTime, ease.OutQuad)
	}
	if camera.PeekTweenX != nil {
		v, done := camera.PeekTweenX.Update(dt)
		camera.Peek.X = float64(v)
		if done {
			camera.PeekTweenX = nil
		}
	}
	if camera.PeekTweenY != nil {
		v, done := camera.PeekTweenY.Update(dt)
		camera.Peek.Y = float64(v)
		if done {
			camera.PeekTweenY = nil
		}
	}

	mid := s.Player.BBox().Middle()
	targetX := mid.X + camera.Peek.X
	targetY := mid.Y + camera.Peek.Y

	// Camera bounds: ensure the level always fills the screen
	minX, maxX := clampRange(camera.Width/2, s.Sector.Width()-camera.Width/2)
	minY, maxY := clampRange(camera.Height/2, s.Sector.Height()-camera.Height/2)
	targetX = math.Max(minX, math.Min(maxX, targetX))
	targetY = math.Max(minY, math.Min(maxY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func verticalSign(d gamemath.Direction) float64 {
	switch d {
	case gamemath.DirUp:
		return -1
	case gamemath.DirDown:
		return 1
	}
	return 0
}

// clampRange handles levels smaller than the screen by pinning both ends
// to the middle.
func clampRange(lo, hi float64) (float64, float64) {
	if hi < lo {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo, hi
}

// SnapCamera centers the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	camera := GetCamera(e)
	s := GetSession(e)
	if camera == nil || s == nil {
		return
	}
	mid := s.Player.BBox().Middle()
	minX, maxX := clampRange(camera.Width/2, s.Sector.Width()-camera.Width/2)
	minY, maxY := clampRange(camera.Height/2, s.Sector.Height()-camera.Height/2)
	camera.Position.X = math.Max(minX, math.Min(maxX, mid.X))
	camera.Position.Y = math.Max(minY, math.Min(maxY, mid.Y))
}

// View returns the visible world rectangle.
func View(camera *components.CameraData) gamemath.Rect {
	return gamemath.NewRect(
		camera.Position.X-camera.Width/2,
		camera.Position.Y-camera.Height/2,
		camera.Width, camera.Height)
}
