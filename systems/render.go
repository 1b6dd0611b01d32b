package systems

import (
	"math"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/render/ebitenpainter"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// canvas is reused between frames; Flush empties it.
var canvas = render.NewCanvas()

// DrawLevel renders the sector through the camera, the HUD on top and the
// closing iris while the level ends.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(e)
	camera := GetCamera(e)
	if s == nil || camera == nil {
		return
	}
	view := View(camera)

	canvas.PushTranslation(view.Pos())
	s.Sector.Draw(canvas, view)
	if s.Exiting {
		drawIris(canvas, s, view)
	}
	canvas.PopTranslation()

	drawHUD(canvas, s)
	canvas.Flush(ebitenpainter.New(screen))
}

// drawIris closes a circle around the player as the exit timer runs out.
func drawIris(c *render.Canvas, s *SessionData, view gamemath.Rect) {
	progress := math.Max(0, s.ExitTimer/config.HUD.ShrinkTime)
	diameter := 2 * math.Hypot(view.Width(), view.Height()) * progress
	c.Submit(render.LayerGUI, render.InverseEllipseRequest{
		Center: s.Player.BBox().Middle(),
		Size:   gamemath.Vector{X: diameter, Y: diameter},
		Bounds: gamemath.NewRect(0, 0, view.Width(), view.Height()),
		Color:  config.Black,
	})
}
