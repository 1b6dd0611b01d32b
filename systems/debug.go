package systems

import (
	"image/color"

	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/render/ebitenpainter"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision box in view.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.DrawHitboxes {
		return
	}
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	view := View(camera)

	canvas.PushTranslation(view.Pos())
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj.HasTags(tags.ResolvProbe) {
			return
		}
		box := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
		if !box.Overlaps(view) {
			return
		}
		outline(canvas, box, hitboxColor(entry))
	})
	canvas.PopTranslation()
	canvas.Flush(ebitenpainter.New(screen))
}

func hitboxColor(entry *donburi.Entry) color.RGBA {
	switch {
	case entry.HasComponent(tags.Player):
		return config.HUD.HitboxPlayer
	case entry.HasComponent(tags.Trigger):
		return config.HUD.HitboxTrigger
	case entry.HasComponent(tags.Tile):
		return config.Gray
	}
	return config.HUD.HitboxColor
}

func outline(c *render.Canvas, r gamemath.Rect, clr color.RGBA) {
	tl := r.Pos()
	tr := gamemath.Vector{X: r.Right(), Y: r.Top()}
	br := r.BottomRight()
	bl := gamemath.Vector{X: r.Left(), Y: r.Bottom()}
	c.DrawLine(tl, tr, clr, render.LayerGUI)
	c.DrawLine(tr, br, clr, render.LayerGUI)
	c.DrawLine(br, bl, clr, render.LayerGUI)
	c.DrawLine(bl, tl, clr, render.LayerGUI)
}
