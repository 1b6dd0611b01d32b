package sector

import (
	"image/color"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

var (
	groundColor   = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	platformColor = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	iceColor      = color.RGBA{R: 190, G: 230, B: 255, A: 255}
	waterColor    = color.RGBA{R: 30, G: 90, B: 200, A: 120}
	spikeColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// Draw submits the sky, the tiles inside view, every object and effect, and
// the fade cover. view is in world coordinates.
func (s *Sector) Draw(c *render.Canvas, view gamemath.Rect) {
	c.DrawGradient(view, config.SkyTop, config.SkyBottom, render.LayerBackground)

	for _, e := range s.candidates(view) {
		if e.HasComponent(components.Tile) {
			drawTile(c, components.Tile.Get(e))
		}
	}
	for _, e := range s.actors {
		if o := components.Actor.Get(e).Object; !o.Removed() {
			o.Draw(c)
		}
	}
	for _, fx := range s.effects {
		fx.Draw(c)
	}

	if fade := s.Fade(); fade > 0 {
		c.DrawFilledRect(view, color.RGBA{A: uint8(fade * 255)}, render.LayerGUI)
	}
}

func drawTile(c *render.Canvas, t *components.TileData) {
	r := t.Rect
	switch {
	case t.Attr.Has(collision.AttrSlope):
		a := gamemath.Vector{X: r.Left(), Y: r.Bottom()}
		b := gamemath.Vector{X: r.Right(), Y: r.Bottom()}
		top := gamemath.Vector{X: r.Right(), Y: r.Top()}
		if t.Slope == gamemath.SlopeUpLeft {
			top.X = r.Left()
		}
		c.DrawTriangle(a, b, top, groundColor, render.LayerTiles)
	case t.Attr.Has(collision.AttrSolid):
		clr := groundColor
		if t.Attr.Has(collision.AttrIce) {
			clr = iceColor
		}
		c.DrawFilledRect(r, clr, render.LayerTiles)
	case t.Attr.Has(collision.AttrUnisolid):
		c.DrawFilledRect(r.WithSize(r.Width(), r.Height()/4), platformColor, render.LayerTiles)
	case t.Attr.Has(collision.AttrWater):
		c.DrawFilledRect(r, waterColor, render.LayerForeground)
	case t.Attr.Has(collision.AttrHurts):
		mid := r.Middle().X
		c.DrawTriangle(
			gamemath.Vector{X: r.Left(), Y: r.Bottom()},
			gamemath.Vector{X: r.Right(), Y: r.Bottom()},
			gamemath.Vector{X: mid, Y: r.Top()}, spikeColor, render.LayerTiles)
	}
}
