package systems

import (
	"fmt"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

const (
	hudLineHeight = 18
	hudBoxWidth   = 150
)

// drawHUD shows coins, the current bonus and the star countdown in the
// top-left corner. Screen coordinates.
func drawHUD(c *render.Canvas, s *SessionData) {
	st := s.Player.Status()
	m := config.HUD.Margin

	lines := []string{fmt.Sprintf("Coins: %d", st.Coins)}
	if st.Bonus != status.NoBonus {
		lines = append(lines, "Bonus: "+st.Bonus.String())
	}
	if st.MaxFireBullets > 0 || st.MaxIceBullets > 0 {
		lines = append(lines, fmt.Sprintf("Ammo: %d fire / %d ice", st.MaxFireBullets, st.MaxIceBullets))
	}

	bg := gamemath.NewRect(m-4, m-4, hudBoxWidth+8, float64(len(lines))*hudLineHeight+8)
	c.Submit(render.LayerHUD, render.FilledRectRequest{Rect: bg, Color: config.HUD.TextBgColor, Radius: 4})
	for i, line := range lines {
		pos := gamemath.Vector{X: m, Y: m + float64(i)*hudLineHeight}
		c.DrawText(line, pos, config.HUD.TextColor, render.LayerHUD)
	}

	left := s.Player.InvincibleLeft()
	if left <= 0 {
		return
	}
	clr := config.HUD.TextColor
	// blink while the star runs out
	if left < config.Player.InvincibleTimeWarning && int(left*8)%2 == 0 {
		clr = config.HUD.WarningColor
	}
	pos := gamemath.Vector{X: float64(config.C.Width) - hudBoxWidth, Y: m}
	c.DrawText(fmt.Sprintf("Star: %.1f", left), pos, clr, render.LayerHUD)
}
