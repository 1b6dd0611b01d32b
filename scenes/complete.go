package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/fonts"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var completeOptions = []string{"Play Again", "Title"}

// CompleteScene is shown after the player reached the exit.
type CompleteScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	status       *status.Status
	selected     int
	once         sync.Once
}

// NewCompleteScene creates the level complete screen for st.
func NewCompleteScene(sc SceneChanger, st *status.Status) *CompleteScene {
	return &CompleteScene{sceneChanger: sc, status: st}
}

func (cs *CompleteScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CompleteScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CompleteScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	cs.ecs.AddSystem(systems.UpdateAudio)
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(cs.updateMenu)

	cs.ecs.AddRenderer(cfg.Default, cs.draw)

	systems.PlayMusic(cfg.MusicNone)
}

func (cs *CompleteScene) updateMenu(e *ecs.ECS) {
	ctrl := systems.GetOrCreateInput(e).Controller

	// Navigate menu with wrap-around using modulo arithmetic
	n := len(completeOptions)
	if ctrl.Pressed(controller.Up) {
		cs.selected = (cs.selected - 1 + n) % n
	}
	if ctrl.Pressed(controller.Down) {
		cs.selected = (cs.selected + 1) % n
	}

	if ctrl.Pressed(controller.MenuSelect) || ctrl.Pressed(controller.Jump) {
		systems.PlaySFX(cfg.SoundMenuSelect)
		switch cs.selected {
		case 0:
			cs.sceneChanger.ChangeScene(NewPlatformerScene(cs.sceneChanger, cs.status))
		default:
			cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
		}
	}
}

func (cs *CompleteScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	menu := cfg.LevelComplete

	vector.FillRect(screen, 0, 0, float32(width), float32(height), menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "LEVEL COMPLETE"
	titleX := int((width - float64(text.BoundString(titleFont, title).Dx())) / 2)
	text.Draw(screen, title, titleFont, titleX, int(menu.TitleY), menu.TitleColor)

	infoFont := fonts.Regular.Get()
	info := fmt.Sprintf("Coins: %d   Bonus: %s", cs.status.Coins, cs.status.Bonus)
	infoX := int((width - float64(text.BoundString(infoFont, info).Dx())) / 2)
	text.Draw(screen, info, infoFont, infoX, int(menu.TitleY)+48, menu.TextColorNormal)

	menuFont := fonts.Bold.Get()
	for i, option := range completeOptions {
		y := menu.MenuStartY + float64(i)*(menu.MenuItemHeight+menu.MenuItemGap)

		textColor := menu.TextColorNormal
		if i == cs.selected {
			textColor = menu.TextColorSelected
		}

		x := int((width - float64(text.BoundString(menuFont, option).Dx())) / 2)
		text.Draw(screen, option, menuFont, x, int(y+menu.MenuItemHeight), textColor)
	}
}
