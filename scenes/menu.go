package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/systems"
	"github.com/automoto/tuxrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	play := func() {
		systems.PlaySFX(cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, systems.LoadProgress()))
	}
	ms.titleUI = ui.NewTitleUI(systems.LoadProgress(), play, func() {
		systems.PlaySFX(cfg.SoundMenuSelect)
		ms.titleUI.SetProgress(systems.ResetProgress())
	}, func() {
		os.Exit(0)
	})

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(func(e *ecs.ECS) {
		ms.titleUI.Update()
		if systems.GetOrCreateInput(e).Controller.Pressed(controller.MenuSelect) {
			play()
		}
	})

	ms.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.titleUI.UI.Draw(screen)
	})

	systems.PlayMusic(cfg.MusicNone)
}
