package systems

import (
	"github.com/automoto/tuxrun/components"
	cfg "github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// PauseActions are the scene callbacks for the pause menu entries that
// leave the running level.
type PauseActions struct {
	Restart func()
	Exit    func()
}

// NewUpdatePause returns the pause system. It runs AFTER UpdateInput but
// BEFORE the gameplay systems.
func NewUpdatePause(actions PauseActions) ecs.System {
	return func(e *ecs.ECS) {
		updatePause(e, actions)
	}
}

func updatePause(e *ecs.ECS, actions PauseActions) {
	pause := GetOrCreatePause(e)
	ctrl := GetOrCreateInput(e).Controller

	if ctrl.Pressed(controller.PauseMenu) {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
			PauseMusic()
		} else {
			ResumeMusic()
		}
		return
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if ctrl.Pressed(controller.Up) {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if ctrl.Pressed(controller.Down) {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if ctrl.Pressed(controller.MenuSelect) || ctrl.Pressed(controller.Jump) {
		PlaySFX(cfg.SoundMenuSelect)
		pause.IsPaused = false
		ResumeMusic()
		switch pause.SelectedOption {
		case components.MenuRestart:
			if actions.Restart != nil {
				actions.Restart()
			}
		case components.MenuExit:
			if actions.Exit != nil {
				actions.Exit()
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	options := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(options)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	face := fonts.Bold.Get()
	for i, option := range options {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := int((width - float64(text.BoundString(face, option).Dx())) / 2)
		text.Draw(screen, option, face, x, int(y+cfg.Pause.MenuItemHeight), textColor)
	}

	hint := getPauseHint(GetOrCreateInput(e).LastInputMethod)
	hintFace := fonts.Small.Get()
	hintX := int((width - float64(text.BoundString(hintFace, hint).Dx())) / 2)
	text.Draw(screen, hint, hintFace, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
