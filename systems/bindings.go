package systems

import (
	"github.com/automoto/tuxrun/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one control
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[controller.Control]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	Bindings: map[controller.Control]InputBinding{
		controller.Left: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		controller.Right: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		controller.Up: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		controller.Down: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		controller.Jump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		controller.Action: {
			Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyZ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		controller.PauseMenu: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		controller.MenuSelect: {
			Keys: []ebiten.Key{ebiten.KeyEnter},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		controller.PeekLeft: {
			Keys: []ebiten.Key{ebiten.KeyHome},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopLeft,
			},
		},
		controller.PeekRight: {
			Keys: []ebiten.Key{ebiten.KeyEnd},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopRight,
			},
		},
		controller.PeekUp: {
			Keys: []ebiten.Key{ebiten.KeyPageUp},
		},
		controller.PeekDown: {
			Keys: []ebiten.Key{ebiten.KeyPageDown},
		},
	},
}
