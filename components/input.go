package components

import (
	"github.com/automoto/tuxrun/controller"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// InputData is the keyboard/gamepad controller the player reads from.
// The input system overwrites it every frame.
type InputData struct {
	Controller      *controller.Controller
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
