package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64

	// Peek is the current look-ahead offset; PeekTarget is where the player
	// asked to look. Tweens ease Peek towards PeekTarget.
	Peek       math.Vec2
	PeekTarget math.Vec2
	PeekTweenX *gween.Tween
	PeekTweenY *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
