package config

import "strings"

// AnimationDef describes the timing of one sprite action.
type AnimationDef struct {
	Frames int
	FPS    float64
}

// DefaultAnimation is used for actions without an entry.
var DefaultAnimation = AnimationDef{Frames: 1, FPS: 10}

// Animations maps the core part of an action name (without size prefix and
// direction postfix, e.g. "walk" for "big-walk-left") to its timing.
var Animations = map[string]AnimationDef{
	"stand":    {Frames: 1, FPS: 10},
	"idle":     {Frames: 8, FPS: 10},
	"walk":     {Frames: 8, FPS: 15},
	"jump":     {Frames: 1, FPS: 10},
	"skid":     {Frames: 1, FPS: 10},
	"kick":     {Frames: 1, FPS: 10},
	"duck":     {Frames: 1, FPS: 10},
	"backflip": {Frames: 8, FPS: 40},
	"buttjump": {Frames: 1, FPS: 10},
	"grow":     {Frames: 7, FPS: 14},
	"gameover": {Frames: 2, FPS: 4},

	// badguys
	"walking":  {Frames: 4, FPS: 8},
	"flying":   {Frames: 4, FPS: 12},
	"diving":   {Frames: 1, FPS: 10},
	"squished": {Frames: 1, FPS: 10},
	"up":       {Frames: 1, FPS: 10},
	"middle":   {Frames: 1, FPS: 10},
	"down":     {Frames: 1, FPS: 10},
	"iced":     {Frames: 1, FPS: 10},
}

var actionPrefixes = []string{"small-", "big-", "fire-", "ice-", "igel-", "jumpy-", "zeekling-"}
var actionPostfixes = []string{"-left", "-right"}

// AnimationFor looks up the timing of an action by full name first, then by
// its core name.
func AnimationFor(action string) AnimationDef {
	if def, ok := Animations[action]; ok {
		return def
	}
	core := action
	for _, p := range actionPrefixes {
		core = strings.TrimPrefix(core, p)
	}
	for _, p := range actionPostfixes {
		core = strings.TrimSuffix(core, p)
	}
	for _, p := range []string{"left-", "right-"} {
		core = strings.TrimPrefix(core, p)
	}
	if def, ok := Animations[core]; ok {
		return def
	}
	return DefaultAnimation
}
