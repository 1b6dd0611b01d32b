// Package sprite tracks the current animation action of an object.
package sprite

import "github.com/automoto/tuxrun/config"

// Continuous makes an action loop forever.
const Continuous = -1

// Sprite holds an action name, frame cursor and remaining loop count.
type Sprite struct {
	action string
	def    config.AnimationDef
	frame  float64
	loops  int
}

// New returns a sprite playing action continuously.
func New(action string) *Sprite {
	s := &Sprite{}
	s.SetAction(action, Continuous)
	return s
}

// SetAction switches to name and restarts it, playing loops times. Setting
// the same action with the same loop count is a no-op.
func (s *Sprite) SetAction(name string, loops int) {
	if s.action == name && s.loops == loops {
		return
	}
	s.action = name
	s.def = config.AnimationFor(name)
	s.frame = 0
	s.loops = loops
}

// SetActionContinued switches to name without restarting the frame cursor.
func (s *Sprite) SetActionContinued(name string) {
	if s.action == name {
		return
	}
	s.action = name
	s.def = config.AnimationFor(name)
	if s.def.Frames > 0 && int(s.frame) >= s.def.Frames {
		s.frame = 0
	}
}

func (s *Sprite) Action() string { return s.action }

// AnimationDone reports whether a limited action has played all its loops.
func (s *Sprite) AnimationDone() bool {
	return s.loops == 0
}

// Frame returns the index of the frame currently shown.
func (s *Sprite) Frame() int { return int(s.frame) }

func (s *Sprite) Frames() int { return s.def.Frames }

// Update advances the animation by dt seconds.
func (s *Sprite) Update(dt float64) {
	if s.AnimationDone() || s.def.Frames <= 0 {
		return
	}
	frames := float64(s.def.Frames)
	s.frame += s.def.FPS * dt
	for s.frame >= frames {
		s.frame -= frames
		s.loops--
		if s.AnimationDone() {
			break
		}
	}
	if s.AnimationDone() {
		s.frame = frames - 1
	}
}
