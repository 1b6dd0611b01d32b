package player

import (
	"math/rand"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/timer"
)

const dt = 1.0 / 60

type fakeSector struct {
	clock         timer.Clock
	rng           *rand.Rand
	solids        []gamemath.Rect
	movingStatics []gamemath.Rect
	portables     []collision.Portable
	effects       []effects.Effect
	sounds        []config.SoundID
	music         []config.MusicID
	bullets       int
	resetPoint    bool
	fadeOut       float64
}

func newFakeSector() *fakeSector {
	return &fakeSector{rng: rand.New(rand.NewSource(1))}
}

func (s *fakeSector) IsFreeOfStatics(r gamemath.Rect, ignore collision.Object, ignoreUnisolid bool) bool {
	for _, solid := range s.solids {
		if r.Overlaps(solid) {
			return false
		}
	}
	return true
}

func (s *fakeSector) IsFreeOfMovingStatics(r gamemath.Rect) bool {
	for _, m := range s.movingStatics {
		if r.Overlaps(m) {
			return false
		}
	}
	return true
}

func (s *fakeSector) Portables() []collision.Portable { return s.portables }

func (s *fakeSector) Contains(o collision.Object) bool {
	for _, p := range s.portables {
		if collision.Object(p) == o {
			return true
		}
	}
	return false
}

func (s *fakeSector) AddBullet(pos gamemath.Vector, xm float64, dir gamemath.Direction, kind status.BonusType) bool {
	s.bullets++
	return true
}

func (s *fakeSector) AddEffect(e effects.Effect) { s.effects = append(s.effects, e) }
func (s *fakeSector) Width() float64 { return 2000 }
func (s *fakeSector) Height() float64 { return 600 }
func (s *fakeSector) Clock() *timer.Clock { return &s.clock }
func (s *fakeSector) Rand() *rand.Rand { return s.rng }
func (s *fakeSector) PlaySound(id config.SoundID) { s.sounds = append(s.sounds, id) }
func (s *fakeSector) PlayMusic(id config.MusicID) { s.music = append(s.music, id) }
func (s *fakeSector) StopMusic(fadeTime float64) {}
func (s *fakeSector) FadeOut(seconds float64) { s.fadeOut = seconds }
func (s *fakeSector) HasResetPoint() bool { return s.resetPoint }
func (s *fakeSector) ClearResetPoint() { s.resetPoint = false }

func (s *fakeSector) played(id config.SoundID) bool {
	for _, got := range s.sounds {
		if got == id {
			return true
		}
	}
	return false
}

func (s *fakeSector) countEffects(match func(effects.Effect) bool) int {
	n := 0
	for _, e := range s.effects {
		if match(e) {
			n++
		}
	}
	return n
}

type rig struct {
	p      *Player
	sector *fakeSector
	ctrl   *controller.Controller
}

func newRig() *rig {
	s := newFakeSector()
	ctrl := controller.New()
	p := New(s, status.New(), ctrl)
	p.SetPos(gamemath.Vector{X: 100, Y: 100})
	return &rig{p: p, sector: s, ctrl: ctrl}
}

// land reports a floor under the player, as the collision pass would.
func (r *rig) land() {
	r.p.CollisionSolid(collision.Hit{Bottom: true, SlopeNormal: gamemath.Vector{Y: -1}})
}

// frame holds exactly the given controls for one tick.
func (r *rig) frame(held ...controller.Control) {
	r.ctrl.Update()
	for c := controller.Control(0); c < controller.ControlCount; c++ {
		r.ctrl.Press(c, false)
	}
	for _, c := range held {
		r.ctrl.Press(c, true)
	}
	r.sector.clock.Advance(dt)
	r.p.Update(dt)
}

// groundFrame is a frame that starts standing on flat ground.
func (r *rig) groundFrame(held ...controller.Control) {
	r.land()
	r.frame(held...)
}

// setInput holds the given controls without running an update.
func (r *rig) setInput(held ...controller.Control) {
	r.ctrl.Update()
	for c := controller.Control(0); c < controller.ControlCount; c++ {
		r.ctrl.Press(c, false)
	}
	for _, c := range held {
		r.ctrl.Press(c, true)
	}
}
