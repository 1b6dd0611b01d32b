package sprite

import (
	"testing"

	"github.com/automoto/tuxrun/config"
)

func TestLimitedLoopsFinish(t *testing.T) {
	s := New("small-stand-right")
	s.SetAction("big-grow-right", 1)
	def := config.AnimationFor("big-grow-right")
	step := 1.0001 / def.FPS

	for i := 0; i < def.Frames-1; i++ {
		s.Update(step)
		if s.AnimationDone() {
			t.Fatalf("done after %d frames", i+1)
		}
	}
	s.Update(step)
	if !s.AnimationDone() {
		t.Fatal("animation should be done after one loop")
	}
	if s.Frame() != def.Frames-1 {
		t.Errorf("finished animation must rest on last frame, got %d", s.Frame())
	}
}

func TestContinuousNeverDone(t *testing.T) {
	s := New("small-walk-left")
	for i := 0; i < 100; i++ {
		s.Update(0.1)
	}
	if s.AnimationDone() {
		t.Error("continuous animation reported done")
	}
}

func TestSetActionSameIsNoop(t *testing.T) {
	s := New("small-walk-left")
	s.Update(0.2)
	frame := s.Frame()
	s.SetAction("small-walk-left", Continuous)
	if s.Frame() != frame {
		t.Error("re-setting the same action restarted it")
	}
	s.SetAction("small-jump-left", Continuous)
	if s.Frame() != 0 || s.Action() != "small-jump-left" {
		t.Error("new action must restart")
	}
}

func TestSetActionContinuedKeepsFrame(t *testing.T) {
	s := New("small-walk-left")
	s.Update(0.2)
	frame := s.Frame()
	s.SetActionContinued("small-walk-right")
	if s.Frame() != frame {
		t.Errorf("frame = %d, want %d", s.Frame(), frame)
	}
}
