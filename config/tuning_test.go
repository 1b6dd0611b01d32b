package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuningOverlaysBase(t *testing.T) {
	base := CurrentTuning()
	doc := []byte(`
player:
  maxrunspeed: 360
sizes:
  move:
    bigheight: 62.8
`)
	got, err := ParseTuning(doc, base)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got.Player.MaxRunSpeed != 360 {
		t.Errorf("MaxRunSpeed = %v, want 360", got.Player.MaxRunSpeed)
	}
	if got.Player.MaxWalkSpeed != base.Player.MaxWalkSpeed {
		t.Errorf("MaxWalkSpeed changed to %v", got.Player.MaxWalkSpeed)
	}
	if got.Sizes.Move.BigHeight != 62.8 {
		t.Errorf("Sizes.Move.BigHeight = %v, want 62.8", got.Sizes.Move.BigHeight)
	}
	if got.Sizes.Move.SmallHeight != base.Sizes.Move.SmallHeight {
		t.Errorf("Sizes.Move.SmallHeight changed to %v", got.Sizes.Move.SmallHeight)
	}
}

func TestParseTuningRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown field", "player:\n  warpspeed: 9\n", false},
		{"negative speed", "player:\n  walkspeed: -1\n", true},
		{"walk above run", "player:\n  maxwalkspeed: 500\n", true},
		{"zero gravity", "physics:\n  gravity: 0\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := CurrentTuning()
			got, err := ParseTuning([]byte(tt.doc), base)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidTuning) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidTuning) = %v for %v", !tt.invalid, err)
			}
			if got != base {
				t.Error("failed parse must return the base tuning")
			}
		})
	}
}

func TestParseTuningEmpty(t *testing.T) {
	base := CurrentTuning()
	got, err := ParseTuning([]byte("  \n"), base)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got != base {
		t.Error("empty document must keep base")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("LoadTuning on missing file: %v", err)
	}
}

func TestLoadTuningApplies(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("igel:\n  rangeofvision: 128\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if Igel.RangeOfVision != 128 {
		t.Errorf("Igel.RangeOfVision = %v, want 128", Igel.RangeOfVision)
	}
}

func TestAnimationFor(t *testing.T) {
	tests := []struct {
		action string
		want   AnimationDef
	}{
		{"big-walk-left", Animations["walk"]},
		{"small-stand-right", Animations["stand"]},
		{"fire-backflip-left", Animations["backflip"]},
		{"gameover", Animations["gameover"]},
		{"left-middle", Animations["middle"]},
		{"mystery", DefaultAnimation},
	}
	for _, tt := range tests {
		if got := AnimationFor(tt.action); got != tt.want {
			t.Errorf("AnimationFor(%q) = %+v, want %+v", tt.action, got, tt.want)
		}
	}
}
