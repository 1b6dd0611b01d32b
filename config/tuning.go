package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file holds values the game
// cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the subset of configuration that can be overridden from YAML.
// Keys are the lowercased field names, e.g.
//
//	player:
//	  maxrunspeed: 360
//	sizes:
//	  move:
//	    bigheight: 62.8
type Tuning struct {
	Player   PlayerConfig
	Sizes    SizeConfig
	Physics  PhysicsConfig
	Badguy   BadguyConfig
	Igel     IgelConfig
	Jumpy    JumpyConfig
	Zeekling ZeeklingConfig
	Bullet   BulletConfig
	Camera   CameraConfig
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:   Player,
		Sizes:    Sizes,
		Physics:  Physics,
		Badguy:   Badguy,
		Igel:     Igel,
		Jumpy:    Jumpy,
		Zeekling: Zeekling,
		Bullet:   Bullet,
		Camera:   Camera,
	}
}

// Apply replaces the live configuration with t.
func (t Tuning) Apply() {
	Player = t.Player
	Sizes = t.Sizes
	Physics = t.Physics
	Badguy = t.Badguy
	Igel = t.Igel
	Jumpy = t.Jumpy
	Zeekling = t.Zeekling
	Bullet = t.Bullet
	Camera = t.Camera
}

// ParseTuning overlays the YAML document on top of base. Fields missing from
// the document keep their base value; unknown fields are an error.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if len(bytes.TrimSpace(data)) == 0 {
		return t, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return base, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads path and applies it over the live configuration. A missing
// file is not an error.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tuning: read %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return fmt.Errorf("tuning: %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Validate rejects non-positive speeds, sizes and durations.
func (t Tuning) Validate() error {
	positive := map[string]float64{
		"player.walkacceleration": t.Player.WalkAcceleration,
		"player.runacceleration":  t.Player.RunAcceleration,
		"player.maxwalkspeed":     t.Player.MaxWalkSpeed,
		"player.maxrunspeed":      t.Player.MaxRunSpeed,
		"player.walkspeed":        t.Player.WalkSpeed,
		"player.jumpgracetime":    t.Player.JumpGraceTime,
		"player.safetime":         t.Player.SafeTime,
		"player.dyingtime":        t.Player.DyingTime,
		"sizes.init.width":        t.Sizes.Init.Width,
		"sizes.init.bigheight":    t.Sizes.Init.BigHeight,
		"sizes.init.smallheight":  t.Sizes.Init.SmallHeight,
		"sizes.move.width":        t.Sizes.Move.Width,
		"sizes.move.bigheight":    t.Sizes.Move.BigHeight,
		"sizes.move.smallheight":  t.Sizes.Move.SmallHeight,
		"physics.gravity":         t.Physics.Gravity,
		"igel.walkspeed":          t.Igel.WalkSpeed,
		"igel.rangeofvision":      t.Igel.RangeOfVision,
		"bullet.speed":            t.Bullet.Speed,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, name, v)
		}
	}
	if t.Player.MaxWalkSpeed > t.Player.MaxRunSpeed {
		return fmt.Errorf("%w: player.maxwalkspeed above player.maxrunspeed", ErrInvalidTuning)
	}
	if t.Physics.CellSize <= 0 {
		return fmt.Errorf("%w: physics.cellsize must be positive", ErrInvalidTuning)
	}
	return nil
}
