// Package scripting runs level scripts written in tengo. A script talks to
// the player through the "tux" module and reacts to the game by assigning
// hooks:
//
//	tux := import("tux")
//	init = func() { tux.deactivate() }
//	update = func(dt) { state.t = (state.t || 0) + dt }
//	on_trigger = func(name) { tux.cheer() }
//
// The whole program runs again for every hook call, so top-level code must
// only assign hooks. Values that should survive between calls live in the
// state map.
package scripting

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/tuxrun/player"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrNoPlayer is returned when a hook runs before a player was bound.
var ErrNoPlayer = errors.New("scripting: no player bound")

const prelude = `
init := func() {}
update := func(dt) {}
on_trigger := func(name) {}
`

const dispatch = `
if __phase == "init" {
	init()
} else if __phase == "update" {
	update(__dt)
} else if __phase == "trigger" {
	on_trigger(__trigger)
}
`

// Runtime is one compiled level script.
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	player   player.RemoteControl
	started  bool
}

// New compiles src. name is only used in log and error messages.
func New(name string, src []byte) (*Runtime, error) {
	r := &Runtime{
		name:  name,
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}
	if err := r.compile(src); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads and compiles the script at path.
func Load(fsys fs.FS, path string) (*Runtime, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return New(path, src)
}

func (r *Runtime) compile(src []byte) error {
	full := make([]byte, 0, len(prelude)+len(src)+len(dispatch)+1)
	full = append(full, prelude...)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, dispatch...)

	script := tengo.NewScript(full)
	mods := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	mods.AddBuiltinModule("tux", r.tuxModule())
	script.SetImports(mods)
	_ = script.Add("__phase", "")
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__trigger", "")
	_ = script.Add("state", r.state)

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("compile %s: %w", r.name, err)
	}
	r.compiled = compiled
	return nil
}

// Name returns the script's path or name.
func (r *Runtime) Name() string { return r.name }

// Bind sets the player the tux module drives. The init hook runs again on
// the next update.
func (r *Runtime) Bind(p player.RemoteControl) {
	r.player = p
	r.started = false
}

// Reload recompiles the script from src. State and the bound player are
// kept; on error the old program stays active.
func (r *Runtime) Reload(src []byte) error {
	old := r.compiled
	if err := r.compile(src); err != nil {
		r.compiled = old
		return err
	}
	log.Printf("Reloaded script %s", r.name)
	return nil
}

// Update runs the init hook once, then update(dt).
func (r *Runtime) Update(dt float64) error {
	if r.player == nil {
		return ErrNoPlayer
	}
	if !r.started {
		r.started = true
		if err := r.run("init", 0, ""); err != nil {
			return err
		}
	}
	return r.run("update", dt, "")
}

// Trigger runs on_trigger(name).
func (r *Runtime) Trigger(name string) error {
	if r.player == nil {
		return ErrNoPlayer
	}
	return r.run("trigger", 0, name)
}

// State returns a copy of the script's persistent state.
func (r *Runtime) State() map[string]any {
	return tengo.ToInterface(r.state).(map[string]any)
}

func (r *Runtime) run(phase string, dt float64, trigger string) error {
	if err := r.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := r.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := r.compiled.Set("__trigger", trigger); err != nil {
		return err
	}
	if err := r.compiled.Set("state", r.state); err != nil {
		return err
	}
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", r.name, phase, err)
	}
	return nil
}
