package scripting

import (
	"errors"
	"os"
	"testing"

	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

const header = "tux := import(\"tux\")\n"

type fakePlayer struct {
	active      int
	deactivated int
	cheers      int
	scripted    bool
	pressed     map[string]bool
	walk        float64
	ghost       bool
	edit        bool
	visible     bool
	coins       int
	invincible  bool
	killed      bool
	speedLimit  float64
	pos         gamemath.Vector
	bonus       status.BonusType
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{pressed: map[string]bool{}, visible: true}
}

func (p *fakePlayer) Activate()                      { p.active++ }
func (p *fakePlayer) Deactivate()                    { p.deactivated++ }
func (p *fakePlayer) UseScriptingController(on bool) { p.scripted = on }
func (p *fakePlayer) Walk(speed float64)             { p.walk = speed }
func (p *fakePlayer) SetGhostMode(on bool)           { p.ghost = on }
func (p *fakePlayer) SetEditMode(on bool)            { p.edit = on }
func (p *fakePlayer) SetVisible(on bool)             { p.visible = on }
func (p *fakePlayer) AddCoins(n int)                 { p.coins += n }
func (p *fakePlayer) Coins() int                     { return p.coins }
func (p *fakePlayer) MakeInvincible()                { p.invincible = true }
func (p *fakePlayer) Kill(completely bool)           { p.killed = completely }
func (p *fakePlayer) SetSpeedLimit(limit float64)    { p.speedLimit = limit }
func (p *fakePlayer) Position() gamemath.Vector      { return p.pos }
func (p *fakePlayer) Move(pos gamemath.Vector)       { p.pos = pos }
func (p *fakePlayer) DoCheer()                       { p.cheers++ }

func (p *fakePlayer) DoScriptingController(control string, pressed bool) {
	p.pressed[control] = pressed
}

func (p *fakePlayer) AddBonusName(name string) (bool, error) {
	b, err := status.ParseBonus(name)
	if err != nil {
		return false, err
	}
	p.bonus = b
	return true, nil
}

func mustNew(t *testing.T, src string) (*Runtime, *fakePlayer) {
	t.Helper()
	r, err := New("test", []byte(header+src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p := newFakePlayer()
	r.Bind(p)
	return r, p
}

func TestUpdateWithoutPlayer(t *testing.T) {
	r, err := New("test", []byte(header))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Update(0.1); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Update() = %v, want ErrNoPlayer", err)
	}
	if err := r.Trigger("exit"); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Trigger() = %v, want ErrNoPlayer", err)
	}
}

func TestEmptyScriptRuns(t *testing.T) {
	r, _ := mustNew(t, "")
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if err := r.Trigger("anything"); err != nil {
		t.Fatal(err)
	}
}

func TestInitRunsOncePerBind(t *testing.T) {
	r, p := mustNew(t, `init = func() { tux.deactivate() }`)
	for i := 0; i < 3; i++ {
		if err := r.Update(0.1); err != nil {
			t.Fatal(err)
		}
	}
	if p.deactivated != 1 {
		t.Fatalf("init ran %d times, want 1", p.deactivated)
	}

	other := newFakePlayer()
	r.Bind(other)
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if other.deactivated != 1 || p.deactivated != 1 {
		t.Errorf("rebinding must rerun init on the new player only")
	}
}

func TestUpdateReceivesDelta(t *testing.T) {
	r, p := mustNew(t, `update = func(dt) { tux.walk(dt * 100) }`)
	if err := r.Update(0.5); err != nil {
		t.Fatal(err)
	}
	if p.walk != 50 {
		t.Errorf("walk = %v, want 50", p.walk)
	}
}

func TestStatePersistsBetweenCalls(t *testing.T) {
	r, _ := mustNew(t, `
update = func(dt) {
	if is_undefined(state.frames) {
		state.frames = 0
	}
	state.frames += 1
}`)
	for i := 0; i < 3; i++ {
		if err := r.Update(0.1); err != nil {
			t.Fatal(err)
		}
	}
	if got := r.State()["frames"]; got != int64(3) {
		t.Errorf("frames = %v, want 3", got)
	}
}

func TestTrigger(t *testing.T) {
	r, p := mustNew(t, `on_trigger = func(name) { if name == "exit" { tux.cheer() } }`)
	if err := r.Trigger("door"); err != nil {
		t.Fatal(err)
	}
	if err := r.Trigger("exit"); err != nil {
		t.Fatal(err)
	}
	if p.cheers != 1 {
		t.Errorf("cheers = %d, want 1", p.cheers)
	}
}

func TestRemoteControl(t *testing.T) {
	r, p := mustNew(t, `
init = func() {
	tux.use_scripting_controller(true)
	tux.do_scripting_controller("jump", true)
	tux.set_ghost_mode(true)
	tux.set_edit_mode(true)
	tux.set_visible(false)
	tux.add_coins(7)
	tux.make_invincible()
	tux.set_speed_limit(80)
	tux.set_pos(10, 20.5)
	tux.activate()
	state.coins = tux.get_coins()
	state.pos = tux.get_pos()
}`)
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	switch {
	case !p.scripted || !p.pressed["jump"]:
		t.Error("scripting controller not driven")
	case !p.ghost || !p.edit || p.visible:
		t.Error("modes not set")
	case p.coins != 7 || !p.invincible || p.speedLimit != 80 || p.active != 1:
		t.Errorf("player = %+v", p)
	case p.pos != (gamemath.Vector{X: 10, Y: 20.5}):
		t.Errorf("pos = %v", p.pos)
	}

	state := r.State()
	if state["coins"] != int64(7) {
		t.Errorf("state.coins = %v", state["coins"])
	}
	if pos, ok := state["pos"].([]any); !ok || len(pos) != 2 || pos[0] != 10.0 || pos[1] != 20.5 {
		t.Errorf("state.pos = %v", state["pos"])
	}
}

func TestAddBonus(t *testing.T) {
	r, p := mustNew(t, `
init = func() {
	state.ok = tux.add_bonus("fireflower")
	state.failed = is_error(tux.add_bonus("pizza"))
}`)
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	state := r.State()
	if state["ok"] != true || state["failed"] != true {
		t.Errorf("state = %v", state)
	}
	if p.bonus != status.FireBonus {
		t.Errorf("bonus = %v, want fireflower", p.bonus)
	}
}

func TestKill(t *testing.T) {
	r, p := mustNew(t, `on_trigger = func(name) { tux.kill(true) }`)
	if err := r.Trigger("pit"); err != nil {
		t.Fatal(err)
	}
	if !p.killed {
		t.Error("kill(true) did not reach the player")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := New("bad", []byte(header+"update = func(dt) {")); err == nil {
		t.Error("want a compile error")
	}
	if _, err := New("bad", []byte(header+"tux.fly()\nupdate := 1")); err == nil {
		t.Error("redeclaring a hook must fail")
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"wrong type", `update = func(dt) { tux.walk("fast") }`},
		{"wrong arity", `update = func(dt) { tux.cheer(1) }`},
		{"unknown function", `update = func(dt) { tux.fly() }`},
	}
	for _, tt := range tests {
		r, _ := mustNew(t, tt.src)
		if err := r.Update(0.1); err == nil {
			t.Errorf("%s: want an error", tt.name)
		}
	}
}

func TestReload(t *testing.T) {
	r, p := mustNew(t, `update = func(dt) { state.n = 1; tux.walk(1) }`)
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}

	if err := r.Reload([]byte(header + "update = func(dt) {")); err == nil {
		t.Fatal("want a compile error")
	}
	if err := r.Update(0.1); err != nil || p.walk != 1 {
		t.Fatalf("old program must stay active, walk = %v err = %v", p.walk, err)
	}

	if err := r.Reload([]byte(header + `update = func(dt) { tux.walk(state.n + 1) }`)); err != nil {
		t.Fatal(err)
	}
	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if p.walk != 2 {
		t.Errorf("walk = %v, want 2 from the kept state", p.walk)
	}
}

func TestDemoScript(t *testing.T) {
	r, err := Load(os.DirFS("../assets"), "scripts/demo.tengo")
	if err != nil {
		t.Fatal(err)
	}
	p := newFakePlayer()
	r.Bind(p)

	if err := r.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if !p.scripted || !p.pressed["right"] {
		t.Fatal("intro must walk right on the scripting controller")
	}
	for i := 0; i < 10; i++ {
		if err := r.Update(0.1); err != nil {
			t.Fatal(err)
		}
	}
	if p.scripted || p.pressed["right"] {
		t.Error("intro must hand the controls back")
	}

	if err := r.Trigger("checkpoint"); err != nil {
		t.Fatal(err)
	}
	if err := r.Trigger("exit"); err != nil {
		t.Fatal(err)
	}
	if p.cheers != 1 || p.deactivated != 1 {
		t.Errorf("exit: cheers = %d deactivated = %d", p.cheers, p.deactivated)
	}
}

func TestLoadMissingScript(t *testing.T) {
	if _, err := Load(os.DirFS("."), "nope.tengo"); err == nil {
		t.Error("want an error")
	}
}
