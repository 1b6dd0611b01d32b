package scripting

import (
	"log"

	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/d5/tengo/v2"
)

// tuxModule builds the "tux" module. Every function looks up the bound
// player when called, so rebinding needs no recompile.
func (r *Runtime) tuxModule() map[string]tengo.Object {
	return map[string]tengo.Object{
		"activate":        r.noArgs("activate", func() { r.player.Activate() }),
		"deactivate":      r.noArgs("deactivate", func() { r.player.Deactivate() }),
		"cheer":           r.noArgs("cheer", func() { r.player.DoCheer() }),
		"make_invincible": r.noArgs("make_invincible", func() { r.player.MakeInvincible() }),

		"use_scripting_controller": r.boolArg("use_scripting_controller", func(b bool) {
			r.player.UseScriptingController(b)
		}),

		"set_ghost_mode": r.boolArg("set_ghost_mode", func(b bool) { r.player.SetGhostMode(b) }),
		"set_edit_mode":  r.boolArg("set_edit_mode", func(b bool) { r.player.SetEditMode(b) }),
		"set_visible":    r.boolArg("set_visible", func(b bool) { r.player.SetVisible(b) }),
		"kill":           r.boolArg("kill", func(b bool) { r.player.Kill(b) }),

		"walk":            r.floatArg("walk", func(v float64) { r.player.Walk(v) }),
		"set_speed_limit": r.floatArg("set_speed_limit", func(v float64) { r.player.SetSpeedLimit(v) }),

		"do_scripting_controller": &tengo.UserFunction{
			Name: "do_scripting_controller",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				name, ok := tengo.ToString(args[0])
				if !ok {
					return nil, argError("control", "string", args[0])
				}
				pressed, ok := tengo.ToBool(args[1])
				if !ok {
					return nil, argError("pressed", "bool", args[1])
				}
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				r.player.DoScriptingController(name, pressed)
				return tengo.UndefinedValue, nil
			},
		},

		"add_bonus": &tengo.UserFunction{
			Name: "add_bonus",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				name, ok := tengo.ToString(args[0])
				if !ok {
					return nil, argError("bonus", "string", args[0])
				}
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				got, err := r.player.AddBonusName(name)
				if err != nil {
					return &tengo.Error{Value: &tengo.String{Value: err.Error()}}, nil
				}
				return tengo.FromInterface(got)
			},
		},

		"add_coins": &tengo.UserFunction{
			Name: "add_coins",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				n, ok := tengo.ToInt(args[0])
				if !ok {
					return nil, argError("count", "int", args[0])
				}
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				r.player.AddCoins(n)
				return tengo.UndefinedValue, nil
			},
		},

		"get_coins": &tengo.UserFunction{
			Name: "get_coins",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				return &tengo.Int{Value: int64(r.player.Coins())}, nil
			},
		},

		"get_pos": &tengo.UserFunction{
			Name: "get_pos",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				p := r.player.Position()
				return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: p.X}, &tengo.Float{Value: p.Y}}}, nil
			},
		},

		"set_pos": &tengo.UserFunction{
			Name: "set_pos",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				x, ok := tengo.ToFloat64(args[0])
				if !ok {
					return nil, argError("x", "float", args[0])
				}
				y, ok := tengo.ToFloat64(args[1])
				if !ok {
					return nil, argError("y", "float", args[1])
				}
				if r.player == nil {
					return nil, ErrNoPlayer
				}
				r.player.Move(gamemath.Vector{X: x, Y: y})
				return tengo.UndefinedValue, nil
			},
		},

		"log": &tengo.UserFunction{
			Name: "log",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				vals := make([]any, 0, len(args))
				for _, a := range args {
					s, _ := tengo.ToString(a)
					vals = append(vals, s)
				}
				log.Println(append([]any{"[" + r.name + "]"}, vals...)...)
				return tengo.UndefinedValue, nil
			},
		},
	}
}

func (r *Runtime) noArgs(name string, fn func()) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		if r.player == nil {
			return nil, ErrNoPlayer
		}
		fn()
		return tengo.UndefinedValue, nil
	}}
}

func (r *Runtime) boolArg(name string, fn func(bool)) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		b, ok := tengo.ToBool(args[0])
		if !ok {
			return nil, argError("first", "bool", args[0])
		}
		if r.player == nil {
			return nil, ErrNoPlayer
		}
		fn(b)
		return tengo.UndefinedValue, nil
	}}
}

func (r *Runtime) floatArg(name string, fn func(float64)) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, argError("first", "float", args[0])
		}
		if r.player == nil {
			return nil, ErrNoPlayer
		}
		fn(v)
		return tengo.UndefinedValue, nil
	}}
}

func argError(name, expected string, found tengo.Object) error {
	return tengo.ErrInvalidArgumentType{Name: name, Expected: expected, Found: found.TypeName()}
}
