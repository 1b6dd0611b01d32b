package objects

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
)

// ScriptTrigger runs a named level script hook. Activated triggers fire when
// the player presses up inside them (doors, signs); touch triggers fire once
// on contact.
type ScriptTrigger struct {
	collision.MovingObject
	name    string
	touch   bool
	fired   bool
	onFire  func(name string)
	visible bool
}

func NewScriptTrigger(area gamemath.Rect, name string, touch bool, onFire func(name string)) *ScriptTrigger {
	return &ScriptTrigger{
		MovingObject: collision.NewMovingObject(area, collision.GroupTouchable),
		name:         name,
		touch:        touch,
		onFire:       onFire,
		visible:      !touch,
	}
}

func (t *ScriptTrigger) Name() string { return t.name }

// Activate is called by a player pressing up inside the trigger.
func (t *ScriptTrigger) Activate(p collision.Player) {
	if t.touch {
		return
	}
	t.fire()
}

func (t *ScriptTrigger) fire() {
	if t.onFire != nil {
		t.onFire(t.name)
	}
}

func (t *ScriptTrigger) Update(dt float64) {}

func (t *ScriptTrigger) Collision(other collision.Object, hit collision.Hit) collision.Response {
	return other.Dispatch(triggerHandler{t: t}, hit)
}

func (t *ScriptTrigger) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	if t.touch {
		return h.OnObject(t, hit)
	}
	return h.OnTrigger(t, hit)
}

func (t *ScriptTrigger) Draw(c *render.Canvas) {
	if !t.visible {
		return
	}
	c.DrawFilledRect(t.BBox(), config.Purple, render.LayerTiles+1)
}

type triggerHandler struct {
	collision.BaseHandler
	t *ScriptTrigger
}

func (h triggerHandler) OnPlayer(p collision.Player, hit collision.Hit) collision.Response {
	if h.t.touch && !h.t.fired {
		h.t.fired = true
		h.t.fire()
	}
	return collision.Continue
}
