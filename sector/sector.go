// Package sector is the world the player and the enemies live in. It owns
// the level geometry, every moving object and the per-frame collision pass.
// Objects are donburi entities mirrored into a resolv space for broad-phase
// queries.
package sector

import (
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/tuxrun/archetypes"
	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/effects"
	"github.com/automoto/tuxrun/objects"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
	"github.com/automoto/tuxrun/tags"
	"github.com/automoto/tuxrun/timer"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	playerQuery   = donburi.NewQuery(filter.Contains(tags.Player))
	badguyQuery   = donburi.NewQuery(filter.Contains(tags.Badguy))
	bulletQuery   = donburi.NewQuery(filter.Contains(tags.Bullet))
	portableQuery = donburi.NewQuery(filter.Contains(tags.Portable))
)

// Sector is a running level.
type Sector struct {
	world donburi.World
	space *resolv.Space
	probe *resolv.Object

	width  float64
	height float64

	actors    []*donburi.Entry
	index     map[collision.Object]*donburi.Entry
	effects   []effects.Effect
	updating  bool
	nextOrder int

	pending []components.SectorObject
	// bullets waiting in pending, by kind
	queuedBullets map[status.BonusType]int

	clock  timer.Clock
	rng    *rand.Rand
	status *status.Status

	audio *donburi.Entry
	level *donburi.Entry

	fade       *gween.Tween
	musicFade  *gween.Tween
	onTrigger  func(name string)
	resetPoint gamemath.Vector
	hasReset   bool
}

// New returns an empty sector of the given size in pixels. seed feeds the
// sector's random source so runs can be replayed.
func New(width, height float64, st *status.Status, seed int64) *Sector {
	if st == nil {
		st = status.New()
	}
	cell := int(config.Physics.CellSize)
	// pad so objects slightly outside the level still get cells
	pad := 4 * cell
	s := &Sector{
		world:         donburi.NewWorld(),
		space:         resolv.NewSpace(int(width)+2*pad, int(height)+2*pad, cell, cell),
		width:         width,
		height:        height,
		index:         make(map[collision.Object]*donburi.Entry),
		queuedBullets: make(map[status.BonusType]int),
		rng:           rand.New(rand.NewSource(seed)),
		status:        st,
	}
	s.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	s.space.Add(s.probe)

	s.audio = archetypes.Audio.Spawn(s.world)
	components.Audio.SetValue(s.audio, components.AudioData{MusicVolume: 1})
	s.level = archetypes.Level.Spawn(s.world)
	return s
}

// World exposes the entity store to the ebiten systems.
func (s *Sector) World() donburi.World { return s.world }

func (s *Sector) Width() float64 { return s.width }
func (s *Sector) Height() float64 { return s.height }
func (s *Sector) Clock() *timer.Clock { return &s.clock }
func (s *Sector) Rand() *rand.Rand { return s.rng }
func (s *Sector) Status() *status.Status { return s.status }

// SetTriggerHandler installs the callback run when a script trigger fires.
func (s *Sector) SetTriggerHandler(fn func(name string)) { s.onTrigger = fn }

func (s *Sector) fireTrigger(name string) {
	if s.onTrigger != nil {
		s.onTrigger(name)
	}
}

// Add inserts an object. During Update the object is queued and joins the
// sector after the frame.
func (s *Sector) Add(o components.SectorObject) {
	if s.updating {
		s.pending = append(s.pending, o)
		return
	}
	s.insert(o)
}

// AddStatic adds one tile of level geometry.
func (s *Sector) AddStatic(t components.TileData) {
	e := archetypes.Tile.Spawn(s.world)
	components.Tile.SetValue(e, t)

	r := t.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tileTags(t)...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	s.space.Add(obj)
}

func tileTags(t components.TileData) []string {
	var ts []string
	switch {
	case t.Attr.Has(collision.AttrSlope):
		ts = append(ts, tags.ResolvRamp)
		if t.Slope == gamemath.SlopeUpLeft {
			ts = append(ts, tags.Slope45UpLeft)
		} else {
			ts = append(ts, tags.Slope45UpRight)
		}
	case t.Attr.Has(collision.AttrSolid):
		ts = append(ts, tags.ResolvSolid)
	case t.Attr.Has(collision.AttrUnisolid):
		ts = append(ts, tags.ResolvPlatform)
	}
	if t.Attr.Has(collision.AttrIce) {
		ts = append(ts, tags.ResolvIce)
	}
	if t.Attr.Has(collision.AttrHurts) {
		ts = append(ts, tags.ResolvHurts)
	}
	if t.Attr.Has(collision.AttrWater) {
		ts = append(ts, tags.ResolvWater)
	}
	return ts
}

func (s *Sector) insert(o components.SectorObject) *donburi.Entry {
	if _, ok := s.index[o]; ok {
		log.Printf("Warning: object added to the sector twice")
		return s.index[o]
	}

	kind := &classifier{}
	o.Dispatch(kind, collision.Hit{})

	e := archetypes.Actor.Spawn(s.world, kind.comps...)
	if kind.bind != nil {
		kind.bind(e)
	}
	components.Actor.SetValue(e, components.ActorData{Object: o, Prev: o.BBox().Pos(), Order: s.nextOrder})
	s.nextOrder++

	r := o.BBox()
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvActor)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	s.space.Add(obj)

	s.actors = append(s.actors, e)
	s.index[o] = e
	return e
}

func (s *Sector) remove(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	delete(s.index, actor.Object)
	s.space.Remove(components.Object.Get(e).Object)
	s.world.Remove(e.Entity())
}

// Contains reports whether o is a live object of this sector.
func (s *Sector) Contains(o collision.Object) bool {
	_, ok := s.index[o]
	return ok && !o.Removed()
}

// Objects returns the live objects in update order.
func (s *Sector) Objects() []components.SectorObject {
	out := make([]components.SectorObject, 0, len(s.actors))
	for _, e := range s.actors {
		if o := components.Actor.Get(e).Object; !o.Removed() {
			out = append(out, o)
		}
	}
	return out
}

func (s *Sector) Portables() []collision.Portable {
	var out []collision.Portable
	portableQuery.Each(s.world, func(e *donburi.Entry) {
		if p := components.Portable.Get(e).Portable; !p.Removed() {
			out = append(out, p)
		}
	})
	return out
}

func (s *Sector) Bullets() []collision.Bullet {
	var out []collision.Bullet
	bulletQuery.Each(s.world, func(e *donburi.Entry) {
		if b := components.Bullet.Get(e).Bullet; !b.Removed() {
			out = append(out, b)
		}
	})
	return out
}

// Badguys returns the live enemies.
func (s *Sector) Badguys() []collision.Badguy {
	var out []collision.Badguy
	badguyQuery.Each(s.world, func(e *donburi.Entry) {
		if b := components.Badguy.Get(e).Badguy; !b.Removed() {
			out = append(out, b)
		}
	})
	return out
}

// NearestPlayer returns the live player closest to pos, or nil.
func (s *Sector) NearestPlayer(pos gamemath.Vector) collision.Player {
	var nearest collision.Player
	best := math.MaxFloat64
	playerQuery.Each(s.world, func(e *donburi.Entry) {
		p := components.Player.Get(e).Player
		if p.Removed() {
			return
		}
		if d := p.BBox().Middle().Sub(pos).Length(); d < best {
			best = d
			nearest = p
		}
	})
	return nearest
}

// AddBullet spawns a bullet unless the player already has as many of that
// kind in flight as the status allows.
func (s *Sector) AddBullet(pos gamemath.Vector, xm float64, dir gamemath.Direction, kind status.BonusType) bool {
	live := 0
	for _, b := range s.Bullets() {
		if b.Kind() == kind {
			live++
		}
	}
	live += s.queuedBullets[kind]
	if live >= s.status.MaxBullets(kind) {
		return false
	}
	if s.updating {
		s.queuedBullets[kind]++
	}
	s.Add(objects.NewBullet(pos, xm, dir, kind))
	s.PlaySound(config.SoundShoot)
	return true
}

func (s *Sector) AddEffect(e effects.Effect) {
	s.effects = append(s.effects, e)
}

// Effects returns the running cosmetic effects.
func (s *Sector) Effects() []effects.Effect { return s.effects }

func (s *Sector) PlaySound(id config.SoundID) {
	a := components.Audio.Get(s.audio)
	a.PendingSFX = append(a.PendingSFX, id)
}

func (s *Sector) PlayMusic(id config.MusicID) {
	a := components.Audio.Get(s.audio)
	s.musicFade = nil
	a.MusicVolume = 1
	if a.Music != id {
		a.Music = id
		a.MusicChanged = true
	}
}

// StopMusic fades the current track out over fadeTime seconds, or stops it
// right away for a non-positive fadeTime.
func (s *Sector) StopMusic(fadeTime float64) {
	a := components.Audio.Get(s.audio)
	if fadeTime <= 0 {
		s.musicFade = nil
		a.Music = config.MusicNone
		a.MusicChanged = true
		return
	}
	s.musicFade = gween.New(float32(a.MusicVolume), 0, float32(fadeTime), ease.Linear)
}

// Audio returns the pending sound events.
func (s *Sector) Audio() *components.AudioData { return components.Audio.Get(s.audio) }

// FadeOut darkens the screen over seconds.
func (s *Sector) FadeOut(seconds float64) {
	lvl := components.Level.Get(s.level)
	if seconds <= 0 {
		s.fade = nil
		lvl.Fade = 1
		return
	}
	s.fade = gween.New(float32(lvl.Fade), 1, float32(seconds), ease.InQuad)
}

// Fade returns the screen cover alpha in [0, 1].
func (s *Sector) Fade() float64 { return components.Level.Get(s.level).Fade }

func (s *Sector) HasResetPoint() bool { return s.hasReset }
func (s *Sector) ClearResetPoint() { s.hasReset = false }
func (s *Sector) ResetPoint() gamemath.Vector { return s.resetPoint }

func (s *Sector) SetResetPoint(p gamemath.Vector) {
	s.resetPoint = p
	s.hasReset = true
}

// Update advances the sector by one frame.
func (s *Sector) Update(dt float64) {
	s.clock.Advance(dt)

	s.updating = true
	for _, e := range s.actors {
		actor := components.Actor.Get(e)
		if actor.Object.Removed() {
			continue
		}
		actor.Prev = actor.Object.BBox().Pos()
		actor.Object.Update(dt)
	}

	for _, e := range s.actors {
		o := components.Actor.Get(e).Object
		if o.Removed() {
			continue
		}
		s.moveObject(e, o)
	}
	s.handleObjectCollisions()
	s.updating = false

	for _, fx := range s.effects {
		fx.Update(dt)
	}
	s.effects = removeDone(s.effects)

	s.flushRemoved()
	s.flushPending()
	s.updateTweens(dt)
}

func removeDone(fx []effects.Effect) []effects.Effect {
	kept := fx[:0]
	for _, e := range fx {
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(fx); i++ {
		fx[i] = nil
	}
	return kept
}

func (s *Sector) flushRemoved() {
	kept := s.actors[:0]
	for _, e := range s.actors {
		if components.Actor.Get(e).Object.Removed() {
			s.remove(e)
			continue
		}
		kept = append(kept, e)
	}
	s.actors = kept
}

func (s *Sector) flushPending() {
	pending := s.pending
	s.pending = nil
	clear(s.queuedBullets)
	for _, o := range pending {
		s.insert(o)
	}
}

func (s *Sector) updateTweens(dt float64) {
	if s.fade != nil {
		v, done := s.fade.Update(float32(dt))
		components.Level.Get(s.level).Fade = float64(v)
		if done {
			s.fade = nil
		}
	}
	if s.musicFade != nil {
		a := components.Audio.Get(s.audio)
		v, done := s.musicFade.Update(float32(dt))
		a.MusicVolume = float64(v)
		if done {
			s.musicFade = nil
			a.Music = config.MusicNone
			a.MusicChanged = true
		}
	}
}

// sortByOrder sorts entries by insertion order.
func sortByOrder(es []*donburi.Entry) {
	sort.Slice(es, func(i, j int) bool {
		return components.Actor.Get(es[i]).Order < components.Actor.Get(es[j]).Order
	})
}

// classifier learns an object's capabilities through double dispatch and
// records the components it should carry.
type classifier struct {
	comps []donburi.IComponentType
	bind  func(e *donburi.Entry)
}

func (c *classifier) OnPlayer(p collision.Player, _ collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Player, components.Player}
	c.bind = func(e *donburi.Entry) { components.Player.SetValue(e, components.PlayerData{Player: p}) }
	return collision.Continue
}

func (c *classifier) OnBadguy(b collision.Badguy, _ collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Badguy, components.Badguy}
	c.bind = func(e *donburi.Entry) { components.Badguy.SetValue(e, components.BadguyData{Badguy: b}) }
	return collision.Continue
}

func (c *classifier) OnBullet(b collision.Bullet, _ collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Bullet, components.Bullet}
	c.bind = func(e *donburi.Entry) { components.Bullet.SetValue(e, components.BulletData{Bullet: b}) }
	return collision.Continue
}

func (c *classifier) OnTrigger(t collision.Trigger, _ collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Trigger, components.Trigger}
	c.bind = func(e *donburi.Entry) { components.Trigger.SetValue(e, components.TriggerData{Trigger: t}) }
	return collision.Continue
}

func (c *classifier) OnPortable(p collision.Portable, _ collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Portable, components.Portable}
	c.bind = func(e *donburi.Entry) { components.Portable.SetValue(e, components.PortableData{Portable: p}) }
	return collision.Continue
}

func (c *classifier) OnObject(collision.Object, collision.Hit) collision.Response {
	c.comps = []donburi.IComponentType{tags.Item}
	return collision.Continue
}
