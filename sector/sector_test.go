package sector

import (
	"math"
	"os"
	"testing"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/controller"
	"github.com/automoto/tuxrun/player"
	"github.com/automoto/tuxrun/render"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/shared/leveldata"
	"github.com/automoto/tuxrun/status"
)

const dt = 1.0 / 60

// box moves at a constant velocity and records every callback.
type box struct {
	collision.MovingObject
	vel      gamemath.Vector
	resp     collision.Response
	updates  int
	solid    []collision.Hit
	tiles    []collision.TileAttr
	touches  []collision.Hit
	onUpdate func()
}

func newBox(x, y float64, g collision.Group) *box {
	return &box{MovingObject: collision.NewMovingObject(gamemath.NewRect(x, y, 32, 32), g)}
}

func (b *box) Update(dt float64) {
	b.updates++
	b.SetMovement(b.vel.Scale(dt))
	if b.onUpdate != nil {
		b.onUpdate()
	}
}

func (b *box) CollisionSolid(hit collision.Hit) { b.solid = append(b.solid, hit) }
func (b *box) CollisionTile(a collision.TileAttr) { b.tiles = append(b.tiles, a) }

func (b *box) Collision(other collision.Object, hit collision.Hit) collision.Response {
	b.touches = append(b.touches, hit)
	return b.resp
}

func (b *box) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnObject(b, hit)
}

func (b *box) Draw(*render.Canvas) {}

func (b *box) lastSolid() collision.Hit {
	if len(b.solid) == 0 {
		return collision.Hit{}
	}
	return b.solid[len(b.solid)-1]
}

func (b *box) lastTiles() collision.TileAttr {
	if len(b.tiles) == 0 {
		return 0
	}
	return b.tiles[len(b.tiles)-1]
}

func newSector() *Sector {
	return New(1000, 600, status.New(), 1)
}

func addTiles(s *Sector, x0, x1, y float64, attr collision.TileAttr) {
	for x := x0; x < x1; x += 32 {
		s.AddStatic(components.TileData{Rect: gamemath.NewRect(x, y, 32, 32), Attr: attr})
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestWallStopsHorizontalMove(t *testing.T) {
	s := newSector()
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(164, 100, 32, 32), Attr: collision.AttrSolid})
	b := newBox(100, 100, collision.GroupMoving)
	b.vel.X = 600
	s.Add(b)

	for i := 0; i < 5; i++ {
		s.Update(dt)
	}
	if !near(b.BBox().Right(), 164) {
		t.Errorf("right = %v, want 164", b.BBox().Right())
	}
	if hit := b.lastSolid(); !hit.Right || hit.Left || hit.Bottom {
		t.Errorf("hit = %+v, want right", hit)
	}
}

func TestFallingObjectLands(t *testing.T) {
	s := newSector()
	addTiles(s, 96, 256, 200, collision.AttrSolid)
	b := newBox(128, 100, collision.GroupMoving)
	b.vel.Y = 600
	s.Add(b)

	for i := 0; i < 20; i++ {
		s.Update(dt)
	}
	if !near(b.BBox().Bottom(), 200) {
		t.Errorf("bottom = %v, want 200", b.BBox().Bottom())
	}
	hit := b.lastSolid()
	if !hit.Bottom || hit.SlopeNormal != (gamemath.Vector{X: 0, Y: -1}) {
		t.Errorf("hit = %+v, want flat bottom", hit)
	}
}

func TestHeadBump(t *testing.T) {
	s := newSector()
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(128, 32, 32, 32), Attr: collision.AttrSolid})
	b := newBox(128, 100, collision.GroupMoving)
	b.vel.Y = -600
	s.Add(b)

	for i := 0; i < 5; i++ {
		s.Update(dt)
	}
	if !near(b.BBox().Top(), 64) || !b.lastSolid().Top {
		t.Errorf("top = %v hit = %+v", b.BBox().Top(), b.lastSolid())
	}
}

func TestPlatformIsOneWay(t *testing.T) {
	s := newSector()
	addTiles(s, 128, 256, 200, collision.AttrUnisolid)

	up := newBox(128, 240, collision.GroupMoving)
	up.vel.Y = -600
	s.Add(up)
	for i := 0; i < 10; i++ {
		s.Update(dt)
	}
	if up.BBox().Top() >= 200 || len(up.solid) != 0 {
		t.Errorf("rising box stopped at %v with %v", up.BBox().Top(), up.solid)
	}
	up.vel = gamemath.Vector{}

	down := newBox(200, 100, collision.GroupMoving)
	down.vel.Y = 600
	s.Add(down)
	for i := 0; i < 20; i++ {
		s.Update(dt)
	}
	if !near(down.BBox().Bottom(), 200) || !down.lastSolid().Bottom {
		t.Errorf("falling box bottom = %v, want 200", down.BBox().Bottom())
	}
}

func TestWalkUpRamp(t *testing.T) {
	s := newSector()
	addTiles(s, 64, 288, 200, collision.AttrSolid)
	s.AddStatic(components.TileData{
		Rect:  gamemath.NewRect(160, 168, 32, 32),
		Attr:  collision.AttrSlope,
		Slope: gamemath.SlopeUpRight,
	})
	b := newBox(100, 168, collision.GroupMoving)
	b.vel.X = 120
	s.Add(b)

	for i := 0; i < 22; i++ {
		s.Update(dt)
	}
	// right edge halfway up the ramp
	if !near(b.BBox().X, 144) || !near(b.BBox().Bottom(), 184) {
		t.Fatalf("box = %+v, want x 144 bottom 184", b.BBox())
	}
	hit := b.lastSolid()
	if !hit.Bottom || hit.SlopeNormal != gamemath.SlopeNormal(gamemath.SlopeUpRight) {
		t.Errorf("hit = %+v, want ramp bottom", hit)
	}
}

func TestTileAttributes(t *testing.T) {
	s := newSector()
	addTiles(s, 96, 160, 200, collision.AttrSolid|collision.AttrIce)
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(300, 100, 64, 64), Attr: collision.AttrWater})
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(500, 200, 32, 32), Attr: collision.AttrHurts})

	onIce := newBox(100, 168, collision.GroupMoving)
	swimming := newBox(310, 110, collision.GroupMoving)
	above := newBox(300, 68, collision.GroupMoving)
	spiked := newBox(468, 200, collision.GroupMoving)
	for _, b := range []*box{onIce, swimming, above, spiked} {
		s.Add(b)
	}
	s.Update(dt)

	if !onIce.lastTiles().Has(collision.AttrIce) {
		t.Error("standing on ice must report ice")
	}
	if !swimming.lastTiles().Has(collision.AttrWater) {
		t.Error("box inside water must report water")
	}
	if above.lastTiles().Has(collision.AttrWater) {
		t.Error("touching the water surface is not swimming")
	}
	if !spiked.lastTiles().Has(collision.AttrHurts) {
		t.Error("touching spikes must report hurts")
	}
}

func TestObjectsSeeMirroredHits(t *testing.T) {
	s := newSector()
	a := newBox(100, 100, collision.GroupMoving)
	b := newBox(120, 100, collision.GroupMoving)
	s.Add(a)
	s.Add(b)
	s.Update(dt)

	if len(a.touches) != 1 || len(b.touches) != 1 {
		t.Fatalf("touches a=%d b=%d, want 1 each", len(a.touches), len(b.touches))
	}
	if !a.touches[0].Right || !b.touches[0].Left {
		t.Errorf("a hit %+v, b hit %+v", a.touches[0], b.touches[0])
	}
	// both continued, so they were pushed apart by half the overlap each
	if !near(a.BBox().X, 94) || !near(b.BBox().X, 126) {
		t.Errorf("a.x = %v b.x = %v, want 94 and 126", a.BBox().X, b.BBox().X)
	}
}

func TestAbortMoveRestoresPosition(t *testing.T) {
	s := newSector()
	a := newBox(100, 100, collision.GroupMoving)
	a.vel.X = 600
	a.resp = collision.AbortMove
	b := newBox(140, 100, collision.GroupMoving)
	s.Add(a)
	s.Add(b)
	s.Update(dt)

	if a.BBox().X != 100 || b.BBox().X != 140 {
		t.Errorf("a.x = %v b.x = %v, want 100 and 140", a.BBox().X, b.BBox().X)
	}
}

func TestForceMoveKeepsOverlap(t *testing.T) {
	s := newSector()
	a := newBox(100, 100, collision.GroupMoving)
	a.resp = collision.ForceMove
	b := newBox(120, 100, collision.GroupMoving)
	s.Add(a)
	s.Add(b)
	s.Update(dt)

	if a.BBox().X != 100 || b.BBox().X != 120 {
		t.Errorf("a.x = %v b.x = %v, want unchanged", a.BBox().X, b.BBox().X)
	}
}

func TestMovingStaticBlocksMovers(t *testing.T) {
	s := newSector()
	crate := newBox(140, 100, collision.GroupMovingStatic)
	a := newBox(100, 100, collision.GroupMoving)
	a.vel.X = 600
	s.Add(crate)
	s.Add(a)
	s.Update(dt)

	if !near(a.BBox().X, 108) || !a.lastSolid().Right {
		t.Errorf("a.x = %v hit = %+v, want stopped at 108", a.BBox().X, a.lastSolid())
	}
	if len(a.touches) != 1 || len(crate.touches) != 1 {
		t.Errorf("touches a=%d crate=%d, want contact reported", len(a.touches), len(crate.touches))
	}
}

func TestGroupsWithoutObjectCollisions(t *testing.T) {
	tests := []struct {
		name string
		a, b collision.Group
	}{
		{"touchable pair", collision.GroupTouchable, collision.GroupTouchable},
		{"only static", collision.GroupMovingOnlyStatic, collision.GroupMoving},
		{"disabled", collision.GroupDisabled, collision.GroupMoving},
		{"static pair", collision.GroupMovingStatic, collision.GroupMovingStatic},
	}
	for _, tt := range tests {
		s := newSector()
		a := newBox(100, 100, tt.a)
		b := newBox(110, 100, tt.b)
		s.Add(a)
		s.Add(b)
		s.Update(dt)
		if len(a.touches)+len(b.touches) != 0 {
			t.Errorf("%s: got collisions", tt.name)
		}
	}
}

func TestSpawnQueueAppliesAfterFrame(t *testing.T) {
	s := newSector()
	child := newBox(300, 100, collision.GroupMoving)
	parent := newBox(100, 100, collision.GroupMoving)
	parent.onUpdate = func() {
		if !s.Contains(child) {
			s.Add(child)
		}
	}
	s.Add(parent)

	s.Update(dt)
	if !s.Contains(child) {
		t.Fatal("queued object must join after the frame")
	}
	if child.updates != 0 {
		t.Error("queued object must not update in the frame it was added")
	}
	s.Update(dt)
	if child.updates != 1 {
		t.Errorf("child updates = %d, want 1", child.updates)
	}
}

func TestRemovedObjectsLeave(t *testing.T) {
	s := newSector()
	b := newBox(100, 100, collision.GroupMoving)
	b.onUpdate = b.Remove
	s.Add(b)
	s.Update(dt)

	if s.Contains(b) || len(s.Objects()) != 0 {
		t.Error("removed object still in sector")
	}
}

func TestBulletLimit(t *testing.T) {
	st := status.New()
	st.MaxFireBullets = 1
	s := New(1000, 600, st, 1)

	if !s.AddBullet(gamemath.Vector{X: 100, Y: 100}, 0, gamemath.DirRight, status.FireBonus) {
		t.Fatal("first fire bullet refused")
	}
	if s.AddBullet(gamemath.Vector{X: 100, Y: 100}, 0, gamemath.DirRight, status.FireBonus) {
		t.Error("second fire bullet must be refused")
	}
	if s.AddBullet(gamemath.Vector{X: 100, Y: 100}, 0, gamemath.DirRight, status.IceBonus) {
		t.Error("ice bullets need ammo too")
	}

	s.Bullets()[0].Remove()
	s.Update(dt)
	if !s.AddBullet(gamemath.Vector{X: 100, Y: 100}, 0, gamemath.DirRight, status.FireBonus) {
		t.Error("bullet refused after the first one was gone")
	}
}

func TestBulletLimitCountsQueuedBullets(t *testing.T) {
	st := status.New()
	st.MaxIceBullets = 1
	s := New(1000, 600, st, 1)

	var results []bool
	shooter := newBox(100, 100, collision.GroupMoving)
	shooter.onUpdate = func() {
		results = append(results, s.AddBullet(gamemath.Vector{X: 200, Y: 100}, 0, gamemath.DirRight, status.IceBonus))
	}
	s.Add(shooter)
	s.Update(dt)

	if len(results) != 1 || !results[0] {
		t.Fatalf("results = %v", results)
	}
	shooter.onUpdate = func() {
		results = append(results, s.AddBullet(gamemath.Vector{X: 200, Y: 100}, 0, gamemath.DirRight, status.IceBonus))
		results = append(results, s.AddBullet(gamemath.Vector{X: 200, Y: 100}, 0, gamemath.DirRight, status.IceBonus))
	}
	s.Update(dt)
	if results[1] || results[2] {
		t.Errorf("results = %v, want refusals while one bullet flies", results)
	}
}

func TestIsFreeOfStatics(t *testing.T) {
	s := newSector()
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(100, 100, 32, 32), Attr: collision.AttrSolid})
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(200, 100, 32, 32), Attr: collision.AttrUnisolid})
	s.AddStatic(components.TileData{Rect: gamemath.NewRect(300, 100, 32, 32), Attr: collision.AttrSlope, Slope: gamemath.SlopeUpRight})
	crate := newBox(400, 100, collision.GroupMovingStatic)
	s.Add(crate)

	tests := []struct {
		name           string
		r              gamemath.Rect
		ignore         collision.Object
		ignoreUnisolid bool
		want           bool
	}{
		{"solid", gamemath.NewRect(110, 110, 10, 10), nil, false, false},
		{"touching solid", gamemath.NewRect(132, 100, 10, 10), nil, false, true},
		{"platform", gamemath.NewRect(210, 110, 10, 10), nil, false, false},
		{"platform ignored", gamemath.NewRect(210, 110, 10, 10), nil, true, true},
		{"above ramp surface", gamemath.NewRect(300, 100, 4, 4), nil, false, true},
		{"below ramp surface", gamemath.NewRect(326, 120, 4, 4), nil, false, false},
		{"moving static", gamemath.NewRect(410, 110, 10, 10), nil, false, false},
		{"moving static ignored", gamemath.NewRect(410, 110, 10, 10), crate, false, true},
		{"open air", gamemath.NewRect(600, 100, 32, 32), nil, false, true},
	}
	for _, tt := range tests {
		if got := s.IsFreeOfStatics(tt.r, tt.ignore, tt.ignoreUnisolid); got != tt.want {
			t.Errorf("%s: IsFreeOfStatics = %v, want %v", tt.name, got, tt.want)
		}
	}
	if s.IsFreeOfMovingStatics(gamemath.NewRect(410, 110, 10, 10)) {
		t.Error("IsFreeOfMovingStatics must see the crate")
	}
}

func TestPlayerLandsAndIsNearest(t *testing.T) {
	s := newSector()
	addTiles(s, 0, 1000, 400, collision.AttrSolid)

	left := player.New(s, status.New(), controller.New())
	left.Move(gamemath.Vector{X: 100, Y: 300})
	far := player.New(s, status.New(), controller.New())
	far.Move(gamemath.Vector{X: 700, Y: 300})
	s.SetPlayer(left)
	s.SetPlayer(far)

	for i := 0; i < 60; i++ {
		s.Update(dt)
	}
	if !left.OnGround() || !near(left.BBox().Bottom(), 400) {
		t.Errorf("player bottom = %v on ground = %v", left.BBox().Bottom(), left.OnGround())
	}
	if got := s.NearestPlayer(gamemath.Vector{X: 150, Y: 380}); got != collision.Player(left) {
		t.Error("wrong nearest player")
	}
	if got := s.NearestPlayer(gamemath.Vector{X: 650, Y: 380}); got != collision.Player(far) {
		t.Error("wrong nearest player")
	}
}

func TestNearestPlayerWithoutPlayers(t *testing.T) {
	if newSector().NearestPlayer(gamemath.Vector{}) != nil {
		t.Error("want nil without players")
	}
}

func TestFadeOut(t *testing.T) {
	s := newSector()
	s.FadeOut(0.5)
	for i := 0; i < 40; i++ {
		s.Update(dt)
	}
	if s.Fade() != 1 {
		t.Errorf("fade = %v, want 1", s.Fade())
	}
}

func TestMusic(t *testing.T) {
	s := newSector()
	s.PlayMusic(config.MusicLevel)
	if a := s.Audio(); a.Music != config.MusicLevel || !a.MusicChanged {
		t.Fatalf("audio = %+v", a)
	}
	s.Audio().MusicChanged = false

	s.StopMusic(0.5)
	s.Update(dt)
	if a := s.Audio(); a.Music != config.MusicLevel || a.MusicVolume >= 1 {
		t.Errorf("fading audio = %+v", a)
	}
	for i := 0; i < 40; i++ {
		s.Update(dt)
	}
	if a := s.Audio(); a.Music != config.MusicNone || !a.MusicChanged {
		t.Errorf("audio after fade = %+v", a)
	}

	s.PlaySound(config.SoundCoin)
	if got := s.Audio().PendingSFX; len(got) != 1 || got[0] != config.SoundCoin {
		t.Errorf("pending sfx = %v", got)
	}
}

func TestResetPoint(t *testing.T) {
	s := newSector()
	if s.HasResetPoint() {
		t.Fatal("new sector has a reset point")
	}
	s.SetResetPoint(gamemath.Vector{X: 10, Y: 20})
	if !s.HasResetPoint() || s.ResetPoint() != (gamemath.Vector{X: 10, Y: 20}) {
		t.Error("reset point not stored")
	}
	s.ClearResetPoint()
	if s.HasResetPoint() {
		t.Error("reset point not cleared")
	}
}

func TestSeededRandIsReproducible(t *testing.T) {
	a := New(100, 100, nil, 42)
	b := New(100, 100, nil, 42)
	for i := 0; i < 5; i++ {
		if a.Rand().Int() != b.Rand().Int() {
			t.Fatal("same seed must give the same sequence")
		}
	}
}

func TestDemoLevel(t *testing.T) {
	lvl, err := leveldata.Load(os.DirFS("../assets"), "levels/demo.tmx")
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}
	var fired []string
	s := FromLevel(lvl, status.New(), 1)
	s.SetTriggerHandler(func(name string) { fired = append(fired, name) })

	if got := len(s.Badguys()); got != 4 {
		t.Errorf("badguys = %d, want 4", got)
	}
	if got := len(s.Portables()); got != 2 {
		t.Errorf("portables = %d, want 2", got)
	}
	if s.Audio().Music != config.MusicLevel {
		t.Error("level music not started")
	}

	tux := player.New(s, s.Status(), controller.New())
	tux.Move(lvl.PlayerSpawn)
	s.SetPlayer(tux)
	for i := 0; i < 60; i++ {
		s.Update(dt)
	}
	if !tux.OnGround() {
		t.Errorf("player at %+v is not on the ground", tux.BBox())
	}

	// walk into the reset point
	tux.Move(gamemath.Vector{X: 1500, Y: 384 - tux.BBox().Height()})
	s.Update(dt)
	s.Update(dt)
	if !s.HasResetPoint() || len(fired) != 1 || fired[0] != "checkpoint" {
		t.Errorf("reset point = %v fired = %v", s.HasResetPoint(), fired)
	}
}
