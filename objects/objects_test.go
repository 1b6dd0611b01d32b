package objects

import (
	"testing"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/automoto/tuxrun/status"
)

const dt = 1.0 / 60

type fakePlayer struct {
	collision.MovingObject
	up         bool
	climbing   collision.Climbable
	coins      int
	bonuses    []status.BonusType
	refuse     bool
	invincible bool
}

func newFakePlayer(box gamemath.Rect) *fakePlayer {
	return &fakePlayer{MovingObject: collision.NewMovingObject(box, collision.GroupMoving)}
}

func (p *fakePlayer) Update(float64) {}
func (p *fakePlayer) Dispatch(h collision.Handler, hit collision.Hit) collision.Response {
	return h.OnPlayer(p, hit)
}
func (p *fakePlayer) Kill(bool) {}
func (p *fakePlayer) Bounce() {}
func (p *fakePlayer) Kick() {}
func (p *fakePlayer) IsShielded() bool { return false }
func (p *fakePlayer) IsInvincible() bool { return p.invincible }
func (p *fakePlayer) IsBig() bool { return false }
func (p *fakePlayer) Velocity() gamemath.Vector { return gamemath.Vector{} }
func (p *fakePlayer) AddCoins(n int) { p.coins += n }
func (p *fakePlayer) AddBonus(b status.BonusType, animate bool) bool {
	if p.refuse {
		return false
	}
	p.bonuses = append(p.bonuses, b)
	return true
}
func (p *fakePlayer) MakeInvincible() { p.invincible = true }
func (p *fakePlayer) StartClimbing(c collision.Climbable) { p.climbing = c }
func (p *fakePlayer) StopClimbing(c collision.Climbable) { p.climbing = nil }
func (p *fakePlayer) Climbing() collision.Climbable { return p.climbing }
func (p *fakePlayer) UpPressed() bool { return p.up }

type soundLog []config.SoundID

func (s *soundLog) PlaySound(id config.SoundID) { *s = append(*s, id) }

func TestBulletSpeed(t *testing.T) {
	b := NewBullet(gamemath.Vector{}, 50, gamemath.DirLeft, status.FireBonus)
	if got := b.Velocity().X; got != -config.Bullet.Speed+50 {
		t.Errorf("vx = %v, want %v", got, -config.Bullet.Speed+50)
	}
	ice := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.IceBonus)
	ice.Update(dt)
	if ice.Velocity().Y != 0 {
		t.Error("ice bullets fly straight")
	}
	b.Update(dt)
	if b.Velocity().Y <= 0 {
		t.Error("fire bullets fall")
	}
}

func TestBulletBouncesAndExpires(t *testing.T) {
	b := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.FireBonus)
	for i := 0; i < config.Bullet.LifeCount; i++ {
		b.CollisionSolid(collision.Hit{Bottom: true})
		if b.Velocity().Y != config.Bullet.Bounce {
			t.Fatalf("bounce %d: vy = %v", i, b.Velocity().Y)
		}
	}
	b.Update(dt)
	if !b.Removed() {
		t.Error("bullet must be removed after its last bounce")
	}
}

func TestBulletHitsWall(t *testing.T) {
	fire := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.FireBonus)
	fire.CollisionSolid(collision.Hit{Right: true})
	if !fire.Removed() {
		t.Error("fire bullets burn out on walls")
	}

	ice := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.IceBonus)
	ice.CollisionSolid(collision.Hit{Right: true})
	if ice.Removed() || ice.Velocity().X != -config.Bullet.Speed {
		t.Errorf("ice removed = %v vx = %v, want bounce back", ice.Removed(), ice.Velocity().X)
	}
}

func TestBulletLifetime(t *testing.T) {
	b := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.IceBonus)
	for i := 0; i < int(config.Bullet.LifeTime/dt)+2 && !b.Removed(); i++ {
		b.Update(dt)
	}
	if !b.Removed() {
		t.Error("bullet outlived its lifetime")
	}
}

func TestRicochetUsesLives(t *testing.T) {
	b := NewBullet(gamemath.Vector{}, 0, gamemath.DirRight, status.FireBonus)
	for i := 0; i < config.Bullet.LifeCount; i++ {
		b.Ricochet(nil, collision.Hit{Left: true})
	}
	if !b.Removed() {
		t.Error("bullet must vanish after running out of ricochets")
	}
}

func TestCrateGrabAndThrow(t *testing.T) {
	c := NewCrate(gamemath.Vector{X: 100, Y: 100})
	holder := newFakePlayer(gamemath.NewRect(60, 100, 32, 32))

	c.Grab(holder, gamemath.Vector{X: 80, Y: 90}, gamemath.DirRight)
	if !c.Grabbed() || c.Holder() != collision.Object(holder) {
		t.Fatal("crate not grabbed")
	}
	if c.Group() != collision.GroupTouchable {
		t.Errorf("group = %v, want touchable while carried", c.Group())
	}
	if m := c.Movement(); m.X != -20 || m.Y != -10 {
		t.Errorf("movement = %+v, want (-20,-10)", m)
	}
	c.Update(dt)
	if m := c.Movement(); m.X != -20 {
		t.Error("carried crate must not integrate its own physics")
	}

	c.Ungrab(holder, gamemath.DirUp)
	if c.Grabbed() || c.Group() != collision.GroupMovingStatic {
		t.Errorf("grabbed = %v group = %v", c.Grabbed(), c.Group())
	}
	if c.Velocity().Y != -500 {
		t.Errorf("vy = %v, want toss", c.Velocity().Y)
	}

	c.Grab(holder, c.Pos(), gamemath.DirLeft)
	c.Ungrab(holder, gamemath.DirLeft)
	if c.Velocity().X != -100 || c.Velocity().Y != 0 {
		t.Errorf("velocity = %+v, want (-100,0)", c.Velocity())
	}
}

func TestCrateLands(t *testing.T) {
	c := NewCrate(gamemath.Vector{})
	c.Ungrab(nil, gamemath.DirRight)
	c.Update(dt)
	c.CollisionSolid(collision.Hit{Bottom: true})
	if c.Velocity() != (gamemath.Vector{}) {
		t.Errorf("velocity = %+v, want rest", c.Velocity())
	}
}

func TestClimbableStartsOnUp(t *testing.T) {
	vine := NewClimbable(gamemath.NewRect(100, 0, 32, 200))
	p := newFakePlayer(gamemath.NewRect(100, 50, 32, 32))

	vine.Collision(p, collision.Hit{})
	if p.Climbing() != nil {
		t.Fatal("climbing without pressing up")
	}
	p.up = true
	vine.Collision(p, collision.Hit{})
	if p.Climbing() != collision.Climbable(vine) || vine.ClimbedBy() == nil {
		t.Fatal("pressing up inside a vine must start climbing")
	}

	p.SetPos(gamemath.Vector{X: 100, Y: 250})
	vine.Update(dt)
	if p.Climbing() != nil || vine.ClimbedBy() != nil {
		t.Error("leaving the vine must stop climbing")
	}
}

func TestClimbableNeedsMiddleInside(t *testing.T) {
	vine := NewClimbable(gamemath.NewRect(100, 0, 32, 200))
	p := newFakePlayer(gamemath.NewRect(120, 50, 32, 32))
	p.up = true
	vine.Collision(p, collision.Hit{})
	if p.Climbing() != nil {
		t.Error("started climbing with the middle outside the vine")
	}
}

func TestTriggers(t *testing.T) {
	var fired []string
	record := func(name string) { fired = append(fired, name) }
	p := newFakePlayer(gamemath.NewRect(0, 0, 32, 32))

	door := NewScriptTrigger(gamemath.NewRect(0, 0, 32, 64), "door", false, record)
	door.Collision(p, collision.Hit{})
	if len(fired) != 0 {
		t.Fatal("activated trigger fired on touch")
	}
	door.Activate(p)
	door.Activate(p)
	if len(fired) != 2 {
		t.Errorf("fired = %v, want door twice", fired)
	}

	fired = nil
	zone := NewScriptTrigger(gamemath.NewRect(0, 0, 32, 64), "zone", true, record)
	zone.Collision(p, collision.Hit{})
	zone.Collision(p, collision.Hit{})
	zone.Activate(p)
	if len(fired) != 1 || fired[0] != "zone" {
		t.Errorf("fired = %v, want zone once", fired)
	}
}

func TestCoinCollect(t *testing.T) {
	var sounds soundLog
	c := NewCoin(gamemath.Vector{}, &sounds)
	p := newFakePlayer(gamemath.NewRect(0, 0, 32, 32))

	c.Collision(p, collision.Hit{})
	c.Collision(p, collision.Hit{})
	if p.coins != 1 || !c.Removed() {
		t.Errorf("coins = %d removed = %v", p.coins, c.Removed())
	}
	if len(sounds) != 1 || sounds[0] != config.SoundCoin {
		t.Errorf("sounds = %v", sounds)
	}
}

func TestPowerUps(t *testing.T) {
	tests := []struct {
		name string
		want status.BonusType
	}{
		{"egg", status.GrowUpBonus},
		{"fireflower", status.FireBonus},
		{"iceflower", status.IceBonus},
	}
	for _, tt := range tests {
		kind, ok := ParsePowerUp(tt.name)
		if !ok {
			t.Fatalf("ParsePowerUp(%q) failed", tt.name)
		}
		pu := NewPowerUp(gamemath.Vector{}, kind)
		p := newFakePlayer(gamemath.NewRect(0, 0, 32, 32))
		pu.Collision(p, collision.Hit{})
		if len(p.bonuses) != 1 || p.bonuses[0] != tt.want || !pu.Removed() {
			t.Errorf("%s: bonuses = %v removed = %v", tt.name, p.bonuses, pu.Removed())
		}
	}

	if _, ok := ParsePowerUp("mushroom"); ok {
		t.Error("unknown power-up parsed")
	}
}

func TestPowerUpStaysWhenRefused(t *testing.T) {
	pu := NewPowerUp(gamemath.Vector{}, PowerUpEgg)
	p := newFakePlayer(gamemath.NewRect(0, 0, 32, 32))
	p.refuse = true
	pu.Collision(p, collision.Hit{})
	if pu.Removed() {
		t.Error("refused power-up must stay")
	}
}

func TestStarBouncesAndInvincibles(t *testing.T) {
	star := NewPowerUp(gamemath.Vector{}, PowerUpStar)
	if star.Kind() != PowerUpStar {
		t.Fatal("kind mismatch")
	}
	star.CollisionSolid(collision.Hit{Bottom: true})
	if star.body.VelocityY() != -300 {
		t.Errorf("vy = %v, want bounce", star.body.VelocityY())
	}
	star.CollisionSolid(collision.Hit{Right: true})
	if star.body.VelocityX() != -100 {
		t.Errorf("vx = %v, want turned", star.body.VelocityX())
	}
	p := newFakePlayer(gamemath.NewRect(0, 0, 32, 32))
	star.Collision(p, collision.Hit{})
	if !p.invincible || !star.Removed() {
		t.Error("star must make the player invincible")
	}
}
