package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Badguy    = donburi.NewTag().SetName("Badguy")
	Bullet    = donburi.NewTag().SetName("Bullet")
	Portable  = donburi.NewTag().SetName("Portable")
	Trigger   = donburi.NewTag().SetName("Trigger")
	Item      = donburi.NewTag().SetName("Item")
	Tile      = donburi.NewTag().SetName("Tile")
	Singleton = donburi.NewTag().SetName("Singleton")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvRamp     = "ramp"
	ResolvIce      = "ice"
	ResolvHurts    = "hurts"
	ResolvWater    = "water"
	ResolvActor    = "actor"
	ResolvProbe    = "probe"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
