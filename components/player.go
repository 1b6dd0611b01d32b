package components

import (
	"github.com/automoto/tuxrun/collision"
	"github.com/yohamta/donburi"
)

// Capability components. The sector attaches them when an object is added,
// so registries are plain queries instead of type switches.

type PlayerData struct {
	collision.Player
}

var Player = donburi.NewComponentType[PlayerData]()

type BadguyData struct {
	collision.Badguy
}

var Badguy = donburi.NewComponentType[BadguyData]()

type BulletData struct {
	collision.Bullet
}

var Bullet = donburi.NewComponentType[BulletData]()

type PortableData struct {
	collision.Portable
}

var Portable = donburi.NewComponentType[PortableData]()

type TriggerData struct {
	collision.Trigger
}

var Trigger = donburi.NewComponentType[TriggerData]()
