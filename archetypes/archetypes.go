package archetypes

import (
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/tags"
	"github.com/yohamta/donburi"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Object,
	)
	Actor = newArchetype(
		components.Actor,
		components.Object,
	)
	Audio = newArchetype(
		tags.Singleton,
		components.Audio,
	)
	Level = newArchetype(
		tags.Singleton,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return world.Entry(world.Create(all...))
}
