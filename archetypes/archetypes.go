package archetypes

import (
	"github.com/automoto/kiclash/components"
	"github.com/automoto/kiclash/shared/netcomponents"
	"github.com/automoto/kiclash/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Combatant,
		components.Stats,
		netcomponents.NetFighter,
		netcomponents.NetPosition,
	)
	Match = newArchetype(
		tags.Match,
		components.Match,
		netcomponents.NetMatch,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
