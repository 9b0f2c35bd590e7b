package components

import (
	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/fighter"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Side    combat.Side
	Fighter *fighter.Fighter
}

var Fighter = donburi.NewComponentType[FighterData]()

// CombatantData describes who drives a fighter. Controller is nil for a
// human side.
type CombatantData struct {
	Name        string
	ArchetypeID string
	Controller  bot.Controller
}

func (c CombatantData) Human() bool { return c.Controller == nil }

var Combatant = donburi.NewComponentType[CombatantData]()

// StatsData keeps the current round's tally and the running match total.
type StatsData struct {
	Round combat.Stats
	Total combat.Stats
}

var Stats = donburi.NewComponentType[StatsData]()
