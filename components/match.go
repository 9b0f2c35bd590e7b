package components

import (
	"github.com/automoto/kiclash/combat"
	cfg "github.com/automoto/kiclash/config"
	"github.com/yohamta/donburi"
)

// NoWinner marks an undecided round or match.
const NoWinner combat.Side = -1

// MatchData stores the current match state and round tally.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	State       cfg.MatchStateID
	Round       int
	Timer       int    // ticks left in the current phase
	FightTimer  int    // ticks left in the round clock
	Wins        [2]int // rounds won per side
	RoundWinner combat.Side
	TimeUp      bool // the last round ended on the clock
	Winner      combat.Side
	FightTicks  int // ticks spent in Fighting over the whole match
	Ticks       int
}

var Match = donburi.NewComponentType[MatchData]()

// Losses returns the rounds a side has lost.
func (m *MatchData) Losses(side combat.Side) int {
	return m.Wins[side.Opponent()]
}

// Leader returns the side with more round wins, or NoWinner on a tie.
func (m *MatchData) Leader() combat.Side {
	switch {
	case m.Wins[combat.SideP1] > m.Wins[combat.SideP2]:
		return combat.SideP1
	case m.Wins[combat.SideP2] > m.Wins[combat.SideP1]:
		return combat.SideP2
	}
	return NoWinner
}
