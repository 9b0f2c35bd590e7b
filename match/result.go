package match

import (
	"fmt"

	"github.com/automoto/kiclash/combat"
)

// Result is what a finished match hands to its ResultSink.
type Result struct {
	Winner     combat.Side
	Names      [2]string
	Archetypes [2]string
	Human      [2]bool
	Stats      [2]combat.Stats // match totals per side
	RoundsWon  [2]int
	Rounds     int // rounds played, drawn rounds included
	Ticks      int // fighting ticks only
	Seconds    float64
}

// Loser returns the side that did not win.
func (r Result) Loser() combat.Side { return r.Winner.Opponent() }

// WinnerName returns the winning side's display name.
func (r Result) WinnerName() string { return r.Names[r.Winner] }

// Summary is a headline followed by one line per side.
func (r Result) Summary() []string {
	lines := []string{fmt.Sprintf("%s wins %d-%d after %d rounds (%.1fs)",
		r.WinnerName(), r.RoundsWon[r.Winner], r.RoundsWon[r.Loser()], r.Rounds, r.Seconds)}
	for side := combat.SideP1; side <= combat.SideP2; side++ {
		st := r.Stats[side]
		lines = append(lines, fmt.Sprintf("%s %-8s %-8s hits %3d  dealt %6.1f  taken %6.1f",
			side, r.Names[side], r.Archetypes[side], st.Strikes, st.DamageDealt, st.DamageTaken))
	}
	return lines
}
