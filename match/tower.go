package match

import (
	"errors"
	"fmt"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/config"
)

var ErrTowerOver = errors.New("match: tower already finished")

// TowerResult summarises a whole tower climb for the player on P1.
type TowerResult struct {
	Name      string
	Archetype string
	Wins      int
	Fights    int
	Stats     combat.Stats
	Seconds   float64
	Completed bool
}

// Tower sequences matches against every other roster member in order. It
// is the ResultSink for each of those matches; the player is always P1.
type Tower struct {
	player    config.Archetype
	name      string
	opponents []config.Archetype
	index     int
	lost      bool
	stats     combat.Stats
	seconds   float64
}

// NewTower builds the opponent ladder for the chosen archetype.
func NewTower(cfg config.Config, playerID, name string) (*Tower, error) {
	player, ok := cfg.Archetype(playerID)
	if !ok {
		return nil, fmt.Errorf("match: unknown archetype %q", playerID)
	}
	t := &Tower{player: player, name: name}
	for _, a := range cfg.Roster {
		if a.ID == playerID {
			continue
		}
		t.opponents = append(t.opponents, a)
	}
	if n := cfg.Match.TowerOpponents; n > 0 && n < len(t.opponents) {
		t.opponents = t.opponents[:n]
	}
	if len(t.opponents) == 0 {
		return nil, config.ErrEmptyRoster
	}
	return t, nil
}

// Player returns the climbing archetype.
func (t *Tower) Player() config.Archetype { return t.player }

// Opponents returns the ladder in fight order.
func (t *Tower) Opponents() []config.Archetype { return t.opponents }

// Current returns the next opponent, if the climb is still going.
func (t *Tower) Current() (config.Archetype, bool) {
	if t.Done() {
		return config.Archetype{}, false
	}
	return t.opponents[t.index], true
}

// Progress returns the zero-based fight index and the ladder length.
func (t *Tower) Progress() (int, int) { return t.index, len(t.opponents) }

// Done reports whether the climb ended, by defeat or by clearing it.
func (t *Tower) Done() bool { return t.lost || t.index >= len(t.opponents) }

// Completed reports whether every opponent was beaten.
func (t *Tower) Completed() bool { return !t.lost && t.index >= len(t.opponents) }

// NextMatch builds the options for the current fight with the player's
// input and the opponent's controller.
func (t *Tower) NextMatch(cfg config.Config, input IntentSource, opponent Participant) (Options, error) {
	arch, ok := t.Current()
	if !ok {
		return Options{}, ErrTowerOver
	}
	opponent.Archetype = arch
	return Options{
		Config: cfg,
		Participants: [2]Participant{
			{Name: t.name, Archetype: t.player, Input: input},
			opponent,
		},
		Sink: t,
	}, nil
}

// RecordMatch accumulates P1's stats and advances on a win.
func (t *Tower) RecordMatch(r Result) error {
	if t.Done() {
		return ErrTowerOver
	}
	t.stats.Add(r.Stats[combat.SideP1])
	t.seconds += r.Seconds
	if r.Winner == combat.SideP1 {
		t.index++
		return nil
	}
	t.lost = true
	return nil
}

// Result summarises the climb so far.
func (t *Tower) Result() TowerResult {
	fights := t.index
	if t.lost {
		fights++
	}
	return TowerResult{
		Name:      t.name,
		Archetype: t.player.ID,
		Wins:      t.index,
		Fights:    fights,
		Stats:     t.stats,
		Seconds:   t.seconds,
		Completed: t.Completed(),
	}
}

// Summary is the one-line verdict on a climb.
func (t TowerResult) Summary() string {
	if t.Completed {
		return fmt.Sprintf("tower cleared: %d rivals beaten in %.0fs", t.Wins, t.Seconds)
	}
	return fmt.Sprintf("tower over after %d fights, %d won", t.Fights, t.Wins)
}
