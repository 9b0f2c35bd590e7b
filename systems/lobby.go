package systems

import (
	"github.com/automoto/kiclash/components"
	cfg "github.com/automoto/kiclash/config"
)

// InitSetup starts with the first two roster members on normal difficulty.
func InitSetup(setup *components.SetupData, roster []cfg.Archetype, arenas []string) {
	*setup = components.SetupData{
		Roster:     roster,
		Opponent:   1 % max(len(roster), 1),
		Difficulty: cfg.DifficultyNormal,
		Mode:       components.GameModeVersus,
		Arenas:     arenas,
	}
}

// CanStartMatch reports whether the setup describes a playable fight.
func CanStartMatch(setup *components.SetupData) bool {
	switch {
	case len(setup.Roster) == 0:
		return false
	case setup.Mode == components.GameModeTower:
		return len(setup.Roster) > 1
	}
	return true
}

// ValidationMessage explains why CanStartMatch is false.
func ValidationMessage(setup *components.SetupData) string {
	switch {
	case len(setup.Roster) == 0:
		return "No fighters available"
	case setup.Mode == components.GameModeTower && len(setup.Roster) < 2:
		return "Tower needs at least two fighters"
	}
	return ""
}

func wrap(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

func CyclePlayer(setup *components.SetupData, delta int) {
	setup.Player = wrap(setup.Player, delta, len(setup.Roster))
}

func CycleOpponent(setup *components.SetupData, delta int) {
	setup.Opponent = wrap(setup.Opponent, delta, len(setup.Roster))
}

func CycleBotDifficulty(setup *components.SetupData) {
	all := cfg.Difficulties()
	for i, d := range all {
		if d == setup.Difficulty {
			setup.Difficulty = all[wrap(i, 1, len(all))]
			return
		}
	}
	setup.Difficulty = cfg.DifficultyNormal
}

func CycleGameMode(setup *components.SetupData) {
	setup.Mode = components.GameMode(wrap(int(setup.Mode), 1, int(components.GameModeCount)))
}

func CycleArena(setup *components.SetupData) {
	setup.Arena = wrap(setup.Arena, 1, len(setup.Arenas))
}

// ArenaName returns the selected arena, or "" for the built-in one.
func ArenaName(setup *components.SetupData) string {
	if len(setup.Arenas) == 0 {
		return ""
	}
	return setup.Arenas[setup.Arena]
}

func GetGameModeName(mode components.GameMode) string {
	switch mode {
	case components.GameModeVersus:
		return "Versus"
	case components.GameModeTower:
		return "Tower"
	}
	return "Unknown"
}

func GetBotDifficultyName(d cfg.Difficulty) string {
	switch d {
	case cfg.DifficultyEasy:
		return "Easy"
	case cfg.DifficultyNormal:
		return "Normal"
	case cfg.DifficultyHard:
		return "Hard"
	}
	return d.String()
}
