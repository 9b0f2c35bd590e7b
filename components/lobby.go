package components

import (
	cfg "github.com/automoto/kiclash/config"
)

// GameMode picks between a single bout and the tower climb.
type GameMode int

const (
	GameModeVersus GameMode = iota
	GameModeTower
	GameModeCount // Must be last
)

// SetupData stores the choices made on the select screen before a fight.
type SetupData struct {
	Roster     []cfg.Archetype
	Player     int // roster index
	Opponent   int // roster index, ignored in tower mode
	Difficulty cfg.Difficulty
	Mode       GameMode
	Name       string
	Arenas     []string // arena names, empty for the built-in arena
	Arena      int
}
