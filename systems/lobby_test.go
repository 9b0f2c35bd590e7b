package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/kiclash/components"
	cfg "github.com/automoto/kiclash/config"
)

func newSetup(arenas ...string) *components.SetupData {
	s := &components.SetupData{}
	InitSetup(s, cfg.Default().Roster, arenas)
	return s
}

func TestInitSetup(t *testing.T) {
	s := newSetup()
	assert.Equal(t, 0, s.Player)
	assert.Equal(t, 1, s.Opponent)
	assert.Equal(t, cfg.DifficultyNormal, s.Difficulty)
	assert.Equal(t, components.GameModeVersus, s.Mode)
	assert.True(t, CanStartMatch(s))
	assert.Empty(t, ValidationMessage(s))
}

func TestCycleRoster_Wraps(t *testing.T) {
	s := newSetup()
	n := len(s.Roster)

	CyclePlayer(s, -1)
	assert.Equal(t, n-1, s.Player)
	CyclePlayer(s, 1)
	assert.Equal(t, 0, s.Player)

	for i := 0; i < n; i++ {
		CycleOpponent(s, 1)
	}
	assert.Equal(t, 1, s.Opponent)
}

func TestCycleBotDifficulty(t *testing.T) {
	s := newSetup()
	CycleBotDifficulty(s)
	assert.Equal(t, cfg.DifficultyHard, s.Difficulty)
	CycleBotDifficulty(s)
	assert.Equal(t, cfg.DifficultyEasy, s.Difficulty)
	assert.Equal(t, "Easy", GetBotDifficultyName(s.Difficulty))
}

func TestCycleGameMode(t *testing.T) {
	s := newSetup()
	CycleGameMode(s)
	assert.Equal(t, components.GameModeTower, s.Mode)
	assert.Equal(t, "Tower", GetGameModeName(s.Mode))
	CycleGameMode(s)
	assert.Equal(t, components.GameModeVersus, s.Mode)
}

func TestTowerNeedsTwoFighters(t *testing.T) {
	s := newSetup()
	s.Roster = s.Roster[:1]
	s.Mode = components.GameModeTower
	assert.False(t, CanStartMatch(s))
	assert.NotEmpty(t, ValidationMessage(s))

	s.Mode = components.GameModeVersus
	assert.True(t, CanStartMatch(s))

	s.Roster = nil
	assert.False(t, CanStartMatch(s))
}

func TestArena(t *testing.T) {
	s := newSetup()
	assert.Empty(t, ArenaName(s))
	CycleArena(s)
	assert.Empty(t, ArenaName(s))

	s = newSetup("city", "dojo")
	assert.Equal(t, "city", ArenaName(s))
	CycleArena(s)
	assert.Equal(t, "dojo", ArenaName(s))
	CycleArena(s)
	assert.Equal(t, "city", ArenaName(s))
}
