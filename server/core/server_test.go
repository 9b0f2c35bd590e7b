package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/shared/netcomponents"
)

func botMatch(t *testing.T) match.Options {
	t.Helper()
	cfg := config.Default()
	cfg.Fighter.HealthMax = 10
	goku, ok := cfg.Archetype("goku")
	require.True(t, ok)
	vegeta, ok := cfg.Archetype("vegeta")
	require.True(t, ok)
	return match.Options{
		Config: cfg,
		Participants: [2]match.Participant{
			{Archetype: goku, Bot: bot.NewRuleBased(cfg, cfg.Bots[config.DifficultyHard], rand.New(rand.NewSource(3)))},
			{Archetype: vegeta, Bot: bot.NewRuleBased(cfg, cfg.Bots[config.DifficultyHard], rand.New(rand.NewSource(4)))},
		},
		SkipIntro: true,
	}
}

func TestServer_TickRunsTheMatch(t *testing.T) {
	s, err := NewServer(Options{Name: "test", Match: botMatch(t)})
	require.NoError(t, err)
	defer s.Stop()

	s.addSpectator("a", "")
	s.addSpectator("b", "kai")
	s.addSpectator("a", "goten")
	assert.Equal(t, 2, s.SpectatorCount())
	assert.ElementsMatch(t, []string{"goten", "kai"}, s.Spectators())

	for i := 0; i < 100000; i++ {
		s.tick()
		select {
		case <-s.Finished():
			entry := s.Controller().World().Entry(s.Controller().MatchEntity())
			nm := netcomponents.NetMatch.Get(entry)
			assert.Equal(t, 2, nm.Spectators)
			assert.Equal(t, config.MatchStateFinished, nm.State)
			_, ok := s.Controller().Result()
			assert.True(t, ok)
			return
		default:
		}
	}
	t.Fatal("match never finished")
}

func TestServer_Spectators(t *testing.T) {
	s, err := NewServer(Options{Match: botMatch(t)})
	require.NoError(t, err)

	s.addSpectator("x", "")
	assert.Equal(t, []string{"anonymous"}, s.Spectators())
	s.removeSpectator("x")
	s.removeSpectator("x")
	assert.Zero(t, s.SpectatorCount())
}

func TestServer_LoopDrivesTicks(t *testing.T) {
	s, err := NewServer(Options{TickRate: 500, Match: botMatch(t)})
	require.NoError(t, err)

	go s.Loop().Run()
	require.Eventually(t, func() bool { return s.Loop().Ticks() > 3 }, 2*time.Second, 5*time.Millisecond)
	s.Stop()
	assert.False(t, s.Loop().Running())
}

func TestNewServer_InvalidMatch(t *testing.T) {
	opts := botMatch(t)
	opts.Participants[0].Bot = nil
	_, err := NewServer(Options{Match: opts})
	assert.ErrorIs(t, err, match.ErrNoDriver)
}
