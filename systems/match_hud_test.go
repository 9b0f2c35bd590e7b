package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/components"
	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
)

func TestCountdownLabel(t *testing.T) {
	m := cfg.Default().Match // banner 90, step 60
	tests := []struct {
		timer int
		want  string
	}{
		{270, "ROUND 2"},
		{181, "ROUND 2"},
		{180, "3"},
		{121, "3"},
		{120, "2"},
		{60, "1"},
		{1, "1"},
		{0, "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountdownLabel(2, tt.timer, m), "timer %d", tt.timer)
	}
}

func TestRoundOverLabel(t *testing.T) {
	assert.Equal(t, "K.O.", RoundOverLabel(components.MatchData{RoundWinner: combat.SideP1}))
	assert.Equal(t, "TIME", RoundOverLabel(components.MatchData{RoundWinner: combat.SideP2, TimeUp: true}))
	assert.Equal(t, "DRAW", RoundOverLabel(components.MatchData{RoundWinner: components.NoWinner, TimeUp: true}))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "60", FormatClock(3600, 60))
	assert.Equal(t, "60", FormatClock(3541, 60))
	assert.Equal(t, "1", FormatClock(1, 60))
	assert.Equal(t, "0", FormatClock(-5, 60))
	assert.Equal(t, "0", FormatClock(100, 0))
}

func TestFighterColor(t *testing.T) {
	base := cfg.LightBlue
	assert.Equal(t, base, FighterColor(cfg.StateStriking, base))
	assert.NotEqual(t, base, FighterColor(cfg.StateStunned, base))
	assert.NotEqual(t, base, FighterColor(cfg.StateKnockedOut, base))
}

func newController(t *testing.T, kb *Keyboard) *match.Controller {
	t.Helper()
	c := cfg.Default()
	ctl, err := match.New(match.Options{
		Config: c,
		Participants: [2]match.Participant{
			{Name: "You", Archetype: c.Roster[0], Input: kb},
			{Archetype: c.Roster[1], Bot: bot.New(c, cfg.DifficultyEasy, nil)},
		},
	})
	require.NoError(t, err)
	t.Cleanup(ctl.Close)
	return ctl
}

func TestBanner(t *testing.T) {
	ctl := newController(t, NewKeyboardWith(DefaultBindings, func(ebiten.Key) bool { return false }))
	c := cfg.Default()

	banner, sub := Banner(ctl.Snapshot(), ctl, c.Match)
	assert.Contains(t, banner, "You VS ")
	assert.NotEmpty(t, sub)

	require.NoError(t, ctl.Skip())
	banner, _ = Banner(ctl.Snapshot(), ctl, c.Match)
	assert.Equal(t, "ROUND 1", banner)

	fighting := components.MatchData{State: cfg.MatchStateFighting}
	banner, _ = Banner(fighting, ctl, c.Match)
	assert.Empty(t, banner)

	done := components.MatchData{State: cfg.MatchStateFinished, Winner: combat.SideP1, Wins: [2]int{2, 1}}
	banner, sub = Banner(done, ctl, c.Match)
	assert.Equal(t, "You WINS", banner)
	assert.Equal(t, "2 - 1", sub)
}

func TestUpdatePause(t *testing.T) {
	keys := fakeKeys{}
	kb := NewKeyboardWith(DefaultBindings, keys.pressed)
	ctl := newController(t, kb)

	keys[ebiten.KeyEscape] = true
	kb.Update()
	assert.False(t, UpdatePause(kb, ctl))
	assert.True(t, ctl.Paused())

	// Held escape does not toggle again.
	kb.Update()
	UpdatePause(kb, ctl)
	assert.True(t, ctl.Paused())

	keys[ebiten.KeyEscape] = false
	keys[ebiten.KeyQ] = true
	kb.Update()
	assert.True(t, UpdatePause(kb, ctl))

	keys[ebiten.KeyQ] = false
	keys[ebiten.KeyEscape] = true
	kb.Update()
	UpdatePause(kb, ctl)
	assert.False(t, ctl.Paused())
}
