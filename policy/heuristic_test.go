package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/config"
)

// fixed returns a heuristic whose normal profile uses the given odds, so
// every roll below is decided by a 0 or 1 threshold.
func fixed(attack, defense, special float64) *Heuristic {
	cfg := config.Default()
	p := cfg.Bots[config.DifficultyNormal]
	p.AttackProb, p.DefenseProb, p.SpecialProb = attack, defense, special
	bots := make(map[config.Difficulty]config.BotProfile, len(cfg.Bots))
	for d, b := range cfg.Bots {
		bots[d] = b
	}
	bots[config.DifficultyNormal] = p
	cfg.Bots = bots
	return NewHeuristic(cfg, nil)
}

func snap(dx, stamina float64) bot.Snapshot {
	return bot.Snapshot{
		MyHealthPct:       100,
		MyStamina:         stamina,
		MyStaminaMax:      100,
		MyStaminaPct:      stamina,
		OpponentHealthPct: 100,
		DistanceX:         dx,
		Difficulty:        config.DifficultyNormal,
	}
}

func TestHeuristic_Suggest(t *testing.T) {
	tests := []struct {
		name  string
		h     *Heuristic
		snap  func() bot.Snapshot
		want  bot.Action
		token string
	}{
		{
			name: "blocks an incoming strike",
			h:    fixed(1, 1, 0),
			snap: func() bot.Snapshot {
				s := snap(50, 100)
				s.OpponentAttacking = true
				return s
			},
			want: bot.ActionBlock,
		},
		{
			name: "retreats when drained up close",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot { return snap(50, 10) },
			want: bot.ActionRetreat,
		},
		{
			name: "waits when drained at range",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot { return snap(200, 10) },
			want: bot.ActionWait,
		},
		{
			name: "approaches from afar",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot { return snap(300, 100) },
			want: bot.ActionApproach,
		},
		{
			name: "zones with a projectile when the beam is unaffordable",
			h:    fixed(1, 0, 1),
			snap: func() bot.Snapshot { return snap(300, 30) },
			want: bot.ActionProjectile,
		},
		{
			name: "guards when not committing",
			h:    fixed(0, 0, 0),
			snap: func() bot.Snapshot { return snap(60, 100) },
			want: bot.ActionBlock,
		},
		{
			name: "waits out a guarding opponent",
			h:    fixed(0, 0, 0),
			snap: func() bot.Snapshot {
				s := snap(60, 100)
				s.OpponentBlocking = true
				return s
			},
			want: bot.ActionWait,
		},
		{
			name: "ultimate when affordable",
			h:    fixed(1, 0, 2),
			snap: func() bot.Snapshot { return snap(60, 100) },
			want: bot.ActionUltimate,
		},
		{
			name: "heavy on a weakened opponent",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot {
				s := snap(60, 50)
				s.OpponentHealthPct = 20
				return s
			},
			want: bot.ActionHeavy,
		},
		{
			name: "light when heavy is unaffordable",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot {
				s := snap(60, 6)
				s.MyStaminaPct = 20
				return s
			},
			want: bot.ActionLight,
		},
		{
			name: "waits with no ki for anything",
			h:    fixed(1, 0, 0),
			snap: func() bot.Snapshot {
				s := snap(60, 4)
				s.MyStaminaPct = 20
				return s
			},
			want: bot.ActionWait,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.h.Suggest(tt.snap())
			assert.Equal(t, tt.want, d.Action)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestHeuristic_UnknownDifficultyUsesNormal(t *testing.T) {
	h := fixed(1, 1, 0)
	s := snap(50, 100)
	s.OpponentAttacking = true
	s.Difficulty = config.Difficulty(9)
	assert.Equal(t, bot.ActionBlock, h.Suggest(s).Action)
}

func TestHeuristic_AlwaysReturnsAKnownAction(t *testing.T) {
	h := NewHeuristic(config.Default(), nil)
	known := map[bot.Action]bool{}
	for _, a := range []bot.Action{
		bot.ActionApproach, bot.ActionRetreat, bot.ActionLight, bot.ActionHeavy, bot.ActionBlock,
		bot.ActionProjectile, bot.ActionBeam, bot.ActionUltimate, bot.ActionWait,
	} {
		known[a] = true
	}
	for dx := 0.0; dx < 600; dx += 13 {
		for _, st := range []float64{0, 12, 40, 90, 100} {
			s := snap(dx, st)
			s.OpponentAttacking = int(dx)%2 == 0
			assert.True(t, known[h.Suggest(s).Action])
		}
	}
}

func TestHeuristic_UsesCombatCosts(t *testing.T) {
	h := fixed(1, 0, 1)
	assert.Equal(t, bot.ActionProjectile, h.Suggest(snap(300, 30)).Action)

	h.cfg.Combat.ProjectileCost = 40
	assert.Equal(t, bot.ActionApproach, h.Suggest(snap(300, 30)).Action, "projectile no longer affordable")

	h = fixed(1, 0, 0)
	h.cfg.Combat.LightCost = 8
	h.cfg.Combat.HeavyCost = 20
	s := snap(60, 6)
	s.MyStaminaPct = 20
	assert.Equal(t, bot.ActionWait, h.Suggest(s).Action, "light costs more than the stamina left")
}
