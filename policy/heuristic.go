// Package policy is a reference decision service: it answers snapshot
// POSTs with an action token chosen by a stateless heuristic.
package policy

import (
	"math/rand"
	"sync"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/config"
)

const (
	lowStaminaPct = 15
	lowHealthPct  = 30
	blockRange    = 80
	zoningRange   = 250
)

// Heuristic picks an action from a snapshot alone. Distances and costs
// come from the config; probabilities from the difficulty's bot profile.
type Heuristic struct {
	cfg config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewHeuristic(cfg config.Config, rng *rand.Rand) *Heuristic {
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &Heuristic{cfg: cfg, rng: rng}
}

func (h *Heuristic) roll() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Float64()
}

func (h *Heuristic) profile(d config.Difficulty) config.BotProfile {
	if p, ok := h.cfg.Bots[d]; ok {
		return p
	}
	return h.cfg.Bots[config.DifficultyNormal]
}

// Suggest returns an action and a short reason.
func (h *Heuristic) Suggest(s bot.Snapshot) bot.Decision {
	p := h.profile(s.Difficulty)
	costs := h.cfg.Combat

	if s.OpponentAttacking && s.DistanceX < blockRange && h.roll() < p.DefenseProb {
		return bot.Decision{Action: bot.ActionBlock, Reason: "incoming strike"}
	}
	if s.MyStaminaPct < lowStaminaPct {
		if s.DistanceX < p.AttackDist {
			return bot.Decision{Action: bot.ActionRetreat, Reason: "recovering ki"}
		}
		return bot.Decision{Action: bot.ActionWait, Reason: "recovering ki"}
	}

	special := p.SpecialProb
	if s.MyHealthPct < lowHealthPct {
		special *= 1.5
	}

	if s.DistanceX > p.AttackDist {
		if s.DistanceX > zoningRange && h.roll() < special {
			if s.MyStamina >= costs.BeamCost && h.roll() < 0.4 {
				return bot.Decision{Action: bot.ActionBeam, Reason: "long range"}
			}
			if s.MyStamina >= costs.ProjectileCost {
				return bot.Decision{Action: bot.ActionProjectile, Reason: "long range"}
			}
		}
		return bot.Decision{Action: bot.ActionApproach, Reason: "closing in"}
	}

	if s.DistanceX < p.MinDist && h.roll() < 0.3 {
		return bot.Decision{Action: bot.ActionRetreat, Reason: "too close"}
	}

	if h.roll() >= p.AttackProb {
		if s.OpponentBlocking {
			return bot.Decision{Action: bot.ActionWait, Reason: "opponent guarding"}
		}
		return bot.Decision{Action: bot.ActionBlock, Reason: "holding guard"}
	}

	if s.MyStamina >= costs.UltimateCost && h.roll() < special/2 {
		return bot.Decision{Action: bot.ActionUltimate, Reason: "finisher"}
	}
	if s.MyStamina >= costs.HeavyCost && (s.OpponentHealthPct < lowHealthPct || h.roll() < 0.35) {
		return bot.Decision{Action: bot.ActionHeavy, Reason: "in range"}
	}
	if s.MyStamina >= costs.LightCost {
		return bot.Decision{Action: bot.ActionLight, Reason: "in range"}
	}
	return bot.Decision{Action: bot.ActionWait, Reason: "out of ki"}
}
