// Package bot drives a fighter without a human: a deterministic rule-based
// controller and a remote-policy controller that asks an external decision
// service and falls back to the rule-based one.
package bot

import (
	"errors"
	"log"
	"math/rand"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/automoto/kiclash/shared/gamemath"
	"github.com/automoto/kiclash/shared/netconfig"
)

// Controller decides one fighter's intents each tick.
type Controller interface {
	// Decide is called once per tick while self is not locked.
	Decide(self, opponent *fighter.Fighter)
	// Close releases any background work.
	Close()
}

// Action is one token of the closed decision vocabulary.
type Action = netconfig.ActionID

const (
	ActionApproach   = netconfig.ActionApproach
	ActionRetreat    = netconfig.ActionRetreat
	ActionLight      = netconfig.ActionLight
	ActionHeavy      = netconfig.ActionHeavy
	ActionBlock      = netconfig.ActionBlock
	ActionProjectile = netconfig.ActionProjectile
	ActionBeam       = netconfig.ActionBeam
	ActionUltimate   = netconfig.ActionUltimate
	ActionWait       = netconfig.ActionWait
)

var (
	ErrNoEndpoint     = errors.New("bot: decision endpoint or credential not configured")
	ErrUnknownAction  = errors.New("bot: unknown action")
	ErrDecisionStatus = errors.New("bot: decision service status")
)

// RemoteAvailable reports ErrNoEndpoint unless both the decision endpoint
// and its credential are set.
func RemoteAvailable(cfg config.Config) error {
	if !cfg.Remote.Enabled() {
		return ErrNoEndpoint
	}
	return nil
}

// New picks the controller for a difficulty. Without a configured decision
// service the rule-based controller is returned.
func New(cfg config.Config, difficulty config.Difficulty, rng *rand.Rand) Controller {
	profile, ok := cfg.Bots[difficulty]
	if !ok {
		profile = cfg.Bots[config.DifficultyNormal]
	}
	rb := NewRuleBased(cfg, profile, rng)
	if err := RemoteAvailable(cfg); err != nil {
		log.Printf("[bot] %s opponent is rule-based: %v", difficulty, err)
		return rb
	}
	client := NewHTTPClient(cfg.Remote.Endpoint, cfg.Remote.APIKey, cfg.Remote.Timeout())
	return NewRemotePolicy(client, rb, RemoteOptions{
		Difficulty:    difficulty,
		PollTicks:     profile.PollTicks,
		Timeout:       cfg.Remote.Timeout(),
		ApproachSpeed: cfg.Remote.ApproachSpeed,
		RetreatSpeed:  cfg.Remote.RetreatSpeed,
	})
}

// towards returns +1 when opp is to the right of self, else -1.
func towards(self, opp *fighter.Fighter) float64 {
	sx, _ := self.Position()
	ox, _ := opp.Position()
	if sx < ox {
		return 1
	}
	return -1
}

// gaps returns the absolute horizontal and vertical distance and the signed
// vertical direction toward opp.
func gaps(self, opp *fighter.Fighter) (dx, dy, ydir float64) {
	sx, sy := self.Position()
	ox, oy := opp.Position()
	dx, dy = gamemath.Distance(sx, sy, ox, oy)
	return dx, dy, gamemath.Sign(oy - sy)
}

// ParseAction validates a decision token.
func ParseAction(token string) (Action, bool) {
	return netconfig.ParseAction(token)
}
