package bot

import (
	"math"
	"math/rand"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

// Mode biases the fallback branch of the decision ladder.
type Mode int

const (
	ModeAggressive Mode = iota
	ModeNeutral
	ModeDefensive
)

func (m Mode) String() string {
	switch m {
	case ModeNeutral:
		return "neutral"
	case ModeDefensive:
		return "defensive"
	}
	return "aggressive"
}

// RuleBased is the deterministic local opponent. All timing is measured on
// the controlled fighter's tick clock, so a seeded rng replays exactly.
type RuleBased struct {
	ai      config.AIConfig
	combat  config.CombatConfig
	profile config.BotProfile
	rng     *rand.Rand

	started    bool
	mode       Mode
	lastReroll int64
	lastAttack int64
	cooldown   int // ticks after lastAttack before the next attack

	// Anti-stall watchdog
	lastSample  int64
	sampleX     float64
	sampleY     float64
	stalled     int
	emergencies int
}

// NewRuleBased builds a controller for one difficulty profile. A nil rng
// gets a fixed seed.
func NewRuleBased(cfg config.Config, profile config.BotProfile, rng *rand.Rand) *RuleBased {
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &RuleBased{
		ai:      cfg.AI,
		combat:  cfg.Combat,
		profile: profile,
		rng:     rng,
		mode:    ModeAggressive,
	}
}

// Mode returns the current behaviour mode.
func (rb *RuleBased) Mode() Mode { return rb.mode }

// Profile returns the difficulty profile in use.
func (rb *RuleBased) Profile() config.BotProfile { return rb.profile }

// Emergencies returns the current emergency counter.
func (rb *RuleBased) Emergencies() int { return rb.emergencies }

func (rb *RuleBased) Close() {}

// Decide runs one tick of the decision ladder.
func (rb *RuleBased) Decide(self, opp *fighter.Fighter) {
	if self.Locked() {
		return
	}
	now := self.Clock()
	if !rb.started {
		rb.start(self)
	}

	if self.Blocking() && now-rb.lastAttack > int64(rb.ai.UnblockAfterTicks) {
		self.Unblock()
	}

	if rb.watchdog(self, opp, now) {
		return
	}

	if now-rb.lastReroll >= int64(rb.ai.ModeRerollTicks) {
		rb.reroll(self)
		rb.lastReroll = now
	}

	if now-rb.lastAttack > int64(rb.ai.IdleAttackTicks) {
		rb.emergency(self, opp, now)
		return
	}

	rb.evaluate(self, opp, now)
}

func (rb *RuleBased) start(self *fighter.Fighter) {
	now := self.Clock()
	rb.started = true
	rb.lastAttack = now
	rb.cooldown = rb.profile.ReactionTicks
	rb.lastSample = now
	rb.sampleX, rb.sampleY = self.Position()
	rb.reroll(self)
	rb.lastReroll = now
}

// watchdog samples displacement and fires an emergency action when the
// fighter has not moved for too long. It reports whether it acted.
func (rb *RuleBased) watchdog(self, opp *fighter.Fighter, now int64) bool {
	if now-rb.lastSample < int64(rb.ai.StallSampleTicks) {
		return false
	}
	x, y := self.Position()
	moved := math.Abs(x-rb.sampleX) + math.Abs(y-rb.sampleY)
	rb.sampleX, rb.sampleY = x, y
	rb.lastSample = now

	if moved >= rb.ai.StallMinMove {
		rb.stalled = 0
		if rb.emergencies > 0 {
			rb.emergencies--
		}
		return false
	}

	rb.stalled += rb.ai.StallSampleTicks
	if rb.stalled <= rb.ai.StallThresholdTicks {
		return false
	}
	rb.emergencies++
	if rb.emergencies > rb.ai.EmergencyCeiling {
		self.ResetAction()
		rb.emergencies = 0
	}
	rb.emergency(self, opp, now)
	rb.stalled = 0
	return true
}

func (rb *RuleBased) reroll(self *fighter.Fighter) {
	staminaPct := self.Stamina() / self.StaminaMax()
	healthPct := self.Health() / self.HealthMax()

	switch {
	case staminaPct < 0.2:
		rb.mode = ModeNeutral
	case healthPct < 0.3 && rb.profile.Difficulty == config.DifficultyHard:
		rb.mode = ModeAggressive
	default:
		modes := []Mode{ModeAggressive, ModeAggressive, ModeNeutral}
		if rb.profile.Defensive {
			modes = append(modes, ModeDefensive)
		}
		rb.mode = modes[rb.rng.Intn(len(modes))]
	}
}

func (rb *RuleBased) offCooldown(now int64) bool {
	return now-rb.lastAttack > int64(rb.cooldown)
}

func (rb *RuleBased) evaluate(self, opp *fighter.Fighter, now int64) {
	dx, dy, _ := gaps(self, opp)

	if opp.Striking() && dx < 80 {
		if rb.rng.Float64() < rb.profile.DefenseProb {
			_ = self.Block()
			rb.lastAttack = now
			return
		}
	}

	if dx < rb.profile.MinDist {
		if rb.rng.Float64() < 0.3 {
			rb.retreat(self, opp)
		} else if rb.offCooldown(now) {
			rb.attack(self, opp, now)
		}
		return
	}

	if dx <= rb.profile.AttackDist && dy < 60 {
		if rb.offCooldown(now) {
			rb.attack(self, opp, now)
		} else {
			rb.lateral(self, opp)
		}
		return
	}

	if dx > rb.profile.AttackDist {
		rb.approach(self, opp)
		return
	}

	switch rb.mode {
	case ModeAggressive:
		if rb.offCooldown(now) {
			rb.attack(self, opp, now)
		} else {
			rb.approach(self, opp)
		}
	case ModeDefensive:
		if dx < 70 {
			rb.retreat(self, opp)
		} else {
			rb.lateral(self, opp)
		}
	default:
		if rb.rng.Float64() < 0.5 {
			rb.approach(self, opp)
		} else {
			rb.lateral(self, opp)
		}
	}
}

// attack picks between specials and melee. lastAttack moves even when the
// chosen intent is rejected.
func (rb *RuleBased) attack(self, opp *fighter.Fighter, now int64) {
	if self.Stamina() < 10 {
		rb.approach(self, opp)
		return
	}

	special := rb.profile.SpecialProb
	if self.Health()/self.HealthMax() < 0.3 {
		special *= 1.5
	}

	roll := rb.rng.Float64()
	switch {
	case roll < special/2:
		switch {
		case self.Stamina() >= rb.combat.BeamCost && rb.rng.Float64() < 0.4:
			_ = self.ChannelBeam()
			rb.commit(now, rb.profile.BeamCD)
		case self.Stamina() >= rb.combat.ProjectileCost:
			_ = self.ThrowProjectile()
			rb.commit(now, rb.profile.ProjectileCD)
		default:
			rb.melee(self, now)
		}
	case roll < special && self.Stamina() >= rb.combat.UltimateCost:
		if rb.rng.Float64() < 0.2 {
			_ = self.UseUltimate()
			rb.commit(now, rb.profile.UltimateCD)
		} else {
			rb.melee(self, now)
		}
	default:
		rb.melee(self, now)
	}
}

func (rb *RuleBased) melee(self *fighter.Fighter, now int64) {
	if rb.rng.Float64() < 0.65 {
		_ = self.Strike(fighter.StrikeLight)
		rb.commit(now, rb.profile.LightCD)
		return
	}
	_ = self.Strike(fighter.StrikeHeavy)
	rb.commit(now, rb.profile.HeavyCD)
}

func (rb *RuleBased) commit(now int64, band config.Band) {
	rb.lastAttack = now
	rb.cooldown = band.Roll(rb.rng)
}

// emergency bursts toward the opponent and forces an attack.
func (rb *RuleBased) emergency(self, opp *fighter.Fighter, now int64) {
	dx, _, _ := gaps(self, opp)
	if dx > 50 {
		_ = self.Move(towards(self, opp)*rb.profile.Speed*rb.ai.EmergencyBurstFactor, 0)
	}
	if self.Stamina() < rb.combat.LightCost {
		return
	}
	switch {
	case rb.rng.Float64() < 0.8:
		kind := fighter.StrikeHeavy
		if rb.rng.Float64() < 0.7 {
			kind = fighter.StrikeLight
		}
		_ = self.Strike(kind)
		rb.lastAttack = now
		rb.cooldown = rb.ai.EmergencyMeleeCD
	case self.Stamina() >= rb.combat.ProjectileCost:
		_ = self.ThrowProjectile()
		rb.lastAttack = now
		rb.cooldown = rb.ai.EmergencyProjectileCD
	}
}

func (rb *RuleBased) approach(self, opp *fighter.Fighter) {
	_, dy, ydir := gaps(self, opp)
	speed := rb.profile.Speed
	var vy float64
	if dy > rb.ai.VerticalSlack {
		vy = ydir * speed * rb.ai.AlignFactor
	}
	_ = self.Move(towards(self, opp)*speed, vy)
}

func (rb *RuleBased) retreat(self, opp *fighter.Fighter) {
	_ = self.Move(-towards(self, opp)*rb.profile.Speed*rb.ai.RetreatFactor, 0)
}

func (rb *RuleBased) lateral(self, opp *fighter.Fighter) {
	_, dy, ydir := gaps(self, opp)
	speed := rb.profile.Speed
	switch {
	case dy > rb.ai.VerticalSlack:
		_ = self.Move(0, ydir*speed*rb.ai.LateralVertical)
	case rb.rng.Float64() < 0.5:
		_ = self.Move(towards(self, opp)*speed*rb.ai.LateralNudge, 0)
	default:
		_ = self.Move(0, 0)
	}
}
