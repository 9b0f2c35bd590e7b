package config

import (
	"fmt"
	"math/rand"
	"strings"
)

// Difficulty affects speed, reaction time and decision quality
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "easy",
	DifficultyNormal: "normal",
	DifficultyHard:   "hard",
}

// Difficulties lists every level from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDifficulty accepts "easy", "normal" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Band is an inclusive tick range a cooldown is rolled from.
type Band struct {
	Min, Max int
}

// Roll returns a uniform value in [Min, Max].
func (b Band) Roll(rng *rand.Rand) int {
	if b.Max <= b.Min {
		return b.Min
	}
	return b.Min + rng.Intn(b.Max-b.Min+1)
}

// BotProfile holds tuning values for bot behavior at a specific difficulty
type BotProfile struct {
	Difficulty    Difficulty
	Speed         float64 // pixels per tick
	ReactionTicks int     // initial attack cooldown
	AttackProb    float64 // chance to commit when in range and off cooldown
	DefenseProb   float64 // chance to block an incoming strike
	SpecialProb   float64 // chance an attack is a special move
	AttackDist    float64
	MinDist       float64
	Defensive     bool // allows the defensive mode in re-rolls
	PollTicks     int  // remote decision interval

	LightCD      Band
	HeavyCD      Band
	ProjectileCD Band
	BeamCD       Band
	UltimateCD   Band
}

// DefaultBots returns the stock profile table.
func DefaultBots() map[Difficulty]BotProfile {
	projectile := Band{Min: 48, Max: 72}
	beam := Band{Min: 90, Max: 150}
	ultimate := Band{Min: 120, Max: 180}
	return map[Difficulty]BotProfile{
		DifficultyEasy: {
			Difficulty:    DifficultyEasy,
			Speed:         4,
			ReactionTicks: 42, // ~0.7s
			AttackProb:    0.75,
			DefenseProb:   0.30,
			SpecialProb:   0.25,
			AttackDist:    110,
			MinDist:       45,
			Defensive:     true,
			PollTicks:     90,
			LightCD:       Band{Min: 18, Max: 33},
			HeavyCD:       Band{Min: 24, Max: 45},
			ProjectileCD:  projectile,
			BeamCD:        beam,
			UltimateCD:    ultimate,
		},
		DifficultyNormal: {
			Difficulty:    DifficultyNormal,
			Speed:         6,
			ReactionTicks: 21,
			AttackProb:    0.90,
			DefenseProb:   0.55,
			SpecialProb:   0.50,
			AttackDist:    105,
			MinDist:       40,
			PollTicks:     48,
			LightCD:       Band{Min: 12, Max: 24},
			HeavyCD:       Band{Min: 18, Max: 33},
			ProjectileCD:  projectile,
			BeamCD:        beam,
			UltimateCD:    ultimate,
		},
		DifficultyHard: {
			Difficulty:    DifficultyHard,
			Speed:         9,
			ReactionTicks: 9, // near-instant
			AttackProb:    0.98,
			DefenseProb:   0.75,
			SpecialProb:   0.70,
			AttackDist:    100,
			MinDist:       35,
			PollTicks:     24,
			LightCD:       Band{Min: 6, Max: 15},
			HeavyCD:       Band{Min: 9, Max: 21},
			ProjectileCD:  projectile,
			BeamCD:        beam,
			UltimateCD:    ultimate,
		},
	}
}
