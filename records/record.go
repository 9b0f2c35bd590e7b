// Package records scores finished matches and tower climbs and keeps the
// leaderboards in a pluggable Store (gdata on disk, redis, or memory).
package records

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/match"
)

// Mode separates the two leaderboards.
type Mode string

const (
	ModeVersus Mode = "versus"
	ModeTower  Mode = "tower"
)

// Valid reports whether m names a leaderboard.
func (m Mode) Valid() bool { return m == ModeVersus || m == ModeTower }

// Scoring constants for a single match.
const (
	PointsPerRound     = 1000
	PointsPerHit       = 10
	PointsPerDamage    = 5
	PenaltyPerDamage   = 2
	BonusUnder60       = 500
	BonusUnder120      = 300
	BonusUnder180      = 100
	NameLength         = 3
	PlaceholderName    = "???"
	defaultListingSize = 10
)

// Scoring constants for a tower climb.
const (
	TowerPointsPerWin     = 2000
	TowerPointsPerHit     = 15
	TowerPointsPerDamage  = 8
	TowerPenaltyPerDamage = 3
	TowerCompletionBonus  = 5000
	TowerBonusUnder180    = 1000
	TowerBonusUnder300    = 500
)

// Record is one leaderboard row. Damage and time are whole numbers, the
// way they are shown.
type Record struct {
	ID          string    `json:"id"`
	Mode        Mode      `json:"mode"`
	Name        string    `json:"name"`
	Archetype   string    `json:"archetype"`
	Score       int       `json:"score"`
	RoundsWon   int       `json:"rounds_won,omitempty"`
	RoundsLost  int       `json:"rounds_lost,omitempty"`
	FightsWon   int       `json:"fights_won,omitempty"`
	Completed   bool      `json:"completed,omitempty"`
	Strikes     int       `json:"strikes"`
	DamageDealt int       `json:"damage_dealt"`
	DamageTaken int       `json:"damage_taken"`
	Seconds     int       `json:"seconds"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizeName upper-cases a player name and keeps its first three runes.
// Blank names become a placeholder.
func NormalizeName(name string) string {
	name = strings.TrimFunc(name, unicode.IsSpace)
	if name == "" {
		return PlaceholderName
	}
	runes := []rune(strings.ToUpper(name))
	if len(runes) > NameLength {
		runes = runes[:NameLength]
	}
	return string(runes)
}

// Score1v1 scores one side of a finished match.
func Score1v1(st combat.Stats, roundsWon, seconds int) int {
	score := roundsWon*PointsPerRound +
		st.Strikes*PointsPerHit +
		int(st.DamageDealt)*PointsPerDamage -
		int(st.DamageTaken)*PenaltyPerDamage

	switch {
	case seconds < 60:
		score += BonusUnder60
	case seconds < 120:
		score += BonusUnder120
	case seconds < 180:
		score += BonusUnder180
	}
	return max(score, 0)
}

// TowerScore scores a whole climb.
func TowerScore(wins int, completed bool, st combat.Stats, seconds int) int {
	score := wins*TowerPointsPerWin +
		st.Strikes*TowerPointsPerHit +
		int(st.DamageDealt)*TowerPointsPerDamage -
		int(st.DamageTaken)*TowerPenaltyPerDamage

	if completed {
		score += TowerCompletionBonus
	}
	switch {
	case seconds < 180:
		score += TowerBonusUnder180
	case seconds < 300:
		score += TowerBonusUnder300
	}
	return max(score, 0)
}

// FromMatch builds the versus record for one side of a result.
func FromMatch(r match.Result, side combat.Side, now time.Time) Record {
	st := r.Stats[side]
	seconds := int(r.Seconds)
	won := r.RoundsWon[side]
	return Record{
		ID:          uuid.NewString(),
		Mode:        ModeVersus,
		Name:        NormalizeName(r.Names[side]),
		Archetype:   r.Archetypes[side],
		Score:       Score1v1(st, won, seconds),
		RoundsWon:   won,
		RoundsLost:  r.RoundsWon[1-side],
		Strikes:     st.Strikes,
		DamageDealt: int(st.DamageDealt),
		DamageTaken: int(st.DamageTaken),
		Seconds:     seconds,
		CreatedAt:   now,
	}
}

// FromTower builds the tower record for a climb.
func FromTower(t match.TowerResult, now time.Time) Record {
	seconds := int(t.Seconds)
	return Record{
		ID:          uuid.NewString(),
		Mode:        ModeTower,
		Name:        NormalizeName(t.Name),
		Archetype:   t.Archetype,
		Score:       TowerScore(t.Wins, t.Completed, t.Stats, seconds),
		FightsWon:   t.Wins,
		Completed:   t.Completed,
		Strikes:     t.Stats.Strikes,
		DamageDealt: int(t.Stats.DamageDealt),
		DamageTaken: int(t.Stats.DamageTaken),
		Seconds:     seconds,
		CreatedAt:   now,
	}
}

// Detail is the mode-specific column: rounds for versus, wins for tower
// with a star on a cleared climb.
func (r Record) Detail() string {
	if r.Mode != ModeTower {
		return fmt.Sprintf("%d-%d", r.RoundsWon, r.RoundsLost)
	}
	d := fmt.Sprintf("%d wins", r.FightsWon)
	if r.Completed {
		d += " *"
	}
	return d
}

// Line renders the record as one fixed-width leaderboard row.
func (r Record) Line(rank int) string {
	return fmt.Sprintf("%2d. %-3s %7d  %-8s %-8s %4ds", rank, r.Name, r.Score, r.Archetype, r.Detail(), r.Seconds)
}
