// Package netconfig defines lightweight types shared between the simulation,
// the spectator server and the interactive shell. It must have zero
// dependencies on ebiten or any graphics library so the dedicated server
// binary stays headless.
package netconfig

import "strings"

// StateID identifies a fighter action state.
type StateID int

const (
	StateIdle StateID = iota
	StateMoving
	StateStriking
	StateBlocking
	StateThrowing
	StateChanneling
	StateUltimate
	StateStunned
	StateKnockedOut
)

// StateNames maps a StateID to its display and wire name.
var StateNames = map[StateID]string{
	StateIdle:       "idle",
	StateMoving:     "moving",
	StateStriking:   "striking",
	StateBlocking:   "blocking",
	StateThrowing:   "throwing",
	StateChanneling: "channeling",
	StateUltimate:   "ultimate",
	StateStunned:    "stunned",
	StateKnockedOut: "knocked_out",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MatchStateID represents the current phase of a match.
type MatchStateID int

const (
	MatchStateIntroduction MatchStateID = iota // VS card before round 1
	MatchStateCountdown                        // "ROUND N" then 3, 2, 1
	MatchStateFighting                         // Active gameplay
	MatchStateRoundOver                        // KO / time-up freeze
	MatchStateRoundEnd                         // Decides next round or match end
	MatchStateFinished                         // Match over, result reported
)

var matchStateNames = map[MatchStateID]string{
	MatchStateIntroduction: "introduction",
	MatchStateCountdown:    "countdown",
	MatchStateFighting:     "fighting",
	MatchStateRoundOver:    "round_over",
	MatchStateRoundEnd:     "round_end",
	MatchStateFinished:     "finished",
}

func (m MatchStateID) String() string {
	if name, ok := matchStateNames[m]; ok {
		return name
	}
	return "unknown"
}

// ActionID is one token of the closed opponent action vocabulary shared by
// the rule-based controller, the remote policy and the decision service.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionApproach
	ActionRetreat
	ActionLight
	ActionHeavy
	ActionBlock
	ActionProjectile
	ActionBeam
	ActionUltimate
	ActionWait
	ActionCount // Must be last - used for array sizing
)

var actionTokens = [ActionCount]string{
	ActionNone:       "",
	ActionApproach:   "approach",
	ActionRetreat:    "retreat",
	ActionLight:      "light",
	ActionHeavy:      "heavy",
	ActionBlock:      "block",
	ActionProjectile: "projectile",
	ActionBeam:       "beam",
	ActionUltimate:   "ultimate",
	ActionWait:       "wait",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return ""
	}
	return actionTokens[a]
}

// ParseAction maps a wire token to its ActionID. Matching ignores case and
// surrounding whitespace. ActionNone is never returned with ok == true.
func ParseAction(token string) (ActionID, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ActionNone, false
	}
	for id := ActionApproach; id < ActionCount; id++ {
		if actionTokens[id] == token {
			return id, true
		}
	}
	return ActionNone, false
}

// Actions lists every valid token in declaration order.
func Actions() []ActionID {
	out := make([]ActionID, 0, ActionCount-1)
	for id := ActionApproach; id < ActionCount; id++ {
		out = append(out, id)
	}
	return out
}

func (a ActionID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
