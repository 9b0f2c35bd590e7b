package config

import "github.com/automoto/kiclash/shared/netconfig"

// Type aliases so simulation code can say config.StateID without importing
// the wire package directly.
type StateID = netconfig.StateID
type MatchStateID = netconfig.MatchStateID

// Re-export match phase constants.
const (
	MatchStateIntroduction = netconfig.MatchStateIntroduction
	MatchStateCountdown    = netconfig.MatchStateCountdown
	MatchStateFighting     = netconfig.MatchStateFighting
	MatchStateRoundOver    = netconfig.MatchStateRoundOver
	MatchStateRoundEnd     = netconfig.MatchStateRoundEnd
	MatchStateFinished     = netconfig.MatchStateFinished
)

// Re-export fighter state constants.
const (
	StateIdle       = netconfig.StateIdle
	StateMoving     = netconfig.StateMoving
	StateStriking   = netconfig.StateStriking
	StateBlocking   = netconfig.StateBlocking
	StateThrowing   = netconfig.StateThrowing
	StateChanneling = netconfig.StateChanneling
	StateUltimate   = netconfig.StateUltimate
	StateStunned    = netconfig.StateStunned
	StateKnockedOut = netconfig.StateKnockedOut
)
