package netcomponents

import (
	"github.com/automoto/kiclash/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetMatchData struct {
	State      netconfig.MatchStateID
	Round      int
	Wins       [2]int
	Timer      float64 // seconds left in the round
	Banner     string  // "ROUND 1", "3", "K.O." ...
	Winner     int     // -1 until decided
	Paused     bool
	Spectators int
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
