package netcomponents

import (
	"github.com/automoto/kiclash/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetRect is a hazard box as spectators draw it.
type NetRect struct {
	X, Y, W, H float64
	Kind       int // 0=energy ball, 1=ultimate, 2=beam tip, 3=beam body, 4=beam root
}

type NetFighterData struct {
	Side      int
	Name      string
	Archetype string
	Asset     string // frame set currently shown
	Frame     int
	W, H      float64
	StateID   netconfig.StateID
	Direction int // -1 left, 1 right
	Health    float64
	Stamina   float64
	Hazards   []NetRect
}

var NetFighter = donburi.NewComponentType[NetFighterData]()
