package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Match   = donburi.NewTag().SetName("Match")
)
