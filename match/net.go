package match

import (
	"fmt"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/components"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/automoto/kiclash/shared/netcomponents"
)

// Banner is the centre-screen text for the current phase.
func (c *Controller) Banner() string {
	md := c.data()
	switch md.State {
	case config.MatchStateIntroduction:
		return fmt.Sprintf("%s VS %s", c.Combatant(combat.SideP1).Name, c.Combatant(combat.SideP2).Name)
	case config.MatchStateCountdown:
		return countdownLabel(c.cfg.Match, md.Round, md.Timer)
	case config.MatchStateRoundOver, config.MatchStateRoundEnd:
		switch {
		case md.RoundWinner == components.NoWinner:
			return "DRAW"
		case md.TimeUp:
			return "TIME"
		}
		return "K.O."
	case config.MatchStateFinished:
		return fmt.Sprintf("%s WINS", c.Combatant(md.Winner).Name)
	}
	return ""
}

// countdownLabel maps the ticks left in a countdown to "ROUND N", then
// "3", "2", "1".
func countdownLabel(m config.MatchConfig, round, left int) string {
	elapsed := m.CountdownTicks() - left
	if elapsed < m.BannerTicks {
		return fmt.Sprintf("ROUND %d", round)
	}
	n := 3 - (elapsed-m.BannerTicks)/m.CountStepTicks
	if n < 1 {
		n = 1
	}
	return fmt.Sprint(n)
}

// TimeLeft is the round clock in whole seconds.
func (c *Controller) TimeLeft() int {
	md := c.data()
	if md.State != config.MatchStateFighting {
		return 0
	}
	return (md.FightTimer + c.cfg.Timing.TickRate - 1) / c.cfg.Timing.TickRate
}

// syncNet mirrors the simulation into the network components.
func (c *Controller) syncNet() {
	md := c.data()
	netcomponents.NetMatch.SetValue(c.match, netcomponents.NetMatchData{
		State:  md.State,
		Round:  md.Round,
		Wins:   md.Wins,
		Timer:  float64(md.FightTimer) / float64(c.cfg.Timing.TickRate),
		Banner: c.Banner(),
		Winner: int(md.Winner),
		Paused: c.paused,
	})

	for side, e := range c.fighters {
		f := components.Fighter.Get(e).Fighter
		x, y := f.Position()
		w, h := f.Size()
		dir := 1
		if !f.FacingRight() {
			dir = -1
		}
		netcomponents.NetPosition.SetValue(e, netcomponents.NetPositionData{X: x, Y: y})
		netcomponents.NetFighter.SetValue(e, netcomponents.NetFighterData{
			Side:      side,
			Name:      f.Name(),
			Archetype: f.Archetype().ID,
			Asset:     string(f.Asset()),
			Frame:     f.Frame(),
			W:         w,
			H:         h,
			StateID:   f.State(),
			Direction: dir,
			Health:    f.Health(),
			Stamina:   f.Stamina(),
			Hazards:   hazards(f),
		})
	}
}

func hazards(f *fighter.Fighter) []netcomponents.NetRect {
	var out []netcomponents.NetRect
	for _, p := range f.Projectiles() {
		if !p.Alive() {
			continue
		}
		r := p.Rect
		out = append(out, netcomponents.NetRect{X: r.X, Y: r.Y, W: r.W, H: r.H, Kind: int(p.Kind)})
	}
	if beam := f.Beam(); beam != nil {
		for _, seg := range beam.Segments() {
			r := seg.Rect
			out = append(out, netcomponents.NetRect{X: r.X, Y: r.Y, W: r.W, H: r.H, Kind: 2 + int(seg.Part)})
		}
	}
	return out
}
