package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/components"
	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/match"
)

const (
	barWidth   = 280.0
	barHeight  = 14.0
	barMargin  = 16.0
	pipRadius  = 5.0
	staminaGap = 4.0
)

// DrawMatchHUD renders vitals, the round clock, round wins and the phase
// banner on top of the arena.
func DrawMatchHUD(screen *ebiten.Image, ctl *match.Controller, c cfg.Config) {
	md := ctl.Snapshot()
	width := float64(screen.Bounds().Dx())

	for _, side := range []combat.Side{combat.SideP1, combat.SideP2} {
		drawVitals(screen, ctl.Fighter(side), side, md.Wins[side], c.Match.RoundsToWin, width)
	}

	if md.State == cfg.MatchStateFighting || md.State == cfg.MatchStateRoundOver {
		clock := FormatClock(md.FightTimer, c.Timing.TickRate)
		drawCentered(screen, clock, fonts.Bold.Get(), width/2, barMargin+barHeight+4, cfg.White)
	}

	if banner, sub := Banner(md, ctl, c.Match); banner != "" {
		drawBanner(screen, banner, sub)
	}
}

func drawVitals(screen *ebiten.Image, f *fighter.Fighter, side combat.Side, wins, toWin int, width float64) {
	x := barMargin
	if side == combat.SideP2 {
		x = width - barMargin - barWidth
	}
	y := barMargin + 16

	text.Draw(screen, f.Name(), fonts.Regular.Get(), int(x), int(barMargin+10), cfg.White)

	health := f.Health() / f.HealthMax()
	vector.FillRect(screen, float32(x), float32(y), barWidth, barHeight, cfg.Red, false)
	fillBar(screen, x, y, barWidth*health, barHeight, side, cfg.Green)

	sy := y + barHeight + staminaGap
	stamina := f.Stamina() / f.StaminaMax()
	vector.FillRect(screen, float32(x), float32(sy), barWidth, barHeight/2, cfg.DarkBlue, false)
	fillBar(screen, x, sy, barWidth*stamina, barHeight/2, side, cfg.LightBlue)

	// Round win pips under the bars, filled for rounds taken.
	py := sy + barHeight/2 + pipRadius + 6
	for i := 0; i < toWin; i++ {
		px := x + pipRadius + float64(i)*(pipRadius*3)
		if side == combat.SideP2 {
			px = x + barWidth - pipRadius - float64(i)*(pipRadius*3)
		}
		if i < wins {
			vector.FillCircle(screen, float32(px), float32(py), pipRadius, cfg.Yellow, true)
		} else {
			vector.StrokeCircle(screen, float32(px), float32(py), pipRadius, 1, cfg.White, true)
		}
	}
}

// fillBar fills from the outer edge so both bars drain towards the centre.
func fillBar(screen *ebiten.Image, x, y, w, h float64, side combat.Side, c color.Color) {
	if w <= 0 {
		return
	}
	if side == combat.SideP2 {
		x += barWidth - w
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func drawBanner(screen *ebiten.Image, banner, sub string) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, float32(height/2-60), float32(width), 110, cfg.BlackOverlay, false)
	drawCentered(screen, banner, fonts.Title.Get(), width/2, height/2, cfg.BrightOrange)
	if sub != "" {
		drawCentered(screen, sub, fonts.Regular.Get(), width/2, height/2+34, cfg.White)
	}
}

// Banner returns the headline for the current phase, if any.
func Banner(md components.MatchData, ctl *match.Controller, m cfg.MatchConfig) (string, string) {
	switch md.State {
	case cfg.MatchStateIntroduction:
		vs := fmt.Sprintf("%s VS %s", ctl.Fighter(combat.SideP1).Name(), ctl.Fighter(combat.SideP2).Name())
		return vs, "Enter to skip"
	case cfg.MatchStateCountdown:
		return CountdownLabel(md.Round, md.Timer, m), ""
	case cfg.MatchStateRoundOver, cfg.MatchStateRoundEnd:
		return RoundOverLabel(md), ""
	case cfg.MatchStateFinished:
		if md.Winner == components.NoWinner {
			return "DRAW", ""
		}
		name := ctl.Fighter(md.Winner).Name()
		return fmt.Sprintf("%s WINS", name), fmt.Sprintf("%d - %d", md.Wins[0], md.Wins[1])
	}
	return "", ""
}

// CountdownLabel shows "ROUND N" during the banner, then 3, 2, 1.
func CountdownLabel(round, timer int, m cfg.MatchConfig) string {
	step := m.CountStepTicks
	if step <= 0 || timer > 3*step {
		return fmt.Sprintf("ROUND %d", round)
	}
	n := (timer + step - 1) / step
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%d", n)
}

// RoundOverLabel names how the last round ended.
func RoundOverLabel(md components.MatchData) string {
	switch {
	case md.RoundWinner == components.NoWinner:
		return "DRAW"
	case md.TimeUp:
		return "TIME"
	}
	return "K.O."
}

// FormatClock renders remaining round ticks as whole seconds, rounded up.
func FormatClock(ticks, tickRate int) string {
	if ticks < 0 {
		ticks = 0
	}
	if tickRate <= 0 {
		return "0"
	}
	return fmt.Sprintf("%d", (ticks+tickRate-1)/tickRate)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, baseline float64, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(cx)-w/2, int(baseline), c)
}
