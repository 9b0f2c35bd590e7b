package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/kiclash/combat"
	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/shared/gamemath"
)

var (
	stunnedColor  = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	downColor     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	beamTipColor  = color.RGBA{R: 240, G: 250, B: 255, A: 230}
	beamBodyColor = color.RGBA{R: 120, G: 200, B: 255, A: 200}
	beamRootColor = color.RGBA{R: 60, G: 140, B: 255, A: 180}
)

// DrawArena draws both fighters and everything they have thrown as plain
// rectangles. With debug on, hurtbox outlines and state labels are added.
func DrawArena(screen *ebiten.Image, ctl *match.Controller, display cfg.DisplayConfig, debug bool) {
	screen.Fill(display.Background)

	sideColors := [2]color.RGBA{display.P1Color, display.P2Color}
	for _, side := range []combat.Side{combat.SideP1, combat.SideP2} {
		f := ctl.Fighter(side)
		drawFighter(screen, f, sideColors[side], display.HitboxColor)
		for _, p := range f.Projectiles() {
			if p.Alive() {
				drawProjectile(screen, p, sideColors[side])
			}
		}
		if b := f.Beam(); b != nil {
			for _, seg := range b.Segments() {
				fillRect(screen, seg.Rect, beamColor(seg.Part))
			}
		}
		if debug {
			drawDebug(screen, f)
		}
	}
}

func drawFighter(screen *ebiten.Image, f *fighter.Fighter, base, hitbox color.RGBA) {
	fillRect(screen, f.Hurtbox(), FighterColor(f.State(), base))
	if f.Blocking() {
		strokeRect(screen, f.Hurtbox(), 3, cfg.White)
	}
	if hb, ok := f.Hitbox(); ok {
		fillRect(screen, hb.Rect, hitbox)
	}
}

func drawProjectile(screen *ebiten.Image, p *fighter.Projectile, base color.RGBA) {
	if p.Kind == fighter.ProjectileUltimate {
		fillRect(screen, p.Rect, cfg.BrightOrange)
		strokeRect(screen, p.Rect, 2, base)
		return
	}
	fillRect(screen, p.Rect, cfg.Yellow)
}

func drawDebug(screen *ebiten.Image, f *fighter.Fighter) {
	box := f.Hurtbox()
	strokeRect(screen, box, 1, cfg.Green)
	text.Draw(screen, f.State().String(), fonts.Small.Get(), int(box.X), int(box.Y+box.H)+14, cfg.White)
}

// FighterColor tints a fighter's body by state.
func FighterColor(state cfg.StateID, base color.RGBA) color.RGBA {
	switch state {
	case cfg.StateStunned:
		return stunnedColor
	case cfg.StateKnockedOut:
		return downColor
	}
	return base
}

func beamColor(part fighter.BeamPart) color.RGBA {
	switch part {
	case fighter.BeamTip:
		return beamTipColor
	case fighter.BeamBody:
		return beamBodyColor
	}
	return beamRootColor
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, width float32, c color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
