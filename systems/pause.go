package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/match"
)

const pauseHint = "Esc: Resume   Q: Quit to menu   F3: Debug boxes"

// UpdatePause toggles the match pause on Escape. It reports whether the
// player asked to leave while paused.
func UpdatePause(kb *Keyboard, ctl *match.Controller) (quit bool) {
	if kb.Get(ActionPause).JustPressed && !ctl.Finished() {
		if ctl.Paused() {
			ctl.Resume()
		} else {
			ctl.Pause()
		}
	}
	return ctl.Paused() && kb.Get(ActionQuit).JustPressed
}

// DrawPause renders the pause overlay.
func DrawPause(screen *ebiten.Image, ctl *match.Controller) {
	if !ctl.Paused() {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
	drawCentered(screen, "PAUSED", fonts.Title.Get(), width/2, height/2, cfg.White)
	drawCentered(screen, pauseHint, fonts.Small.Get(), width/2, height-12, cfg.White)
}
