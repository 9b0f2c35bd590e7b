package match

import (
	"github.com/automoto/kiclash/fighter"
)

// Intent is one tick of human input. Directions are held state in
// [-1, 1]; actions are edge-triggered and true only on the press tick.
type Intent struct {
	MoveX, MoveY float64
	Block        bool // held

	Light      bool
	Heavy      bool
	Projectile bool
	Beam       bool
	Ultimate   bool
}

// IntentSource delivers a human side's intent once per Fighting tick.
type IntentSource interface {
	Poll() Intent
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() Intent

func (fn IntentFunc) Poll() Intent { return fn() }

// applyIntent forwards an intent to the fighter. The guard wins over every
// other intent; otherwise the first accepted action wins over movement.
func applyIntent(f *fighter.Fighter, in Intent, speed float64) {
	if f.Locked() {
		return
	}
	if in.Block {
		_ = f.Block()
		return
	}
	f.Unblock()

	actions := []struct {
		pressed bool
		start   func() error
	}{
		{in.Ultimate, f.UseUltimate},
		{in.Beam, f.ChannelBeam},
		{in.Projectile, f.ThrowProjectile},
		{in.Heavy, func() error { return f.Strike(fighter.StrikeHeavy) }},
		{in.Light, func() error { return f.Strike(fighter.StrikeLight) }},
	}
	for _, a := range actions {
		if a.pressed && a.start() == nil {
			return
		}
	}
	_ = f.Move(in.MoveX*speed, in.MoveY*speed)
}
