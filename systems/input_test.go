package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/automoto/kiclash/match"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) pressed(k ebiten.Key) bool { return f[k] }

func TestKeyboard_Edges(t *testing.T) {
	keys := fakeKeys{}
	kb := NewKeyboardWith(DefaultBindings, keys.pressed)

	keys[ebiten.KeyJ] = true
	kb.Update()
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, kb.Get(ActionLight))

	kb.Update()
	assert.Equal(t, ActionState{Pressed: true}, kb.Get(ActionLight))

	keys[ebiten.KeyJ] = false
	kb.Update()
	assert.Equal(t, ActionState{JustReleased: true}, kb.Get(ActionLight))
}

func TestKeyboard_Poll(t *testing.T) {
	keys := fakeKeys{}
	kb := NewKeyboardWith(DefaultBindings, keys.pressed)

	keys[ebiten.KeyArrowLeft] = true
	keys[ebiten.KeyS] = true
	keys[ebiten.KeyK] = true
	kb.Update()
	assert.Equal(t, match.Intent{MoveX: -1, MoveY: 1, Heavy: true}, kb.Poll())

	// Holding an action key does not repeat it.
	kb.Update()
	assert.Equal(t, match.Intent{MoveX: -1, MoveY: 1}, kb.Poll())
}

func TestKeyboard_OpposedDirectionsCancel(t *testing.T) {
	keys := fakeKeys{ebiten.KeyA: true, ebiten.KeyD: true}
	kb := NewKeyboardWith(DefaultBindings, keys.pressed)
	kb.Update()
	assert.Zero(t, kb.Poll().MoveX)
}

func TestKeyboard_BlockIsHeld(t *testing.T) {
	keys := fakeKeys{ebiten.KeyL: true}
	kb := NewKeyboardWith(DefaultBindings, keys.pressed)
	for i := 0; i < 3; i++ {
		kb.Update()
		assert.True(t, kb.Poll().Block)
	}
}

func TestKeyboard_EveryAction(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want match.Intent
	}{
		{ebiten.KeyJ, match.Intent{Light: true}},
		{ebiten.KeyK, match.Intent{Heavy: true}},
		{ebiten.KeyI, match.Intent{Projectile: true}},
		{ebiten.KeyO, match.Intent{Beam: true}},
		{ebiten.KeyP, match.Intent{Ultimate: true}},
	}
	for _, tt := range tests {
		keys := fakeKeys{tt.key: true}
		kb := NewKeyboardWith(DefaultBindings, keys.pressed)
		kb.Update()
		assert.Equal(t, tt.want, kb.Poll(), "key %v", tt.key)
	}
}
