// Package systems holds the per-frame pieces of the interactive shell:
// keyboard polling, arena drawing, the HUD and the pause overlay.
package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/kiclash/match"
)

// Action is one bindable shell input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLight
	ActionHeavy
	ActionBlock
	ActionProjectile
	ActionBeam
	ActionUltimate
	ActionPause
	ActionSkip
	ActionDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// DefaultBindings maps each action to the keys that trigger it.
var DefaultBindings = map[Action][]ebiten.Key{
	ActionMoveLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	ActionMoveRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	ActionMoveUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	ActionMoveDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	ActionLight:      {ebiten.KeyJ},
	ActionHeavy:      {ebiten.KeyK},
	ActionBlock:      {ebiten.KeyL},
	ActionProjectile: {ebiten.KeyI},
	ActionBeam:       {ebiten.KeyO},
	ActionUltimate:   {ebiten.KeyP},
	ActionPause:      {ebiten.KeyEscape},
	ActionSkip:       {ebiten.KeyEnter, ebiten.KeySpace},
	ActionDebug:      {ebiten.KeyF3},
	ActionQuit:       {ebiten.KeyQ},
}

// ActionState is the frame view of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Keyboard double-buffers key state once per frame and turns it into
// match intents. It implements match.IntentSource.
type Keyboard struct {
	bindings map[Action][]ebiten.Key
	pressed  func(ebiten.Key) bool

	current  [ActionCount]bool
	previous [ActionCount]bool
}

var _ match.IntentSource = (*Keyboard)(nil)

// NewKeyboard polls ebiten with the default bindings.
func NewKeyboard() *Keyboard {
	return NewKeyboardWith(DefaultBindings, ebiten.IsKeyPressed)
}

// NewKeyboardWith takes explicit bindings and a key reader.
func NewKeyboardWith(bindings map[Action][]ebiten.Key, pressed func(ebiten.Key) bool) *Keyboard {
	return &Keyboard{bindings: bindings, pressed: pressed}
}

// Update swaps the buffers and polls every binding. Call it once per frame
// before anything reads the keyboard.
func (k *Keyboard) Update() {
	k.previous = k.current
	k.current = [ActionCount]bool{}
	for action, keys := range k.bindings {
		for _, key := range keys {
			if k.pressed(key) {
				k.current[action] = true
				break
			}
		}
	}
}

// Get derives the press edges from the two buffers.
func (k *Keyboard) Get(a Action) ActionState {
	curr, prev := k.current[a], k.previous[a]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Poll builds the intent for the current frame: held directions and guard,
// actions only on the frame their key went down.
func (k *Keyboard) Poll() match.Intent {
	var in match.Intent
	if k.current[ActionMoveLeft] {
		in.MoveX--
	}
	if k.current[ActionMoveRight] {
		in.MoveX++
	}
	if k.current[ActionMoveUp] {
		in.MoveY--
	}
	if k.current[ActionMoveDown] {
		in.MoveY++
	}
	in.Block = k.current[ActionBlock]
	in.Light = k.Get(ActionLight).JustPressed
	in.Heavy = k.Get(ActionHeavy).JustPressed
	in.Projectile = k.Get(ActionProjectile).JustPressed
	in.Beam = k.Get(ActionBeam).JustPressed
	in.Ultimate = k.Get(ActionUltimate).JustPressed
	return in
}
