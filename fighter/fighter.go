// Package fighter implements a single combatant: vitals, the action state
// machine, attack geometry and the hazards it owns. A Fighter knows nothing
// about its opponent; hit detection lives in the combat package.
package fighter

import (
	"errors"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/shared/gamemath"
)

var (
	ErrInsufficientStamina = errors.New("fighter: insufficient stamina")
	ErrBusy                = errors.New("fighter: action in progress")
	ErrAssetUnavailable    = errors.New("fighter: frame set unavailable")
)

// StrikeKind selects a melee attack.
type StrikeKind int

const (
	StrikeLight StrikeKind = iota
	StrikeHeavy
)

func (k StrikeKind) String() string {
	if k == StrikeHeavy {
		return "heavy"
	}
	return "light"
}

// MoveDir is the Moving sub-state used to pick a frame set.
type MoveDir int

const (
	MoveNone MoveDir = iota
	MoveRight
	MoveLeft
	MoveVertical
)

// Hitbox is an active melee attack area. Activation is unique per strike
// for the lifetime of the fighter.
type Hitbox struct {
	Rect       gamemath.Rect
	Activation uint64
	Kind       StrikeKind
	Damage     float64
}

// Fighter is one match participant.
type Fighter struct {
	name string
	arch config.Archetype
	cfg  config.Config

	x, y        float64
	facingRight bool
	upward      bool

	health  float64
	stamina float64

	state      config.StateID
	moveDir    MoveDir
	strike     StrikeKind
	frame      int // index within the current multi-frame action
	frameTimer int // ticks left in the current frame window
	timer      int // ticks left for single-window actions (throw, stun)

	activation uint64
	hitbox     Hitbox
	hitboxLive bool

	comboHits   int
	lastHitTick int64

	clock int64

	projectiles []*Projectile
	beam        *Beam
}

// New creates a fighter for one archetype. The archetype's ultimate and
// beam capabilities are fixed from here on.
func New(name string, arch config.Archetype, cfg config.Config) *Fighter {
	f := &Fighter{
		name: name,
		arch: arch,
		cfg:  cfg,
	}
	f.Reset(0, 0, true)
	return f
}

// Reset restores full vitals, Idle state and the given spawn. Hazards are
// cleared. The clock and activation counter keep running.
func (f *Fighter) Reset(x, y float64, facingRight bool) {
	f.x, f.y = x, y
	f.facingRight = facingRight
	f.upward = false
	f.health = f.cfg.Fighter.HealthMax
	f.stamina = f.cfg.Fighter.StaminaMax
	f.state = config.StateIdle
	f.moveDir = MoveNone
	f.frame, f.frameTimer, f.timer = 0, 0, 0
	f.hitboxLive = false
	f.hitbox = Hitbox{}
	f.comboHits = 0
	f.lastHitTick = 0
	f.projectiles = nil
	if f.beam != nil {
		f.beam.cancel()
		f.beam = nil
	}
}

// busy reports whether a new action may not start.
func (f *Fighter) busy() bool {
	return f.state != config.StateIdle && f.state != config.StateMoving
}

// Locked reports whether the fighter is committed to an action or disabled.
// Blocking is not a lock; it is released by Unblock.
func (f *Fighter) Locked() bool {
	switch f.state {
	case config.StateStriking, config.StateThrowing, config.StateChanneling,
		config.StateUltimate, config.StateStunned, config.StateKnockedOut:
		return true
	}
	return false
}

// Move applies a displacement. A zero vector returns the fighter to Idle.
func (f *Fighter) Move(dx, dy float64) error {
	if f.busy() {
		return ErrBusy
	}
	if dx == 0 && dy == 0 {
		f.state = config.StateIdle
		f.moveDir = MoveNone
		return nil
	}
	f.state = config.StateMoving
	switch {
	case dx > 0:
		f.moveDir = MoveRight
	case dx < 0:
		f.moveDir = MoveLeft
	default:
		f.moveDir = MoveVertical
		f.upward = dy < 0
	}
	w, h := f.Size()
	f.x = gamemath.Clamp(f.x+dx, 0, f.cfg.Arena.Width-w)
	f.y = gamemath.Clamp(f.y+dy, 0, f.cfg.Arena.Height-h)
	return nil
}

// Strike starts a melee attack.
func (f *Fighter) Strike(kind StrikeKind) error {
	if f.busy() {
		return ErrBusy
	}
	cost := f.cfg.Combat.LightCost
	if kind == StrikeHeavy {
		cost = f.cfg.Combat.HeavyCost
	}
	if f.stamina < cost {
		return ErrInsufficientStamina
	}
	f.stamina -= cost
	f.state = config.StateStriking
	f.strike = kind
	f.frame = 0
	f.frameTimer = f.cfg.Timing.StrikeFrameTicks
	f.activation++
	f.publishHitbox()
	return nil
}

func (f *Fighter) strikeFrames() int {
	if f.strike == StrikeHeavy {
		return f.arch.HeavyFrames()
	}
	return 1
}

// publishHitbox places a fresh hitbox against the leading edge, vertically
// centred on the sprite.
func (f *Fighter) publishHitbox() {
	w, h := f.Size()
	hw, hh := f.cfg.Combat.HitboxWidth, f.cfg.Combat.HitboxHeight
	x := f.x + w
	if !f.facingRight {
		x = f.x - hw
	}
	dmg := f.cfg.Combat.LightDamage
	if f.strike == StrikeHeavy {
		dmg = f.cfg.Combat.HeavyDamage
	}
	f.hitbox = Hitbox{
		Rect:       gamemath.Rect{X: x, Y: f.y + h/2 - hh/2, W: hw, H: hh},
		Activation: f.activation,
		Kind:       f.strike,
		Damage:     dmg,
	}
	f.hitboxLive = true
}

// Block raises the guard from Idle or Moving.
func (f *Fighter) Block() error {
	if f.state == config.StateBlocking {
		return nil
	}
	if f.busy() {
		return ErrBusy
	}
	f.state = config.StateBlocking
	f.moveDir = MoveNone
	return nil
}

// Unblock drops the guard. It is a no-op in any other state.
func (f *Fighter) Unblock() {
	if f.state == config.StateBlocking {
		f.state = config.StateIdle
	}
}

// ThrowProjectile winds up an energy ball that leaves at the end of the
// throw window.
func (f *Fighter) ThrowProjectile() error {
	if f.busy() {
		return ErrBusy
	}
	if f.stamina < f.cfg.Combat.ProjectileCost {
		return ErrInsufficientStamina
	}
	f.stamina -= f.cfg.Combat.ProjectileCost
	f.state = config.StateThrowing
	f.timer = f.cfg.Timing.ThrowTicks
	return nil
}

// ChannelBeam starts a beam anchored at the leading edge. The fighter stays
// Channeling until the beam expires.
func (f *Fighter) ChannelBeam() error {
	if !f.arch.CanChannel() {
		return ErrAssetUnavailable
	}
	if f.state == config.StateChanneling || f.busy() {
		return ErrBusy
	}
	if f.stamina < f.cfg.Combat.BeamCost {
		return ErrInsufficientStamina
	}
	f.stamina -= f.cfg.Combat.BeamCost
	f.state = config.StateChanneling
	f.beam = newBeam(f, f.cfg.Beam, f.cfg.Combat.BeamTickDamage)
	return nil
}

// UseUltimate steps through the archetype's pose frames and then releases
// its ultimate projectile.
func (f *Fighter) UseUltimate() error {
	if !f.arch.CanUltimate() {
		return ErrAssetUnavailable
	}
	if f.busy() {
		return ErrBusy
	}
	if f.stamina < f.cfg.Combat.UltimateCost {
		return ErrInsufficientStamina
	}
	f.stamina -= f.cfg.Combat.UltimateCost
	f.state = config.StateUltimate
	f.frame = 0
	f.frameTimer = f.cfg.Timing.UltimateFrameTicks
	return nil
}

// ReceiveDamage applies a hit and returns the amount actually removed from
// health.
func (f *Fighter) ReceiveDamage(amount float64) float64 {
	if amount <= 0 || f.health <= 0 {
		return 0
	}
	switch f.state {
	case config.StateStunned:
		amount *= f.cfg.Combat.StunMultiplier
	case config.StateBlocking:
		amount *= f.cfg.Combat.BlockFactor
	}
	if amount > f.health {
		amount = f.health
	}
	f.health -= amount
	if f.health <= 0 {
		f.health = 0
		// Without KO frames the fighter stays in its current state at zero
		// health; the match reads health, not state.
		if f.arch.HasKnockout() {
			f.interrupt(config.StateKnockedOut)
		}
	}
	return amount
}

// RegisterComboHit counts a landed melee hit against this fighter and
// forces a stun when the chain reaches the threshold.
func (f *Fighter) RegisterComboHit() {
	if f.state == config.StateKnockedOut {
		return
	}
	if f.comboHits > 0 && f.clock-f.lastHitTick > int64(f.cfg.Timing.ComboWindowTicks) {
		f.comboHits = 0
	}
	f.comboHits++
	f.lastHitTick = f.clock
	if f.comboHits >= f.cfg.Combat.ComboThreshold {
		f.comboHits = 0
		f.interrupt(config.StateStunned)
		f.timer = f.cfg.Timing.StunTicks
	}
}

// interrupt preempts whatever is running.
func (f *Fighter) interrupt(state config.StateID) {
	f.state = state
	f.moveDir = MoveNone
	f.frame, f.frameTimer, f.timer = 0, 0, 0
	f.hitboxLive = false
	if f.beam != nil {
		f.beam.cancel()
	}
}

// ResetAction abandons the current action and returns to Idle. A knocked
// out fighter stays down.
func (f *Fighter) ResetAction() {
	if f.state == config.StateKnockedOut {
		return
	}
	f.interrupt(config.StateIdle)
}

// TickStaminaRegen recovers stamina while no action is running.
func (f *Fighter) TickStaminaRegen() {
	switch f.state {
	case config.StateStriking, config.StateThrowing, config.StateChanneling,
		config.StateUltimate, config.StateKnockedOut:
		return
	}
	limit := f.cfg.Fighter.StaminaMax
	if f.stamina < limit {
		f.stamina = min(limit, f.stamina+f.cfg.Fighter.StaminaRegen)
	}
}

// Update advances the clock, owned hazards and the current action by one
// tick.
func (f *Fighter) Update() {
	f.clock++
	f.updateHazards()

	switch f.state {
	case config.StateStriking:
		f.frameTimer--
		if f.frameTimer > 0 {
			break
		}
		f.frame++
		if f.frame >= f.strikeFrames() {
			f.finish()
			break
		}
		f.frameTimer = f.cfg.Timing.StrikeFrameTicks
		f.publishHitbox()

	case config.StateThrowing:
		f.timer--
		if f.timer <= 0 {
			f.spawnProjectile(ProjectileEnergyBall)
			f.finish()
		}

	case config.StateChanneling:
		if f.beam == nil || !f.beam.Active() {
			f.beam = nil
			f.finish()
		}

	case config.StateUltimate:
		f.frameTimer--
		if f.frameTimer > 0 {
			break
		}
		f.frame++
		pose, _ := f.arch.FrameSet(f.arch.Ultimate.Pose)
		if f.frame >= pose.Frames {
			f.spawnProjectile(ProjectileUltimate)
			f.finish()
			break
		}
		f.frameTimer = f.cfg.Timing.UltimateFrameTicks

	case config.StateStunned:
		f.timer--
		if f.timer <= 0 {
			f.finish()
		}
	}

	f.TickStaminaRegen()
}

func (f *Fighter) finish() {
	f.state = config.StateIdle
	f.moveDir = MoveNone
	f.frame, f.frameTimer, f.timer = 0, 0, 0
	f.hitboxLive = false
}

func (f *Fighter) updateHazards() {
	minX := -f.cfg.Combat.ProjectileMargin
	maxX := f.cfg.Arena.Width + f.cfg.Combat.ProjectileMargin
	live := f.projectiles[:0]
	for _, p := range f.projectiles {
		p.Update(minX, maxX)
		if p.Alive() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(f.projectiles); i++ {
		f.projectiles[i] = nil
	}
	f.projectiles = live

	if f.beam != nil {
		f.beam.Update()
		if !f.beam.Active() && f.state != config.StateChanneling {
			f.beam = nil
		}
	}
}

func (f *Fighter) spawnProjectile(kind ProjectileKind) {
	c := f.cfg.Combat
	pw, ph := c.ProjectileWidth, c.ProjectileHeight
	speed, dmg := c.ProjectileSpeed, c.ProjectileDamage
	if fs, ok := f.arch.FrameSet(config.AssetEnergyBall); ok {
		pw, ph = fs.W, fs.H
	}
	if kind == ProjectileUltimate {
		pw, ph = c.UltimateWidth, c.UltimateHeight
		speed, dmg = c.UltimateSpeed, c.UltimateDamage
		if fs, ok := f.arch.FrameSet(f.arch.Ultimate.Power); ok {
			pw, ph = fs.W, fs.H
		}
	}
	w, h := f.Size()
	x, dir := f.x+w, 1.0
	if !f.facingRight {
		x, dir = f.x-pw, -1.0
	}
	f.projectiles = append(f.projectiles, &Projectile{
		Rect:     gamemath.Rect{X: x, Y: f.y + h/2 - ph/2, W: pw, H: ph},
		Dir:      dir,
		Speed:    speed,
		Damage:   dmg,
		Kind:     kind,
		Ultimate: f.arch.Ultimate.Kind,
		alive:    true,
	})
}

// SetFacing turns the fighter. Ignored while an action is running so hitboxes
// and beams stay on their side.
func (f *Fighter) SetFacing(right bool) {
	if f.Locked() {
		return
	}
	f.facingRight = right
}

// Asset returns the frame set key for the current state.
func (f *Fighter) Asset() config.AssetKey {
	switch f.state {
	case config.StateMoving:
		switch f.moveDir {
		case MoveRight:
			return config.AssetMoveRight
		case MoveLeft:
			return config.AssetMoveLeft
		}
		if f.upward && f.arch.Has(config.AssetMoveUp) {
			return config.AssetMoveUp
		}
		return config.AssetMoveDown
	case config.StateStriking:
		if f.strike == StrikeHeavy {
			return config.AssetHeavy
		}
		return config.AssetLight
	case config.StateBlocking:
		return config.AssetBlock
	case config.StateThrowing:
		return config.AssetThrow
	case config.StateChanneling:
		return config.AssetBeamPose
	case config.StateUltimate:
		return f.arch.Ultimate.Pose
	case config.StateStunned:
		return config.AssetStunned
	case config.StateKnockedOut:
		return config.AssetKnockout
	}
	return config.AssetIdle
}

// Size is the current frame size.
func (f *Fighter) Size() (w, h float64) {
	return f.arch.Size(f.Asset())
}

// Hurtbox is the area opponents' attacks are tested against.
func (f *Fighter) Hurtbox() gamemath.Rect {
	w, h := f.Size()
	return gamemath.Rect{X: f.x, Y: f.y, W: w, H: h}
}

// Hitbox returns the live melee hitbox, if any.
func (f *Fighter) Hitbox() (Hitbox, bool) {
	if !f.hitboxLive || f.state != config.StateStriking {
		return Hitbox{}, false
	}
	return f.hitbox, true
}

// Projectiles returns the live projectiles. The slice is owned by the
// fighter.
func (f *Fighter) Projectiles() []*Projectile { return f.projectiles }

// Beam returns the current beam or nil.
func (f *Fighter) Beam() *Beam {
	if f.beam == nil || !f.beam.Active() {
		return nil
	}
	return f.beam
}

func (f *Fighter) Name() string                { return f.name }
func (f *Fighter) Archetype() config.Archetype { return f.arch }
func (f *Fighter) Position() (float64, float64) {
	return f.x, f.y
}
func (f *Fighter) FacingRight() bool      { return f.facingRight }
func (f *Fighter) Health() float64        { return f.health }
func (f *Fighter) HealthMax() float64     { return f.cfg.Fighter.HealthMax }
func (f *Fighter) Stamina() float64       { return f.stamina }
func (f *Fighter) StaminaMax() float64    { return f.cfg.Fighter.StaminaMax }
func (f *Fighter) State() config.StateID  { return f.state }
func (f *Fighter) MoveDir() MoveDir       { return f.moveDir }
func (f *Fighter) StrikeKind() StrikeKind { return f.strike }
func (f *Fighter) Frame() int             { return f.frame }
func (f *Fighter) ComboHits() int         { return f.comboHits }

// Clock is the fighter's monotonic tick counter.
func (f *Fighter) Clock() int64 { return f.clock }

// Down reports zero health regardless of state.
func (f *Fighter) Down() bool { return f.health <= 0 }

// Striking and Blocking are read by opponent controllers.
func (f *Fighter) Striking() bool { return f.state == config.StateStriking }
func (f *Fighter) Blocking() bool { return f.state == config.StateBlocking }
