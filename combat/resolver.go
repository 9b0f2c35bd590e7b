// Package combat resolves hits between two fighters each tick: melee
// hitboxes, projectiles and beams against the opponent's hurtbox.
package combat

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/automoto/kiclash/shared/gamemath"
)

// Side identifies a match participant.
type Side int

const (
	SideP1 Side = iota
	SideP2
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return 1 - s }

func (s Side) String() string {
	if s == SideP2 {
		return "p2"
	}
	return "p1"
}

// Resolv tags
const (
	tagHurtP1 = "hurt_p1"
	tagHurtP2 = "hurt_p2"
	tagProbe  = "probe"
)

var hurtTags = [2]string{tagHurtP1, tagHurtP2}

// spaceOffset shifts world coordinates so attacks past the arena edges still
// land inside the space grid.
const spaceOffset = 256

// Source is what delivered a hit.
type Source int

const (
	SourceMelee Source = iota
	SourceProjectile
	SourceBeam
)

func (s Source) String() string {
	switch s {
	case SourceProjectile:
		return "projectile"
	case SourceBeam:
		return "beam"
	}
	return "melee"
}

// Event records one applied hit.
type Event struct {
	Attacker Side
	Source   Source
	Damage   float64 // after block and stun modifiers
}

// Delta is everything one Resolve call changed.
type Delta struct {
	Stats  [2]Stats
	Events []Event
}

// Resolver owns the broad-phase space and the per-fighter record of
// consumed strike activations.
type Resolver struct {
	cfg      config.Config
	space    *resolv.Space
	hurt     [2]*resolv.Object
	probe    *resolv.Object
	consumed map[*fighter.Fighter]uint64
}

// NewResolver builds a resolver sized to the configured arena.
func NewResolver(cfg config.Config) *Resolver {
	w := int(cfg.Arena.Width) + 2*spaceOffset
	h := int(cfg.Arena.Height) + 2*spaceOffset
	r := &Resolver{
		cfg:      cfg,
		space:    resolv.NewSpace(w, h, 32, 32),
		probe:    resolv.NewObject(0, 0, 1, 1, tagProbe),
		consumed: make(map[*fighter.Fighter]uint64),
	}
	for i := range r.hurt {
		r.hurt[i] = resolv.NewObject(0, 0, 1, 1, hurtTags[i])
		r.space.Add(r.hurt[i])
	}
	r.space.Add(r.probe)
	return r
}

// Reset forgets consumed activations, for a new match with new fighters.
func (r *Resolver) Reset() {
	r.consumed = make(map[*fighter.Fighter]uint64)
}

// Resolve applies every hit for this tick. Melee, then projectiles, then
// beams; both directions are resolved with no priority between them.
func (r *Resolver) Resolve(a, b *fighter.Fighter) Delta {
	var d Delta
	fighters := [2]*fighter.Fighter{a, b}
	for i, f := range fighters {
		r.place(r.hurt[i], f.Hurtbox())
		r.hurt[i].Data = f
	}

	// Hitboxes are read up front so a KO landed by one side does not erase
	// the other side's simultaneous strike.
	var hitboxes [2]fighter.Hitbox
	var live [2]bool
	for i, f := range fighters {
		hitboxes[i], live[i] = f.Hitbox()
	}
	for side := SideP1; side <= SideP2; side++ {
		if live[side] {
			r.resolveMelee(&d, side, hitboxes[side], fighters[side], fighters[side.Opponent()])
		}
	}
	for side := SideP1; side <= SideP2; side++ {
		r.resolveProjectiles(&d, side, fighters[side], fighters[side.Opponent()])
	}
	for side := SideP1; side <= SideP2; side++ {
		r.resolveBeam(&d, side, fighters[side], fighters[side.Opponent()])
	}
	return d
}

func (r *Resolver) resolveMelee(d *Delta, side Side, hb fighter.Hitbox, atk, def *fighter.Fighter) {
	if r.consumed[atk] >= hb.Activation {
		return
	}
	if !r.hits(hb.Rect, side.Opponent(), def) {
		return
	}
	r.consumed[atk] = hb.Activation
	dealt := def.ReceiveDamage(hb.Damage)
	def.RegisterComboHit()
	r.record(d, side, SourceMelee, dealt, true)
}

func (r *Resolver) resolveProjectiles(d *Delta, side Side, atk, def *fighter.Fighter) {
	for _, p := range atk.Projectiles() {
		if !p.Alive() || !r.hits(p.Rect, side.Opponent(), def) {
			continue
		}
		p.Kill()
		dealt := def.ReceiveDamage(p.Damage)
		r.record(d, side, SourceProjectile, dealt, true)
	}
}

func (r *Resolver) resolveBeam(d *Delta, side Side, atk, def *fighter.Fighter) {
	beam := atk.Beam()
	if beam == nil {
		return
	}
	for _, seg := range beam.Segments() {
		if !r.hits(seg.Rect, side.Opponent(), def) {
			continue
		}
		beam.MarkImpact()
		dealt := def.ReceiveDamage(beam.TickDamage())
		r.record(d, side, SourceBeam, dealt, beam.ClaimStats())
		return
	}
}

// record appends the hit to the tick's events. Stats are booked only when
// counted is set. Beams add damage but never a strike.
func (r *Resolver) record(d *Delta, side Side, src Source, dealt float64, counted bool) {
	if counted {
		if src != SourceBeam {
			d.Stats[side].Strikes++
		}
		d.Stats[side].DamageDealt += dealt
		d.Stats[side.Opponent()].DamageTaken += dealt
	}
	d.Events = append(d.Events, Event{Attacker: side, Source: src, Damage: dealt})
}

// hits runs the grid check against the target's hurt object, then an exact
// rectangle test.
func (r *Resolver) hits(rect gamemath.Rect, target Side, def *fighter.Fighter) bool {
	if rect.Empty() || def.Down() {
		return false
	}
	r.place(r.probe, rect)
	check := r.probe.Check(0, 0, hurtTags[target])
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(hurtTags[target]) {
		if f, ok := obj.Data.(*fighter.Fighter); ok && f == def {
			return rect.Overlaps(def.Hurtbox())
		}
	}
	return false
}

func (r *Resolver) place(obj *resolv.Object, rect gamemath.Rect) {
	obj.X = rect.X + spaceOffset
	obj.Y = rect.Y + spaceOffset
	obj.W = max(rect.W, 1)
	obj.H = max(rect.H, 1)
	obj.Update()
}
