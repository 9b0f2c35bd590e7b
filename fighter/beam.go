package fighter

import (
	"weak"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/shared/gamemath"
)

// BeamPart names one of the three beam segments.
type BeamPart int

const (
	BeamTip BeamPart = iota
	BeamBody
	BeamRoot
)

// BeamSegment is one live piece of beam geometry.
type BeamSegment struct {
	Part BeamPart
	Rect gamemath.Rect
}

// Beam is a channeled hazard that grows out of its origin's leading edge.
// It only looks the origin up for position; it never keeps it alive.
type Beam struct {
	origin    weak.Pointer[Fighter]
	facing    bool
	cfg       config.BeamConfig
	damage    float64
	elapsed   int
	reach     float64
	reachTw   *gween.Tween
	impact    bool
	claimed   bool
	cancelled bool
}

func newBeam(origin *Fighter, cfg config.BeamConfig, damage float64) *Beam {
	return &Beam{
		origin:  weak.Make(origin),
		facing:  origin.facingRight,
		cfg:     cfg,
		damage:  damage,
		reachTw: gween.New(0, float32(cfg.MaxReach), float32(cfg.GrowTicks), ease.Linear),
	}
}

// Update advances the beam one tick. Reach stops growing after an impact.
func (b *Beam) Update() {
	if !b.Active() {
		return
	}
	b.elapsed++
	if b.elapsed <= b.cfg.DelayTicks || b.impact {
		return
	}
	r, _ := b.reachTw.Update(1)
	b.reach = float64(r)
}

// Active reports whether the beam can still deal damage.
func (b *Beam) Active() bool {
	if b.cancelled || b.elapsed >= b.cfg.DurationTicks {
		return false
	}
	return b.origin.Value() != nil
}

func (b *Beam) cancel() { b.cancelled = true }

// MarkImpact freezes the reach at its current value.
func (b *Beam) MarkImpact() { b.impact = true }

// Impacted reports whether the beam has hit something.
func (b *Beam) Impacted() bool { return b.impact }

// ClaimStats returns true exactly once per beam so a channel counts as a
// single strike.
func (b *Beam) ClaimStats() bool {
	if b.claimed {
		return false
	}
	b.claimed = true
	return true
}

// TickDamage is the damage dealt on every overlapping tick.
func (b *Beam) TickDamage() float64 { return b.damage }

// Elapsed is the number of ticks since the channel started.
func (b *Beam) Elapsed() int { return b.elapsed }

// Reach is the current distance from the origin edge to the tip.
func (b *Beam) Reach() float64 { return b.reach }

// Segments returns the currently live segments. Tip, body and root come
// online in that order as the channel progresses.
func (b *Beam) Segments() []BeamSegment {
	f := b.origin.Value()
	if f == nil || !b.Active() {
		return nil
	}
	w, h := f.Size()
	edge := f.x
	if b.facing {
		edge = f.x + w
	}
	bh := b.cfg.Height
	y := f.y + h/2 - bh/2

	var segs []BeamSegment
	if b.elapsed >= b.cfg.TipFrom {
		x := edge + b.reach
		if !b.facing {
			x = edge - b.reach - b.cfg.TipWidth
		}
		segs = append(segs, BeamSegment{Part: BeamTip, Rect: gamemath.Rect{X: x, Y: y, W: b.cfg.TipWidth, H: bh}})
	}
	if b.elapsed >= b.cfg.BodyFrom && b.reach > 0 {
		x := edge
		if !b.facing {
			x = edge - b.reach
		}
		segs = append(segs, BeamSegment{Part: BeamBody, Rect: gamemath.Rect{X: x, Y: y, W: b.reach, H: bh}})
	}
	if b.elapsed >= b.cfg.RootFrom {
		x := edge
		if !b.facing {
			x = edge - b.cfg.RootWidth
		}
		segs = append(segs, BeamSegment{Part: BeamRoot, Rect: gamemath.Rect{X: x, Y: y, W: b.cfg.RootWidth, H: bh}})
	}
	return segs
}

// FacingRight reports the beam direction.
func (b *Beam) FacingRight() bool { return b.facing }
