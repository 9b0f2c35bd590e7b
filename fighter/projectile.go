package fighter

import (
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/shared/gamemath"
)

// ProjectileKind distinguishes the thrown energy ball from an ultimate.
type ProjectileKind int

const (
	ProjectileEnergyBall ProjectileKind = iota
	ProjectileUltimate
)

// Projectile travels horizontally at constant speed until it leaves the
// arena margin or hits the opponent.
type Projectile struct {
	Rect     gamemath.Rect
	Dir      float64 // +1 right, -1 left
	Speed    float64
	Damage   float64
	Kind     ProjectileKind
	Ultimate config.UltimateKind // set for ProjectileUltimate
	alive    bool
}

// Update moves the projectile and kills it once it is outside [minX, maxX].
func (p *Projectile) Update(minX, maxX float64) {
	if !p.alive {
		return
	}
	p.Rect.X += p.Dir * p.Speed
	if p.Rect.X < minX || p.Rect.X > maxX {
		p.alive = false
	}
}

// Alive reports whether the projectile can still hit.
func (p *Projectile) Alive() bool { return p.alive }

// Kill removes the projectile after an impact.
func (p *Projectile) Kill() { p.alive = false }
