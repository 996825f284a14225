package object

import (
	"time"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/physics"
)

// Shot describes a projectile to spawn. Weapons and combatants only produce
// shots; the match owns the projectiles created from them.
type Shot struct {
	X, Y   float64 // Muzzle position
	VX, VY float64 // Velocity in logical units per second
	Damage int
	Owner  int // Combatant ID that fired
}

// Projectile is a shot in flight.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Damage int
	Owner  int
	Size   float64
	active bool
}

// Spawn creates an active projectile from a shot.
func Spawn(s Shot) *Projectile {
	return &Projectile{
		X:      s.X,
		Y:      s.Y,
		VX:     s.VX,
		VY:     s.VY,
		Damage: s.Damage,
		Owner:  s.Owner,
		Size:   config.ProjectileSize,
		active: true,
	}
}

// Update moves the projectile by its velocity and deactivates it once its
// centre leaves bounds. Inactive projectiles do not move.
func (p *Projectile) Update(dt time.Duration, bounds physics.Rect) {
	if !p.active {
		return
	}
	secs := dt.Seconds()
	p.X += p.VX * secs
	p.Y += p.VY * secs

	if !bounds.Contains(p.X, p.Y) {
		p.active = false
	}
}

// Deactivate marks the projectile for removal. Safe to call repeatedly.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Active reports whether the projectile is still in play.
func (p *Projectile) Active() bool {
	return p.active
}

// Hitbox returns the projectile's bounds at its current position.
func (p *Projectile) Hitbox() physics.Rect {
	return physics.RectAround(p.X, p.Y, p.Size, p.Size)
}
