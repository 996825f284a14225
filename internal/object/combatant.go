package object

import (
	"math"
	"time"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/invariant"
	"github.com/tomz197/arena/internal/physics"
)

// muzzleClearance is the extra gap between a combatant's hitbox and the
// projectile it spawns.
const muzzleClearance = 0.25

// Combatant is a player-controlled fighter.
type Combatant struct {
	ID     int
	X, Y   float64 // Centre position
	FX, FY float64 // Facing, a unit vector

	Health    int
	MaxHealth int
	Speed     float64 // Logical units per tick
	Width     float64
	Height    float64

	class  ClassSpec
	weapon *Weapon
}

// NewCombatant creates a combatant at full health holding the class's
// starting weapon. (facingX, facingY) is normalised; a zero vector faces
// right.
func NewCombatant(id int, class ClassSpec, x, y, facingX, facingY float64) *Combatant {
	fx, fy := physics.Normalize(facingX, facingY)
	if fx == 0 && fy == 0 {
		fx = 1
	}
	return &Combatant{
		ID:        id,
		X:         x,
		Y:         y,
		FX:        fx,
		FY:        fy,
		Health:    class.MaxHealth,
		MaxHealth: class.MaxHealth,
		Speed:     class.Speed,
		Width:     config.CombatantWidth,
		Height:    config.CombatantHeight,
		class:     class,
		weapon:    NewWeapon(class.Weapon),
	}
}

// Move applies one tick of directional intent. Each component is reduced to
// {-1, 0, 1}, the vector is normalised so diagonals are not faster, and the
// resulting position is clamped to [minX, maxX]×[minY, maxY]. Facing follows
// any non-zero intent and is kept otherwise.
func (c *Combatant) Move(dx, dy, minX, maxX, minY, maxY float64) {
	if !c.IsAlive() {
		return
	}

	nx, ny := physics.Normalize(physics.Sign(dx), physics.Sign(dy))
	if nx != 0 || ny != 0 {
		c.FX, c.FY = nx, ny
	}

	c.X = physics.Clamp(c.X+nx*c.Speed, minX, maxX)
	c.Y = physics.Clamp(c.Y+ny*c.Speed, minY, maxY)
}

// Attack fires the held weapon along the facing direction. The shot spawns
// just outside the combatant's own hitbox.
func (c *Combatant) Attack() (Shot, bool) {
	if !c.IsAlive() {
		return Shot{}, false
	}

	offset := c.muzzleOffset()
	shot, ok := c.weapon.Fire(c.X+c.FX*offset, c.Y+c.FY*offset, c.FX, c.FY)
	if !ok {
		return Shot{}, false
	}
	shot.Owner = c.ID
	return shot, true
}

// muzzleOffset is far enough along any direction that the spawned
// projectile's hitbox cannot overlap the shooter's.
func (c *Combatant) muzzleOffset() float64 {
	half := config.ProjectileSize / 2
	return math.Hypot(c.Width/2, c.Height/2) + math.Hypot(half, half) + muzzleClearance
}

// SwitchWeapon replaces the held weapon with a fresh instance of the next
// archetype in the rotation.
func (c *Combatant) SwitchWeapon() {
	if !c.IsAlive() {
		return
	}
	c.weapon = NewWeapon(c.weapon.Archetype().Next())
}

// Reload starts a manual reload. It returns false when one is already
// running or the combatant is dead.
func (c *Combatant) Reload() bool {
	if !c.IsAlive() {
		return false
	}
	return c.weapon.Reload()
}

// Update advances the weapon timers. Call exactly once per tick.
func (c *Combatant) Update(dt time.Duration) {
	c.weapon.Tick(dt)
}

// TakeDamage subtracts amount from health, clamped at zero, and returns the
// damage actually applied. Non-positive amounts and dead combatants are
// ignored.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	if amount > c.Health {
		amount = c.Health
	}
	c.Health -= amount
	invariant.Check(c.Health >= 0 && c.Health <= c.MaxHealth, "combatant %d health %d outside [0, %d]", c.ID, c.Health, c.MaxHealth)
	return amount
}

// IsAlive reports whether health is above zero.
func (c *Combatant) IsAlive() bool {
	return c.Health > 0
}

// Hitbox returns the combatant's bounds at its current position.
func (c *Combatant) Hitbox() physics.Rect {
	return physics.RectAround(c.X, c.Y, c.Width, c.Height)
}

// Weapon returns the held weapon.
func (c *Combatant) Weapon() *Weapon {
	return c.weapon
}

// Class returns the stats the combatant was created with.
func (c *Combatant) Class() ClassSpec {
	return c.class
}
