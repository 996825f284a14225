package object

import (
	"time"

	"github.com/tomz197/arena/internal/invariant"
)

// WeaponState is the externally visible firing state of a weapon.
type WeaponState int

const (
	WeaponReady     WeaponState = iota // Can fire
	WeaponCooling                      // Waiting out the fire interval
	WeaponEmpty                        // Magazine empty, needs a manual reload
	WeaponReloading                    // Timed reload in progress
)

func (s WeaponState) String() string {
	switch s {
	case WeaponReady:
		return "ready"
	case WeaponCooling:
		return "cooling"
	case WeaponEmpty:
		return "empty"
	case WeaponReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// Archetype identifies one of the built-in weapons.
type Archetype int

const (
	Pistol Archetype = iota
	Rifle
	Arcane
	Longshot
	archetypeCount

	// Custom marks weapons built from an ad-hoc WeaponSpec.
	Custom Archetype = -1
)

// WeaponSpec describes a weapon's fixed parameters.
type WeaponSpec struct {
	Name            string
	MagazineSize    int
	FireInterval    time.Duration // Cooldown started by each shot
	ReloadDuration  time.Duration
	Damage          int
	ProjectileSpeed float64 // Logical units per second
}

// Built-in weapons, in switch rotation order. Projectile speed stays below
// (CombatantWidth+ProjectileSize)*TickRate so a shot cannot tunnel through
// a hitbox between two ticks.
var archetypes = [archetypeCount]WeaponSpec{
	Pistol:   {Name: "Pistol", MagazineSize: 12, FireInterval: 250 * time.Millisecond, ReloadDuration: 1200 * time.Millisecond, Damage: 10, ProjectileSpeed: 90},
	Rifle:    {Name: "Rifle", MagazineSize: 30, FireInterval: 100 * time.Millisecond, ReloadDuration: 2 * time.Second, Damage: 6, ProjectileSpeed: 120},
	Arcane:   {Name: "Arcane Bolt", MagazineSize: 8, FireInterval: 400 * time.Millisecond, ReloadDuration: 1500 * time.Millisecond, Damage: 18, ProjectileSpeed: 70},
	Longshot: {Name: "Longshot", MagazineSize: 4, FireInterval: 900 * time.Millisecond, ReloadDuration: 2500 * time.Millisecond, Damage: 35, ProjectileSpeed: 180},
}

// Spec returns the parameters of a built-in archetype.
func (a Archetype) Spec() WeaponSpec {
	if a < 0 || a >= archetypeCount {
		return archetypes[Pistol]
	}
	return archetypes[a]
}

// Archetypes returns the built-in weapons in switch rotation order.
func Archetypes() []Archetype {
	return []Archetype{Pistol, Rifle, Arcane, Longshot}
}

// Next returns the archetype that follows a in the switch rotation.
func (a Archetype) Next() Archetype {
	if a < 0 || a >= archetypeCount {
		return Pistol
	}
	return (a + 1) % archetypeCount
}

// Weapon tracks ammunition, the fire-interval cooldown and manual reloads.
// Firing needs ammo, an elapsed cooldown and no reload in progress; an empty
// magazine stays empty until Reload is called.
type Weapon struct {
	spec      WeaponSpec
	archetype Archetype

	ammo       int
	cooldown   time.Duration
	reloading  bool
	reloadLeft time.Duration
}

// NewWeapon creates a full, ready weapon of a built-in archetype.
func NewWeapon(a Archetype) *Weapon {
	if a < 0 || a >= archetypeCount {
		a = Pistol
	}
	return newWeapon(a, archetypes[a])
}

// NewWeaponFromSpec creates a full, ready weapon from custom parameters.
// Magazine sizes below one are raised to one.
func NewWeaponFromSpec(spec WeaponSpec) *Weapon {
	if spec.MagazineSize < 1 {
		spec.MagazineSize = 1
	}
	return newWeapon(Custom, spec)
}

func newWeapon(a Archetype, spec WeaponSpec) *Weapon {
	return &Weapon{
		spec:      spec,
		archetype: a,
		ammo:      spec.MagazineSize,
	}
}

// Fire attempts a shot from (x, y) along the unit direction (dirX, dirY).
// On success it consumes one round and starts the cooldown; otherwise the
// weapon is left untouched.
func (w *Weapon) Fire(x, y, dirX, dirY float64) (Shot, bool) {
	if w.State() != WeaponReady {
		return Shot{}, false
	}

	w.ammo--
	w.cooldown = w.spec.FireInterval
	w.checkInvariants()

	return Shot{
		X:      x,
		Y:      y,
		VX:     dirX * w.spec.ProjectileSpeed,
		VY:     dirY * w.spec.ProjectileSpeed,
		Damage: w.spec.Damage,
	}, true
}

// Reload starts a timed reload. It returns false if one is already running.
func (w *Weapon) Reload() bool {
	if w.reloading {
		return false
	}
	w.reloading = true
	w.reloadLeft = w.spec.ReloadDuration
	if w.reloadLeft <= 0 {
		w.finishReload()
	}
	return true
}

// Tick advances the cooldown and reload timers by dt.
func (w *Weapon) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}

	w.cooldown -= dt
	if w.cooldown < 0 {
		w.cooldown = 0
	}

	if w.reloading {
		w.reloadLeft -= dt
		if w.reloadLeft <= 0 {
			w.finishReload()
		}
	}
	w.checkInvariants()
}

func (w *Weapon) finishReload() {
	w.reloading = false
	w.reloadLeft = 0
	w.ammo = w.spec.MagazineSize
}

// State reports the firing state. Reloading takes precedence over cooling,
// cooling over empty.
func (w *Weapon) State() WeaponState {
	switch {
	case w.reloading:
		return WeaponReloading
	case w.cooldown > 0:
		return WeaponCooling
	case w.ammo == 0:
		return WeaponEmpty
	default:
		return WeaponReady
	}
}

// Ammo returns the rounds left in the magazine.
func (w *Weapon) Ammo() int { return w.ammo }

// MagazineSize returns the ammo count restored by a reload.
func (w *Weapon) MagazineSize() int { return w.spec.MagazineSize }

// Cooldown returns the time left before the next shot is allowed.
func (w *Weapon) Cooldown() time.Duration { return w.cooldown }

// Reloading reports whether a reload is in progress.
func (w *Weapon) Reloading() bool { return w.reloading }

// ReloadProgress returns the completed fraction of the running reload, or
// 0 when not reloading.
func (w *Weapon) ReloadProgress() float64 {
	if !w.reloading || w.spec.ReloadDuration <= 0 {
		return 0
	}
	return 1 - float64(w.reloadLeft)/float64(w.spec.ReloadDuration)
}

// Archetype returns the built-in archetype, or Custom.
func (w *Weapon) Archetype() Archetype { return w.archetype }

// Name returns the display name.
func (w *Weapon) Name() string { return w.spec.Name }

// Damage returns the damage dealt per shot.
func (w *Weapon) Damage() int { return w.spec.Damage }

func (w *Weapon) checkInvariants() {
	invariant.Check(w.ammo >= 0 && w.ammo <= w.spec.MagazineSize, "weapon %q ammo %d outside [0, %d]", w.spec.Name, w.ammo, w.spec.MagazineSize)
	invariant.Check(w.cooldown >= 0, "weapon %q negative cooldown %v", w.spec.Name, w.cooldown)
	invariant.Check(w.reloadLeft >= 0, "weapon %q negative reload timer %v", w.spec.Name, w.reloadLeft)
}
