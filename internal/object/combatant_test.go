package object

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClass() ClassSpec {
	return ClassSpec{Name: "tester", MaxHealth: 100, Speed: 2, Weapon: Pistol}
}

func TestNewCombatantDefaults(t *testing.T) {
	c := NewCombatant(1, testClass(), 10, 10, 0, 0)

	assert.Equal(t, 100, c.Health)
	assert.True(t, c.IsAlive())
	assert.Equal(t, 1.0, c.FX, "zero facing defaults to right")
	assert.Equal(t, Pistol, c.Weapon().Archetype())
	assert.Equal(t, c.Weapon().MagazineSize(), c.Weapon().Ammo())
}

func TestCombatantMoveOneTick(t *testing.T) {
	c := NewCombatant(1, testClass(), 5, 5, 1, 0)

	c.Move(1, 0, 0, 100, 0, 100)
	assert.Equal(t, 5+c.Speed, c.X)
	assert.Equal(t, 5.0, c.Y)
}

func TestCombatantMoveClampsToBounds(t *testing.T) {
	c := NewCombatant(1, testClass(), 5, 5, 1, 0)

	c.Move(1, 0, 0, 6, 0, 100)
	assert.Equal(t, 6.0, c.X)

	c.Move(-1, -1, 4, 6, 4.5, 100)
	assert.GreaterOrEqual(t, c.X, 4.0)
	assert.Equal(t, 4.5, c.Y)
}

func TestCombatantMoveDiagonalIsNormalised(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)

	c.Move(1, 1, 0, 100, 0, 100)
	dist := math.Hypot(c.X-50, c.Y-50)
	assert.InDelta(t, c.Speed, dist, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, c.FX, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, c.FY, 1e-9)
}

func TestCombatantMoveOutOfRangeIntentActsAsUnit(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)

	c.Move(7, 0, 0, 100, 0, 100)
	assert.Equal(t, 50+c.Speed, c.X)
}

func TestCombatantFacingPersistsOnZeroIntent(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)

	c.Move(0, -1, 0, 100, 0, 100)
	require.Equal(t, -1.0, c.FY)

	c.Move(0, 0, 0, 100, 0, 100)
	assert.Equal(t, 0.0, c.FX)
	assert.Equal(t, -1.0, c.FY)
}

func TestCombatantAttackSpawnsOutsideOwnHitbox(t *testing.T) {
	for _, dir := range [][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}} {
		c := NewCombatant(3, testClass(), 50, 50, dir[0], dir[1])

		shot, ok := c.Attack()
		require.True(t, ok)
		assert.Equal(t, 3, shot.Owner)
		assert.Equal(t, c.Weapon().Damage(), shot.Damage)

		p := Spawn(shot)
		assert.False(t, p.Hitbox().Intersects(c.Hitbox()), "shot along %v overlaps shooter", dir)
		assert.Greater(t, shot.VX*c.FX+shot.VY*c.FY, 0.0, "shot travels along facing")
	}
}

func TestCombatantAttackFailsWithoutSideEffects(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)
	_, ok := c.Attack()
	require.True(t, ok)
	ammo := c.Weapon().Ammo()

	_, ok = c.Attack()
	assert.False(t, ok, "cooldown still running")
	assert.Equal(t, ammo, c.Weapon().Ammo())
}

func TestCombatantSwitchWeaponRotatesFreshInstance(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)
	_, _ = c.Attack()
	old := c.Weapon()

	c.SwitchWeapon()
	w := c.Weapon()
	require.NotNil(t, w)
	assert.NotSame(t, old, w)
	assert.Equal(t, Rifle, w.Archetype())
	assert.Equal(t, w.MagazineSize(), w.Ammo())
	assert.Equal(t, WeaponReady, w.State())
}

func TestCombatantUpdateTicksWeapon(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)
	_, _ = c.Attack()
	require.Equal(t, WeaponCooling, c.Weapon().State())

	c.Update(time.Second)
	assert.Equal(t, WeaponReady, c.Weapon().State())
}

func TestCombatantTakeDamageScenario(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)

	for _, want := range []int{75, 50, 25} {
		c.TakeDamage(25)
		assert.Equal(t, want, c.Health)
		assert.True(t, c.IsAlive())
	}

	c.TakeDamage(25)
	assert.Equal(t, 0, c.Health)
	assert.False(t, c.IsAlive())
}

func TestCombatantTakeDamageClampsAndIgnoresNonPositive(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)

	assert.Zero(t, c.TakeDamage(0))
	assert.Zero(t, c.TakeDamage(-40), "negative damage must not heal")
	assert.Equal(t, 100, c.Health)

	assert.Equal(t, 100, c.TakeDamage(500))
	assert.Equal(t, 0, c.Health)
	assert.Zero(t, c.TakeDamage(10))
	assert.Equal(t, 0, c.Health)
}

func TestDeadCombatantIgnoresActions(t *testing.T) {
	c := NewCombatant(1, testClass(), 50, 50, 1, 0)
	c.TakeDamage(c.Health)
	w := c.Weapon()

	c.Move(1, 1, 0, 100, 0, 100)
	assert.Equal(t, 50.0, c.X)
	assert.Equal(t, 50.0, c.Y)

	_, ok := c.Attack()
	assert.False(t, ok)
	assert.False(t, c.Reload())
	c.SwitchWeapon()
	assert.Same(t, w, c.Weapon())
}

func TestClassCycling(t *testing.T) {
	assert.Equal(t, Mage, Warrior.Next())
	assert.Equal(t, Warrior, Sniper.Next())
	assert.Equal(t, Sniper, Warrior.Prev())
	assert.Equal(t, "Mage", Mage.String())
	assert.Len(t, Classes(), int(classCount))
}
