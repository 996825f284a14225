package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() WeaponSpec {
	return WeaponSpec{
		Name:            "test",
		MagazineSize:    3,
		FireInterval:    200 * time.Millisecond,
		ReloadDuration:  time.Second,
		Damage:          25,
		ProjectileSpeed: 50,
	}
}

func TestWeaponFireProducesShot(t *testing.T) {
	w := NewWeaponFromSpec(testSpec())

	shot, ok := w.Fire(10, 20, 0, -1)
	require.True(t, ok)
	assert.Equal(t, Shot{X: 10, Y: 20, VX: 0, VY: -50, Damage: 25}, shot)
	assert.Equal(t, 2, w.Ammo())
	assert.Equal(t, WeaponCooling, w.State())
}

func TestWeaponCooldownBlocksFiring(t *testing.T) {
	w := NewWeaponFromSpec(testSpec())
	_, ok := w.Fire(0, 0, 1, 0)
	require.True(t, ok)

	_, ok = w.Fire(0, 0, 1, 0)
	assert.False(t, ok, "second shot inside the fire interval")
	assert.Equal(t, 2, w.Ammo())

	w.Tick(199 * time.Millisecond)
	_, ok = w.Fire(0, 0, 1, 0)
	assert.False(t, ok)

	w.Tick(time.Millisecond)
	assert.Equal(t, WeaponReady, w.State())
	_, ok = w.Fire(0, 0, 1, 0)
	assert.True(t, ok)
}

func TestWeaponEmptyNeverFiresOrChanges(t *testing.T) {
	spec := testSpec()
	spec.MagazineSize = 1
	spec.FireInterval = 0
	w := NewWeaponFromSpec(spec)

	_, ok := w.Fire(0, 0, 1, 0)
	require.True(t, ok)
	require.Equal(t, WeaponEmpty, w.State())

	for i := 0; i < 5; i++ {
		before := *w
		_, ok := w.Fire(0, 0, 1, 0)
		assert.False(t, ok)
		assert.Equal(t, before, *w, "failed fire must not change state")
	}

	w.Tick(10 * time.Second)
	assert.Equal(t, WeaponEmpty, w.State(), "empty weapons do not reload on their own")
}

func TestWeaponReloadScenario(t *testing.T) {
	// ammo=1, reload 2s: fire, fail, reload, two seconds of ticks, fire.
	w := NewWeaponFromSpec(WeaponSpec{
		Name:            "single",
		MagazineSize:    1,
		FireInterval:    100 * time.Millisecond,
		ReloadDuration:  2 * time.Second,
		Damage:          10,
		ProjectileSpeed: 60,
	})

	_, ok := w.Fire(0, 0, 1, 0)
	require.True(t, ok)
	_, ok = w.Fire(0, 0, 1, 0)
	require.False(t, ok)

	require.True(t, w.Reload())
	for i := 0; i < 19; i++ {
		w.Tick(100 * time.Millisecond)
		_, ok = w.Fire(0, 0, 1, 0)
		require.False(t, ok, "fired mid-reload after %d ticks", i+1)
	}
	w.Tick(100 * time.Millisecond)

	assert.Equal(t, 1, w.Ammo())
	_, ok = w.Fire(0, 0, 1, 0)
	assert.True(t, ok)
}

func TestWeaponReloadRestoresExactlyMagazine(t *testing.T) {
	w := NewWeapon(Rifle)
	for i := 0; i < 5; i++ {
		_, ok := w.Fire(0, 0, 1, 0)
		require.True(t, ok)
		w.Tick(w.spec.FireInterval)
	}

	require.True(t, w.Reload())
	assert.False(t, w.Reload(), "reload while reloading is rejected")
	assert.Equal(t, WeaponReloading, w.State())

	w.Tick(w.spec.ReloadDuration / 2)
	assert.InDelta(t, 0.5, w.ReloadProgress(), 1e-9)

	w.Tick(time.Hour)
	assert.Equal(t, w.MagazineSize(), w.Ammo())
	assert.False(t, w.Reloading())
	assert.Zero(t, w.ReloadProgress())

	// Reloading a full magazine still lands exactly on the maximum.
	require.True(t, w.Reload())
	w.Tick(time.Hour)
	assert.Equal(t, w.MagazineSize(), w.Ammo())
}

func TestWeaponReloadingBlocksFiringWithAmmo(t *testing.T) {
	w := NewWeaponFromSpec(testSpec())
	require.True(t, w.Reload())

	_, ok := w.Fire(0, 0, 1, 0)
	assert.False(t, ok)
	assert.Equal(t, 3, w.Ammo())
}

func TestWeaponZeroDurationReloadCompletesImmediately(t *testing.T) {
	spec := testSpec()
	spec.ReloadDuration = 0
	w := NewWeaponFromSpec(spec)
	_, _ = w.Fire(0, 0, 1, 0)

	require.True(t, w.Reload())
	assert.False(t, w.Reloading())
	assert.Equal(t, 3, w.Ammo())
}

func TestArchetypeRotation(t *testing.T) {
	assert.Equal(t, Rifle, Pistol.Next())
	assert.Equal(t, Pistol, Longshot.Next())
	assert.Equal(t, Pistol, Custom.Next())

	seen := map[Archetype]bool{}
	a := Pistol
	for i := 0; i < int(archetypeCount); i++ {
		seen[a] = true
		a = a.Next()
	}
	assert.Len(t, seen, int(archetypeCount))
	assert.Equal(t, Pistol, a)

	list := Archetypes()
	require.Len(t, list, int(archetypeCount))
	for i, got := range list {
		assert.Equal(t, list[(i+1)%len(list)], got.Next())
	}
}

func TestNewWeaponFromSpecClampsMagazine(t *testing.T) {
	spec := testSpec()
	spec.MagazineSize = 0
	w := NewWeaponFromSpec(spec)

	assert.Equal(t, 1, w.MagazineSize())
	assert.Equal(t, 1, w.Ammo())
	assert.Equal(t, Custom, w.Archetype())
}
