package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/arena/internal/physics"
)

var arena = physics.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 60}

func TestProjectileUpdateMovesByVelocity(t *testing.T) {
	p := Spawn(Shot{X: 10, Y: 10, VX: 30, VY: -6, Damage: 5, Owner: 2})

	p.Update(500*time.Millisecond, arena)
	assert.InDelta(t, 25, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
	assert.True(t, p.Active())
	assert.Equal(t, 2, p.Owner)
}

func TestProjectileLeavingBoundsDeactivates(t *testing.T) {
	p := Spawn(Shot{X: 98, Y: 30, VX: 100})

	p.Update(100*time.Millisecond, arena)
	assert.False(t, p.Active())

	x := p.X
	p.Update(100*time.Millisecond, arena)
	assert.Equal(t, x, p.X, "inactive projectiles stay put")
}

func TestProjectileDeactivateIsIdempotent(t *testing.T) {
	p := Spawn(Shot{X: 50, Y: 30})

	p.Deactivate()
	p.Deactivate()
	assert.False(t, p.Active())
}

func TestProjectileHitboxFollowsPosition(t *testing.T) {
	p := Spawn(Shot{X: 50, Y: 30, VX: 10})
	before := p.Hitbox()

	p.Update(time.Second, arena)
	after := p.Hitbox()
	assert.InDelta(t, before.MinX+10, after.MinX, 1e-9)
	assert.InDelta(t, p.Size, after.Width(), 1e-9)
}
