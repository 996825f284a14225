package match

import (
	"time"

	"github.com/tomz197/arena/internal/invariant"
	"github.com/tomz197/arena/internal/object"
)

func (m *Match) spawn(shot object.Shot) {
	m.projectiles = append(m.projectiles, object.Spawn(shot))
}

// advanceProjectiles moves every projectile and resolves hits. Projectiles
// that leave the arena are only marked; removal happens in prune.
func (m *Match) advanceProjectiles(dt time.Duration) {
	for _, p := range m.projectiles {
		p.Update(dt, m.arena)
		if !p.Active() {
			continue
		}

		id, ok := m.firstHit(p)
		if !ok {
			continue
		}
		target := m.combatants[id]
		applied := target.TakeDamage(p.Damage)
		p.Deactivate()

		m.emit(Event{
			Kind:   EventHit,
			Player: id,
			Owner:  PlayerID(p.Owner),
			Damage: applied,
			Health: target.Health,
		})
	}
}

// firstHit returns the first living combatant whose hitbox overlaps p.
// Player one is checked first, so a projectile overlapping both hitboxes
// only ever damages player one.
func (m *Match) firstHit(p *object.Projectile) (PlayerID, bool) {
	hb := p.Hitbox()
	for _, id := range [...]PlayerID{PlayerOne, PlayerTwo} {
		c := m.combatants[id]
		if c.IsAlive() && hb.Intersects(c.Hitbox()) {
			return id, true
		}
	}
	return 0, false
}

// prune compacts the projectile slice in place, keeping active projectiles
// in their original order.
func (m *Match) prune() {
	before := len(m.projectiles)
	removed := 0
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		if p.Active() {
			kept = append(kept, p)
		} else {
			removed++
		}
	}
	clear(m.projectiles[len(kept):])
	m.projectiles = kept

	invariant.Check(len(kept) == before-removed, "prune kept %d of %d with %d removed", len(kept), before, removed)
}
