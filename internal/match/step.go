package match

import (
	"time"

	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/invariant"
)

// Step advances the match by one tick of length dt using the given input
// snapshot. Player one's input is always applied before player two's. Step
// does nothing once the match has concluded.
func (m *Match) Step(dt time.Duration, in input.Snapshot) {
	if m.outcome.Concluded {
		return
	}
	m.tick++

	m.applyInput(PlayerOne, in)
	m.applyInput(PlayerTwo, in)

	for _, c := range m.combatants {
		c.Update(dt)
	}

	m.advanceProjectiles(dt)
	m.prune()
	m.evaluate()

	m.prevInput = in
}

func (m *Match) applyInput(id PlayerID, in input.Snapshot) {
	c := m.combatants[id]
	if !c.IsAlive() {
		return
	}
	ctl := input.PlayerControls[id]

	dx, dy := ctl.Axis(in)
	b := m.arena.Inset(c.Width/2, c.Height/2)
	c.Move(dx, dy, b.MinX, b.MaxX, b.MinY, b.MaxY)

	if in.IsActive(ctl.Reload) && c.Reload() {
		m.emit(Event{Kind: EventReloadStarted, Player: id, Weapon: c.Weapon().Name()})
	}

	if in.JustPressed(m.prevInput, ctl.SwitchWeapon) {
		c.SwitchWeapon()
		m.emit(Event{Kind: EventWeaponSwitched, Player: id, Weapon: c.Weapon().Name()})
	}

	if in.IsActive(ctl.Attack) {
		if shot, ok := c.Attack(); ok {
			m.spawn(shot)
			m.emit(Event{Kind: EventFired, Player: id, Weapon: c.Weapon().Name()})
		}
	}

	invariant.Check(m.arena.Contains(c.X, c.Y), "%s at (%.2f, %.2f) outside arena", id, c.X, c.Y)
}
