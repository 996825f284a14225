package match

import (
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
)

// CombatantView is a read-only copy of a combatant for renderers.
type CombatantView struct {
	Player    PlayerID
	Class     string
	X, Y      float64
	FX, FY    float64
	Width     float64
	Height    float64
	Health    int
	MaxHealth int
	Alive     bool

	Weapon         string
	WeaponState    object.WeaponState
	Ammo           int
	MagazineSize   int
	ReloadProgress float64
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	X, Y  float64
	Size  float64
	Owner PlayerID
}

// View is a snapshot of everything a renderer needs for one frame.
type View struct {
	ID          string
	Tick        uint64
	Arena       physics.Rect
	Combatants  [2]CombatantView
	Projectiles []ProjectileView
	Outcome     Outcome
}

// View copies the current state. The result shares nothing with the match.
func (m *Match) View() View {
	v := View{
		ID:          m.id,
		Tick:        m.tick,
		Arena:       m.arena,
		Outcome:     m.outcome,
		Projectiles: make([]ProjectileView, 0, len(m.projectiles)),
	}
	for i, c := range m.combatants {
		w := c.Weapon()
		v.Combatants[i] = CombatantView{
			Player:         PlayerID(i),
			Class:          c.Class().Name,
			X:              c.X,
			Y:              c.Y,
			FX:             c.FX,
			FY:             c.FY,
			Width:          c.Width,
			Height:         c.Height,
			Health:         c.Health,
			MaxHealth:      c.MaxHealth,
			Alive:          c.IsAlive(),
			Weapon:         w.Name(),
			WeaponState:    w.State(),
			Ammo:           w.Ammo(),
			MagazineSize:   w.MagazineSize(),
			ReloadProgress: w.ReloadProgress(),
		}
	}
	for _, p := range m.projectiles {
		v.Projectiles = append(v.Projectiles, ProjectileView{
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			Owner: PlayerID(p.Owner),
		})
	}
	return v
}
