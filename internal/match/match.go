package match

import (
	"github.com/google/uuid"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
)

// PlayerID identifies one of the two seats in a match.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "P1"
	case PlayerTwo:
		return "P2"
	default:
		return "P?"
	}
}

// Options configure a new match. Zero values fall back to the defaults from
// the config package.
type Options struct {
	ID       string
	Arena    physics.Rect
	Classes  [2]object.ClassSpec
	Listener Listener
}

// Match is one round between two combatants. It owns the combatants and
// every projectile in flight; nothing outside Step mutates them.
type Match struct {
	id       string
	arena    physics.Rect
	listener Listener

	combatants  [2]*object.Combatant
	projectiles []*object.Projectile

	prevInput input.Snapshot
	tick      uint64
	outcome   Outcome
}

// New creates a match with both combatants at their spawn points, player
// one on the left facing right and player two on the right facing left.
func New(opts Options) *Match {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Arena.Width() <= 0 || opts.Arena.Height() <= 0 {
		opts.Arena = physics.Rect{MaxX: config.ArenaWidth, MaxY: config.ArenaHeight}
	}
	for i := range opts.Classes {
		if opts.Classes[i].MaxHealth <= 0 {
			opts.Classes[i] = object.Warrior.Spec()
		}
	}

	a := opts.Arena
	midY := a.MinY + a.Height()/2
	m := &Match{
		id:       opts.ID,
		arena:    a,
		listener: opts.Listener,
	}
	m.combatants[PlayerOne] = object.NewCombatant(int(PlayerOne), opts.Classes[PlayerOne], a.MinX+config.SpawnInset, midY, 1, 0)
	m.combatants[PlayerTwo] = object.NewCombatant(int(PlayerTwo), opts.Classes[PlayerTwo], a.MaxX-config.SpawnInset, midY, -1, 0)
	return m
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Tick returns the number of steps taken so far.
func (m *Match) Tick() uint64 { return m.tick }

// Arena returns the playable bounds.
func (m *Match) Arena() physics.Rect { return m.arena }

// Outcome returns the current result.
func (m *Match) Outcome() Outcome { return m.outcome }

// HasConcluded reports whether the match is over.
func (m *Match) HasConcluded() bool { return m.outcome.Concluded }

// Winner returns the surviving player. It returns false while the match is
// running and on a draw.
func (m *Match) Winner() (PlayerID, bool) {
	if !m.outcome.Concluded || m.outcome.Draw {
		return 0, false
	}
	return m.outcome.Winner, true
}

// ProjectileCount returns the number of projectiles in flight.
func (m *Match) ProjectileCount() int { return len(m.projectiles) }

func (m *Match) emit(e Event) {
	if m.listener == nil {
		return
	}
	e.Match = m.id
	e.Tick = m.tick
	m.listener.OnEvent(e)
}
