package match

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// EventKind names something that happened during a step.
type EventKind int

const (
	EventFired EventKind = iota
	EventHit
	EventReloadStarted
	EventWeaponSwitched
	EventConcluded
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventReloadStarted:
		return "reload"
	case EventWeaponSwitched:
		return "switch"
	case EventConcluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// Event is delivered to the listener after the change it describes has been
// applied. Fields not relevant to Kind are zero.
type Event struct {
	Kind  EventKind
	Match string
	Tick  uint64

	// Player is the actor: the shooter, reloader or switcher, or the
	// player hit.
	Player PlayerID
	// Owner is the shooter of a projectile that hit.
	Owner PlayerID
	// Damage and Health are the damage applied and the health left after
	// a hit.
	Damage int
	Health int
	// Weapon is the weapon name for fire, reload and switch events.
	Weapon string

	Outcome Outcome
}

// Listener observes match events. Implementations must not call back into
// the match.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Listeners fans an event out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		if l != nil {
			l.OnEvent(e)
		}
	}
}
