package match

// Outcome is the result of a match. Winner is only meaningful when
// Concluded is set and Draw is not.
type Outcome struct {
	Concluded bool
	Winner    PlayerID
	Draw      bool
}

func (o Outcome) String() string {
	switch {
	case !o.Concluded:
		return "in progress"
	case o.Draw:
		return "draw"
	default:
		return o.Winner.String() + " wins"
	}
}

// evaluate derives the outcome from combatant liveness. A double knockout
// in the same tick is a draw.
func (m *Match) evaluate() {
	one := m.combatants[PlayerOne].IsAlive()
	two := m.combatants[PlayerTwo].IsAlive()

	switch {
	case one && two:
		return
	case !one && !two:
		m.outcome = Outcome{Concluded: true, Draw: true}
	case one:
		m.outcome = Outcome{Concluded: true, Winner: PlayerOne}
	default:
		m.outcome = Outcome{Concluded: true, Winner: PlayerTwo}
	}
	m.emit(Event{Kind: EventConcluded, Outcome: m.outcome})
}
