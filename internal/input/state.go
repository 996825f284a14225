package input

import (
	"sync"
	"time"
)

// State is the set of currently held signals. It is written by an event
// source goroutine and read by the tick through Snapshot.
//
// Sources that report releases call Press and Release and use a zero hold
// window. Press-only sources (terminals) rely on the hold window: a signal
// stays active for hold after its most recent press.
type State struct {
	mu   sync.RWMutex
	hold time.Duration
	down [signalCount]bool
	last [signalCount]time.Time
}

// NewState creates an empty State with the given hold window.
func NewState(hold time.Duration) *State {
	return &State{hold: hold}
}

// Press marks sig as held at the given time.
func (s *State) Press(sig Signal, at time.Time) {
	if sig >= signalCount {
		return
	}
	s.mu.Lock()
	s.down[sig] = true
	s.last[sig] = at
	s.mu.Unlock()
}

// Release marks sig as no longer held.
func (s *State) Release(sig Signal) {
	if sig >= signalCount {
		return
	}
	s.mu.Lock()
	s.down[sig] = false
	s.mu.Unlock()
}

// Clear releases every signal, e.g. on screen transitions so a key held on
// a menu does not leak into the next screen.
func (s *State) Clear() {
	s.mu.Lock()
	s.down = [signalCount]bool{}
	s.mu.Unlock()
}

// Snapshot returns the signals held at now.
func (s *State) Snapshot(now time.Time) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap Snapshot
	for sig := Signal(0); sig < signalCount; sig++ {
		if !s.down[sig] {
			continue
		}
		if s.hold > 0 && now.Sub(s.last[sig]) >= s.hold {
			continue
		}
		snap |= 1 << sig
	}
	return snap
}
