package loop

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/object"
)

var none input.Snapshot

func press(sigs ...input.Signal) input.Snapshot {
	return input.Snapshot(0).With(sigs...)
}

// tap presses sig for one tick and releases it on the next.
func tap(s *Session, sig input.Signal) {
	s.Update(config.TickTime, press(sig))
	s.Update(config.TickTime, none)
}

func TestSessionFlow(t *testing.T) {
	s := NewSession(SessionOptions{})
	assert.Equal(t, ScreenTitle, s.Screen())
	assert.Nil(t, s.Match())

	tap(s, input.Confirm)
	assert.Equal(t, ScreenSelect, s.Screen())

	tap(s, input.Confirm)
	require.Equal(t, ScreenPlaying, s.Screen())
	require.NotNil(t, s.Match())
	assert.Equal(t, "Warrior", s.Match().View().Combatants[0].Class)
	assert.Equal(t, "Mage", s.Match().View().Combatants[1].Class)
}

func TestSessionConfirmActsOncePerPress(t *testing.T) {
	s := NewSession(SessionOptions{})

	for range 10 {
		s.Update(config.TickTime, press(input.Confirm))
	}
	assert.Equal(t, ScreenSelect, s.Screen(), "held confirm must not skip class selection")
}

func TestSessionClassSelection(t *testing.T) {
	s := NewSession(SessionOptions{})
	tap(s, input.Confirm)

	tap(s, input.P1Right)
	tap(s, input.P2Left)
	assert.Equal(t, [2]object.Class{object.Mage, object.Warrior}, s.Classes())

	tap(s, input.P1Left)
	tap(s, input.P1Left)
	assert.Equal(t, [2]object.Class{object.Sniper, object.Warrior}, s.Classes())

	// Holding a direction cycles once.
	for range 5 {
		s.Update(config.TickTime, press(input.P2Right))
	}
	s.Update(config.TickTime, none)
	assert.Equal(t, object.Mage, s.Classes()[1])
}

func TestSessionMatchRunsAndConcludes(t *testing.T) {
	var events []match.Event
	s := NewSession(SessionOptions{
		Classes:  [2]object.Class{object.Sniper, object.Sniper},
		Listener: match.ListenerFunc(func(e match.Event) { events = append(events, e) }),
	})
	tap(s, input.Confirm)
	tap(s, input.Confirm)
	require.Equal(t, ScreenPlaying, s.Screen())

	// Both snipers face each other on the same row; player one reloads
	// whenever empty, player two never shoots.
	for range 60 * config.TickRate {
		in := press(input.P1Attack)
		if s.Match().View().Combatants[0].Ammo == 0 {
			in = in.With(input.P1Reload)
		}
		s.Update(config.TickTime, in)
		if s.Screen() != ScreenPlaying {
			break
		}
	}

	require.Equal(t, ScreenOver, s.Screen())
	winner, ok := s.Match().Winner()
	require.True(t, ok)
	assert.Equal(t, match.PlayerOne, winner)
	wins, draws := s.Score()
	assert.Equal(t, [2]int{1, 0}, wins)
	assert.Zero(t, draws)
	assert.NotEmpty(t, events)
	assert.Equal(t, match.EventConcluded, events[len(events)-1].Kind)

	// Rematch goes back through class selection.
	tap(s, input.Confirm)
	assert.Equal(t, ScreenSelect, s.Screen())
	tap(s, input.Confirm)
	assert.Equal(t, ScreenPlaying, s.Screen())
	assert.False(t, s.Match().HasConcluded())
}

func TestSessionQuitFromAnyScreen(t *testing.T) {
	for _, steps := range [][]input.Signal{
		nil,
		{input.Confirm},
		{input.Confirm, input.Confirm},
	} {
		s := NewSession(SessionOptions{})
		for _, sig := range steps {
			tap(s, sig)
		}
		screen := s.Screen()

		s.Update(config.TickTime, press(input.Quit))
		assert.True(t, s.Done(), "quit on %s", screen)

		s.Update(config.TickTime, press(input.Confirm))
		assert.Equal(t, screen, s.Screen(), "no updates after quit")
	}
}

func TestSessionLogsMatchLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := NewSession(SessionOptions{Logger: logger})

	tap(s, input.Confirm)
	tap(s, input.Confirm)
	s.Update(config.TickTime, press(input.P1Attack))

	out := buf.String()
	assert.Contains(t, out, "match started")
	assert.Contains(t, out, "p1=Warrior")
	assert.Contains(t, out, "fired")
	assert.Contains(t, out, "weapon=Rifle")
}
