// Package loop runs the arena front end: the screen state machine shared by
// every renderer and the ANSI terminal loop used locally and over SSH.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/object"
)

// Screen is the phase a session is in.
type Screen int

const (
	ScreenTitle   Screen = iota // Title card
	ScreenSelect                // Class selection
	ScreenPlaying               // Match running
	ScreenOver                  // Match concluded
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenSelect:
		return "select"
	case ScreenPlaying:
		return "playing"
	case ScreenOver:
		return "over"
	default:
		return "unknown"
	}
}

// SessionOptions configure a Session.
type SessionOptions struct {
	Logger *log.Logger
	// Listener receives every match event in addition to the session's own
	// logging, e.g. the audio player.
	Listener match.Listener
	// Classes are the initial picks on the selection screen.
	Classes [2]object.Class
}

// Session is one hot-seat sitting: a title card, class selection, any
// number of matches and their results. It is driven one tick at a time by
// Update and does no I/O besides logging, so any renderer can draw it.
type Session struct {
	logger   *log.Logger
	listener match.Listener

	screen  Screen
	classes [2]object.Class
	match   *match.Match
	wins    [2]int
	draws   int
	prev    input.Snapshot
	done    bool
}

// NewSession creates a session on the title screen.
func NewSession(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	classes := opts.Classes
	if classes == [2]object.Class{} {
		classes = [2]object.Class{object.Warrior, object.Mage}
	}
	return &Session{
		logger:   logger,
		listener: opts.Listener,
		screen:   ScreenTitle,
		classes:  classes,
	}
}

// Update advances the session by one tick. Quit ends the session from any
// screen; Confirm and the class selection keys act once per press.
func (s *Session) Update(dt time.Duration, in input.Snapshot) {
	if s.done {
		return
	}
	defer func() { s.prev = in }()

	if in.IsActive(input.Quit) {
		s.done = true
		s.logger.Info("session quit", "screen", s.screen)
		return
	}

	switch s.screen {
	case ScreenTitle:
		if s.pressed(in, input.Confirm) {
			s.setScreen(ScreenSelect)
		}
	case ScreenSelect:
		s.updateSelect(in)
	case ScreenPlaying:
		s.match.Step(dt, in)
		if s.match.HasConcluded() {
			s.finishMatch()
		}
	case ScreenOver:
		if s.pressed(in, input.Confirm) {
			s.setScreen(ScreenSelect)
		}
	}
}

func (s *Session) pressed(in input.Snapshot, sig input.Signal) bool {
	return in.JustPressed(s.prev, sig)
}

func (s *Session) setScreen(screen Screen) {
	s.logger.Debug("screen", "from", s.screen, "to", screen)
	s.screen = screen
}

func (s *Session) updateSelect(in input.Snapshot) {
	for i, ctl := range input.PlayerControls {
		if s.pressed(in, ctl.Left) {
			s.classes[i] = s.classes[i].Prev()
		}
		if s.pressed(in, ctl.Right) {
			s.classes[i] = s.classes[i].Next()
		}
	}
	if s.pressed(in, input.Confirm) {
		s.startMatch()
	}
}

func (s *Session) startMatch() {
	s.match = match.New(match.Options{
		Classes:  [2]object.ClassSpec{s.classes[0].Spec(), s.classes[1].Spec()},
		Listener: match.Listeners{eventLogger{s.logger}, s.listener},
	})
	s.logger.Info("match started", "match", s.match.ID(), "p1", s.classes[0], "p2", s.classes[1])
	s.setScreen(ScreenPlaying)
}

func (s *Session) finishMatch() {
	o := s.match.Outcome()
	if w, ok := s.match.Winner(); ok {
		s.wins[w]++
	} else {
		s.draws++
	}
	s.logger.Info("match concluded", "match", s.match.ID(), "outcome", o, "ticks", s.match.Tick())
	s.setScreen(ScreenOver)
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Classes returns the current class picks.
func (s *Session) Classes() [2]object.Class { return s.classes }

// Match returns the current or most recent match, or nil before the first.
func (s *Session) Match() *match.Match { return s.match }

// Score returns the wins per player and the number of draws so far.
func (s *Session) Score() (wins [2]int, draws int) { return s.wins, s.draws }

// Done reports whether the players quit.
func (s *Session) Done() bool { return s.done }

// eventLogger logs match events at debug level.
type eventLogger struct {
	logger *log.Logger
}

func (l eventLogger) OnEvent(e match.Event) {
	switch e.Kind {
	case match.EventHit:
		l.logger.Debug("hit", "match", e.Match, "tick", e.Tick, "player", e.Player, "by", e.Owner, "damage", e.Damage, "health", e.Health)
	case match.EventFired, match.EventReloadStarted, match.EventWeaponSwitched:
		l.logger.Debug(e.Kind.String(), "match", e.Match, "tick", e.Tick, "player", e.Player, "weapon", e.Weapon)
	}
}
