// Package tui is the tcell front end for local play.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/match"
)

// Options configure Run.
type Options struct {
	KeyHold  time.Duration
	Keymap   input.Keymap
	Logger   *log.Logger
	Listener match.Listener
}

// Run initialises screen, plays a session on it until the players quit or
// ctx is cancelled, and finalises the screen before returning.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	if opts.KeyHold <= 0 {
		opts.KeyHold = config.DefaultKeyHold
	}
	if opts.Keymap.Bytes == nil {
		opts.Keymap = input.DefaultKeymap()
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	keys := input.NewState(opts.KeyHold)
	sess := loop.NewSession(loop.SessionOptions{Logger: opts.Logger, Listener: opts.Listener})
	p := newPainter(screen)

	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if sig, ok := keySignal(ev, opts.Keymap); ok {
					keys.Press(sig, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			sess.Update(config.TickTime, keys.Snapshot(now))
			if sess.Done() {
				return nil
			}
			p.frame(sess)
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
