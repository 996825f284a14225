package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/match"
)

// Options configure Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	KeyHold      time.Duration
	Keymap       input.Keymap
	Logger       *log.Logger
	Listener     match.Listener
}

// Run reads key presses from r and draws a session to w at the fixed tick
// rate until the players quit, r ends or ctx is cancelled. Each tick runs
// Input → Update → Draw. r and w are expected to be a raw-mode terminal.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = config.DefaultKeyHold
	}
	if opts.Keymap.Bytes == nil {
		opts.Keymap = input.DefaultKeymap()
	}

	keys := input.NewState(opts.KeyHold)
	stream := input.StartStream(r, keys, opts.Keymap)
	sess := NewSession(SessionOptions{Logger: opts.Logger, Listener: opts.Listener})
	renderer := newANSIRenderer(w, opts.TermSizeFunc)

	draw.HideCursor(w)
	defer func() {
		draw.ClearScreen(w)
		draw.ShowCursor(w)
	}()

	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stream.Done():
			if err := stream.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		case now := <-ticker.C:
			sess.Update(config.TickTime, keys.Snapshot(now))
			if sess.Done() {
				return nil
			}
			if err := renderer.frame(sess); err != nil {
				return fmt.Errorf("draw frame: %w", err)
			}
		}
	}
}
