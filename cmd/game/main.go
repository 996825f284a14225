package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/arena/internal/audio"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/match"
	"github.com/tomz197/arena/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go somewhere when
	// ARENA_LOG_FILE is set.
	logger, closer, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var listener match.Listener
	if cfg.Audio {
		player, err := audio.NewPlayer()
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			listener = player
		}
	}

	logger.Info("starting", "renderer", cfg.Renderer, "audio", listener != nil)

	switch cfg.Renderer {
	case config.RendererANSI:
		return runANSI(ctx, cfg, logger, listener)
	default:
		return runTcell(ctx, cfg, logger, listener)
	}
}

func runTcell(ctx context.Context, cfg config.Config, logger *log.Logger, listener match.Listener) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	return tui.Run(ctx, screen, tui.Options{
		KeyHold:  cfg.KeyHold,
		Logger:   logger,
		Listener: listener,
	})
}

func runANSI(ctx context.Context, cfg config.Config, logger *log.Logger, listener match.Listener) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	return loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		KeyHold:  cfg.KeyHold,
		Logger:   logger,
		Listener: listener,
	})
}
