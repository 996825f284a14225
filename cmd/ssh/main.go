package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/loop"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal("ssh server", "err", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(logger)

	workingDir, err := os.Getwd()
	if err != nil {
		logger.Warn("failed to get working directory", "err", err)
	}
	logger.Info("ssh config",
		"host", cfg.SSHHost, "port", cfg.SSHPort, "hostKey", cfg.SSHHostKey,
		"maxSessions", cfg.SSHMaxSessions, "workingDir", workingDir)

	slots := newSlots(cfg.SSHMaxSessions)
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			arenaMiddleware(logger, slots, cfg.KeyHold),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Key presses are tiny writes; don't let Nagle batch them.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down ssh server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// arenaMiddleware runs one hot-seat session per SSH connection. Both players
// share the connecting terminal.
func arenaMiddleware(logger *log.Logger, slots *slots, keyHold time.Duration) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			if !slots.acquire() {
				wish.Fatalln(sess, "The arena is full, try again later.")
				return
			}
			defer slots.release()

			l := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			l.Info("session started", "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height, "active", slots.inUse())

			size := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go size.follow(winCh)

			err := loop.Run(sess.Context(), sess, sess, loop.Options{
				TermSizeFunc: size.getSize,
				KeyHold:      keyHold,
				Logger:       l,
			})
			if err != nil {
				l.Error("session failed", "err", err)
			}
			l.Info("session ended")
			next(sess)
		}
	}
}
