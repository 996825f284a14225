package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Renderer selects the local front end.
type Renderer string

const (
	RendererTcell Renderer = "tcell"
	RendererANSI  Renderer = "ansi"
)

// Config is the runtime configuration shared by the commands.
type Config struct {
	Renderer Renderer
	KeyHold  time.Duration
	Audio    bool

	LogLevel string
	LogFile  string

	SSHHost        string
	SSHPort        string
	SSHHostKey     string
	SSHDisplayHost string
	SSHMaxSessions int

	WebHost string
	WebPort string
}

// Load reads an optional .env file from the working directory and then
// builds a Config from the environment. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Renderer:       Renderer(strings.ToLower(GetEnv("ARENA_RENDERER", string(RendererTcell)))),
		LogLevel:       GetEnv("ARENA_LOG_LEVEL", "info"),
		LogFile:        GetEnv("ARENA_LOG_FILE", ""),
		SSHHost:        GetEnv("SSH_HOST", "::"),
		SSHPort:        GetEnv("SSH_PORT", "2222"),
		SSHHostKey:     GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),
		SSHDisplayHost: GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		WebHost:        GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort:        GetEnv("WEB_PORT", "8080"),
	}

	var errs []error
	var err error
	if cfg.KeyHold, err = GetEnvDuration("ARENA_KEY_HOLD", DefaultKeyHold); err != nil {
		errs = append(errs, err)
	}
	if cfg.Audio, err = GetEnvBool("ARENA_AUDIO", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.SSHMaxSessions, err = GetEnvInt("SSH_MAX_SESSIONS", 32); err != nil {
		errs = append(errs, err)
	} else if cfg.SSHMaxSessions < 1 {
		errs = append(errs, fmt.Errorf("SSH_MAX_SESSIONS=%d: %w", cfg.SSHMaxSessions, ErrInvalidValue))
	}
	switch cfg.Renderer {
	case RendererTcell, RendererANSI:
	default:
		errs = append(errs, fmt.Errorf("ARENA_RENDERER=%q: %w", cfg.Renderer, ErrInvalidValue))
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("ARENA_LOG_LEVEL=%q: %w", cfg.LogLevel, ErrInvalidValue))
	}

	return cfg, errors.Join(errs...)
}

// NewLogger builds the process logger. When LogFile is set, output goes to
// that file (appending) and the returned closer must be called on exit;
// otherwise output goes to fallback.
func (c Config) NewLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
