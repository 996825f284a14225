package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("ARENA_TEST_SET", "value")
	t.Setenv("ARENA_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("ARENA_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ARENA_TEST_UNSET_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ARENA_TEST_EMPTY", "fallback"))
}

func TestGetEnvTypedParsing(t *testing.T) {
	t.Setenv("ARENA_TEST_INT", "42")
	t.Setenv("ARENA_TEST_BOOL", "true")
	t.Setenv("ARENA_TEST_DUR", "250ms")

	n, err := GetEnvInt("ARENA_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	b, err := GetEnvBool("ARENA_TEST_BOOL", false)
	require.NoError(t, err)
	assert.True(t, b)

	d, err := GetEnvDuration("ARENA_TEST_DUR", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestGetEnvTypedInvalid(t *testing.T) {
	t.Setenv("ARENA_TEST_INT", "forty")
	t.Setenv("ARENA_TEST_DUR", "-1s")

	n, err := GetEnvInt("ARENA_TEST_INT", 7)
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 7, n)

	d, err := GetEnvDuration("ARENA_TEST_DUR", time.Second)
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, time.Second, d)
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"ARENA_RENDERER", "ARENA_KEY_HOLD", "ARENA_AUDIO", "ARENA_LOG_LEVEL", "SSH_PORT", "SSH_MAX_SESSIONS"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, RendererTcell, cfg.Renderer)
	assert.Equal(t, DefaultKeyHold, cfg.KeyHold)
	assert.False(t, cfg.Audio)
	assert.Equal(t, 32, cfg.SSHMaxSessions)
	assert.Equal(t, "2222", cfg.SSHPort)
}

func TestFromEnvCollectsErrors(t *testing.T) {
	t.Setenv("ARENA_RENDERER", "opengl")
	t.Setenv("ARENA_AUDIO", "loud")
	t.Setenv("ARENA_LOG_LEVEL", "chatty")
	t.Setenv("SSH_MAX_SESSIONS", "0")

	_, err := FromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "ARENA_RENDERER")
	assert.Contains(t, err.Error(), "ARENA_AUDIO")
	assert.Contains(t, err.Error(), "ARENA_LOG_LEVEL")
	assert.Contains(t, err.Error(), "SSH_MAX_SESSIONS")
}

func TestNewLoggerWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: "debug"}

	logger, closer, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("match started", "match", "abc")
	assert.Contains(t, buf.String(), "match started")
	assert.Contains(t, buf.String(), "match=abc")
}
