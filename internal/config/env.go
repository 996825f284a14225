// Package config provides shared configuration utilities and game tunables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvInt parses the variable as a base-10 integer.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return n, nil
}

// GetEnvBool parses the variable with strconv.ParseBool ("1", "true", "no", ...).
func GetEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return b, nil
}

// GetEnvDuration parses the variable with time.ParseDuration ("150ms", "2s").
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return d, nil
}
