// Package config builds the ambient Config struct once at daemon startup
// from the environment and XDG defaults, then hands it by value to each
// leaf component's constructor. Grounded on the teacher's
// service.ConfigService's nested-struct shape, minus its SQLite-backed
// key/value overrides — tail has no user-facing config file
// (spec.md §6), so there is nothing for a second layer to override.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tail/internal/storage"
)

// LogLevel mirrors a RUST_LOG-style verbosity knob (spec.md §6), read
// from TAIL_LOG into Config.LogLevel. No component consults it: it gates
// no log output, and unrecognized compositor events are dropped without
// being logged at any level.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const (
	defaultAFKTimeout        = 3 * time.Minute
	defaultIdleCheckInterval = 5 * time.Second
)

// Config is the daemon's complete startup configuration, built once and
// passed by value into internal/tracker, internal/storage and cmd/taild.
type Config struct {
	DataDir           string
	DBPath            string
	AFKTimeout        time.Duration
	IdleCheckInterval time.Duration
	LogLevel          LogLevel
}

// Load builds a Config from the environment, falling back to the same
// defaults the teacher's ConfigService ships when no override exists.
func Load() Config {
	dbPath := storage.DefaultDBPath()

	cfg := Config{
		DataDir:           filepath.Dir(dbPath),
		DBPath:            dbPath,
		AFKTimeout:        durationFromEnv("TAIL_AFK_TIMEOUT_SECONDS", defaultAFKTimeout),
		IdleCheckInterval: durationFromEnv("TAIL_IDLE_CHECK_INTERVAL_SECONDS", defaultIdleCheckInterval),
		LogLevel:          logLevelFromEnv(),
	}
	return cfg
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func logLevelFromEnv() LogLevel {
	switch os.Getenv("TAIL_LOG") {
	case "debug":
		return LogLevelDebug
	case "warn":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}
