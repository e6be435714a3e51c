// SPDX-License-Identifier: MIT

// Package log wraps zerolog with a process-wide base logger for the lvmat
// command-line tool. Library packages never log; only cmd/ does.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable consulted when Config.Level is empty.
const EnvLevel = "LVMAT_LOG_LEVEL"

// Config captures options for configuring the base logger.
type Config struct {
	Level     string    // optional log level ("debug", "info", etc.)
	Output    io.Writer // optional writer (defaults to os.Stderr)
	Component string    // optional component attached to every entry
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// ParseLevel resolves the effective level: explicit value, then EnvLevel,
// then info. Unknown names fall back to info and are reported as false.
func ParseLevel(explicit string) (zerolog.Level, bool) {
	name := explicit
	if name == "" {
		name = os.Getenv(EnvLevel)
	}
	if name == "" {
		return zerolog.InfoLevel, true
	}
	parsed, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, false
	}

	return parsed, true
}

// Configure replaces the base logger. It may be called more than once;
// each cobra invocation reconfigures from its own flags.
func Configure(cfg Config) zerolog.Logger {
	level, ok := ParseLevel(cfg.Level)
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if cfg.Component != "" {
		ctx = ctx.Str("component", cfg.Component)
	}
	l := ctx.Logger()
	if !ok {
		name := cfg.Level
		if name == "" {
			name = os.Getenv(EnvLevel)
		}
		l.Warn().Str("requested", name).Msg("unknown log level, using info")
	}

	mu.Lock()
	base = l
	mu.Unlock()

	return l
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
