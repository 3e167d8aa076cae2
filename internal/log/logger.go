// Package log provides the zerolog base logger shared by every package.
//
// The terminal belongs to the TUI, so output is discarded unless a writer
// (normally a log file) is configured.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to io.Discard)
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Configure replaces the global logger. An empty or unknown Level falls back
// to LOG_LEVEL, then info.
func Configure(cfg Config) {
	level := zerolog.InfoLevel
	if parsed, ok := parseLevel(cfg.Level); ok {
		level = parsed
	} else if parsed, ok := parseLevel(os.Getenv("LOG_LEVEL")); ok {
		level = parsed
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = io.Discard
	}

	l := zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "lemonade").
		Logger()

	mu.Lock()
	base = l
	mu.Unlock()
}

func parseLevel(s string) (zerolog.Level, bool) {
	if s == "" {
		return zerolog.NoLevel, false
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return l, true
}

// OpenFile opens path for appending, creating parent directories as needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
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
