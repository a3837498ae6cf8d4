// Package logging builds the application logger. The terminal belongs to the
// UI, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// New opens path for appending and returns a text logger writing to it along
// with a func that closes the file. An empty path discards every record.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a text logger writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
