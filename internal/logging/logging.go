// Package logging builds the slog logger used by the command. Logs go to
// stderr or a file; stdout carries only the inventory document.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ParseLevel converts a level name to a slog.Level. Unknown or empty names
// give slog.LevelInfo.
func ParseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to path, or to stderr when path is empty. The
// returned close function releases the log file.
func New(path, level string) (*slog.Logger, func() error, error) {
	var output io.Writer = os.Stderr
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		output = f
		closer = f.Close
	}
	return NewWithWriter(output, level), closer, nil
}

// NewWithWriter creates a text logger on w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With("component", "ec2-inventory")
}

// WithRun tags every record of logger with a fresh run id.
func WithRun(logger *slog.Logger) *slog.Logger {
	return logger.With("run_id", uuid.NewString())
}
