// Package logging sets up the structured logger used by the trainers binary.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup returns a JSON slog logger writing to w at the given level.
// Greetings go to stdout, so w is normally stderr.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
