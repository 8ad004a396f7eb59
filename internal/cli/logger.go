package cli

import (
	"io"
	"log/slog"
)

// newLogger creates the diagnostic logger. Command output does not go
// through it; it only carries debug and warning detail.
func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
