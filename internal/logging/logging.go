// Package logging builds the slog loggers used by the metricard command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv turns on debug logging when set to any non-empty value.
const DebugEnv = "METRICARD_DEBUG"

// New returns a text logger writing to w. Debug level when debug is set or
// DebugEnv is present, Warn otherwise.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug || DebugEnabled() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// DebugEnabled reports whether DebugEnv is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}
