package telemetry

import (
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// NewLogger builds the process logger. Production emits JSON for log shippers;
// every other environment gets a colored console handler.
func NewLogger(w io.Writer, environment, level string) *slog.Logger {
	lvl := ParseLevel(level)

	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	console := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "zentra",
		Level:           charmlog.Level(lvl),
	})
	return slog.New(console)
}

// ParseLevel maps a LOG_LEVEL value onto slog; unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
