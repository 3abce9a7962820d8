package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses a level name. Unknown names map to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level slog.Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is attached to every record as the "app" attribute.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
		Prefix: "sketchpad",
	}
}

// NewLogger creates a text logger with the given configuration.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	l := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
		Level: cfg.Level,
	}))
	if cfg.Prefix != "" {
		l = l.With("app", cfg.Prefix)
	}
	return l
}
