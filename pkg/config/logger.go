package config

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger builds a JSON logger writing to w at the named level and
// installs it as the slog default. Unknown levels fall back to info.
func SetupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return logger
}
