package logging

import (
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLogFormat = "SERDE_LOG_FORMAT"
	EnvLogLevel  = "SERDE_LOG_LEVEL"
)

// ModeFromEnv lê SERDE_LOG_FORMAT={json|text}. Default: text
func ModeFromEnv() Mode {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat)))
	switch v {
	case "json":
		return ModeJSON
	default:
		return ModeText
	}
}

// LevelFromEnv lê SERDE_LOG_LEVEL={debug|info|warn|error}. Default: info
func LevelFromEnv() slog.Level {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
	switch v {
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
