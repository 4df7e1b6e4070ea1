package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Mode string

const (
	ModeJSON Mode = "json"
	ModeText Mode = "text"
)

type Config struct {
	Mode  Mode
	Level slog.Level
	// Writer defaults to os.Stderr; stdout fica reservado para o resultado.
	Writer io.Writer
}

func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	switch cfg.Mode {
	case ModeText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseMode aceita "text" ou "json" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText, nil
	case ModeJSON:
		return ModeJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be text or json", s)
	}
}

// LevelFor traduz as flags --verbose/--quiet. quiet vence; sem flags usa fallback.
func LevelFor(verbose, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return fallback
	}
}
