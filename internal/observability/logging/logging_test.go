package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Mode: ModeJSON, Level: slog.LevelInfo, Writer: &buf})

	log.Debug("hidden")
	log.Info("config file path", Path("/tmp/x/config.yaml"), Source("user"), Err(errors.New("boom")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "config file path", rec["msg"])
	assert.Equal(t, "/tmp/x/config.yaml", rec["path"])
	assert.Equal(t, "user", rec["source"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Mode: ModeText, Level: slog.LevelDebug, Writer: &buf})
	log.Debug("decoded", Format("toml"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "format=toml")
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"text": ModeText, "JSON": ModeJSON, " json ": ModeJSON} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("logfmt")
	assert.Error(t, err)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelError, LevelFor(true, true, slog.LevelInfo))
	assert.Equal(t, slog.LevelDebug, LevelFor(true, false, slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, LevelFor(false, false, slog.LevelWarn))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, ModeText, ModeFromEnv())
	assert.Equal(t, slog.LevelInfo, LevelFromEnv())

	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogLevel, "warning")
	assert.Equal(t, ModeJSON, ModeFromEnv())
	assert.Equal(t, slog.LevelWarn, LevelFromEnv())
}

func TestStartRun(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := StartRun(context.Background(), base, "")
	id := RunIDFromContext(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	LoggerFromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "run_id="+id)

	// Incoming wins when not blank.
	ctx = StartRun(context.Background(), base, "  ext-1 ")
	assert.Equal(t, "ext-1", RunIDFromContext(ctx))
}

func TestWithLoggerKeepsRunID(t *testing.T) {
	ctx := StartRun(context.Background(), nil, "run-9")

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	ctx = WithLogger(ctx, l)

	assert.Same(t, l, LoggerFromContext(ctx))
	assert.Equal(t, "run-9", RunIDFromContext(ctx))
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))
	assert.Empty(t, RunIDFromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, LoggerFromContext(WithLogger(context.Background(), l)))
}
