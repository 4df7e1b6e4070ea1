package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// runKey guarda o estado de uma execução: run_id e o logger já marcado com ele.
type runKey struct{}

type runState struct {
	id     string
	logger *slog.Logger
}

// StartRun marks ctx as one invocation of the binary. The id is incoming
// when it is not blank (e.g. SERDE_RUN_ID), else a fresh uuid; every log
// line from LoggerFromContext carries it as run_id.
func StartRun(ctx context.Context, logger *slog.Logger, incoming string) context.Context {
	id := strings.TrimSpace(incoming)
	if id == "" {
		id = uuid.NewString()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return context.WithValue(ctx, runKey{}, runState{id: id, logger: logger.With(RunID(id))})
}

// RunIDFromContext is empty outside StartRun.
func RunIDFromContext(ctx context.Context) string {
	st, _ := ctx.Value(runKey{}).(runState)
	return st.id
}

// WithLogger swaps the logger and keeps the run id, if any.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	st, _ := ctx.Value(runKey{}).(runState)
	st.logger = logger
	return context.WithValue(ctx, runKey{}, st)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if st, ok := ctx.Value(runKey{}).(runState); ok && st.logger != nil {
		return st.logger
	}
	return slog.Default()
}
