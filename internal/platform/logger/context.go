package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key under which a request-scoped logger is stored.
const loggerKey contextKey = iota

// WithLogger returns a copy of ctx carrying the given logger. Callers that
// want per-operation attributes (correlation IDs, caller identity) attach an
// enriched logger here and downstream code picks it up transparently.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext extracts the logger stored in ctx, if any.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	log, ok := ctx.Value(loggerKey).(*slog.Logger)
	return log, ok
}

// FromContextOrDefault extracts the logger stored in ctx, falling back to
// def when the context carries none. A nil def falls back to slog.Default.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := FromContext(ctx); ok {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
