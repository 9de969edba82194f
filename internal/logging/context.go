package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey int

const (
	sessionKey contextKey = iota
)

// NewSessionID returns a fresh session identifier for one CLI invocation.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession returns a new context carrying the given session id.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// NewSessionContext creates a background context with a generated session id.
func NewSessionContext() context.Context {
	return WithSession(context.Background(), NewSessionID())
}

// SessionFromContext extracts the session id from the context.
// Returns empty string if no session id is set.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns a logger tagged with the session id from ctx.
// If no session id is in the context, returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	logger := Logger()
	if id := SessionFromContext(ctx); id != "" {
		logger = logger.With(KeySession, id)
	}
	return logger
}
