package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// RequestIDFromContext extracts the request ID from ctx.
// If not found, returns empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// EnsureRequestID returns ctx unchanged when it already carries a request
// ID, otherwise a child context with a fresh UUID.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.New().String()

	return WithRequestID(ctx, id), id
}

// FromContext extracts the request-scoped logger from ctx.
// If not found, returns nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// FromContextOrDefault extracts the request-scoped logger from ctx.
// If not found, returns the provided fallback logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// Scoped tags ctx with a request ID and a child of base carrying it. A ctx
// that is already scoped is returned unchanged.
func Scoped(ctx context.Context, base *slog.Logger) (context.Context, *slog.Logger) {
	if logger := FromContext(ctx); logger != nil && RequestIDFromContext(ctx) != "" {
		return ctx, logger
	}
	ctx, id := EnsureRequestID(ctx)
	logger := FromContextOrDefault(ctx, base).With(slog.String("request_id", id))

	return WithLogger(ctx, logger), logger
}
