package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the correlation ID between clients, the API and the worker.
const HeaderXRequestID = "X-Request-Id"

const echoKeyRequestID = "request_id"

type scopeKey struct{}

// requestScope is the correlation state a request carries through its context.
type requestScope struct {
	id     string
	logger *slog.Logger
}

func scopeOf(ctx context.Context) *requestScope {
	scope, _ := ctx.Value(scopeKey{}).(*requestScope)

	return scope
}

// BeginRequest opens a request scope on ctx. Every line written through the scoped
// logger is tagged with requestID; a nil base leaves the scope without a logger.
func BeginRequest(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	scope := &requestScope{id: requestID}
	if base != nil {
		scope.logger = base.With(slog.String("request_id", requestID))
	}

	return context.WithValue(ctx, scopeKey{}, scope)
}

// RequestIDFromContext returns "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if scope := scopeOf(ctx); scope != nil {
		return scope.id
	}

	return ""
}

// LoggerFromContext returns the request-scoped logger, or fallback outside a request.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope := scopeOf(ctx); scope != nil && scope.logger != nil {
		return scope.logger
	}

	return fallback
}

// WithLogger swaps the scoped logger and keeps the request ID.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	next := &requestScope{logger: logger}
	if scope := scopeOf(ctx); scope != nil {
		next.id = scope.id
	}

	return context.WithValue(ctx, scopeKey{}, next)
}

// EnrichLogger adds attributes to the scoped logger of c, so services called later
// in the request log them too.
func EnrichLogger(c echo.Context, fallback *slog.Logger, args ...any) {
	ctx := c.Request().Context()
	logger := LoggerFromContext(ctx, fallback).With(args...)
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// SetRequestID records the ID on the echo context for the access log.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestID returns the ID recorded by SetRequestID, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}
