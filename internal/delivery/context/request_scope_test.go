package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Same(t, fallback, LoggerFromContext(context.Background(), fallback))

	ctx := BeginRequest(context.Background(), "req-1", base)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))

	LoggerFromContext(ctx, fallback).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	swapped := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctx = WithLogger(ctx, swapped)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Same(t, swapped, LoggerFromContext(ctx, fallback))
}

func TestBeginRequest_NilBaseFallsBack(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctx := BeginRequest(context.Background(), "req-2", nil)

	assert.Equal(t, "req-2", RequestIDFromContext(ctx))
	assert.Same(t, fallback, LoggerFromContext(ctx, fallback))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(BeginRequest(req.Context(), "req-3", base))
	c := e.NewContext(req, httptest.NewRecorder())

	SetRequestID(c, "req-3")
	EnrichLogger(c, base, slog.String("user_id", "u-1"))

	LoggerFromContext(c.Request().Context(), nil).Info("enriched")
	assert.Contains(t, buf.String(), `"request_id":"req-3"`)
	assert.Contains(t, buf.String(), `"user_id":"u-1"`)
	assert.Equal(t, "req-3", RequestID(c))
	assert.Equal(t, "req-3", RequestIDFromContext(c.Request().Context()))
}
