package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alzassist/config"
	deliverycontext "alzassist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "reuses client id",
			header: "req-123",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "req-123", id)
			},
		},
		{
			name: "generates when missing",
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFromContext(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			tt.expectID(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, ctxID, deliverycontext.RequestID(c))
		})
	}
}

func TestLoggerMiddleware_RoutesErrorsThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	handled := false
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		handled = true
		_ = c.NoContent(http.StatusTeapot)
	}

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewLoggerMiddleware(logger, &config.Config{})
	err := mw.Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})(c)

	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_QuietOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	mw := NewLoggerMiddleware(logger, &config.Config{})
	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err = NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
}
