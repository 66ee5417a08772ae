package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alzassist/config"
	deliverycontext "alzassist/internal/delivery/context"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/errors"
)

func TestQueryTimeout(t *testing.T) {
	assert.Equal(t, defaultQueryTimeout, queryTimeout(nil))
	assert.Equal(t, defaultQueryTimeout, queryTimeout(&config.Config{}))

	cfg := &config.Config{Database: &config.DatabaseConfig{QueryTimeout: 2 * time.Second}}
	assert.Equal(t, 2*time.Second, queryTimeout(cfg))
}

func TestDBScope_BoundAndWithTx(t *testing.T) {
	db, _ := newMockDB(t)
	cfg := &config.Config{Database: &config.DatabaseConfig{QueryTimeout: time.Second}}

	scope := newDBScope(db, cfg)
	ctx, cancel := scope.bound(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)

	tx := scope.withTx(db)
	assert.Equal(t, scope.timeout, tx.timeout)
	assert.NotNil(t, tx.q.JournalModel)
}

func TestStorageError(t *testing.T) {
	err := storageError(context.DeadlineExceeded, "failed to list locations")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "failed to list locations: query timed out", appErr.Details())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	err = storageError(errors.New("connection reset"), "failed to create alert")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "failed to create alert", appErr.Details())
}

func TestGormSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}
	l := newGormSlogLogger(base, cfg).(*sqlLogger)
	assert.Equal(t, 10*time.Millisecond, l.slowThreshold)
	assert.Equal(t, defaultQueryTimeout, l.queryTimeout)

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_RequestScopeAndTimeout(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&base, nil))
	scopedLogger := slog.New(slog.NewJSONHandler(&scoped, nil))

	cfg := &config.Config{Database: &config.DatabaseConfig{QueryTimeout: 3 * time.Second}}
	l := newGormSlogLogger(baseLogger, cfg)

	ctx := deliverycontext.BeginRequest(context.Background(), "req-42", scopedLogger)
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, context.DeadlineExceeded)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-42"`)
	assert.Contains(t, scoped.String(), `"queryTimeout":3000000000`)
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	l := newGormSlogLogger(base, nil)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Contains(t, buf.String(), `"msg":"GORM query"`)
}
