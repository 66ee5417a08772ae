package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alzassist/config"
)

func TestPoolSampler_Sample(t *testing.T) {
	tests := []struct {
		name      string
		next      sql.DBStats
		wantLevel string
	}{
		{
			name: "no new waits",
			next: sql.DBStats{WaitCount: 4, WaitDuration: 80 * time.Millisecond},
		},
		{
			name:      "short waits stay at debug",
			next:      sql.DBStats{WaitCount: 14, WaitDuration: 130 * time.Millisecond},
			wantLevel: `"level":"DEBUG"`,
		},
		{
			name:      "long waits warn",
			next:      sql.DBStats{WaitCount: 6, WaitDuration: 180 * time.Millisecond, InUse: 10, MaxOpenConnections: 10},
			wantLevel: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			current := sql.DBStats{WaitCount: 4, WaitDuration: 80 * time.Millisecond}
			sampler := newPoolSampler(logger, func() sql.DBStats { return current })
			current = tt.next

			sampler.sample(context.Background())

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "care-record pool contention")
			assert.Equal(t, tt.next, sampler.last)
		})
	}
}

func TestPoolSampler_RunStopsWithContext(t *testing.T) {
	sampler := newPoolSampler(slog.New(slog.DiscardHandler), func() sql.DBStats { return sql.DBStats{} })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sampler.run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sampler did not stop")
	}
}

func TestNewSession(t *testing.T) {
	db, _ := newMockDB(t)

	assert.True(t, db.Config.SkipDefaultTransaction)
	assert.True(t, db.Config.TranslateError)
	assert.IsType(t, &sqlLogger{}, db.Config.Logger)
}

func TestMigrate_SkippedUnlessEnabled(t *testing.T) {
	db, _ := newMockDB(t)

	assert.NoError(t, migrate(context.Background(), db, &config.Config{}))
	assert.NoError(t, migrate(context.Background(), db, &config.Config{Database: &config.DatabaseConfig{}}))
}
