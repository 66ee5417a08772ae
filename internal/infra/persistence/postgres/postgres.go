package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/lifecycle"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolWaitWarnAverage = 20 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the care-record store and ties its pool to the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open care-record store")
	}
	db := newSession(conn, params.Logger, params.Config)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach care-record store pool")
	}

	sampler := newPoolSampler(params.Logger, sqlDB.Stats)
	stopSampling := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "care-record store unreachable")
			}
			if err := migrate(ctx, db, params.Config); err != nil {
				return err
			}

			var sampleCtx context.Context
			sampleCtx, stopSampling = context.WithCancel(context.Background())
			go sampler.run(sampleCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// newSession applies the settings every repository relies on: explicit transactions only,
// driver errors translated to gorm sentinels, and statement logging through slog.
func newSession(db *gorm.DB, logger *slog.Logger, cfg *config.Config) *gorm.DB {
	session := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	session.Config.TranslateError = true

	return session
}

func migrate(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.Database == nil || !cfg.Database.AutoMigrate {
		return nil
	}
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate care-record schema")
	}

	return nil
}

// poolSampler reports connection-pool contention between two samples of sql.DBStats.
type poolSampler struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	last   sql.DBStats
}

func newPoolSampler(logger *slog.Logger, stats func() sql.DBStats) *poolSampler {
	return &poolSampler{logger: logger, stats: stats, last: stats()}
}

func (s *poolSampler) run(ctx context.Context, interval time.Duration) {
	if s.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

// sample logs when callers waited for a connection since the previous sample.
// A high average wait is a warning; occasional short waits stay at debug.
func (s *poolSampler) sample(ctx context.Context) {
	cur := s.stats()
	prev := s.last
	s.last = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	avg := waited / time.Duration(waits)
	level := slog.LevelDebug
	if avg >= poolWaitWarnAverage {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "care-record pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", avg),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
