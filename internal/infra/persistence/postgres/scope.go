package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"alzassist/config"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/postgres/query"
)

const defaultQueryTimeout = 5 * time.Second

// dbScope carries the typed query set and the deadline applied to every statement.
type dbScope struct {
	db      *gorm.DB
	q       *query.Query
	timeout time.Duration
}

func newDBScope(db *gorm.DB, cfg *config.Config) dbScope {
	return dbScope{db: db, q: query.Use(db), timeout: queryTimeout(cfg)}
}

func queryTimeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Database != nil && cfg.Database.QueryTimeout > 0 {
		return cfg.Database.QueryTimeout
	}

	return defaultQueryTimeout
}

// bound derives the per-call deadline. Reads route to replicas through ReadDB on the query itself.
func (s dbScope) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// withTx rebinds the query set to a transaction handle.
func (s dbScope) withTx(tx *gorm.DB) dbScope {
	return dbScope{db: tx, q: query.Use(tx), timeout: s.timeout}
}

// storageError converts a driver failure into the StorageError surfaced to callers.
func storageError(err error, details string) error {
	if errors.IsTimeout(err) {
		details += ": query timed out"
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
