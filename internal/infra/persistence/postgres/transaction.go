package postgres

import (
	"context"

	"gorm.io/gorm"

	"alzassist/config"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	scope dbScope
}

// gormRepositoryFactory creates repository instances bound to a single transaction.
type gormRepositoryFactory struct {
	scope dbScope
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{dbScope: f.scope}
}

func (f *gormRepositoryFactory) NewConnectionRepository() repository.ConnectionRepository {
	return &connectionRepository{dbScope: f.scope}
}

func (f *gormRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return &alertRepository{dbScope: f.scope}
}

func (f *gormRepositoryFactory) NewLocationRepository() repository.LocationRepository {
	return &locationRepository{dbScope: f.scope}
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{scope: newDBScope(db, cfg)}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.scope.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(tx.Error.Error())
	}

	// Roll back on panic, then re-panic so the recover middleware can answer.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{scope: tm.scope.withTx(tx)}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return storageError(err, "failed to commit transaction")
	}

	return nil
}
