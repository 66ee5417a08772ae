package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	dbScope
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB, cfg *config.Config) repository.AlertRepository {
	return &alertRepository{dbScope: newDBScope(db, cfg)}
}

// Create persists a new alert.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	alertM := fromAlertDomain(alert)
	if err := repo.q.AlertModel.WithContext(ctx).Create(alertM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// ListForCaretaker returns the caretaker's alerts, newest first.
func (repo *alertRepository) ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.AlertWithPatient, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	a := repo.q.AlertModel
	alertModels, err := a.WithContext(ctx).ReadDB().
		Preload(a.Patient).
		Where(a.CaretakerID.Eq(caretakerID)).
		Order(a.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list alerts")
	}

	alerts := make([]*entity.AlertWithPatient, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, &entity.AlertWithPatient{
			Alert:   *toAlertDomain(alertM),
			Patient: toProfileSummary(alertM.Patient, false),
		})
	}

	return alerts, nil
}

// CountUnresolved counts the caretaker's open alerts.
func (repo *alertRepository) CountUnresolved(ctx context.Context, caretakerID uuid.UUID) (int64, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	a := repo.q.AlertModel
	count, err := a.WithContext(ctx).ReadDB().
		Where(a.CaretakerID.Eq(caretakerID), a.Resolved.Is(false)).
		Count()
	if err != nil {
		return 0, storageError(err, "failed to count unresolved alerts")
	}

	return count, nil
}

// Resolve marks an alert owned by the caretaker as resolved.
func (repo *alertRepository) Resolve(ctx context.Context, id, caretakerID uuid.UUID) (*entity.Alert, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	a := repo.q.AlertModel
	info, err := a.WithContext(ctx).
		Where(a.ID.Eq(id), a.CaretakerID.Eq(caretakerID)).
		UpdateSimple(a.Resolved.Value(true))
	if err != nil {
		return nil, storageError(err, "failed to resolve alert")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrAlertNotFound
	}

	alertM, err := a.WithContext(ctx).Where(a.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, storageError(err, "failed to reload alert")
	}

	return toAlertDomain(alertM), nil
}

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	return &entity.Alert{
		ID:          data.ID,
		PatientID:   data.PatientID,
		CaretakerID: data.CaretakerID,
		Type:        entity.AlertType(data.Type),
		Message:     data.Message,
		Resolved:    data.Resolved,
		CreatedAt:   data.CreatedAt,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	return &model.AlertModel{
		ID:          data.ID,
		PatientID:   data.PatientID,
		CaretakerID: data.CaretakerID,
		Type:        string(data.Type),
		Message:     data.Message,
		Resolved:    data.Resolved,
		CreatedAt:   data.CreatedAt,
	}
}
