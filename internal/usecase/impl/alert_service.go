package impl

import (
	"context"
	"log/slog"

	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo repository.AlertRepository
	logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(alertRepo repository.AlertRepository, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (srv *alertService) ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.AlertWithPatient, error) {
	alerts, err := srv.alertRepo.ListForCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

func (srv *alertService) CountUnresolved(ctx context.Context, caretakerID uuid.UUID) (int64, error) {
	count, err := srv.alertRepo.CountUnresolved(ctx, caretakerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unresolved alerts")
	}

	return count, nil
}

// Resolve marks an alert resolved. Alerts owned by another caretaker are reported as missing.
func (srv *alertService) Resolve(ctx context.Context, alertID, caretakerID uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.alertRepo.Resolve(ctx, alertID, caretakerID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "alert not found for caretaker")
		}

		return nil, errors.Wrap(err, "failed to resolve alert")
	}

	deliverycontext.LoggerFromContext(ctx, srv.logger).Info("Alert resolved",
		slog.Any("alert_id", alertID),
		slog.Any("caretaker_id", caretakerID),
	)

	return alert, nil
}
