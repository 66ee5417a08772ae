package usecase

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
)

// AlertUsecase serves a caretaker's alerts.
type AlertUsecase interface {
	ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.AlertWithPatient, error)
	CountUnresolved(ctx context.Context, caretakerID uuid.UUID) (int64, error)
	// Resolve marks the alert resolved. Alerts of other caretakers are reported as not found.
	Resolve(ctx context.Context, alertID, caretakerID uuid.UUID) (*entity.Alert, error)
}
