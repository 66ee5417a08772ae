package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrAlertNotFound is returned when an alert does not exist for the given caretaker.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the operations on caretaker alerts.
type AlertRepository interface {
	// Create persists a new alert and fills in its ID and creation time.
	Create(ctx context.Context, alert *entity.Alert) error

	// ListForCaretaker returns the caretaker's alerts, newest first, with the patient summary.
	ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.AlertWithPatient, error)

	// CountUnresolved counts the caretaker's alerts that are not resolved.
	CountUnresolved(ctx context.Context, caretakerID uuid.UUID) (int64, error)

	// Resolve marks the alert resolved when it belongs to the caretaker.
	// Returns ErrAlertNotFound otherwise.
	Resolve(ctx context.Context, id, caretakerID uuid.UUID) (*entity.Alert, error)
}
