package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrJournalNotFound is returned when a journal entry does not exist for the given patient.
var ErrJournalNotFound = errors.New("journal not found")

// JournalRepository defines the operations on patient journal entries.
type JournalRepository interface {
	Create(ctx context.Context, journal *entity.Journal) error

	// ListByPatient returns the patient's entries, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Journal, error)

	// Update applies changes to an entry owned by patientID.
	// Returns ErrJournalNotFound when no such entry belongs to the patient.
	Update(ctx context.Context, id, patientID uuid.UUID, changes entity.JournalChanges) (*entity.Journal, error)

	// Delete removes an entry owned by patientID.
	Delete(ctx context.Context, id, patientID uuid.UUID) error
}
