package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrMedicationNotFound is returned when a medication does not exist for the given patient.
var ErrMedicationNotFound = errors.New("medication not found")

// MedicationRepository defines the operations on a patient's medication list.
type MedicationRepository interface {
	Create(ctx context.Context, medication *entity.Medication) error

	// ListByPatient returns the patient's medications ordered by dose time.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Medication, error)

	// Update applies changes to a medication owned by patientID.
	// Returns ErrMedicationNotFound when no such medication belongs to the patient.
	Update(ctx context.Context, id, patientID uuid.UUID, changes entity.MedicationChanges) (*entity.Medication, error)

	Delete(ctx context.Context, id, patientID uuid.UUID) error
}
