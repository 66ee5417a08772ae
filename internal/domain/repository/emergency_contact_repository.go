package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrEmergencyContactNotFound is returned when a contact does not exist for the given patient.
var ErrEmergencyContactNotFound = errors.New("emergency contact not found")

// EmergencyContactRepository defines the operations on a patient's emergency contacts.
type EmergencyContactRepository interface {
	Create(ctx context.Context, contact *entity.EmergencyContact) error

	// ListByPatient returns the contacts in the order they were added.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error)

	// Delete removes a contact owned by patientID. Returns ErrEmergencyContactNotFound otherwise.
	Delete(ctx context.Context, id, patientID uuid.UUID) error
}
