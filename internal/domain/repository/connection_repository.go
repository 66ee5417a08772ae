package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when a connection does not exist for the given owner.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrConnectionExists is returned when the caretaker/patient pair is already linked.
	ErrConnectionExists = errors.New("connection already exists")
)

// ConnectionRepository defines the operations on caretaker/patient links.
type ConnectionRepository interface {
	// Create persists a new connection. The (caretaker, patient) pair is unique.
	Create(ctx context.Context, conn *entity.Connection) error

	// FindByPair returns the connection between a caretaker and a patient regardless of status.
	FindByPair(ctx context.Context, caretakerID, patientID uuid.UUID) (*entity.Connection, error)

	// ExistsAccepted reports whether an ACCEPTED connection links the caretaker to the patient.
	ExistsAccepted(ctx context.Context, caretakerID, patientID uuid.UUID) (bool, error)

	// UpdateStatus changes the status of a connection owned by patientID.
	// Returns ErrConnectionNotFound when no such connection belongs to the patient.
	UpdateStatus(ctx context.Context, id, patientID uuid.UUID, status entity.ConnectionStatus) (*entity.Connection, error)

	// ListAcceptedCaretakerIDs returns caretaker IDs with an ACCEPTED connection to the patient,
	// ordered by connection creation time.
	ListAcceptedCaretakerIDs(ctx context.Context, patientID uuid.UUID) ([]uuid.UUID, error)

	// ListPatientsForCaretaker returns accepted connections with the patient summary attached.
	ListPatientsForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.ConnectionWithProfile, error)

	// ListCaretakersForPatient returns accepted connections with the caretaker summary attached.
	ListCaretakersForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error)

	// ListPendingForPatient returns pending requests with the caretaker summary attached.
	ListPendingForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error)
}
