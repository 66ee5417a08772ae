package usecase

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
)

// ConnectionUsecase manages caretaker/patient links and guards cross-patient reads.
type ConnectionUsecase interface {
	// IsConnected reports whether an ACCEPTED connection exists. Store failures report false.
	IsConnected(ctx context.Context, caretakerID, patientID uuid.UUID) bool

	// AuthorizePatientRead returns ErrNotConnected unless the caretaker may read the patient's data.
	AuthorizePatientRead(ctx context.Context, caretakerID, patientID uuid.UUID) error

	// SendRequest creates a PENDING connection or returns the existing one for the pair.
	SendRequest(ctx context.Context, caretakerID, patientID uuid.UUID) (*entity.Connection, error)

	// SendRequestFromQR parses a scanned invite and sends the request to the encoded patient.
	SendRequestFromQR(ctx context.Context, caretakerID uuid.UUID, qrData string) (*entity.Connection, error)

	// UpdateStatus accepts or rejects a request addressed to the patient.
	UpdateStatus(ctx context.Context, connectionID, patientID uuid.UUID, status entity.ConnectionStatus) (*entity.Connection, error)

	ListConnectedPatients(ctx context.Context, caretakerID uuid.UUID) ([]*entity.ConnectionWithProfile, error)
	ListConnectedCaretakers(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error)
	ListPendingRequests(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error)

	// GenerateInviteQR renders the patient's connection invite as a PNG.
	GenerateInviteQR(ctx context.Context, patientID uuid.UUID) ([]byte, error)
}
