package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrFaceNotFound is returned when a gallery photo does not exist for the given patient.
var ErrFaceNotFound = errors.New("face not found")

// FaceRepository defines the operations on a patient's gallery.
type FaceRepository interface {
	Create(ctx context.Context, face *entity.Face) error

	// ListByPatient returns the gallery, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Face, error)

	// Delete removes a photo owned by patientID. Returns ErrFaceNotFound otherwise.
	Delete(ctx context.Context, id, patientID uuid.UUID) error
}
