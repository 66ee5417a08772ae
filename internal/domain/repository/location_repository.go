package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
)

// LocationRepository stores the append-only location history of patients.
type LocationRepository interface {
	// Create appends a location record and fills in its ID and recorded time.
	Create(ctx context.Context, record *entity.LocationRecord) error

	// ListRecent returns at most limit records for the patient, newest first.
	ListRecent(ctx context.Context, patientID uuid.UUID, limit int) ([]*entity.LocationRecord, error)

	// FindLatest returns the newest record or nil when the patient has none.
	FindLatest(ctx context.Context, patientID uuid.UUID) (*entity.LocationRecord, error)
}
