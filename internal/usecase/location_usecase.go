// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"alzassist/internal/domain/entity"
)

// SubmitResult is the outcome of one location submission.
// Location is nil when the record could not be stored.
type SubmitResult struct {
	Location       *entity.LocationRecord `json:"location"`
	AlertTriggered bool                   `json:"alertTriggered"`
	FanOut         *entity.FanOutReport   `json:"fanOut,omitempty"`
}

// LocationUsecase ingests patient locations and serves location history.
// Its operations never fail outright; failures degrade to empty results and are logged.
type LocationUsecase interface {
	// SubmitLocation stores the coordinate and raises geofence alerts when the patient left home.
	SubmitLocation(ctx context.Context, patientID uuid.UUID, lat, lng float64) *SubmitResult

	// GetHistory returns up to limit records, newest first. A non-positive limit uses the default.
	GetHistory(ctx context.Context, patientID uuid.UUID, limit int) []*entity.LocationRecord

	// GetLatest returns the newest record or nil.
	GetLatest(ctx context.Context, patientID uuid.UUID) *entity.LocationRecord

	// GetTrack renders recent history and the home fence as GeoJSON.
	GetTrack(ctx context.Context, patientID uuid.UUID, limit int) *geojson.FeatureCollection
}
