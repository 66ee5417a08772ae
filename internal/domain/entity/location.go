package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationRecord is one immutable sample of a patient's position.
// Each submission appends a new record; records are never updated.
type LocationRecord struct {
	ID         uuid.UUID `json:"id"`
	PatientID  uuid.UUID `json:"patient_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Coordinate returns the sampled position.
func (l *LocationRecord) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}
