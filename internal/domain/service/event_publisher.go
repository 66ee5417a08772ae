package service

import (
	"context"
	"time"
)

// GeofenceExitEvent is emitted after a patient leaves the safe zone and at least one alert was stored.
type GeofenceExitEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	PatientID      string    `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	LocationID     string    `json:"location_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	RadiusMeters   float64   `json:"radius_meters"`
	AlertIDs       []string  `json:"alert_ids"`
	CaretakerIDs   []string  `json:"caretaker_ids"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGeofenceExit publishes a geofence exit for downstream consumers
	PublishGeofenceExit(ctx context.Context, event *GeofenceExitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
