package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies the reason an alert was raised.
type AlertType string

const (
	// AlertGeofenceExit is raised when a patient is found outside their home radius.
	AlertGeofenceExit AlertType = "GEOFENCE_EXIT"
	// AlertLowBattery is raised when the patient device reports a low battery.
	AlertLowBattery AlertType = "LOW_BATTERY"
	// AlertMissedMedication is raised when a scheduled dose is not marked as taken.
	AlertMissedMedication AlertType = "MISSED_MEDICATION"
)

// IsValid checks if the alert type is a known value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertGeofenceExit, AlertLowBattery, AlertMissedMedication:
		return true
	default:
		return false
	}
}

// Alert is a notification addressed to one caretaker about one patient.
type Alert struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	CaretakerID uuid.UUID `json:"caretaker_id"`
	Type        AlertType `json:"type"`
	Message     string    `json:"message"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"created_at"`
}

// AlertWithPatient is an alert joined with the patient summary for caretaker listings.
type AlertWithPatient struct {
	Alert
	Patient *ProfileSummary `json:"patient,omitempty"`
}
