package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a person the patient wants called in an emergency.
type EmergencyContact struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship *string   `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}
