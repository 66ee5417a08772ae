package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one scheduled dose on a patient's medication list.
type Medication struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Time         string    `json:"time"`
	Instructions *string   `json:"instructions"`
	Taken        bool      `json:"taken"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MedicationChanges carries a partial medication update; nil fields are left untouched.
type MedicationChanges struct {
	Name         *string
	Dosage       *string
	Time         *string
	Instructions *string
	Taken        *bool
}

// IsEmpty reports whether the update touches no field.
func (c MedicationChanges) IsEmpty() bool {
	return c.Name == nil && c.Dosage == nil && c.Time == nil && c.Instructions == nil && c.Taken == nil
}
