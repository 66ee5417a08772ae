package entity

import (
	"time"

	"github.com/google/uuid"
)

// Journal is a free-text diary entry written by a patient.
type Journal struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Content   string    `json:"content"`
	Mood      *string   `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JournalChanges carries a partial journal update; nil fields are left untouched.
type JournalChanges struct {
	Content *string
	Mood    *string
}

// IsEmpty reports whether the update touches no field.
func (c JournalChanges) IsEmpty() bool {
	return c.Content == nil && c.Mood == nil
}
