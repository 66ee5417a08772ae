package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is an item on a patient's daily to-do list.
type Task struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskChanges carries a partial task update; nil fields are left untouched.
type TaskChanges struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the update touches no field.
func (c TaskChanges) IsEmpty() bool {
	return c.Text == nil && c.Completed == nil
}
