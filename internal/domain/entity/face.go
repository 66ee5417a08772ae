package entity

import (
	"time"

	"github.com/google/uuid"
)

// Face is a gallery photo of someone the patient should recognise.
type Face struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
