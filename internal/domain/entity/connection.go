package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the approval state of a caretaker-patient pairing.
type ConnectionStatus string

const (
	// ConnectionPending is the initial state after a caretaker sends a request.
	ConnectionPending ConnectionStatus = "PENDING"
	// ConnectionAccepted grants the caretaker visibility into the patient's data.
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	// ConnectionRejected is a declined request.
	ConnectionRejected ConnectionStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionPending, ConnectionAccepted, ConnectionRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether a patient may move a connection to this status.
func (s ConnectionStatus) IsDecision() bool {
	return s == ConnectionAccepted || s == ConnectionRejected
}

// Connection pairs a caretaker with a patient.
type Connection struct {
	ID          uuid.UUID        `json:"id"`
	CaretakerID uuid.UUID        `json:"caretaker_id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	Status      ConnectionStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ConnectionWithProfile is a connection joined with the profile on the other side.
type ConnectionWithProfile struct {
	ID        uuid.UUID        `json:"id"`
	Status    ConnectionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Patient   *ProfileSummary  `json:"patient,omitempty"`
	Caretaker *ProfileSummary  `json:"caretaker,omitempty"`
}
