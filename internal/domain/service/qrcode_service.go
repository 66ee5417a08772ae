package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for connection invite QR codes
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code that invites caretakers to connect to the patient
	GenerateInviteQR(patientID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses scanned QR code data and returns the patient ID
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
