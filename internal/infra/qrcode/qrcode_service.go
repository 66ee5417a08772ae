package qrcode

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
)

// InviteType marks QR payloads that invite a caretaker to connect to a patient.
const InviteType = "connection_invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// InviteData represents the QR code data structure
type InviteData struct {
	PatientID string `json:"patient_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateInviteQR renders the invite payload for a patient as a PNG
func (s *qrcodeService) GenerateInviteQR(patientID uuid.UUID) ([]byte, error) {
	payload, err := json.Marshal(InviteData{
		PatientID: patientID.String(),
		Type:      InviteType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal invite payload")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInviteQR parses scanned invite data and returns the patient ID
func (s *qrcodeService) ParseInviteQR(qrData string) (uuid.UUID, error) {
	var data InviteData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal invite payload")
	}

	if data.Type != InviteType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	patientID, err := uuid.Parse(data.PatientID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse patient ID")
	}

	return patientID, nil
}
