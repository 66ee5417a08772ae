package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateInviteQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	patientID := uuid.New()

	valid, err := json.Marshal(InviteData{PatientID: patientID.String(), Type: InviteType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		qrData  string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid invite", qrData: string(valid), want: patientID},
		{name: "invalid JSON", qrData: "not json", wantErr: true},
		{name: "wrong type", qrData: `{"patient_id":"` + patientID.String() + `","type":"subscription"}`, wantErr: true},
		{name: "invalid UUID", qrData: `{"patient_id":"abc","type":"connection_invite"}`, wantErr: true},
		{name: "missing patient", qrData: `{"type":"connection_invite"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseInviteQR(tt.qrData)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
