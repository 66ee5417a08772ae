package pubsub

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alzassist/internal/errors"
)

func TestDecodeGeofenceExit(t *testing.T) {
	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: encode(`{"patient_id":"p1","alert_ids":["a1"],"distance_meters":1112}`)},
		{name: "not base64", data: "%%%", wantErr: true},
		{name: "not json", data: encode("hello"), wantErr: true},
		{name: "missing patient", data: encode(`{"alert_ids":["a1"]}`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &PushMessage{}
			msg.Message.Data = tt.data

			event, err := DecodeGeofenceExit(msg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedMessage))
				assert.Nil(t, event)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p1", event.PatientID)
			assert.Equal(t, []string{"a1"}, event.AlertIDs)
			assert.InDelta(t, 1112, event.DistanceMeters, 0.001)
		})
	}
}
