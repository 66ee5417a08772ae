package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"alzassist/internal/domain/service"
	"alzassist/internal/errors"
)

// Message attribute keys and values shared by publishers and push consumers.
const (
	AttrEventType = "event_type"
	AttrPatientID = "patient_id"
	AttrRequestID = "request_id"

	EventTypeGeofenceExit = "geofence_exit"
)

// ErrMalformedMessage is returned when a push body cannot be decoded into an event.
var ErrMalformedMessage = errors.New("malformed push message")

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventType returns the event_type attribute, or "" when it is absent.
func (m *PushMessage) EventType() string {
	return m.Message.Attributes[AttrEventType]
}

// DecodeGeofenceExit decodes the base64 payload of a geofence exit message.
func DecodeGeofenceExit(msg *PushMessage) (*service.GeofenceExitEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedMessage, "decode data: %v", err)
	}

	var event service.GeofenceExitEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrapf(ErrMalformedMessage, "unmarshal event: %v", err)
	}
	if event.PatientID == "" {
		return nil, errors.Wrap(ErrMalformedMessage, "missing patient_id")
	}

	return &event, nil
}
