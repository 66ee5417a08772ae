package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alzassist/config"
	"alzassist/internal/domain/constants"
	"alzassist/internal/domain/service"
	"alzassist/internal/infra/pubsub"
	mockRepo "alzassist/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockAlertRepository) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.DiscardHandler),
		AlertRepo: alertRepo,
	}), alertRepo
}

func pushBody(t *testing.T, eventType string, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := pubsub.PushMessage{Subscription: "projects/p/subscriptions/s"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{pubsub.AttrEventType: eventType, pubsub.AttrRequestID: "req-9"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_GeofenceExit(t *testing.T) {
	h, alertRepo := newTestPushHandler(t, nil)

	first, second := uuid.New(), uuid.New()
	alertRepo.EXPECT().CountUnresolved(mock.Anything, first).Return(int64(2), nil).Once()
	alertRepo.EXPECT().CountUnresolved(mock.Anything, second).Return(int64(1), nil).Once()

	rec := servePush(h, pushBody(t, pubsub.EventTypeGeofenceExit, &service.GeofenceExitEvent{
		PatientID:      uuid.NewString(),
		PatientName:    "Alice",
		DistanceMeters: 1112,
		CaretakerIDs:   []string{first.String(), "not-a-uuid", second.String()},
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_LogsOneDispatchLinePerCaretaker(t *testing.T) {
	h, alertRepo := newTestPushHandler(t, nil)
	var buf bytes.Buffer
	h.logger = slog.New(slog.NewJSONHandler(&buf, nil))

	first, second := uuid.New(), uuid.New()
	alertRepo.EXPECT().CountUnresolved(mock.Anything, first).Return(int64(3), nil).Once()
	alertRepo.EXPECT().CountUnresolved(mock.Anything, second).Return(int64(0), nil).Once()

	rec := servePush(h, pushBody(t, pubsub.EventTypeGeofenceExit, &service.GeofenceExitEvent{
		PatientID:    uuid.NewString(),
		CaretakerIDs: []string{first.String(), second.String()},
	}), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dispatched []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "[Worker] Geofence exit dispatched" {
			dispatched = append(dispatched, entry)
		}
	}

	require.Len(t, dispatched, 2)
	assert.Equal(t, first.String(), dispatched[0]["caretaker_id"])
	assert.EqualValues(t, 3, dispatched[0]["unresolved_alerts"])
	assert.Equal(t, second.String(), dispatched[1]["caretaker_id"])
	for _, entry := range dispatched {
		assert.Equal(t, "req-9", entry["request_id"])
	}
}

func TestPushHandler_StoreFailureIsRetried(t *testing.T) {
	h, alertRepo := newTestPushHandler(t, nil)

	caretaker := uuid.New()
	alertRepo.EXPECT().CountUnresolved(mock.Anything, caretaker).Return(int64(0), errors.New("deadline exceeded"))

	rec := servePush(h, pushBody(t, pubsub.EventTypeGeofenceExit, &service.GeofenceExitEvent{
		PatientID:    uuid.NewString(),
		CaretakerIDs: []string{caretaker.String()},
	}), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_AcknowledgedWithoutWork(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		event     any
	}{
		{name: "other event type", eventType: "battery_low", event: map[string]string{"patient_id": "p"}},
		{name: "no caretakers", eventType: pubsub.EventTypeGeofenceExit, event: &service.GeofenceExitEvent{PatientID: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, pushBody(t, tt.eventType, tt.event), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := servePush(h, `{"message":{"data":"%%%","attributes":{"event_type":"geofence_exit"}}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		audience = aud
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, pubsub.EventTypeGeofenceExit, &service.GeofenceExitEvent{PatientID: "p"})

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", audience)
}

func TestNewPushHandler_SkipsAuthInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
