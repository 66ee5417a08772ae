package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alzassist/config"
	apimiddleware "alzassist/internal/delivery/api/middleware"
	"alzassist/internal/delivery/api/router"
	"alzassist/internal/delivery/api/router/handler"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/service"
	mockService "alzassist/internal/mocks/service"
	mockUsecase "alzassist/internal/mocks/usecase"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	patientToken   = "patient-token"
	caretakerToken = "caretaker-token"
	newcomerToken  = "newcomer-token"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details string          `json:"details"`
}

type apiFixtures struct {
	e            *echo.Echo
	patient      *entity.Profile
	caretaker    *entity.Profile
	newcomerID   uuid.UUID
	profileUC    *mockUsecase.MockProfileUsecase
	locationUC   *mockUsecase.MockLocationUsecase
	connectionUC *mockUsecase.MockConnectionUsecase
	alertUC      *mockUsecase.MockAlertUsecase
	careRecordUC *mockUsecase.MockCareRecordUsecase
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	fx := &apiFixtures{
		patient:      &entity.Profile{ID: uuid.New(), Role: entity.RolePatient, Name: "Alice"},
		caretaker:    &entity.Profile{ID: uuid.New(), Role: entity.RoleCaretaker, Name: "Bob"},
		newcomerID:   uuid.New(),
		profileUC:    mockUsecase.NewMockProfileUsecase(t),
		locationUC:   mockUsecase.NewMockLocationUsecase(t),
		connectionUC: mockUsecase.NewMockConnectionUsecase(t),
		alertUC:      mockUsecase.NewMockAlertUsecase(t),
		careRecordUC: mockUsecase.NewMockCareRecordUsecase(t),
	}

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(mock.Anything, patientToken).
		Return(&service.Claims{UserID: fx.patient.ID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything, caretakerToken).
		Return(&service.Claims{UserID: fx.caretaker.ID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything, newcomerToken).
		Return(&service.Claims{UserID: fx.newcomerID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything, "expired").
		Return(nil, errors.New("token is expired")).Maybe()

	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.patient.ID).Return(fx.patient, nil).Maybe()
	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.caretaker.ID).Return(fx.caretaker, nil).Maybe()
	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.newcomerID).
		Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")).Maybe()

	fx.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(),
		ProfileHandler:    handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: fx.profileUC, ConnectionUC: fx.connectionUC, Logger: logger}),
		LocationHandler:   handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: fx.locationUC, ConnectionUC: fx.connectionUC, Logger: logger}),
		ConnectionHandler: handler.NewConnectionHandler(handler.ConnectionHandlerParams{ConnectionUC: fx.connectionUC, Logger: logger}),
		AlertHandler:      handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: fx.alertUC, Logger: logger}),
		CareRecordHandler: handler.NewCareRecordHandler(handler.CareRecordHandlerParams{CareRecordUC: fx.careRecordUC, ConnectionUC: fx.connectionUC, Logger: logger}),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(tokenSvc, fx.profileUC, logger),
	})

	return fx
}

func (fx *apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestAPI_HealthAndUnknownRoute(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	rec, env = fx.do(t, http.MethodGet, "/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.Equal(t, "Route not found", env.Error)
}

func TestAPI_Authentication(t *testing.T) {
	fx := newAPIFixtures(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "expired token", header: "Bearer expired", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "token without profile", header: "Bearer " + newcomerToken, wantStatus: http.StatusUnauthorized, wantCode: "PROFILE_REQUIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.e.ServeHTTP(rec, req)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestAPI_Me(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/api/auth/me", patientToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var profile entity.Profile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, fx.patient.ID, profile.ID)
	assert.Equal(t, entity.RolePatient, profile.Role)
}

func TestAPI_RoleRequired(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/api/alerts", patientToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ROLE_REQUIRED", env.Code)
	assert.Equal(t, "Access denied. Required role: CARETAKER", env.Error)

	rec, env = fx.do(t, http.MethodPost, "/api/locations", caretakerToken, `{"lat":1,"lng":2}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied. Required role: PATIENT", env.Error)
}

func TestAPI_CreateProfile_TokenOnly(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.profileUC.EXPECT().
		CreateProfile(mock.Anything, fx.newcomerID, &usecase.CreateProfileInput{Role: entity.RoleCaretaker, Name: "Carol"}).
		Return(&entity.Profile{ID: fx.newcomerID, Role: entity.RoleCaretaker, Name: "Carol"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/profiles", newcomerToken, `{"role":"CARETAKER","name":"Carol"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	rec, env = fx.do(t, http.MethodPost, "/api/profiles", newcomerToken, `{"role":"NURSE","name":"Carol"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "Role failed on role", env.Details)
}

func TestAPI_GetProfile_Authorization(t *testing.T) {
	fx := newAPIFixtures(t)

	// Own profile needs no connection check.
	rec, _ := fx.do(t, http.MethodGet, "/api/profiles/"+fx.patient.ID.String(), patientToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// A patient cannot read another profile.
	rec, env := fx.do(t, http.MethodGet, "/api/profiles/"+fx.caretaker.ID.String(), patientToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Code)

	// A caretaker reads a patient only through an accepted connection.
	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, fx.patient.ID).
		Return(domainerrors.ErrNotConnected).Once()
	rec, env = fx.do(t, http.MethodGet, "/api/profiles/"+fx.patient.ID.String(), caretakerToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_CONNECTED", env.Code)

	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, fx.patient.ID).
		Return(nil).Once()
	rec, _ = fx.do(t, http.MethodGet, "/api/profiles/"+fx.patient.ID.String(), caretakerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = fx.do(t, http.MethodGet, "/api/profiles/not-a-uuid", patientToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", env.Details)
}

func TestAPI_SubmitLocation(t *testing.T) {
	fx := newAPIFixtures(t)

	record := &entity.LocationRecord{ID: uuid.New(), PatientID: fx.patient.ID, Lat: 40.01, Lng: -74, RecordedAt: time.Now().UTC()}
	fx.locationUC.EXPECT().SubmitLocation(mock.Anything, fx.patient.ID, 40.01, -74.0).
		Return(&usecase.SubmitResult{
			Location:       record,
			AlertTriggered: true,
			FanOut:         &entity.FanOutReport{Attempted: 1, Delivered: 1, Deliveries: []entity.AlertDelivery{{CaretakerID: fx.caretaker.ID}}},
		})

	rec, env := fx.do(t, http.MethodPost, "/api/locations", patientToken, `{"lat":40.01,"lng":-74}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result usecase.SubmitResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.AlertTriggered)
	assert.Equal(t, record.ID, result.Location.ID)
	assert.Equal(t, 1, result.FanOut.Delivered)
}

func TestAPI_SubmitLocation_Rejected(t *testing.T) {
	fx := newAPIFixtures(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "missing longitude", body: `{"lat":40}`, wantCode: "VALIDATION_FAILED"},
		{name: "malformed json", body: `{"lat":`, wantCode: "VALIDATION_FAILED"},
		{name: "string coordinate", body: `{"lat":"40","lng":1}`, wantCode: "VALIDATION_FAILED"},
		{name: "latitude out of range", body: `{"lat":90.5,"lng":0}`, wantCode: "INVALID_COORDINATE"},
		{name: "longitude out of range", body: `{"lat":0,"lng":181}`, wantCode: "INVALID_COORDINATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodPost, "/api/locations", patientToken, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestAPI_SubmitLocation_ZeroCoordinateIsAccepted(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.locationUC.EXPECT().SubmitLocation(mock.Anything, fx.patient.ID, 0.0, 0.0).
		Return(&usecase.SubmitResult{Location: &entity.LocationRecord{ID: uuid.New()}})

	rec, _ := fx.do(t, http.MethodPost, "/api/locations", patientToken, `{"lat":0,"lng":0}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_SubmitLocation_SaveFailure(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.locationUC.EXPECT().SubmitLocation(mock.Anything, fx.patient.ID, 1.0, 2.0).Return(&usecase.SubmitResult{})

	rec, env := fx.do(t, http.MethodPost, "/api/locations", patientToken, `{"lat":1,"lng":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "LOCATION_SAVE_FAILED", env.Code)
	assert.Equal(t, "Failed to save location", env.Error)
}

func TestAPI_BodyTooLarge(t *testing.T) {
	fx := newAPIFixtures(t)

	body := `{"lat":1,"lng":2,"pad":"` + strings.Repeat("x", 2048) + `"}`
	rec, env := fx.do(t, http.MethodPost, "/api/locations", patientToken, body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", env.Code)
}

func TestAPI_LocationReads_RequireConnection(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, fx.patient.ID).
		Return(domainerrors.ErrNotConnected)

	for _, suffix := range []string{"", "/latest", "/track"} {
		t.Run("path"+suffix, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, "/api/locations/"+fx.patient.ID.String()+suffix, caretakerToken, "")

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "NOT_CONNECTED", env.Code)
			assert.Equal(t, "Not connected to this patient", env.Error)
		})
	}
}

func TestAPI_LocationReads(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, fx.patient.ID).Return(nil)

	t.Run("latest without records is null", func(t *testing.T) {
		fx.locationUC.EXPECT().GetLatest(mock.Anything, fx.patient.ID).Return(nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/locations/"+fx.patient.ID.String()+"/latest", caretakerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "null", string(env.Data))
	})

	t.Run("history passes the limit", func(t *testing.T) {
		fx.locationUC.EXPECT().GetHistory(mock.Anything, fx.patient.ID, 10).
			Return([]*entity.LocationRecord{{ID: uuid.New()}, {ID: uuid.New()}}).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/locations/"+fx.patient.ID.String()+"?limit=10", caretakerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var records []entity.LocationRecord
		require.NoError(t, json.Unmarshal(env.Data, &records))
		assert.Len(t, records, 2)
	})

	t.Run("malformed limit falls back to the default", func(t *testing.T) {
		fx.locationUC.EXPECT().GetHistory(mock.Anything, fx.patient.ID, 0).
			Return([]*entity.LocationRecord{}).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/locations/"+fx.patient.ID.String()+"?limit=abc", caretakerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", string(env.Data))
	})
}

func TestAPI_Connections(t *testing.T) {
	fx := newAPIFixtures(t)

	t.Run("send request", func(t *testing.T) {
		conn := &entity.Connection{ID: uuid.New(), CaretakerID: fx.caretaker.ID, PatientID: fx.patient.ID, Status: entity.ConnectionPending}
		fx.connectionUC.EXPECT().SendRequest(mock.Anything, fx.caretaker.ID, fx.patient.ID).Return(conn, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/connections", caretakerToken, `{"patientId":"`+fx.patient.ID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"PENDING"`)
	})

	t.Run("send request to unknown patient", func(t *testing.T) {
		other := uuid.New()
		fx.connectionUC.EXPECT().SendRequest(mock.Anything, fx.caretaker.ID, other).
			Return(nil, errors.Wrap(domainerrors.ErrPatientNotFound, "target profile not found")).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/connections", caretakerToken, `{"patientId":"`+other.String()+`"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PATIENT_NOT_FOUND", env.Code)
	})

	t.Run("invalid decision", func(t *testing.T) {
		for _, body := range []string{`{"status":"PENDING"}`, `{"status":"MAYBE"}`, `{}`} {
			rec, env := fx.do(t, http.MethodPut, "/api/connections/"+uuid.NewString(), patientToken, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, "VALIDATION_FAILED", env.Code, body)
			assert.Contains(t, env.Details, "Status failed on", body)
		}
	})

	t.Run("accept", func(t *testing.T) {
		connID := uuid.New()
		fx.connectionUC.EXPECT().UpdateStatus(mock.Anything, connID, fx.patient.ID, entity.ConnectionAccepted).
			Return(&entity.Connection{ID: connID, Status: entity.ConnectionAccepted}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/connections/"+connID.String(), patientToken, `{"status":"ACCEPTED"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		fx.connectionUC.EXPECT().ListPendingRequests(mock.Anything, fx.patient.ID).Return(nil, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/connections/requests", patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", string(env.Data))
	})

	t.Run("invite qr", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}
		fx.connectionUC.EXPECT().GenerateInviteQR(mock.Anything, fx.patient.ID).Return(png, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/connections/qr", patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("scan invite", func(t *testing.T) {
		fx.connectionUC.EXPECT().SendRequestFromQR(mock.Anything, fx.caretaker.ID, "garbage").
			Return(nil, domainerrors.ErrInvalidInviteCode.WrapMessage("bad prefix")).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/connections/qr", caretakerToken, `{"qrData":"garbage"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INVITE_CODE", env.Code)
	})
}

func TestAPI_Alerts(t *testing.T) {
	fx := newAPIFixtures(t)

	t.Run("count", func(t *testing.T) {
		fx.alertUC.EXPECT().CountUnresolved(mock.Anything, fx.caretaker.ID).Return(int64(3), nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/alerts/count", caretakerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"count":3}`, string(env.Data))
	})

	t.Run("resolve alert of another caretaker", func(t *testing.T) {
		alertID := uuid.New()
		fx.alertUC.EXPECT().Resolve(mock.Anything, alertID, fx.caretaker.ID).
			Return(nil, errors.Wrap(domainerrors.ErrAlertNotFound, "alert not found")).Once()

		rec, env := fx.do(t, http.MethodPut, "/api/alerts/"+alertID.String()+"/resolve", caretakerToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ALERT_NOT_FOUND", env.Code)
	})

	t.Run("unexpected error is a bare 500", func(t *testing.T) {
		fx.alertUC.EXPECT().ListForCaretaker(mock.Anything, fx.caretaker.ID).
			Return(nil, errors.New("connection reset by peer")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/alerts", caretakerToken, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Code)
		assert.Empty(t, env.Details)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("storage error hides details", func(t *testing.T) {
		fx.alertUC.EXPECT().ListForCaretaker(mock.Anything, fx.caretaker.ID).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "select alerts")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/alerts", caretakerToken, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Code)
		assert.Empty(t, env.Details)
	})
}

func TestAPI_Journals_PatientCRUD(t *testing.T) {
	fx := newAPIFixtures(t)
	journalID := uuid.New()

	t.Run("create", func(t *testing.T) {
		fx.careRecordUC.EXPECT().CreateJournal(mock.Anything, mock.MatchedBy(func(j *entity.Journal) bool {
			return j.PatientID == fx.patient.ID && j.Content == "Walked to the park" && j.Mood == nil
		})).Return(&entity.Journal{ID: journalID, PatientID: fx.patient.ID, Content: "Walked to the park", Mood: ptr("Neutral")}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/journals", patientToken, `{"content":"Walked to the park"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var journal entity.Journal
		require.NoError(t, json.Unmarshal(env.Data, &journal))
		assert.Equal(t, journalID, journal.ID)
		require.NotNil(t, journal.Mood)
		assert.Equal(t, "Neutral", *journal.Mood)
	})

	t.Run("create without content", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/journals", patientToken, `{"mood":"Happy"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
	})

	t.Run("list own", func(t *testing.T) {
		fx.careRecordUC.EXPECT().ListJournals(mock.Anything, fx.patient.ID).Return(nil, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/journals", patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", string(env.Data))
	})

	t.Run("update", func(t *testing.T) {
		fx.careRecordUC.EXPECT().UpdateJournal(mock.Anything, journalID, fx.patient.ID, entity.JournalChanges{Mood: ptr("Happy")}).
			Return(&entity.Journal{ID: journalID, Mood: ptr("Happy")}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/journals/"+journalID.String(), patientToken, `{"mood":"Happy"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update of another patient's entry", func(t *testing.T) {
		fx.careRecordUC.EXPECT().UpdateJournal(mock.Anything, journalID, fx.patient.ID, mock.Anything).
			Return(nil, domainerrors.ErrJournalNotFound).Once()

		rec, env := fx.do(t, http.MethodPut, "/api/journals/"+journalID.String(), patientToken, `{"content":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "JOURNAL_NOT_FOUND", env.Code)
	})

	t.Run("delete", func(t *testing.T) {
		fx.careRecordUC.EXPECT().DeleteJournal(mock.Anything, journalID, fx.patient.ID).Return(nil).Once()

		rec, env := fx.do(t, http.MethodDelete, "/api/journals/"+journalID.String(), patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Journal entry deleted"}`, string(env.Data))
	})

	t.Run("caretakers cannot write", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/journals", caretakerToken, `{"content":"x"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ROLE_REQUIRED", env.Code)
	})
}

func TestAPI_CareRecordReads_Authorization(t *testing.T) {
	fx := newAPIFixtures(t)
	stranger := uuid.New()

	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, fx.patient.ID).Return(nil).Maybe()
	fx.connectionUC.EXPECT().AuthorizePatientRead(mock.Anything, fx.caretaker.ID, stranger).
		Return(domainerrors.ErrNotConnected).Maybe()

	for _, path := range []string{"/api/journals", "/api/medications", "/api/tasks"} {
		t.Run(path, func(t *testing.T) {
			rec, env := fx.do(t, http.MethodGet, path, caretakerToken, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Code)
			assert.Equal(t, "patient_id query parameter is required for caretakers", env.Details)

			rec, env = fx.do(t, http.MethodGet, path+"?patient_id=not-a-uuid", caretakerToken, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Code)

			rec, env = fx.do(t, http.MethodGet, path+"?patient_id="+stranger.String(), caretakerToken, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "NOT_CONNECTED", env.Code)

			rec, env = fx.do(t, http.MethodGet, path+"?patient_id="+stranger.String(), patientToken, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", env.Code)
		})
	}

	t.Run("connected caretaker reads", func(t *testing.T) {
		fx.careRecordUC.EXPECT().ListJournals(mock.Anything, fx.patient.ID).
			Return([]*entity.Journal{{ID: uuid.New()}}, nil).Once()
		fx.careRecordUC.EXPECT().ListMedications(mock.Anything, fx.patient.ID).
			Return([]*entity.Medication{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()
		fx.careRecordUC.EXPECT().ListTasks(mock.Anything, fx.patient.ID).Return(nil, nil).Once()

		query := "?patient_id=" + fx.patient.ID.String()
		for path, want := range map[string]int{"/api/journals": 1, "/api/medications": 2, "/api/tasks": 0} {
			rec, env := fx.do(t, http.MethodGet, path+query, caretakerToken, "")

			require.Equal(t, http.StatusOK, rec.Code, path)
			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(env.Data, &items))
			assert.Len(t, items, want, path)
		}
	})

	t.Run("patient naming themselves", func(t *testing.T) {
		fx.careRecordUC.EXPECT().ListTasks(mock.Anything, fx.patient.ID).Return(nil, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/tasks?patient_id="+fx.patient.ID.String(), patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPI_MedicationsAndTasks(t *testing.T) {
	fx := newAPIFixtures(t)
	id := uuid.New()

	t.Run("create medication", func(t *testing.T) {
		fx.careRecordUC.EXPECT().CreateMedication(mock.Anything, mock.MatchedBy(func(m *entity.Medication) bool {
			return m.PatientID == fx.patient.ID && m.Name == "Donepezil" && m.Time == "08:00" && !m.Taken
		})).Return(&entity.Medication{ID: id, Name: "Donepezil"}, nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/medications", patientToken, `{"name":"Donepezil","dosage":"5mg","time":"08:00"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("medication without dosage", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/medications", patientToken, `{"name":"Donepezil","time":"08:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
	})

	t.Run("mark medication taken", func(t *testing.T) {
		fx.careRecordUC.EXPECT().UpdateMedication(mock.Anything, id, fx.patient.ID, entity.MedicationChanges{Taken: ptr(true)}).
			Return(&entity.Medication{ID: id, Taken: true}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/medications/"+id.String(), patientToken, `{"taken":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("complete task", func(t *testing.T) {
		fx.careRecordUC.EXPECT().UpdateTask(mock.Anything, id, fx.patient.ID, entity.TaskChanges{Completed: ptr(true)}).
			Return(&entity.Task{ID: id, Completed: true}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/tasks/"+id.String(), patientToken, `{"completed":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete task with a bad id", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodDelete, "/api/tasks/nope", patientToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid id", env.Details)
	})

	t.Run("delete missing medication", func(t *testing.T) {
		fx.careRecordUC.EXPECT().DeleteMedication(mock.Anything, id, fx.patient.ID).Return(domainerrors.ErrMedicationNotFound).Once()

		rec, env := fx.do(t, http.MethodDelete, "/api/medications/"+id.String(), patientToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MEDICATION_NOT_FOUND", env.Code)
	})
}

func TestAPI_GalleryAndEmergencyContacts_PatientOnly(t *testing.T) {
	fx := newAPIFixtures(t)

	for _, path := range []string{"/api/gallery", "/api/emergency-contacts"} {
		rec, env := fx.do(t, http.MethodGet, path+"?patient_id="+fx.patient.ID.String(), caretakerToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Equal(t, "ROLE_REQUIRED", env.Code, path)
	}

	t.Run("add face", func(t *testing.T) {
		fx.careRecordUC.EXPECT().AddFace(mock.Anything, mock.MatchedBy(func(f *entity.Face) bool {
			return f.PatientID == fx.patient.ID && f.ImageURL == "https://cdn.example.com/bob.jpg"
		})).Return(&entity.Face{ID: uuid.New(), Name: "Bob"}, nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/gallery", patientToken,
			`{"name":"Bob","relationship":"Son","imageUrl":"https://cdn.example.com/bob.jpg"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("face needs an image url", func(t *testing.T) {
		rec, env := fx.do(t, http.MethodPost, "/api/gallery", patientToken, `{"name":"Bob","relationship":"Son","imageUrl":"bob"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
	})

	t.Run("list contacts", func(t *testing.T) {
		fx.careRecordUC.EXPECT().ListEmergencyContacts(mock.Anything, fx.patient.ID).
			Return([]*entity.EmergencyContact{{ID: uuid.New(), Name: "Carol", Phone: "0912"}}, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/emergency-contacts", patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"phone":"0912"`)
	})

	t.Run("delete contact", func(t *testing.T) {
		id := uuid.New()
		fx.careRecordUC.EXPECT().DeleteEmergencyContact(mock.Anything, id, fx.patient.ID).Return(nil).Once()

		rec, _ := fx.do(t, http.MethodDelete, "/api/emergency-contacts/"+id.String(), patientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func ptr[T any](v T) *T {
	return &v
}
