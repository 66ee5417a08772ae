package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/domain/service"
	mockRepo "alzassist/internal/mocks/repository"
	mockSvc "alzassist/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service        *locationService
	locationRepo   *mockRepo.MockLocationRepository
	profileRepo    *mockRepo.MockProfileRepository
	connectionRepo *mockRepo.MockConnectionRepository
	alertRepo      *mockRepo.MockAlertRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewLocationService(locationRepo, profileRepo, connectionRepo, alertRepo, publisher, newTestConfig(), newDiscardLogger())

	return locationServiceFixtures{
		service:        srv.(*locationService),
		locationRepo:   locationRepo,
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		alertRepo:      alertRepo,
		publisher:      publisher,
	}
}

var testHome = entity.Coordinate{Lat: 40.0, Lng: -74.0}

func newPatientProfile(id uuid.UUID, home *entity.Coordinate) *entity.Profile {
	profile := &entity.Profile{ID: id, Role: entity.RolePatient, Name: "Alice"}
	if home != nil {
		profile.SetHome(*home)
	}

	return profile
}

// expectLocationSaved makes the location mock assign an ID like the store does.
func (fx locationServiceFixtures) expectLocationSaved(ctx context.Context) {
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LocationRecord")).
		RunAndReturn(func(_ context.Context, record *entity.LocationRecord) error {
			record.ID = uuid.New()

			return nil
		})
}

// expectAlertsCreated makes alert inserts succeed for every caretaker except the failing ones.
func (fx locationServiceFixtures) expectAlertsCreated(ctx context.Context, failing map[uuid.UUID]error) {
	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			if err, ok := failing[alert.CaretakerID]; ok {
				return err
			}
			alert.ID = uuid.New()

			return nil
		})
}

func TestLocationService_SubmitLocation_SaveFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LocationRecord")).
		Return(errors.New("connection refused"))

	result := fx.service.SubmitLocation(ctx, patientID, 40.0, -74.0)

	require.NotNil(t, result)
	assert.Nil(t, result.Location)
	assert.False(t, result.AlertTriggered)
	assert.Nil(t, result.FanOut)
}

func TestLocationService_SubmitLocation_AtHome(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)

	result := fx.service.SubmitLocation(ctx, patientID, testHome.Lat, testHome.Lng)

	require.NotNil(t, result.Location)
	assert.Equal(t, patientID, result.Location.PatientID)
	assert.Equal(t, testHome.Lat, result.Location.Lat)
	assert.Equal(t, testHome.Lng, result.Location.Lng)
	assert.False(t, result.Location.RecordedAt.IsZero())
	assert.False(t, result.AlertTriggered)
	assert.Nil(t, result.FanOut)
}

func TestLocationService_SubmitLocation_NoHomeNeverAlerts(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, nil), nil)

	result := fx.service.SubmitLocation(ctx, patientID, -33.86, 151.2)

	require.NotNil(t, result.Location)
	assert.False(t, result.AlertTriggered)
	assert.Nil(t, result.FanOut)
}

func TestLocationService_SubmitLocation_HalfSetHomeNeverAlerts(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	profile := newPatientProfile(patientID, nil)
	profile.HomeLat = ptr(40.0)

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(profile, nil)

	result := fx.service.SubmitLocation(ctx, patientID, 10, 10)

	require.NotNil(t, result.Location)
	assert.False(t, result.AlertTriggered)
}

func TestLocationService_SubmitLocation_ProfileMissing(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(nil, repository.ErrProfileNotFound)

	result := fx.service.SubmitLocation(ctx, patientID, 41.0, -74.0)

	require.NotNil(t, result.Location)
	assert.False(t, result.AlertTriggered)
}

func TestLocationService_SubmitLocation_RadiusBoundary(t *testing.T) {
	tests := []struct {
		name          string
		meters        float64
		expectTrigger bool
	}{
		{name: "499m inside", meters: 499, expectTrigger: false},
		{name: "499.5m just inside", meters: 499.5, expectTrigger: false},
		{name: "501m outside", meters: 501, expectTrigger: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)

			ctx := context.Background()
			patientID := uuid.New()
			point := metersNorth(testHome, tt.meters)

			fx.expectLocationSaved(ctx)
			fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
			if tt.expectTrigger {
				fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return([]uuid.UUID{}, nil)
			}

			result := fx.service.SubmitLocation(ctx, patientID, point.Lat, point.Lng)

			assert.Equal(t, tt.expectTrigger, result.AlertTriggered)
		})
	}
}

func TestLocationService_SubmitLocation_FanOutToEveryAcceptedCaretaker(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	caretakers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return(caretakers, nil)
	fx.expectAlertsCreated(ctx, nil)

	var published *service.GeofenceExitEvent
	fx.publisher.EXPECT().
		PublishGeofenceExit(ctx, mock.AnythingOfType("*service.GeofenceExitEvent")).
		Run(func(_ context.Context, event *service.GeofenceExitEvent) {
			published = event
		}).
		Return(nil)

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	require.True(t, result.AlertTriggered)
	require.NotNil(t, result.FanOut)
	assert.Equal(t, len(caretakers), result.FanOut.Attempted)
	assert.Equal(t, len(caretakers), result.FanOut.Delivered)
	assert.Zero(t, result.FanOut.Failed)
	assert.False(t, result.FanOut.Degraded())
	require.Len(t, result.FanOut.Deliveries, len(caretakers))
	for i, delivery := range result.FanOut.Deliveries {
		assert.Equal(t, caretakers[i], delivery.CaretakerID)
		assert.True(t, delivery.Delivered())
	}
	fx.alertRepo.AssertNumberOfCalls(t, "Create", len(caretakers))

	require.NotNil(t, published)
	assert.Equal(t, patientID.String(), published.PatientID)
	assert.Equal(t, result.Location.ID.String(), published.LocationID)
	assert.Len(t, published.AlertIDs, len(caretakers))
	assert.Equal(t, caretakers[0].String(), published.CaretakerIDs[0])
	assert.InDelta(t, 1112, published.DistanceMeters, 1)
	assert.Equal(t, 500.0, published.RadiusMeters)
}

func TestLocationService_SubmitLocation_AlertContent(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	caretakerID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return([]uuid.UUID{caretakerID}, nil)
	fx.alertRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(alert *entity.Alert) bool {
			return alert.PatientID == patientID &&
				alert.CaretakerID == caretakerID &&
				alert.Type == entity.AlertGeofenceExit &&
				!alert.Resolved &&
				alert.Message == "Patient Alice has left the safe zone (1112m from home)"
		})).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = uuid.New()

			return nil
		})
	fx.publisher.EXPECT().PublishGeofenceExit(ctx, mock.Anything).Return(nil)

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	assert.True(t, result.AlertTriggered)
	assert.Equal(t, 1, result.FanOut.Delivered)
}

func TestLocationService_SubmitLocation_PartialFanOutFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	caretakers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	failing := map[uuid.UUID]error{caretakers[1]: errors.New("insert timed out")}

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return(caretakers, nil)
	fx.expectAlertsCreated(ctx, failing)

	var published *service.GeofenceExitEvent
	fx.publisher.EXPECT().
		PublishGeofenceExit(ctx, mock.AnythingOfType("*service.GeofenceExitEvent")).
		Run(func(_ context.Context, event *service.GeofenceExitEvent) {
			published = event
		}).
		Return(nil)

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	require.True(t, result.AlertTriggered)
	report := result.FanOut
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Degraded())

	assert.True(t, report.Deliveries[0].Delivered())
	assert.False(t, report.Deliveries[1].Delivered())
	assert.Equal(t, caretakers[1], report.Deliveries[1].CaretakerID)
	assert.Contains(t, report.Deliveries[1].Error, "insert timed out")
	assert.True(t, report.Deliveries[2].Delivered())

	require.NotNil(t, published)
	assert.Equal(t, []string{caretakers[0].String(), caretakers[2].String()}, published.CaretakerIDs)
}

func TestLocationService_SubmitLocation_AllInsertsFail(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	caretakers := []uuid.UUID{uuid.New(), uuid.New()}
	failing := map[uuid.UUID]error{
		caretakers[0]: errors.New("boom"),
		caretakers[1]: errors.New("boom"),
	}

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return(caretakers, nil)
	fx.expectAlertsCreated(ctx, failing)

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	assert.True(t, result.AlertTriggered)
	assert.Equal(t, 2, result.FanOut.Failed)
	assert.Zero(t, result.FanOut.Delivered)
	fx.publisher.AssertNotCalled(t, "PublishGeofenceExit", mock.Anything, mock.Anything)
}

func TestLocationService_SubmitLocation_CaretakerLookupFails(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return(nil, errors.New("replica down"))

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	assert.True(t, result.AlertTriggered)
	require.NotNil(t, result.FanOut)
	assert.Zero(t, result.FanOut.Attempted)
	assert.Empty(t, result.FanOut.Deliveries)
	assert.Contains(t, result.FanOut.LookupError, "replica down")
	assert.True(t, result.FanOut.Degraded())
}

func TestLocationService_SubmitLocation_PublishErrorIsIgnored(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.expectAlertsCreated(ctx, nil)
	fx.publisher.EXPECT().PublishGeofenceExit(ctx, mock.Anything).Return(errors.New("topic not found"))

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	assert.True(t, result.AlertTriggered)
	assert.Equal(t, 1, result.FanOut.Delivered)
}

func TestLocationService_GetHistory_Limits(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "zero uses default", limit: 0, expectedLimit: 50},
		{name: "negative uses default", limit: -3, expectedLimit: 50},
		{name: "within range", limit: 10, expectedLimit: 10},
		{name: "capped at max", limit: 10000, expectedLimit: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)

			ctx := context.Background()
			patientID := uuid.New()
			records := []*entity.LocationRecord{{ID: uuid.New(), PatientID: patientID}}

			fx.locationRepo.EXPECT().ListRecent(ctx, patientID, tt.expectedLimit).Return(records, nil)

			assert.Equal(t, records, fx.service.GetHistory(ctx, patientID, tt.limit))
		})
	}
}

func TestLocationService_GetHistory_ReadFailureReturnsEmpty(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.locationRepo.EXPECT().ListRecent(ctx, patientID, 50).Return(nil, errors.New("query timed out"))

	history := fx.service.GetHistory(ctx, patientID, 0)

	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestLocationService_GetLatest(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	withRecord, withoutRecord, failing := uuid.New(), uuid.New(), uuid.New()
	latest := &entity.LocationRecord{ID: uuid.New(), PatientID: withRecord}

	fx.locationRepo.EXPECT().FindLatest(ctx, withRecord).Return(latest, nil)
	fx.locationRepo.EXPECT().FindLatest(ctx, withoutRecord).Return(nil, nil)
	fx.locationRepo.EXPECT().FindLatest(ctx, failing).Return(nil, errors.New("boom"))

	assert.Equal(t, latest, fx.service.GetLatest(ctx, withRecord))
	assert.Nil(t, fx.service.GetLatest(ctx, withoutRecord))
	assert.Nil(t, fx.service.GetLatest(ctx, failing))
}

func TestLocationService_GetTrack(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	now := time.Now().UTC()
	newest := &entity.LocationRecord{ID: uuid.New(), PatientID: patientID, Lat: 40.002, Lng: -74.0, RecordedAt: now}
	oldest := &entity.LocationRecord{ID: uuid.New(), PatientID: patientID, Lat: 40.001, Lng: -74.0, RecordedAt: now.Add(-time.Minute)}

	fx.locationRepo.EXPECT().ListRecent(ctx, patientID, 50).Return([]*entity.LocationRecord{newest, oldest}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)

	fc := fx.service.GetTrack(ctx, patientID, 0)

	require.Len(t, fc.Features, 4)

	assert.Equal(t, oldest.ID.String(), fc.Features[0].ID)
	assert.Equal(t, newest.ID.String(), fc.Features[1].ID)

	track, ok := fc.Features[2].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{oldest.Coordinate().Point(), newest.Coordinate().Point()}, track)

	fence, ok := fc.Features[3].Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, fence, 1)
	assert.True(t, fence[0].Closed())
	assert.Equal(t, "safe_zone", fc.Features[3].Properties["kind"])
	assert.Equal(t, 500.0, fc.Features[3].Properties["radius_meters"])
}

func TestLocationService_GetTrack_WithoutHomeOrHistory(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()

	fx.locationRepo.EXPECT().ListRecent(ctx, patientID, 5).Return([]*entity.LocationRecord{}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, nil), nil)

	fc := fx.service.GetTrack(ctx, patientID, 5)

	require.NotNil(t, fc)
	assert.Empty(t, fc.Features)
}

// Scenario: home (40,-74), two accepted caretakers, a sample ~1.1km north.
func TestLocationService_Scenario_TwoCaretakersAlerted(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	patientID := uuid.New()
	caretakers := []uuid.UUID{uuid.New(), uuid.New()}

	fx.expectLocationSaved(ctx)
	fx.profileRepo.EXPECT().FindByID(ctx, patientID).Return(newPatientProfile(patientID, &testHome), nil)
	fx.connectionRepo.EXPECT().ListAcceptedCaretakerIDs(ctx, patientID).Return(caretakers, nil)

	var (
		mu       sync.Mutex
		messages []string
	)
	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		RunAndReturn(func(_ context.Context, alert *entity.Alert) error {
			alert.ID = uuid.New()
			mu.Lock()
			messages = append(messages, alert.Message)
			mu.Unlock()

			return nil
		}).
		Times(2)
	fx.publisher.EXPECT().PublishGeofenceExit(ctx, mock.Anything).Return(nil)

	result := fx.service.SubmitLocation(ctx, patientID, 40.01, -74.0)

	assert.True(t, result.AlertTriggered)
	assert.Equal(t, 2, result.FanOut.Delivered)
	require.Len(t, messages, 2)
	for _, message := range messages {
		assert.Contains(t, message, fmt.Sprintf("(%dm from home)", 1112))
	}
}

func TestNewLocationService_Defaults(t *testing.T) {
	cfg := newTestConfig()
	cfg.Geofence = nil
	cfg.Location.HistoryDefaultLimit = 900
	cfg.Location.HistoryMaxLimit = 200

	srv := NewLocationService(nil, nil, nil, nil, nil, cfg, newDiscardLogger()).(*locationService)

	assert.Equal(t, 500.0, srv.evaluator.Radius())
	assert.Equal(t, defaultFanOutConcurrency, srv.concurrency)
	assert.Equal(t, 200, srv.maxLimit)
	assert.Equal(t, 200, srv.defaultLimit)
}
