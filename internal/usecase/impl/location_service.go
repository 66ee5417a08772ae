package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"alzassist/config"
	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/geofence"
	"alzassist/internal/domain/repository"
	"alzassist/internal/domain/service"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFanOutConcurrency = 4
	defaultHistoryLimit      = 50
	defaultHistoryMaxLimit   = 500
	fenceRingSegments        = 64

	geofenceExitMessage = "Patient %s has left the safe zone (%dm from home)"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo   repository.LocationRepository
	profileRepo    repository.ProfileRepository
	connectionRepo repository.ConnectionRepository
	alertRepo      repository.AlertRepository
	publisher      service.EventPublisher
	evaluator      *geofence.Evaluator
	concurrency    int
	defaultLimit   int
	maxLimit       int
	logger         *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	locationRepo repository.LocationRepository,
	profileRepo repository.ProfileRepository,
	connectionRepo repository.ConnectionRepository,
	alertRepo repository.AlertRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	srv := &locationService{
		locationRepo:   locationRepo,
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		alertRepo:      alertRepo,
		publisher:      publisher,
		evaluator:      geofence.NewEvaluator(geofence.DefaultRadiusMeters),
		concurrency:    defaultFanOutConcurrency,
		defaultLimit:   defaultHistoryLimit,
		maxLimit:       defaultHistoryMaxLimit,
		logger:         logger,
	}

	if cfg.Geofence != nil {
		srv.evaluator = geofence.NewEvaluator(cfg.Geofence.RadiusMeters)
		if cfg.Geofence.FanOutConcurrency > 0 {
			srv.concurrency = cfg.Geofence.FanOutConcurrency
		}
	}
	if cfg.Location != nil {
		if cfg.Location.HistoryMaxLimit > 0 {
			srv.maxLimit = cfg.Location.HistoryMaxLimit
		}
		if cfg.Location.HistoryDefaultLimit > 0 {
			srv.defaultLimit = min(cfg.Location.HistoryDefaultLimit, srv.maxLimit)
		}
	}

	return srv
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// SubmitLocation stores the sample, then checks the patient's safe zone and alerts
// every accepted caretaker when the patient is outside it.
func (srv *locationService) SubmitLocation(ctx context.Context, patientID uuid.UUID, lat, lng float64) *usecase.SubmitResult {
	logger := srv.log(ctx).With(slog.Any("patient_id", patientID))

	record := &entity.LocationRecord{
		PatientID:  patientID,
		Lat:        lat,
		Lng:        lng,
		RecordedAt: time.Now().UTC(),
	}
	if err := srv.locationRepo.Create(ctx, record); err != nil {
		logger.Error("Failed to save location", slog.Any("error", err))

		return &usecase.SubmitResult{}
	}

	result := &usecase.SubmitResult{Location: record}

	profile, err := srv.profileRepo.FindByID(ctx, patientID)
	if err != nil {
		logger.Warn("Skipping geofence check, patient profile unavailable", slog.Any("error", err))

		return result
	}

	home, ok := profile.Home()
	if !ok {
		return result
	}

	evaluation := srv.evaluator.Evaluate(record.Coordinate(), home)
	if !evaluation.Outside {
		return result
	}

	logger.Info("Patient left the safe zone",
		slog.Float64("distance_meters", evaluation.DistanceMeters),
		slog.Float64("radius_meters", srv.evaluator.Radius()),
	)

	result.AlertTriggered = true
	message := fmt.Sprintf(geofenceExitMessage, profile.Name, evaluation.RoundedMeters())
	result.FanOut = srv.fanOut(ctx, logger, patientID, message)

	if result.FanOut.Delivered > 0 {
		srv.publishExit(ctx, logger, profile, record, evaluation, result.FanOut)
	}

	return result
}

// fanOut creates one alert per accepted caretaker. Inserts run concurrently up to the
// configured limit and never cancel each other; the report keeps caretaker order.
func (srv *locationService) fanOut(ctx context.Context, logger *slog.Logger, patientID uuid.UUID, message string) *entity.FanOutReport {
	report := &entity.FanOutReport{Deliveries: []entity.AlertDelivery{}}

	caretakerIDs, err := srv.connectionRepo.ListAcceptedCaretakerIDs(ctx, patientID)
	if err != nil {
		logger.Error("Failed to list caretakers for geofence alert", slog.Any("error", err))
		report.LookupError = err.Error()

		return report
	}

	report.Attempted = len(caretakerIDs)
	report.Deliveries = make([]entity.AlertDelivery, len(caretakerIDs))

	var g errgroup.Group
	g.SetLimit(srv.concurrency)

	for i, caretakerID := range caretakerIDs {
		g.Go(func() error {
			alert := &entity.Alert{
				PatientID:   patientID,
				CaretakerID: caretakerID,
				Type:        entity.AlertGeofenceExit,
				Message:     message,
				Resolved:    false,
			}

			delivery := entity.AlertDelivery{CaretakerID: caretakerID}
			if err := srv.alertRepo.Create(ctx, alert); err != nil {
				logger.Error("Failed to create geofence alert",
					slog.Any("caretaker_id", caretakerID),
					slog.Any("error", err),
				)
				delivery.Error = err.Error()
			} else {
				alertID := alert.ID
				delivery.AlertID = &alertID
			}
			report.Deliveries[i] = delivery

			return nil
		})
	}
	_ = g.Wait()

	for _, delivery := range report.Deliveries {
		if delivery.Delivered() {
			report.Delivered++
		} else {
			report.Failed++
		}
	}

	if report.Failed > 0 {
		logger.Warn("Geofence alert fan-out degraded",
			slog.Int("attempted", report.Attempted),
			slog.Int("failed", report.Failed),
		)
	}

	return report
}

func (srv *locationService) publishExit(
	ctx context.Context,
	logger *slog.Logger,
	profile *entity.Profile,
	record *entity.LocationRecord,
	evaluation geofence.Result,
	report *entity.FanOutReport,
) {
	event := &service.GeofenceExitEvent{
		RequestID:      deliverycontext.RequestIDFromContext(ctx),
		PatientID:      profile.ID.String(),
		PatientName:    profile.Name,
		LocationID:     record.ID.String(),
		Latitude:       record.Lat,
		Longitude:      record.Lng,
		DistanceMeters: evaluation.DistanceMeters,
		RadiusMeters:   srv.evaluator.Radius(),
		OccurredAt:     record.RecordedAt,
	}
	for _, delivery := range report.Deliveries {
		if !delivery.Delivered() {
			continue
		}
		event.AlertIDs = append(event.AlertIDs, delivery.AlertID.String())
		event.CaretakerIDs = append(event.CaretakerIDs, delivery.CaretakerID.String())
	}

	if err := srv.publisher.PublishGeofenceExit(ctx, event); err != nil {
		logger.Warn("Failed to publish geofence exit event", slog.Any("error", err))
	}
}

// GetHistory returns recent records, newest first. Read failures yield an empty slice.
func (srv *locationService) GetHistory(ctx context.Context, patientID uuid.UUID, limit int) []*entity.LocationRecord {
	records, err := srv.locationRepo.ListRecent(ctx, patientID, srv.clampLimit(limit))
	if err != nil {
		srv.log(ctx).Error("Failed to load location history", slog.Any("patient_id", patientID), slog.Any("error", err))

		return []*entity.LocationRecord{}
	}
	if records == nil {
		return []*entity.LocationRecord{}
	}

	return records
}

// GetLatest returns the newest record, or nil when there is none or the read fails.
func (srv *locationService) GetLatest(ctx context.Context, patientID uuid.UUID) *entity.LocationRecord {
	record, err := srv.locationRepo.FindLatest(ctx, patientID)
	if err != nil {
		srv.log(ctx).Error("Failed to load latest location", slog.Any("patient_id", patientID), slog.Any("error", err))

		return nil
	}

	return record
}

// GetTrack renders the history as a LineString ordered oldest to newest, one Point per
// sample and, when the patient has a home, the safe zone as a Polygon.
func (srv *locationService) GetTrack(ctx context.Context, patientID uuid.UUID, limit int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	records := slices.Clone(srv.GetHistory(ctx, patientID, limit))
	slices.Reverse(records)

	if len(records) > 0 {
		line := make(orb.LineString, 0, len(records))
		for _, record := range records {
			point := record.Coordinate().Point()
			line = append(line, point)

			sample := geojson.NewFeature(point)
			sample.ID = record.ID.String()
			sample.Properties["kind"] = "sample"
			sample.Properties["recorded_at"] = record.RecordedAt.Format(time.RFC3339)
			fc.Append(sample)
		}

		track := geojson.NewFeature(line)
		track.Properties["kind"] = "track"
		track.Properties["samples"] = len(records)
		fc.Append(track)
	}

	profile, err := srv.profileRepo.FindByID(ctx, patientID)
	if err != nil {
		srv.log(ctx).Warn("Track rendered without safe zone", slog.Any("patient_id", patientID), slog.Any("error", err))

		return fc
	}

	if home, ok := profile.Home(); ok {
		fence := geojson.NewFeature(orb.Polygon{srv.evaluator.Ring(home, fenceRingSegments)})
		fence.BBox = geojson.NewBBox(srv.evaluator.Bound(home))
		fence.Properties["kind"] = "safe_zone"
		fence.Properties["radius_meters"] = srv.evaluator.Radius()
		fc.Append(fence)
	}

	return fc
}

func (srv *locationService) clampLimit(limit int) int {
	if limit <= 0 {
		return srv.defaultLimit
	}

	return min(limit, srv.maxLimit)
}
