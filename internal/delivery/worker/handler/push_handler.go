package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"alzassist/config"
	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/constants"
	"alzassist/internal/domain/repository"
	"alzassist/internal/domain/service"
	"alzassist/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator validates a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes geofence exit events pushed by Pub/Sub. It is a dispatch-log
// hook: it writes one log line per caretaker who would be notified and does not
// deliver notifications itself.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	alertRepo      repository.AlertRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	AlertRepo repository.AlertRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		alertRepo:      params.AlertRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.EventType(); eventType != "" && eventType != pubsub.EventTypeGeofenceExit {
		h.logger.Info("[Worker] Ignoring event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}

	event, err := pubsub.DecodeGeofenceExit(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode geofence exit event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx = deliverycontext.BeginRequest(ctx, requestID, h.logger)
	reqLogger := deliverycontext.LoggerFromContext(ctx, h.logger)

	reqLogger.Info("[Worker] Processing geofence exit",
		slog.String("patient_id", event.PatientID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("caretaker_count", len(event.CaretakerIDs)),
	)

	if err := h.processGeofenceExit(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process geofence exit",
			slog.String("patient_id", event.PatientID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.GeofenceExitEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processGeofenceExit writes one dispatch log line per caretaker, with their open
// alert count. Nothing is sent to the caretaker; the alert rows written by the API
// are what caretakers read.
func (h *PushHandler) processGeofenceExit(ctx context.Context, event *service.GeofenceExitEvent) error {
	logger := deliverycontext.LoggerFromContext(ctx, h.logger)

	caretakerIDs := parseIDs(event.CaretakerIDs)
	if skipped := len(event.CaretakerIDs) - len(caretakerIDs); skipped > 0 {
		logger.Warn("[Worker] Skipping malformed caretaker IDs", slog.Int("skipped", skipped))
	}
	if len(caretakerIDs) == 0 {
		logger.Info("[Worker] No caretakers to notify", slog.String("patient_id", event.PatientID))

		return nil
	}

	for _, caretakerID := range caretakerIDs {
		unresolved, err := h.alertRepo.CountUnresolved(ctx, caretakerID)
		if err != nil {
			return newRetryableError(errors.Wrapf(err, "count unresolved alerts for %s", caretakerID))
		}

		logger.Info("[Worker] Geofence exit dispatched",
			slog.String("patient_id", event.PatientID),
			slog.String("patient_name", event.PatientName),
			slog.String("caretaker_id", caretakerID.String()),
			slog.Float64("distance_meters", event.DistanceMeters),
			slog.Int64("unresolved_alerts", unresolved),
		)
	}

	return nil
}

func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
