package handler

import (
	"log/slog"
	"strconv"

	"alzassist/internal/delivery/api/response"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC   usecase.LocationUsecase
	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC   usecase.LocationUsecase
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC:   params.LocationUC,
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// SubmitLocationRequest represents a location sample sent by a patient device
type SubmitLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// SubmitLocation stores the caller's location and runs the geofence check.
func (h *LocationHandler) SubmitLocation(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req SubmitLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !(entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng}).InRange() {
		return domainerrors.ErrInvalidCoordinate
	}

	result := h.locationUC.SubmitLocation(c.Request().Context(), caller.ID, *req.Lat, *req.Lng)
	if result.Location == nil {
		return domainerrors.ErrLocationSaveFailed
	}

	return response.Created(c, result)
}

// GetHistory lists a connected patient's locations, newest first.
func (h *LocationHandler) GetHistory(c echo.Context) error {
	patientID, err := h.authorizedPatient(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.locationUC.GetHistory(c.Request().Context(), patientID, queryLimit(c)))
}

// GetLatest returns a connected patient's newest location, or null when there is none.
func (h *LocationHandler) GetLatest(c echo.Context) error {
	patientID, err := h.authorizedPatient(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.locationUC.GetLatest(c.Request().Context(), patientID))
}

// GetTrack returns recent history and the safe zone as a GeoJSON FeatureCollection.
func (h *LocationHandler) GetTrack(c echo.Context) error {
	patientID, err := h.authorizedPatient(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.locationUC.GetTrack(c.Request().Context(), patientID, queryLimit(c)))
}

// authorizedPatient resolves the :patientId path parameter and checks the caller holds
// an accepted connection to that patient.
func (h *LocationHandler) authorizedPatient(c echo.Context) (uuid.UUID, error) {
	caller, err := callerProfile(c)
	if err != nil {
		return uuid.Nil, err
	}
	patientID, err := pathUUID(c, "patientId")
	if err != nil {
		return uuid.Nil, err
	}
	if err := h.connectionUC.AuthorizePatientRead(c.Request().Context(), caller.ID, patientID); err != nil {
		return uuid.Nil, err
	}

	return patientID, nil
}

// queryLimit reads ?limit. Missing or malformed values fall back to the service default.
func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}

	return limit
}
