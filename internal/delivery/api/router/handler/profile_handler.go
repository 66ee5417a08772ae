package handler

import (
	"log/slog"

	"alzassist/internal/delivery/api/response"
	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC    usecase.ProfileUsecase
	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC    usecase.ProfileUsecase
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:    params.ProfileUC,
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// CreateProfileRequest represents the onboarding request body
type CreateProfileRequest struct {
	Role  string  `json:"role" validate:"required,role"`
	Name  string  `json:"name" validate:"required,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateProfileRequest represents the request body for updating the caller's profile
type UpdateProfileRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=100"`
	Phone     *string  `json:"phone" validate:"omitempty,max=32"`
	HomeLat   *float64 `json:"homeLat"`
	HomeLng   *float64 `json:"homeLng"`
	ClearHome bool     `json:"clearHome"`
}

// CreateProfile onboards the authenticated identity. It only needs a valid token.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), userID, &usecase.CreateProfileInput{
		Role:  entity.Role(req.Role),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, profile)
}

// GetProfile returns a profile to its owner or to a caretaker connected to it.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if targetID != caller.ID {
		if caller.Role != entity.RoleCaretaker {
			return domainerrors.ErrForbidden
		}
		if err := h.connectionUC.AuthorizePatientRead(c.Request().Context(), caller.ID, targetID); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// UpdateMyProfile changes the caller's name, phone or home coordinate.
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), caller.ID, &usecase.UpdateProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		HomeLat:   req.HomeLat,
		HomeLng:   req.HomeLng,
		ClearHome: req.ClearHome,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}
