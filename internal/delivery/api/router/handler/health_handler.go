package handler

import (
	"net/http"

	"alzassist/internal/delivery/api/response"
	deliverycontext "alzassist/internal/delivery/context"
	domainerrors "alzassist/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

// AuthHandler serves the caller's own identity.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me returns the profile of the authenticated caller.
// It runs behind the profile middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	profile, ok := deliverycontext.GetProfile(c)
	if !ok {
		return domainerrors.ErrProfileRequired
	}

	return response.OK(c, profile)
}
