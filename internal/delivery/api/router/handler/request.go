package handler

import (
	"alzassist/internal/delivery/api/validator"
	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Message(err))
	}

	return nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func callerProfile(c echo.Context) (*entity.Profile, error) {
	profile, ok := deliverycontext.GetProfile(c)
	if !ok {
		return nil, domainerrors.ErrProfileRequired
	}

	return profile, nil
}
