package usecase

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	CreateProfile(ctx context.Context, id uuid.UUID, input *CreateProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// CreateProfileInput is the onboarding data sent after identity-provider signup.
type CreateProfileInput struct {
	Role  entity.Role
	Name  string
	Phone *string
}

// UpdateProfileInput carries optional profile changes. HomeLat and HomeLng
// must be given together; ClearHome removes the home coordinate.
type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	HomeLat   *float64
	HomeLng   *float64
	ClearHome bool
}
