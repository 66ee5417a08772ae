// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// GetProfile retrieves a profile by its identity-provider user ID.
func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// CreateProfile onboards an authenticated identity. Each identity gets at most one profile.
func (srv *profileService) CreateProfile(ctx context.Context, id uuid.UUID, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be PATIENT or CARETAKER")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	srv.log(ctx).Info("Creating profile", slog.Any("user_id", id), slog.String("role", input.Role.String()))

	profile := &entity.Profile{
		ID:    id,
		Role:  input.Role,
		Name:  name,
		Phone: input.Phone,
	}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return nil, errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile already exists")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateProfile applies the given changes in one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := validateProfileUpdate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating profile", slog.Any("user_id", id))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		// 1. Find the profile
		found, err := profileRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		// 2. Apply the changes
		applyProfileUpdate(found, input)

		// 3. Save
		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func validateProfileUpdate(input *usecase.UpdateProfileInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	hasLat, hasLng := input.HomeLat != nil, input.HomeLng != nil
	if hasLat != hasLng {
		return domainerrors.ErrValidationFailed.WithDetails("homeLat and homeLng must be provided together")
	}
	if input.ClearHome && hasLat {
		return domainerrors.ErrValidationFailed.WithDetails("clearHome cannot be combined with home coordinates")
	}
	if hasLat && !(entity.Coordinate{Lat: *input.HomeLat, Lng: *input.HomeLng}).InRange() {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}

func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}
	switch {
	case input.ClearHome:
		profile.ClearHome()
	case input.HomeLat != nil:
		profile.SetHome(entity.Coordinate{Lat: *input.HomeLat, Lng: *input.HomeLng})
	}
}
