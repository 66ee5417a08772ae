// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gen/field"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	dbScope
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB, cfg *config.Config) repository.ProfileRepository {
	return &profileRepository{dbScope: newDBScope(db, cfg)}
}

// FindByID retrieves a profile by its identity-provider user ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	profileM, err := repo.q.ProfileModel.WithContext(ctx).ReadDB().
		Where(repo.q.ProfileModel.ID.Eq(id)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, storageError(err, "failed to find profile by ID")
	}

	return toProfileDomain(profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	profileM := fromProfileDomain(profile)
	if err := repo.q.ProfileModel.WithContext(ctx).Create(profileM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}

		return storageError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update writes the mutable profile fields. Nil phone or home values are stored as NULL.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	p := repo.q.ProfileModel
	info, err := p.WithContext(ctx).
		Where(p.ID.Eq(profile.ID)).
		UpdateSimple(
			p.Name.Value(profile.Name),
			stringOrNull(p.Phone, profile.Phone),
			floatOrNull(p.HomeLat, profile.HomeLat),
			floatOrNull(p.HomeLng, profile.HomeLng),
		)
	if err != nil {
		return storageError(err, "failed to update profile")
	}

	if info.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = time.Now().UTC()

	return nil
}

func stringOrNull(col field.String, value *string) field.AssignExpr {
	if value == nil {
		return col.Null()
	}

	return col.Value(*value)
}

func floatOrNull(col field.Float64, value *float64) field.AssignExpr {
	if value == nil {
		return col.Null()
	}

	return col.Value(*value)
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Role:      entity.Role(data.Role),
		Name:      data.Name,
		Phone:     data.Phone,
		HomeLat:   data.HomeLat,
		HomeLng:   data.HomeLng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toProfileSummary exposes the home coordinate only when withHome is set;
// caretakers see a patient's home, never the reverse.
func toProfileSummary(data *model.ProfileModel, withHome bool) *entity.ProfileSummary {
	if data == nil {
		return nil
	}

	summary := &entity.ProfileSummary{
		ID:    data.ID,
		Name:  data.Name,
		Phone: data.Phone,
	}
	if withHome {
		summary.HomeLat = data.HomeLat
		summary.HomeLng = data.HomeLng
	}

	return summary
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:        data.ID,
		Role:      data.Role.String(),
		Name:      data.Name,
		Phone:     data.Phone,
		HomeLat:   data.HomeLat,
		HomeLng:   data.HomeLng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
