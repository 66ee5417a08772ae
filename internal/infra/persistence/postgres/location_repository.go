package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	dbScope
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB, cfg *config.Config) repository.LocationRepository {
	return &locationRepository{dbScope: newDBScope(db, cfg)}
}

// Create appends a location record.
func (repo *locationRepository) Create(ctx context.Context, record *entity.LocationRecord) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}

	locationM := fromLocationDomain(record)
	if err := repo.q.LocationModel.WithContext(ctx).Create(locationM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create location")
	}

	record.ID = locationM.ID
	record.RecordedAt = locationM.RecordedAt

	return nil
}

// ListRecent returns the newest records for the patient.
func (repo *locationRepository) ListRecent(ctx context.Context, patientID uuid.UUID, limit int) ([]*entity.LocationRecord, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	l := repo.q.LocationModel
	locationModels, err := l.WithContext(ctx).ReadDB().
		Where(l.PatientID.Eq(patientID)).
		Order(l.RecordedAt.Desc()).
		Limit(limit).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list locations")
	}

	records := make([]*entity.LocationRecord, 0, len(locationModels))
	for _, locationM := range locationModels {
		records = append(records, toLocationDomain(locationM))
	}

	return records, nil
}

// FindLatest returns the newest record, or nil when the patient has none.
func (repo *locationRepository) FindLatest(ctx context.Context, patientID uuid.UUID) (*entity.LocationRecord, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	l := repo.q.LocationModel
	locationM, err := l.WithContext(ctx).ReadDB().
		Where(l.PatientID.Eq(patientID)).
		Order(l.RecordedAt.Desc()).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, storageError(err, "failed to find latest location")
	}

	return toLocationDomain(locationM), nil
}

func toLocationDomain(data *model.LocationModel) *entity.LocationRecord {
	return &entity.LocationRecord{
		ID:         data.ID,
		PatientID:  data.PatientID,
		Lat:        data.Lat,
		Lng:        data.Lng,
		RecordedAt: data.RecordedAt,
	}
}

func fromLocationDomain(data *entity.LocationRecord) *model.LocationModel {
	return &model.LocationModel{
		ID:         data.ID,
		PatientID:  data.PatientID,
		Lat:        data.Lat,
		Lng:        data.Lng,
		RecordedAt: data.RecordedAt,
	}
}
