package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/infra/persistence/model"
)

// emergencyContactRepository implements the repository.EmergencyContactRepository interface.
type emergencyContactRepository struct {
	dbScope
}

// NewEmergencyContactRepository is the constructor for emergencyContactRepository.
func NewEmergencyContactRepository(db *gorm.DB, cfg *config.Config) repository.EmergencyContactRepository {
	return &emergencyContactRepository{dbScope: newDBScope(db, cfg)}
}

func (repo *emergencyContactRepository) Create(ctx context.Context, contact *entity.EmergencyContact) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	contactM := &model.EmergencyContactModel{
		PatientID:    contact.PatientID,
		Name:         contact.Name,
		Phone:        contact.Phone,
		Relationship: contact.Relationship,
	}
	if err := repo.q.EmergencyContactModel.WithContext(ctx).Create(contactM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create emergency contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

func (repo *emergencyContactRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	e := repo.q.EmergencyContactModel
	contactModels, err := e.WithContext(ctx).ReadDB().
		Where(e.PatientID.Eq(patientID)).
		Order(e.CreatedAt.Asc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list emergency contacts")
	}

	contacts := make([]*entity.EmergencyContact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, &entity.EmergencyContact{
			ID:           contactM.ID,
			PatientID:    contactM.PatientID,
			Name:         contactM.Name,
			Phone:        contactM.Phone,
			Relationship: contactM.Relationship,
			CreatedAt:    contactM.CreatedAt,
		})
	}

	return contacts, nil
}

func (repo *emergencyContactRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	e := repo.q.EmergencyContactModel
	info, err := e.WithContext(ctx).
		Where(e.ID.Eq(id), e.PatientID.Eq(patientID)).
		Delete()
	if err != nil {
		return storageError(err, "failed to delete emergency contact")
	}
	if info.RowsAffected == 0 {
		return repository.ErrEmergencyContactNotFound
	}

	return nil
}
