package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gen/field"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

// medicationRepository implements the repository.MedicationRepository interface.
type medicationRepository struct {
	dbScope
}

// NewMedicationRepository is the constructor for medicationRepository.
func NewMedicationRepository(db *gorm.DB, cfg *config.Config) repository.MedicationRepository {
	return &medicationRepository{dbScope: newDBScope(db, cfg)}
}

// Create persists a new medication.
func (repo *medicationRepository) Create(ctx context.Context, medication *entity.Medication) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	medicationM := fromMedicationDomain(medication)
	if err := repo.q.MedicationModel.WithContext(ctx).Create(medicationM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create medication")
	}

	medication.ID = medicationM.ID
	medication.CreatedAt = medicationM.CreatedAt
	medication.UpdatedAt = medicationM.UpdatedAt

	return nil
}

// ListByPatient returns the medication list ordered by dose time, then by creation.
func (repo *medicationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Medication, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	m := repo.q.MedicationModel
	medicationModels, err := m.WithContext(ctx).ReadDB().
		Where(m.PatientID.Eq(patientID)).
		Order(m.Time.Asc(), m.CreatedAt.Asc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list medications")
	}

	medications := make([]*entity.Medication, 0, len(medicationModels))
	for _, medicationM := range medicationModels {
		medications = append(medications, toMedicationDomain(medicationM))
	}

	return medications, nil
}

// Update applies the non-nil changes to a medication the patient owns.
func (repo *medicationRepository) Update(ctx context.Context, id, patientID uuid.UUID, changes entity.MedicationChanges) (*entity.Medication, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	m := repo.q.MedicationModel
	var assigns []field.AssignExpr
	if changes.Name != nil {
		assigns = append(assigns, m.Name.Value(*changes.Name))
	}
	if changes.Dosage != nil {
		assigns = append(assigns, m.Dosage.Value(*changes.Dosage))
	}
	if changes.Time != nil {
		assigns = append(assigns, m.Time.Value(*changes.Time))
	}
	if changes.Instructions != nil {
		assigns = append(assigns, m.Instructions.Value(*changes.Instructions))
	}
	if changes.Taken != nil {
		assigns = append(assigns, m.Taken.Value(*changes.Taken))
	}

	info, err := m.WithContext(ctx).
		Where(m.ID.Eq(id), m.PatientID.Eq(patientID)).
		UpdateSimple(assigns...)
	if err != nil {
		return nil, storageError(err, "failed to update medication")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrMedicationNotFound
	}

	medicationM, err := m.WithContext(ctx).Where(m.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicationNotFound
		}

		return nil, storageError(err, "failed to reload medication")
	}

	return toMedicationDomain(medicationM), nil
}

// Delete removes a medication the patient owns.
func (repo *medicationRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	m := repo.q.MedicationModel
	info, err := m.WithContext(ctx).
		Where(m.ID.Eq(id), m.PatientID.Eq(patientID)).
		Delete()
	if err != nil {
		return storageError(err, "failed to delete medication")
	}
	if info.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

func toMedicationDomain(data *model.MedicationModel) *entity.Medication {
	return &entity.Medication{
		ID:           data.ID,
		PatientID:    data.PatientID,
		Name:         data.Name,
		Dosage:       data.Dosage,
		Time:         data.Time,
		Instructions: data.Instructions,
		Taken:        data.Taken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromMedicationDomain(data *entity.Medication) *model.MedicationModel {
	return &model.MedicationModel{
		ID:           data.ID,
		PatientID:    data.PatientID,
		Name:         data.Name,
		Dosage:       data.Dosage,
		Time:         data.Time,
		Instructions: data.Instructions,
		Taken:        data.Taken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
