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

// journalRepository implements the repository.JournalRepository interface.
type journalRepository struct {
	dbScope
}

// NewJournalRepository is the constructor for journalRepository.
func NewJournalRepository(db *gorm.DB, cfg *config.Config) repository.JournalRepository {
	return &journalRepository{dbScope: newDBScope(db, cfg)}
}

// Create persists a new journal entry.
func (repo *journalRepository) Create(ctx context.Context, journal *entity.Journal) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	journalM := fromJournalDomain(journal)
	if err := repo.q.JournalModel.WithContext(ctx).Create(journalM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create journal")
	}

	journal.ID = journalM.ID
	journal.CreatedAt = journalM.CreatedAt
	journal.UpdatedAt = journalM.UpdatedAt

	return nil
}

// ListByPatient returns the patient's journal, newest entry first.
func (repo *journalRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Journal, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	j := repo.q.JournalModel
	journalModels, err := j.WithContext(ctx).ReadDB().
		Where(j.PatientID.Eq(patientID)).
		Order(j.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list journals")
	}

	journals := make([]*entity.Journal, 0, len(journalModels))
	for _, journalM := range journalModels {
		journals = append(journals, toJournalDomain(journalM))
	}

	return journals, nil
}

// Update applies the non-nil changes to an entry the patient owns.
func (repo *journalRepository) Update(ctx context.Context, id, patientID uuid.UUID, changes entity.JournalChanges) (*entity.Journal, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	j := repo.q.JournalModel
	var assigns []field.AssignExpr
	if changes.Content != nil {
		assigns = append(assigns, j.Content.Value(*changes.Content))
	}
	if changes.Mood != nil {
		assigns = append(assigns, j.Mood.Value(*changes.Mood))
	}

	info, err := j.WithContext(ctx).
		Where(j.ID.Eq(id), j.PatientID.Eq(patientID)).
		UpdateSimple(assigns...)
	if err != nil {
		return nil, storageError(err, "failed to update journal")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrJournalNotFound
	}

	journalM, err := j.WithContext(ctx).Where(j.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJournalNotFound
		}

		return nil, storageError(err, "failed to reload journal")
	}

	return toJournalDomain(journalM), nil
}

// Delete removes an entry the patient owns.
func (repo *journalRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	j := repo.q.JournalModel
	info, err := j.WithContext(ctx).
		Where(j.ID.Eq(id), j.PatientID.Eq(patientID)).
		Delete()
	if err != nil {
		return storageError(err, "failed to delete journal")
	}
	if info.RowsAffected == 0 {
		return repository.ErrJournalNotFound
	}

	return nil
}

func toJournalDomain(data *model.JournalModel) *entity.Journal {
	return &entity.Journal{
		ID:        data.ID,
		PatientID: data.PatientID,
		Content:   data.Content,
		Mood:      data.Mood,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromJournalDomain(data *entity.Journal) *model.JournalModel {
	return &model.JournalModel{
		ID:        data.ID,
		PatientID: data.PatientID,
		Content:   data.Content,
		Mood:      data.Mood,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
