package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
	"alzassist/internal/errors"
	"alzassist/internal/infra/persistence/model"
)

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	dbScope
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB, cfg *config.Config) repository.ConnectionRepository {
	return &connectionRepository{dbScope: newDBScope(db, cfg)}
}

// Create persists a new connection.
func (repo *connectionRepository) Create(ctx context.Context, conn *entity.Connection) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	connM := fromConnectionDomain(conn)
	if err := repo.q.ConnectionModel.WithContext(ctx).Create(connM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConnectionExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create connection")
	}

	conn.ID = connM.ID
	conn.Status = entity.ConnectionStatus(connM.Status)
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// FindByPair retrieves the connection between a caretaker and a patient.
func (repo *connectionRepository) FindByPair(ctx context.Context, caretakerID, patientID uuid.UUID) (*entity.Connection, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	c := repo.q.ConnectionModel
	connM, err := c.WithContext(ctx).
		Where(c.CaretakerID.Eq(caretakerID), c.PatientID.Eq(patientID)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, storageError(err, "failed to find connection by pair")
	}

	return toConnectionDomain(connM), nil
}

// ExistsAccepted reports whether an ACCEPTED connection exists for the pair.
func (repo *connectionRepository) ExistsAccepted(ctx context.Context, caretakerID, patientID uuid.UUID) (bool, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	c := repo.q.ConnectionModel
	count, err := c.WithContext(ctx).ReadDB().
		Where(
			c.CaretakerID.Eq(caretakerID),
			c.PatientID.Eq(patientID),
			c.Status.Eq(string(entity.ConnectionAccepted)),
		).
		Count()
	if err != nil {
		return false, storageError(err, "failed to check connection")
	}

	return count > 0, nil
}

// UpdateStatus changes the status of a connection owned by the patient and returns the stored row.
func (repo *connectionRepository) UpdateStatus(ctx context.Context, id, patientID uuid.UUID, status entity.ConnectionStatus) (*entity.Connection, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	c := repo.q.ConnectionModel
	info, err := c.WithContext(ctx).
		Where(c.ID.Eq(id), c.PatientID.Eq(patientID)).
		UpdateSimple(c.Status.Value(string(status)))
	if err != nil {
		return nil, storageError(err, "failed to update connection status")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrConnectionNotFound
	}

	connM, err := c.WithContext(ctx).Where(c.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, storageError(err, "failed to reload connection")
	}

	return toConnectionDomain(connM), nil
}

// ListAcceptedCaretakerIDs returns the caretakers allowed to receive alerts about the patient.
func (repo *connectionRepository) ListAcceptedCaretakerIDs(ctx context.Context, patientID uuid.UUID) ([]uuid.UUID, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	c := repo.q.ConnectionModel
	var ids []uuid.UUID
	if err := c.WithContext(ctx).ReadDB().
		Where(c.PatientID.Eq(patientID), c.Status.Eq(string(entity.ConnectionAccepted))).
		Order(c.CreatedAt.Asc()).
		Pluck(c.CaretakerID, &ids); err != nil {
		return nil, storageError(err, "failed to list accepted caretakers")
	}

	return ids, nil
}

// ListPatientsForCaretaker returns accepted connections with patient summaries, newest first.
func (repo *connectionRepository) ListPatientsForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	c := repo.q.ConnectionModel

	return repo.listWithProfile(ctx, c.Patient, c.CaretakerID.Eq(caretakerID), c.Status.Eq(string(entity.ConnectionAccepted)))
}

// ListCaretakersForPatient returns accepted connections with caretaker summaries, newest first.
func (repo *connectionRepository) ListCaretakersForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	c := repo.q.ConnectionModel

	return repo.listWithProfile(ctx, c.Caretaker, c.PatientID.Eq(patientID), c.Status.Eq(string(entity.ConnectionAccepted)))
}

// ListPendingForPatient returns pending requests with caretaker summaries, newest first.
func (repo *connectionRepository) ListPendingForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	c := repo.q.ConnectionModel

	return repo.listWithProfile(ctx, c.Caretaker, c.PatientID.Eq(patientID), c.Status.Eq(string(entity.ConnectionPending)))
}

func (repo *connectionRepository) listWithProfile(ctx context.Context, preload field.RelationField, conds ...gen.Condition) ([]*entity.ConnectionWithProfile, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	c := repo.q.ConnectionModel
	connModels, err := c.WithContext(ctx).ReadDB().
		Preload(preload).
		Where(conds...).
		Order(c.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list connections")
	}

	conns := make([]*entity.ConnectionWithProfile, 0, len(connModels))
	for _, connM := range connModels {
		conns = append(conns, &entity.ConnectionWithProfile{
			ID:        connM.ID,
			Status:    entity.ConnectionStatus(connM.Status),
			CreatedAt: connM.CreatedAt,
			Patient:   toProfileSummary(connM.Patient, true),
			Caretaker: toProfileSummary(connM.Caretaker, false),
		})
	}

	return conns, nil
}

func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	return &entity.Connection{
		ID:          data.ID,
		CaretakerID: data.CaretakerID,
		PatientID:   data.PatientID,
		Status:      entity.ConnectionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	status := data.Status
	if status == "" {
		status = entity.ConnectionPending
	}

	return &model.ConnectionModel{
		ID:          data.ID,
		CaretakerID: data.CaretakerID,
		PatientID:   data.PatientID,
		Status:      string(status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
