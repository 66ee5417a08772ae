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

// faceRepository implements the repository.FaceRepository interface.
type faceRepository struct {
	dbScope
}

// NewFaceRepository is the constructor for faceRepository.
func NewFaceRepository(db *gorm.DB, cfg *config.Config) repository.FaceRepository {
	return &faceRepository{dbScope: newDBScope(db, cfg)}
}

// Create adds a photo to the patient's gallery.
func (repo *faceRepository) Create(ctx context.Context, face *entity.Face) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	faceM := &model.FaceModel{
		PatientID:    face.PatientID,
		Name:         face.Name,
		Relationship: face.Relationship,
		ImageURL:     face.ImageURL,
	}
	if err := repo.q.FaceModel.WithContext(ctx).Create(faceM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create face")
	}

	face.ID = faceM.ID
	face.CreatedAt = faceM.CreatedAt

	return nil
}

// ListByPatient returns the gallery, newest photo first.
func (repo *faceRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Face, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	f := repo.q.FaceModel
	faceModels, err := f.WithContext(ctx).ReadDB().
		Where(f.PatientID.Eq(patientID)).
		Order(f.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list faces")
	}

	faces := make([]*entity.Face, 0, len(faceModels))
	for _, faceM := range faceModels {
		faces = append(faces, &entity.Face{
			ID:           faceM.ID,
			PatientID:    faceM.PatientID,
			Name:         faceM.Name,
			Relationship: faceM.Relationship,
			ImageURL:     faceM.ImageURL,
			CreatedAt:    faceM.CreatedAt,
		})
	}

	return faces, nil
}

// Delete removes a photo the patient owns.
func (repo *faceRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	f := repo.q.FaceModel
	info, err := f.WithContext(ctx).
		Where(f.ID.Eq(id), f.PatientID.Eq(patientID)).
		Delete()
	if err != nil {
		return storageError(err, "failed to delete face")
	}
	if info.RowsAffected == 0 {
		return repository.ErrFaceNotFound
	}

	return nil
}
