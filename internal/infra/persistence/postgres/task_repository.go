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

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	dbScope
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB, cfg *config.Config) repository.TaskRepository {
	return &taskRepository{dbScope: newDBScope(db, cfg)}
}

// Create persists a new task.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	taskM := fromTaskDomain(task)
	if err := repo.q.TaskModel.WithContext(ctx).Create(taskM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return storageError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// ListByPatient returns the patient's tasks, oldest first.
func (repo *taskRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Task, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	t := repo.q.TaskModel
	taskModels, err := t.WithContext(ctx).ReadDB().
		Where(t.PatientID.Eq(patientID)).
		Order(t.CreatedAt.Asc()).
		Find()
	if err != nil {
		return nil, storageError(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Update applies the non-nil changes to a task the patient owns.
func (repo *taskRepository) Update(ctx context.Context, id, patientID uuid.UUID, changes entity.TaskChanges) (*entity.Task, error) {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	t := repo.q.TaskModel
	var assigns []field.AssignExpr
	if changes.Text != nil {
		assigns = append(assigns, t.Text.Value(*changes.Text))
	}
	if changes.Completed != nil {
		assigns = append(assigns, t.Completed.Value(*changes.Completed))
	}

	info, err := t.WithContext(ctx).
		Where(t.ID.Eq(id), t.PatientID.Eq(patientID)).
		UpdateSimple(assigns...)
	if err != nil {
		return nil, storageError(err, "failed to update task")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	taskM, err := t.WithContext(ctx).Where(t.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, storageError(err, "failed to reload task")
	}

	return toTaskDomain(taskM), nil
}

// Delete removes a task the patient owns.
func (repo *taskRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	ctx, cancel := repo.bound(ctx)
	defer cancel()

	t := repo.q.TaskModel
	info, err := t.WithContext(ctx).
		Where(t.ID.Eq(id), t.PatientID.Eq(patientID)).
		Delete()
	if err != nil {
		return storageError(err, "failed to delete task")
	}
	if info.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toTaskDomain(data *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:        data.ID,
		PatientID: data.PatientID,
		Text:      data.Text,
		Completed: data.Completed,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:        data.ID,
		PatientID: data.PatientID,
		Text:      data.Text,
		Completed: data.Completed,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
