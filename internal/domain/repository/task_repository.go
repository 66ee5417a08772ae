package repository

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
	"alzassist/internal/errors"
)

// ErrTaskNotFound is returned when a task does not exist for the given patient.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the operations on a patient's task list.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error

	// ListByPatient returns the patient's tasks in creation order.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Task, error)

	// Update applies changes to a task owned by patientID.
	// Returns ErrTaskNotFound when no such task belongs to the patient.
	Update(ctx context.Context, id, patientID uuid.UUID, changes entity.TaskChanges) (*entity.Task, error)

	Delete(ctx context.Context, id, patientID uuid.UUID) error
}
