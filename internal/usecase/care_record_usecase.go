package usecase

import (
	"context"

	"github.com/google/uuid"

	"alzassist/internal/domain/entity"
)

// CareRecordUsecase manages the records a patient keeps for daily life: journal,
// medications, tasks, the recognition gallery and emergency contacts.
// Every write is scoped to patientID; records of other patients are reported as not found.
type CareRecordUsecase interface {
	CreateJournal(ctx context.Context, journal *entity.Journal) (*entity.Journal, error)
	ListJournals(ctx context.Context, patientID uuid.UUID) ([]*entity.Journal, error)
	UpdateJournal(ctx context.Context, id, patientID uuid.UUID, changes entity.JournalChanges) (*entity.Journal, error)
	DeleteJournal(ctx context.Context, id, patientID uuid.UUID) error

	CreateMedication(ctx context.Context, medication *entity.Medication) (*entity.Medication, error)
	ListMedications(ctx context.Context, patientID uuid.UUID) ([]*entity.Medication, error)
	UpdateMedication(ctx context.Context, id, patientID uuid.UUID, changes entity.MedicationChanges) (*entity.Medication, error)
	DeleteMedication(ctx context.Context, id, patientID uuid.UUID) error

	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	ListTasks(ctx context.Context, patientID uuid.UUID) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, id, patientID uuid.UUID, changes entity.TaskChanges) (*entity.Task, error)
	DeleteTask(ctx context.Context, id, patientID uuid.UUID) error

	AddFace(ctx context.Context, face *entity.Face) (*entity.Face, error)
	ListFaces(ctx context.Context, patientID uuid.UUID) ([]*entity.Face, error)
	DeleteFace(ctx context.Context, id, patientID uuid.UUID) error

	AddEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) (*entity.EmergencyContact, error)
	ListEmergencyContacts(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error)
	DeleteEmergencyContact(ctx context.Context, id, patientID uuid.UUID) error
}
