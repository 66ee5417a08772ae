package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultMood is stored when a journal entry is written without one.
const defaultMood = "Neutral"

var errNoChanges = domainerrors.ErrValidationFailed.WithDetails("no fields to update")

// careRecordService implements the CareRecordUsecase interface.
type careRecordService struct {
	journalRepo    repository.JournalRepository
	medicationRepo repository.MedicationRepository
	taskRepo       repository.TaskRepository
	faceRepo       repository.FaceRepository
	contactRepo    repository.EmergencyContactRepository
	logger         *slog.Logger
}

// NewCareRecordService is the constructor for careRecordService.
func NewCareRecordService(
	journalRepo repository.JournalRepository,
	medicationRepo repository.MedicationRepository,
	taskRepo repository.TaskRepository,
	faceRepo repository.FaceRepository,
	contactRepo repository.EmergencyContactRepository,
	logger *slog.Logger,
) usecase.CareRecordUsecase {
	return &careRecordService{
		journalRepo:    journalRepo,
		medicationRepo: medicationRepo,
		taskRepo:       taskRepo,
		faceRepo:       faceRepo,
		contactRepo:    contactRepo,
		logger:         logger,
	}
}

func (srv *careRecordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// recordError maps a repository miss to its API error and wraps anything else.
func recordError(err, missing error, notFound *domainerrors.BaseError, action string) error {
	switch {
	case errors.Is(err, missing):
		return errors.Wrap(notFound, action)
	case errors.Is(err, repository.ErrProfileNotFound):
		return errors.Wrap(domainerrors.ErrProfileNotFound, action)
	default:
		return errors.Wrap(err, "failed to "+action)
	}
}

func (srv *careRecordService) CreateJournal(ctx context.Context, journal *entity.Journal) (*entity.Journal, error) {
	journal.Content = strings.TrimSpace(journal.Content)
	if journal.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}
	if journal.Mood == nil || strings.TrimSpace(*journal.Mood) == "" {
		mood := defaultMood
		journal.Mood = &mood
	}

	if err := srv.journalRepo.Create(ctx, journal); err != nil {
		return nil, recordError(err, repository.ErrJournalNotFound, domainerrors.ErrJournalNotFound, "create journal")
	}

	return journal, nil
}

func (srv *careRecordService) ListJournals(ctx context.Context, patientID uuid.UUID) ([]*entity.Journal, error) {
	journals, err := srv.journalRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journals")
	}

	return journals, nil
}

func (srv *careRecordService) UpdateJournal(ctx context.Context, id, patientID uuid.UUID, changes entity.JournalChanges) (*entity.Journal, error) {
	if changes.IsEmpty() {
		return nil, errNoChanges
	}
	if changes.Content != nil && strings.TrimSpace(*changes.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content must not be empty")
	}

	journal, err := srv.journalRepo.Update(ctx, id, patientID, changes)
	if err != nil {
		return nil, recordError(err, repository.ErrJournalNotFound, domainerrors.ErrJournalNotFound, "update journal")
	}

	return journal, nil
}

func (srv *careRecordService) DeleteJournal(ctx context.Context, id, patientID uuid.UUID) error {
	if err := srv.journalRepo.Delete(ctx, id, patientID); err != nil {
		return recordError(err, repository.ErrJournalNotFound, domainerrors.ErrJournalNotFound, "delete journal")
	}

	return nil
}

func (srv *careRecordService) CreateMedication(ctx context.Context, medication *entity.Medication) (*entity.Medication, error) {
	if err := srv.medicationRepo.Create(ctx, medication); err != nil {
		return nil, recordError(err, repository.ErrMedicationNotFound, domainerrors.ErrMedicationNotFound, "create medication")
	}

	return medication, nil
}

func (srv *careRecordService) ListMedications(ctx context.Context, patientID uuid.UUID) ([]*entity.Medication, error) {
	medications, err := srv.medicationRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medications")
	}

	return medications, nil
}

// UpdateMedication applies a partial update. Marking a dose taken is the common case.
func (srv *careRecordService) UpdateMedication(ctx context.Context, id, patientID uuid.UUID, changes entity.MedicationChanges) (*entity.Medication, error) {
	if changes.IsEmpty() {
		return nil, errNoChanges
	}

	medication, err := srv.medicationRepo.Update(ctx, id, patientID, changes)
	if err != nil {
		return nil, recordError(err, repository.ErrMedicationNotFound, domainerrors.ErrMedicationNotFound, "update medication")
	}

	if changes.Taken != nil {
		srv.log(ctx).Info("Medication dose recorded",
			slog.Any("medication_id", id),
			slog.Any("patient_id", patientID),
			slog.Bool("taken", *changes.Taken),
		)
	}

	return medication, nil
}

func (srv *careRecordService) DeleteMedication(ctx context.Context, id, patientID uuid.UUID) error {
	if err := srv.medicationRepo.Delete(ctx, id, patientID); err != nil {
		return recordError(err, repository.ErrMedicationNotFound, domainerrors.ErrMedicationNotFound, "delete medication")
	}

	return nil
}

func (srv *careRecordService) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	task.Text = strings.TrimSpace(task.Text)
	if task.Text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, recordError(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "create task")
	}

	return task, nil
}

func (srv *careRecordService) ListTasks(ctx context.Context, patientID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

func (srv *careRecordService) UpdateTask(ctx context.Context, id, patientID uuid.UUID, changes entity.TaskChanges) (*entity.Task, error) {
	if changes.IsEmpty() {
		return nil, errNoChanges
	}
	if changes.Text != nil && strings.TrimSpace(*changes.Text) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	task, err := srv.taskRepo.Update(ctx, id, patientID, changes)
	if err != nil {
		return nil, recordError(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "update task")
	}

	return task, nil
}

func (srv *careRecordService) DeleteTask(ctx context.Context, id, patientID uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, id, patientID); err != nil {
		return recordError(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "delete task")
	}

	return nil
}

func (srv *careRecordService) AddFace(ctx context.Context, face *entity.Face) (*entity.Face, error) {
	if err := srv.faceRepo.Create(ctx, face); err != nil {
		return nil, recordError(err, repository.ErrFaceNotFound, domainerrors.ErrFaceNotFound, "add face")
	}

	return face, nil
}

func (srv *careRecordService) ListFaces(ctx context.Context, patientID uuid.UUID) ([]*entity.Face, error) {
	faces, err := srv.faceRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faces")
	}

	return faces, nil
}

func (srv *careRecordService) DeleteFace(ctx context.Context, id, patientID uuid.UUID) error {
	if err := srv.faceRepo.Delete(ctx, id, patientID); err != nil {
		return recordError(err, repository.ErrFaceNotFound, domainerrors.ErrFaceNotFound, "delete face")
	}

	return nil
}

func (srv *careRecordService) AddEmergencyContact(ctx context.Context, contact *entity.EmergencyContact) (*entity.EmergencyContact, error) {
	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, recordError(err, repository.ErrEmergencyContactNotFound, domainerrors.ErrEmergencyContactNotFound, "add emergency contact")
	}

	return contact, nil
}

func (srv *careRecordService) ListEmergencyContacts(ctx context.Context, patientID uuid.UUID) ([]*entity.EmergencyContact, error) {
	contacts, err := srv.contactRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list emergency contacts")
	}

	return contacts, nil
}

func (srv *careRecordService) DeleteEmergencyContact(ctx context.Context, id, patientID uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, id, patientID); err != nil {
		return recordError(err, repository.ErrEmergencyContactNotFound, domainerrors.ErrEmergencyContactNotFound, "delete emergency contact")
	}

	srv.log(ctx).Info("Emergency contact removed", slog.Any("contact_id", id), slog.Any("patient_id", patientID))

	return nil
}
