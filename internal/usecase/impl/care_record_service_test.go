package impl

import (
	"context"
	"testing"

	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	mockRepo "alzassist/internal/mocks/repository"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type careRecordMocks struct {
	journalRepo    *mockRepo.MockJournalRepository
	medicationRepo *mockRepo.MockMedicationRepository
	taskRepo       *mockRepo.MockTaskRepository
	faceRepo       *mockRepo.MockFaceRepository
	contactRepo    *mockRepo.MockEmergencyContactRepository
}

func newTestCareRecordService(t *testing.T) (usecase.CareRecordUsecase, *careRecordMocks) {
	m := &careRecordMocks{
		journalRepo:    mockRepo.NewMockJournalRepository(t),
		medicationRepo: mockRepo.NewMockMedicationRepository(t),
		taskRepo:       mockRepo.NewMockTaskRepository(t),
		faceRepo:       mockRepo.NewMockFaceRepository(t),
		contactRepo:    mockRepo.NewMockEmergencyContactRepository(t),
	}

	return NewCareRecordService(m.journalRepo, m.medicationRepo, m.taskRepo, m.faceRepo, m.contactRepo, newDiscardLogger()), m
}

func TestCareRecordService_CreateJournal(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()

	t.Run("defaults the mood", func(t *testing.T) {
		service, m := newTestCareRecordService(t)
		m.journalRepo.EXPECT().Create(ctx, mock.MatchedBy(func(j *entity.Journal) bool {
			return j.PatientID == patientID && j.Content == "Saw the garden" && j.Mood != nil && *j.Mood == defaultMood
		})).Return(nil).Once()

		journal, err := service.CreateJournal(ctx, &entity.Journal{PatientID: patientID, Content: "  Saw the garden "})

		require.NoError(t, err)
		assert.Equal(t, defaultMood, *journal.Mood)
	})

	t.Run("keeps a given mood", func(t *testing.T) {
		service, m := newTestCareRecordService(t)
		m.journalRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		journal, err := service.CreateJournal(ctx, &entity.Journal{PatientID: patientID, Content: "ok", Mood: ptr("Happy")})

		require.NoError(t, err)
		assert.Equal(t, "Happy", *journal.Mood)
	})

	t.Run("blank content", func(t *testing.T) {
		service, _ := newTestCareRecordService(t)

		_, err := service.CreateJournal(ctx, &entity.Journal{PatientID: patientID, Content: "   "})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown patient", func(t *testing.T) {
		service, m := newTestCareRecordService(t)
		m.journalRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrProfileNotFound).Once()

		_, err := service.CreateJournal(ctx, &entity.Journal{PatientID: patientID, Content: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestCareRecordService_UpdateJournal(t *testing.T) {
	ctx := context.Background()
	id, patientID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		changes     entity.JournalChanges
		setup       func(m *careRecordMocks)
		expectedErr error
	}{
		{
			name:        "nothing to change",
			changes:     entity.JournalChanges{},
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "blank content",
			changes:     entity.JournalChanges{Content: ptr(" ")},
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "another patient's entry",
			changes: entity.JournalChanges{Mood: ptr("Sad")},
			setup: func(m *careRecordMocks) {
				m.journalRepo.EXPECT().Update(ctx, id, patientID, entity.JournalChanges{Mood: ptr("Sad")}).
					Return(nil, repository.ErrJournalNotFound).Once()
			},
			expectedErr: domainerrors.ErrJournalNotFound,
		},
		{
			name:    "owner edits",
			changes: entity.JournalChanges{Content: ptr("Edited")},
			setup: func(m *careRecordMocks) {
				m.journalRepo.EXPECT().Update(ctx, id, patientID, entity.JournalChanges{Content: ptr("Edited")}).
					Return(&entity.Journal{ID: id, Content: "Edited"}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestCareRecordService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			journal, err := service.UpdateJournal(ctx, id, patientID, tt.changes)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, journal)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Edited", journal.Content)
		})
	}
}

func TestCareRecordService_Deletes(t *testing.T) {
	ctx := context.Background()
	id, patientID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		setup       func(m *careRecordMocks)
		call        func(s usecase.CareRecordUsecase) error
		expectedErr error
	}{
		{
			name: "journal",
			setup: func(m *careRecordMocks) {
				m.journalRepo.EXPECT().Delete(ctx, id, patientID).Return(repository.ErrJournalNotFound).Once()
			},
			call:        func(s usecase.CareRecordUsecase) error { return s.DeleteJournal(ctx, id, patientID) },
			expectedErr: domainerrors.ErrJournalNotFound,
		},
		{
			name: "medication",
			setup: func(m *careRecordMocks) {
				m.medicationRepo.EXPECT().Delete(ctx, id, patientID).Return(repository.ErrMedicationNotFound).Once()
			},
			call:        func(s usecase.CareRecordUsecase) error { return s.DeleteMedication(ctx, id, patientID) },
			expectedErr: domainerrors.ErrMedicationNotFound,
		},
		{
			name: "task",
			setup: func(m *careRecordMocks) {
				m.taskRepo.EXPECT().Delete(ctx, id, patientID).Return(repository.ErrTaskNotFound).Once()
			},
			call:        func(s usecase.CareRecordUsecase) error { return s.DeleteTask(ctx, id, patientID) },
			expectedErr: domainerrors.ErrTaskNotFound,
		},
		{
			name: "face",
			setup: func(m *careRecordMocks) {
				m.faceRepo.EXPECT().Delete(ctx, id, patientID).Return(repository.ErrFaceNotFound).Once()
			},
			call:        func(s usecase.CareRecordUsecase) error { return s.DeleteFace(ctx, id, patientID) },
			expectedErr: domainerrors.ErrFaceNotFound,
		},
		{
			name: "emergency contact",
			setup: func(m *careRecordMocks) {
				m.contactRepo.EXPECT().Delete(ctx, id, patientID).Return(repository.ErrEmergencyContactNotFound).Once()
			},
			call:        func(s usecase.CareRecordUsecase) error { return s.DeleteEmergencyContact(ctx, id, patientID) },
			expectedErr: domainerrors.ErrEmergencyContactNotFound,
		},
		{
			name: "emergency contact removed",
			setup: func(m *careRecordMocks) {
				m.contactRepo.EXPECT().Delete(ctx, id, patientID).Return(nil).Once()
			},
			call: func(s usecase.CareRecordUsecase) error { return s.DeleteEmergencyContact(ctx, id, patientID) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestCareRecordService(t)
			tt.setup(m)

			err := tt.call(service)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCareRecordService_Medications(t *testing.T) {
	ctx := context.Background()
	id, patientID := uuid.New(), uuid.New()

	service, m := newTestCareRecordService(t)

	med := &entity.Medication{PatientID: patientID, Name: "Donepezil", Dosage: "5mg", Time: "08:00"}
	m.medicationRepo.EXPECT().Create(ctx, med).Return(nil).Once()
	created, err := service.CreateMedication(ctx, med)
	require.NoError(t, err)
	assert.Same(t, med, created)

	m.medicationRepo.EXPECT().ListByPatient(ctx, patientID).Return([]*entity.Medication{med}, nil).Once()
	meds, err := service.ListMedications(ctx, patientID)
	require.NoError(t, err)
	assert.Len(t, meds, 1)

	_, err = service.UpdateMedication(ctx, id, patientID, entity.MedicationChanges{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	taken := entity.MedicationChanges{Taken: ptr(true)}
	m.medicationRepo.EXPECT().Update(ctx, id, patientID, taken).
		Return(&entity.Medication{ID: id, Taken: true}, nil).Once()
	updated, err := service.UpdateMedication(ctx, id, patientID, taken)
	require.NoError(t, err)
	assert.True(t, updated.Taken)
}

func TestCareRecordService_Tasks(t *testing.T) {
	ctx := context.Background()
	id, patientID := uuid.New(), uuid.New()

	service, m := newTestCareRecordService(t)

	_, err := service.CreateTask(ctx, &entity.Task{PatientID: patientID, Text: " "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m.taskRepo.EXPECT().Create(ctx, mock.MatchedBy(func(task *entity.Task) bool { return task.Text == "Water plants" })).
		Return(nil).Once()
	task, err := service.CreateTask(ctx, &entity.Task{PatientID: patientID, Text: "Water plants "})
	require.NoError(t, err)
	assert.Equal(t, "Water plants", task.Text)

	_, err = service.UpdateTask(ctx, id, patientID, entity.TaskChanges{Text: ptr("  ")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	done := entity.TaskChanges{Completed: ptr(true)}
	m.taskRepo.EXPECT().Update(ctx, id, patientID, done).Return(nil, repository.ErrTaskNotFound).Once()
	_, err = service.UpdateTask(ctx, id, patientID, done)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)

	m.taskRepo.EXPECT().ListByPatient(ctx, patientID).Return(nil, errors.New("timeout")).Once()
	_, err = service.ListTasks(ctx, patientID)
	assert.Error(t, err)
}

func TestCareRecordService_GalleryAndContacts(t *testing.T) {
	ctx := context.Background()
	patientID := uuid.New()

	service, m := newTestCareRecordService(t)

	face := &entity.Face{PatientID: patientID, Name: "Carol", Relationship: "Daughter", ImageURL: "https://example.com/carol.jpg"}
	m.faceRepo.EXPECT().Create(ctx, face).Return(nil).Once()
	_, err := service.AddFace(ctx, face)
	require.NoError(t, err)

	m.faceRepo.EXPECT().ListByPatient(ctx, patientID).Return([]*entity.Face{face}, nil).Once()
	faces, err := service.ListFaces(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Face{face}, faces)

	contact := &entity.EmergencyContact{PatientID: patientID, Name: "Dan", Phone: "+886900000000"}
	m.contactRepo.EXPECT().Create(ctx, contact).Return(repository.ErrProfileNotFound).Once()
	_, err = service.AddEmergencyContact(ctx, contact)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)

	m.contactRepo.EXPECT().ListByPatient(ctx, patientID).Return([]*entity.EmergencyContact{}, nil).Once()
	contacts, err := service.ListEmergencyContacts(ctx, patientID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
