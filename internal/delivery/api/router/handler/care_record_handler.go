package handler

import (
	"log/slog"

	"alzassist/internal/delivery/api/response"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CareRecordHandlerParams holds dependencies for CareRecordHandler, injected by Fx.
type CareRecordHandlerParams struct {
	fx.In

	CareRecordUC usecase.CareRecordUsecase
	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// CareRecordHandler serves a patient's journal, medications, tasks, gallery and
// emergency contacts.
type CareRecordHandler struct {
	careRecordUC usecase.CareRecordUsecase
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewCareRecordHandler is the constructor for CareRecordHandler
func NewCareRecordHandler(params CareRecordHandlerParams) *CareRecordHandler {
	return &CareRecordHandler{
		careRecordUC: params.CareRecordUC,
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

type CreateJournalRequest struct {
	Content string  `json:"content" validate:"required"`
	Mood    *string `json:"mood" validate:"omitempty,max=32"`
}

type UpdateJournalRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
	Mood    *string `json:"mood" validate:"omitempty,max=32"`
}

type CreateMedicationRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Dosage       string  `json:"dosage" validate:"required,max=100"`
	Time         string  `json:"time" validate:"required,max=32"`
	Instructions *string `json:"instructions"`
	Taken        bool    `json:"taken"`
}

type UpdateMedicationRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Dosage       *string `json:"dosage" validate:"omitempty,min=1,max=100"`
	Time         *string `json:"time" validate:"omitempty,min=1,max=32"`
	Instructions *string `json:"instructions"`
	Taken        *bool   `json:"taken"`
}

type CreateTaskRequest struct {
	Text string `json:"text" validate:"required"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text" validate:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
}

// AddFaceRequest adds a photo of someone the patient should recognise
type AddFaceRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Relationship string `json:"relationship" validate:"required,max=64"`
	ImageURL     string `json:"imageUrl" validate:"required,url"`
}

type AddEmergencyContactRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Phone        string  `json:"phone" validate:"required,max=32"`
	Relationship *string `json:"relationship" validate:"omitempty,max=64"`
}

// CreateJournal writes a diary entry for the calling patient.
func (h *CareRecordHandler) CreateJournal(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req CreateJournalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	journal, err := h.careRecordUC.CreateJournal(c.Request().Context(), &entity.Journal{
		PatientID: caller.ID,
		Content:   req.Content,
		Mood:      req.Mood,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, journal)
}

// ListJournals returns a journal, newest entry first.
func (h *CareRecordHandler) ListJournals(c echo.Context) error {
	patientID, err := h.readablePatient(c)
	if err != nil {
		return err
	}

	journals, err := h.careRecordUC.ListJournals(c.Request().Context(), patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(journals))
}

// UpdateJournal edits one of the calling patient's entries.
func (h *CareRecordHandler) UpdateJournal(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}

	var req UpdateJournalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	journal, err := h.careRecordUC.UpdateJournal(c.Request().Context(), id, caller.ID, entity.JournalChanges{
		Content: req.Content,
		Mood:    req.Mood,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, journal)
}

func (h *CareRecordHandler) DeleteJournal(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}
	if err := h.careRecordUC.DeleteJournal(c.Request().Context(), id, caller.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Journal entry deleted")
}

// CreateMedication adds a dose to the calling patient's medication list.
func (h *CareRecordHandler) CreateMedication(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req CreateMedicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	medication, err := h.careRecordUC.CreateMedication(c.Request().Context(), &entity.Medication{
		PatientID:    caller.ID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Time:         req.Time,
		Instructions: req.Instructions,
		Taken:        req.Taken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, medication)
}

// ListMedications returns a medication list ordered by dose time.
func (h *CareRecordHandler) ListMedications(c echo.Context) error {
	patientID, err := h.readablePatient(c)
	if err != nil {
		return err
	}

	medications, err := h.careRecordUC.ListMedications(c.Request().Context(), patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(medications))
}

// UpdateMedication edits a dose or marks it taken.
func (h *CareRecordHandler) UpdateMedication(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}

	var req UpdateMedicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	medication, err := h.careRecordUC.UpdateMedication(c.Request().Context(), id, caller.ID, entity.MedicationChanges{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Time:         req.Time,
		Instructions: req.Instructions,
		Taken:        req.Taken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, medication)
}

func (h *CareRecordHandler) DeleteMedication(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}
	if err := h.careRecordUC.DeleteMedication(c.Request().Context(), id, caller.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Medication deleted")
}

func (h *CareRecordHandler) CreateTask(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.careRecordUC.CreateTask(c.Request().Context(), &entity.Task{PatientID: caller.ID, Text: req.Text})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, task)
}

// ListTasks returns a to-do list in creation order.
func (h *CareRecordHandler) ListTasks(c echo.Context) error {
	patientID, err := h.readablePatient(c)
	if err != nil {
		return err
	}

	tasks, err := h.careRecordUC.ListTasks(c.Request().Context(), patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(tasks))
}

// UpdateTask renames a task or toggles it completed.
func (h *CareRecordHandler) UpdateTask(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.careRecordUC.UpdateTask(c.Request().Context(), id, caller.ID, entity.TaskChanges{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, task)
}

func (h *CareRecordHandler) DeleteTask(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}
	if err := h.careRecordUC.DeleteTask(c.Request().Context(), id, caller.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Task deleted")
}

func (h *CareRecordHandler) AddFace(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req AddFaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	face, err := h.careRecordUC.AddFace(c.Request().Context(), &entity.Face{
		PatientID:    caller.ID,
		Name:         req.Name,
		Relationship: req.Relationship,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, face)
}

// ListFaces returns the calling patient's gallery, newest first.
func (h *CareRecordHandler) ListFaces(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	faces, err := h.careRecordUC.ListFaces(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(faces))
}

func (h *CareRecordHandler) DeleteFace(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}
	if err := h.careRecordUC.DeleteFace(c.Request().Context(), id, caller.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Face deleted")
}

func (h *CareRecordHandler) AddEmergencyContact(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req AddEmergencyContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.careRecordUC.AddEmergencyContact(c.Request().Context(), &entity.EmergencyContact{
		PatientID:    caller.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, contact)
}

// ListEmergencyContacts returns the calling patient's contacts in the order they were added.
func (h *CareRecordHandler) ListEmergencyContacts(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	contacts, err := h.careRecordUC.ListEmergencyContacts(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(contacts))
}

func (h *CareRecordHandler) DeleteEmergencyContact(c echo.Context) error {
	caller, id, err := h.ownedRecord(c)
	if err != nil {
		return err
	}
	if err := h.careRecordUC.DeleteEmergencyContact(c.Request().Context(), id, caller.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Emergency contact deleted")
}

// readablePatient resolves whose records a read returns. Patients read their own;
// caretakers name the patient with ?patient_id and need an accepted connection to them.
func (h *CareRecordHandler) readablePatient(c echo.Context) (uuid.UUID, error) {
	caller, err := callerProfile(c)
	if err != nil {
		return uuid.Nil, err
	}

	raw := c.QueryParam("patient_id")
	if caller.Role == entity.RolePatient {
		if raw != "" && raw != caller.ID.String() {
			return uuid.Nil, domainerrors.ErrForbidden.WithDetails("patients can only read their own records")
		}

		return caller.ID, nil
	}

	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("patient_id query parameter is required for caretakers")
	}
	patientID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid patient_id")
	}
	if err := h.connectionUC.AuthorizePatientRead(c.Request().Context(), caller.ID, patientID); err != nil {
		return uuid.Nil, err
	}

	return patientID, nil
}

// ownedRecord returns the calling patient and the :id of the record being changed.
func (h *CareRecordHandler) ownedRecord(c echo.Context) (*entity.Profile, uuid.UUID, error) {
	caller, err := callerProfile(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return nil, uuid.Nil, err
	}

	return caller, id, nil
}

func deleted(c echo.Context, message string) error {
	return response.OK(c, map[string]string{"message": message})
}
