package handler

import (
	"log/slog"
	"net/http"

	"alzassist/internal/delivery/api/response"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler holds dependencies for connection-related handlers
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// SendRequestRequest represents a caretaker's connection request
type SendRequestRequest struct {
	PatientID string `json:"patientId" validate:"required,uuid"`
}

// UpdateStatusRequest represents a patient's decision on a request
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,connection_decision"`
}

// ScanInviteRequest carries the payload of a scanned invite QR code
type ScanInviteRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// SendRequest asks a patient to accept the calling caretaker.
func (h *ConnectionHandler) SendRequest(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req SendRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid patientId")
	}

	conn, err := h.connectionUC.SendRequest(c.Request().Context(), caller.ID, patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, conn)
}

// SendRequestFromQR sends a request to the patient encoded in a scanned invite.
func (h *ConnectionHandler) SendRequestFromQR(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	var req ScanInviteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conn, err := h.connectionUC.SendRequestFromQR(c.Request().Context(), caller.ID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, conn)
}

// UpdateStatus accepts or rejects a request addressed to the calling patient.
func (h *ConnectionHandler) UpdateStatus(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}
	connectionID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conn, err := h.connectionUC.UpdateStatus(c.Request().Context(), connectionID, caller.ID, entity.ConnectionStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, conn)
}

// ListPatients lists the calling caretaker's accepted patients.
func (h *ConnectionHandler) ListPatients(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	conns, err := h.connectionUC.ListConnectedPatients(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(conns))
}

// ListCaretakers lists the calling patient's accepted caretakers.
func (h *ConnectionHandler) ListCaretakers(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	conns, err := h.connectionUC.ListConnectedCaretakers(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(conns))
}

// ListRequests lists the pending requests addressed to the calling patient.
func (h *ConnectionHandler) ListRequests(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	conns, err := h.connectionUC.ListPendingRequests(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, nonNil(conns))
}

// GetInviteQR renders the calling patient's invite as a PNG image.
func (h *ConnectionHandler) GetInviteQR(c echo.Context) error {
	caller, err := callerProfile(c)
	if err != nil {
		return err
	}

	png, err := h.connectionUC.GenerateInviteQR(c.Request().Context(), caller.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
