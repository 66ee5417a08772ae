package impl

import (
	"context"
	"log/slog"

	deliverycontext "alzassist/internal/delivery/context"
	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	"alzassist/internal/domain/service"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(
	txManager repository.TransactionManager,
	connectionRepo repository.ConnectionRepository,
	qrCodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:      txManager,
		connectionRepo: connectionRepo,
		qrCodeService:  qrCodeService,
		logger:         logger,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// IsConnected fails closed: a store error is reported as not connected.
func (srv *connectionService) IsConnected(ctx context.Context, caretakerID, patientID uuid.UUID) bool {
	connected, err := srv.connectionRepo.ExistsAccepted(ctx, caretakerID, patientID)
	if err != nil {
		srv.log(ctx).Error("Failed to check connection",
			slog.Any("caretaker_id", caretakerID),
			slog.Any("patient_id", patientID),
			slog.Any("error", err),
		)

		return false
	}

	return connected
}

func (srv *connectionService) AuthorizePatientRead(ctx context.Context, caretakerID, patientID uuid.UUID) error {
	if !srv.IsConnected(ctx, caretakerID, patientID) {
		return domainerrors.ErrNotConnected
	}

	return nil
}

// SendRequest creates a pending request, or returns the existing connection for the pair
// whatever its status.
func (srv *connectionService) SendRequest(ctx context.Context, caretakerID, patientID uuid.UUID) (*entity.Connection, error) {
	srv.log(ctx).Info("Sending connection request", slog.Any("caretaker_id", caretakerID), slog.Any("patient_id", patientID))

	var conn *entity.Connection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		connectionRepo := repoFactory.NewConnectionRepository()

		// 1. The target must be a patient
		patient, err := profileRepo.FindByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrPatientNotFound, "target profile not found")
			}

			return errors.Wrap(err, "failed to find target profile")
		}
		if patient.Role != entity.RolePatient {
			return errors.Wrap(domainerrors.ErrPatientNotFound, "target profile is not a patient")
		}

		// 2. Requests are idempotent per pair
		existing, err := connectionRepo.FindByPair(ctx, caretakerID, patientID)
		if err == nil {
			conn = existing

			return nil
		}
		if !errors.Is(err, repository.ErrConnectionNotFound) {
			return errors.Wrap(err, "failed to find existing connection")
		}

		// 3. Create the pending request
		created := &entity.Connection{
			CaretakerID: caretakerID,
			PatientID:   patientID,
			Status:      entity.ConnectionPending,
		}
		if err := connectionRepo.Create(ctx, created); err != nil {
			switch {
			case errors.Is(err, repository.ErrConnectionExists):
				return errors.Wrap(domainerrors.ErrConnectionExists, "concurrent connection request")
			case errors.Is(err, repository.ErrProfileNotFound):
				return errors.Wrap(domainerrors.ErrPatientNotFound, "profile removed during request")
			}

			return errors.Wrap(err, "failed to create connection")
		}
		conn = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to send connection request", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to send connection request")
	}

	return conn, nil
}

func (srv *connectionService) SendRequestFromQR(ctx context.Context, caretakerID uuid.UUID, qrData string) (*entity.Connection, error) {
	patientID, err := srv.qrCodeService.ParseInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidInviteCode.WrapMessage(err.Error())
	}

	return srv.SendRequest(ctx, caretakerID, patientID)
}

// UpdateStatus lets the patient accept or reject a request addressed to them.
func (srv *connectionService) UpdateStatus(
	ctx context.Context,
	connectionID, patientID uuid.UUID,
	status entity.ConnectionStatus,
) (*entity.Connection, error) {
	if !status.IsDecision() {
		return nil, domainerrors.ErrInvalidConnectionStatus
	}

	srv.log(ctx).Info("Updating connection status",
		slog.Any("connection_id", connectionID),
		slog.String("status", string(status)),
	)

	conn, err := srv.connectionRepo.UpdateStatus(ctx, connectionID, patientID, status)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "connection not found for patient")
		}

		return nil, errors.Wrap(err, "failed to update connection status")
	}

	return conn, nil
}

func (srv *connectionService) ListConnectedPatients(ctx context.Context, caretakerID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	conns, err := srv.connectionRepo.ListPatientsForCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connected patients")
	}

	return conns, nil
}

func (srv *connectionService) ListConnectedCaretakers(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	conns, err := srv.connectionRepo.ListCaretakersForPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connected caretakers")
	}

	return conns, nil
}

func (srv *connectionService) ListPendingRequests(ctx context.Context, patientID uuid.UUID) ([]*entity.ConnectionWithProfile, error) {
	conns, err := srv.connectionRepo.ListPendingForPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	return conns, nil
}

func (srv *connectionService) GenerateInviteQR(ctx context.Context, patientID uuid.UUID) ([]byte, error) {
	png, err := srv.qrCodeService.GenerateInviteQR(patientID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate invite QR code", slog.Any("patient_id", patientID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate invite QR code")
	}

	return png, nil
}
