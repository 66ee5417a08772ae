package impl

import (
	"context"
	"testing"

	"alzassist/internal/domain/entity"
	domainerrors "alzassist/internal/domain/errors"
	"alzassist/internal/domain/repository"
	mockRepo "alzassist/internal/mocks/repository"
	mockSvc "alzassist/internal/mocks/service"
	"alzassist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service        usecase.ConnectionUsecase
	txManager      *mockRepo.MockTransactionManager
	connectionRepo *mockRepo.MockConnectionRepository
	qrCodeService  *mockSvc.MockQRCodeService

	// repositories handed out inside transactions
	txProfileRepo    *mockRepo.MockProfileRepository
	txConnectionRepo *mockRepo.MockConnectionRepository
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)

	return connectionServiceFixtures{
		service:          NewConnectionService(txManager, connectionRepo, qrCodeService, newDiscardLogger()),
		txManager:        txManager,
		connectionRepo:   connectionRepo,
		qrCodeService:    qrCodeService,
		txProfileRepo:    mockRepo.NewMockProfileRepository(t),
		txConnectionRepo: mockRepo.NewMockConnectionRepository(t),
	}
}

// expectTransaction runs the transactional callback against the fixture's tx repositories.
func (fx connectionServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(fx.txProfileRepo)
	factory.EXPECT().NewConnectionRepository().Return(fx.txConnectionRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestConnectionService_IsConnected(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID := uuid.New()
	accepted, pending, failing := uuid.New(), uuid.New(), uuid.New()

	fx.connectionRepo.EXPECT().ExistsAccepted(ctx, caretakerID, accepted).Return(true, nil)
	fx.connectionRepo.EXPECT().ExistsAccepted(ctx, caretakerID, pending).Return(false, nil)
	fx.connectionRepo.EXPECT().ExistsAccepted(ctx, caretakerID, failing).Return(false, errors.New("timeout"))

	assert.True(t, fx.service.IsConnected(ctx, caretakerID, accepted))
	assert.False(t, fx.service.IsConnected(ctx, caretakerID, pending))
	assert.False(t, fx.service.IsConnected(ctx, caretakerID, failing))
}

func TestConnectionService_AuthorizePatientRead(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID := uuid.New()
	connected, stranger := uuid.New(), uuid.New()

	fx.connectionRepo.EXPECT().ExistsAccepted(ctx, caretakerID, connected).Return(true, nil)
	fx.connectionRepo.EXPECT().ExistsAccepted(ctx, caretakerID, stranger).Return(false, nil)

	require.NoError(t, fx.service.AuthorizePatientRead(ctx, caretakerID, connected))

	err := fx.service.AuthorizePatientRead(ctx, caretakerID, stranger)
	assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
}

func TestConnectionService_SendRequest_CreatesPending(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID, patientID := uuid.New(), uuid.New()

	fx.expectTransaction(t, ctx)
	fx.txProfileRepo.EXPECT().FindByID(ctx, patientID).Return(&entity.Profile{ID: patientID, Role: entity.RolePatient}, nil)
	fx.txConnectionRepo.EXPECT().FindByPair(ctx, caretakerID, patientID).Return(nil, repository.ErrConnectionNotFound)
	fx.txConnectionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(conn *entity.Connection) bool {
			return conn.CaretakerID == caretakerID && conn.PatientID == patientID && conn.Status == entity.ConnectionPending
		})).
		RunAndReturn(func(_ context.Context, conn *entity.Connection) error {
			conn.ID = uuid.New()

			return nil
		})

	conn, err := fx.service.SendRequest(ctx, caretakerID, patientID)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, conn.ID)
	assert.Equal(t, entity.ConnectionPending, conn.Status)
}

func TestConnectionService_SendRequest_ReturnsExisting(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID, patientID := uuid.New(), uuid.New()
	existing := &entity.Connection{ID: uuid.New(), CaretakerID: caretakerID, PatientID: patientID, Status: entity.ConnectionAccepted}

	fx.expectTransaction(t, ctx)
	fx.txProfileRepo.EXPECT().FindByID(ctx, patientID).Return(&entity.Profile{ID: patientID, Role: entity.RolePatient}, nil)
	fx.txConnectionRepo.EXPECT().FindByPair(ctx, caretakerID, patientID).Return(existing, nil)

	conn, err := fx.service.SendRequest(ctx, caretakerID, patientID)

	require.NoError(t, err)
	assert.Equal(t, existing, conn)
}

func TestConnectionService_SendRequest_TargetNotPatient(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		findErr error
	}{
		{name: "missing profile", findErr: repository.ErrProfileNotFound},
		{name: "caretaker profile", profile: &entity.Profile{Role: entity.RoleCaretaker}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t)

			ctx := context.Background()
			caretakerID, patientID := uuid.New(), uuid.New()

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewProfileRepository().Return(fx.txProfileRepo)
			factory.EXPECT().NewConnectionRepository().Return(fx.txConnectionRepo)
			fx.txManager.EXPECT().
				Execute(ctx, mock.Anything).
				RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
					return fn(factory)
				})
			fx.txProfileRepo.EXPECT().FindByID(ctx, patientID).Return(tt.profile, tt.findErr)

			conn, err := fx.service.SendRequest(ctx, caretakerID, patientID)

			assert.Nil(t, conn)
			assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
		})
	}
}

func TestConnectionService_SendRequest_ConcurrentDuplicate(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID, patientID := uuid.New(), uuid.New()

	fx.expectTransaction(t, ctx)
	fx.txProfileRepo.EXPECT().FindByID(ctx, patientID).Return(&entity.Profile{ID: patientID, Role: entity.RolePatient}, nil)
	fx.txConnectionRepo.EXPECT().FindByPair(ctx, caretakerID, patientID).Return(nil, repository.ErrConnectionNotFound)
	fx.txConnectionRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrConnectionExists)

	_, err := fx.service.SendRequest(ctx, caretakerID, patientID)

	assert.ErrorIs(t, err, domainerrors.ErrConnectionExists)
}

func TestConnectionService_SendRequestFromQR(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	caretakerID, patientID := uuid.New(), uuid.New()
	existing := &entity.Connection{ID: uuid.New(), CaretakerID: caretakerID, PatientID: patientID, Status: entity.ConnectionPending}

	fx.qrCodeService.EXPECT().ParseInviteQR("qr-payload").Return(patientID, nil)
	fx.expectTransaction(t, ctx)
	fx.txProfileRepo.EXPECT().FindByID(ctx, patientID).Return(&entity.Profile{ID: patientID, Role: entity.RolePatient}, nil)
	fx.txConnectionRepo.EXPECT().FindByPair(ctx, caretakerID, patientID).Return(existing, nil)

	conn, err := fx.service.SendRequestFromQR(ctx, caretakerID, "qr-payload")

	require.NoError(t, err)
	assert.Equal(t, existing, conn)
}

func TestConnectionService_SendRequestFromQR_InvalidCode(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.qrCodeService.EXPECT().ParseInviteQR("garbage").Return(uuid.Nil, errors.New("invalid QR code data"))

	conn, err := fx.service.SendRequestFromQR(ctx, uuid.New(), "garbage")

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInviteCode)
}

func TestConnectionService_UpdateStatus(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	connectionID, patientID := uuid.New(), uuid.New()
	updated := &entity.Connection{ID: connectionID, PatientID: patientID, Status: entity.ConnectionAccepted}

	fx.connectionRepo.EXPECT().UpdateStatus(ctx, connectionID, patientID, entity.ConnectionAccepted).Return(updated, nil)

	conn, err := fx.service.UpdateStatus(ctx, connectionID, patientID, entity.ConnectionAccepted)

	require.NoError(t, err)
	assert.Equal(t, updated, conn)
}

func TestConnectionService_UpdateStatus_RejectsNonDecision(t *testing.T) {
	fx := createTestConnectionService(t)

	for _, status := range []entity.ConnectionStatus{entity.ConnectionPending, "MAYBE", ""} {
		conn, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), status)

		assert.Nil(t, conn)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidConnectionStatus)
	}
}

func TestConnectionService_UpdateStatus_NotOwned(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	connectionID, otherPatientID := uuid.New(), uuid.New()

	fx.connectionRepo.EXPECT().
		UpdateStatus(ctx, connectionID, otherPatientID, entity.ConnectionRejected).
		Return(nil, repository.ErrConnectionNotFound)

	conn, err := fx.service.UpdateStatus(ctx, connectionID, otherPatientID, entity.ConnectionRejected)

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domainerrors.ErrConnectionNotFound)
}

func TestConnectionService_Lists(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	patients := []*entity.ConnectionWithProfile{{ID: uuid.New(), Status: entity.ConnectionAccepted, Patient: &entity.ProfileSummary{Name: "Alice"}}}
	caretakers := []*entity.ConnectionWithProfile{{ID: uuid.New(), Status: entity.ConnectionAccepted, Caretaker: &entity.ProfileSummary{Name: "Bob"}}}

	fx.connectionRepo.EXPECT().ListPatientsForCaretaker(ctx, userID).Return(patients, nil)
	fx.connectionRepo.EXPECT().ListCaretakersForPatient(ctx, userID).Return(caretakers, nil)
	fx.connectionRepo.EXPECT().ListPendingForPatient(ctx, userID).Return(nil, errors.New("boom"))

	got, err := fx.service.ListConnectedPatients(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, patients, got)

	got, err = fx.service.ListConnectedCaretakers(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, caretakers, got)

	_, err = fx.service.ListPendingRequests(ctx, userID)
	assert.Error(t, err)
}

func TestConnectionService_GenerateInviteQR(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	patientID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.qrCodeService.EXPECT().GenerateInviteQR(patientID).Return(png, nil).Once()
	fx.qrCodeService.EXPECT().GenerateInviteQR(patientID).Return(nil, errors.New("encode failed")).Once()

	got, err := fx.service.GenerateInviteQR(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = fx.service.GenerateInviteQR(ctx, patientID)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
