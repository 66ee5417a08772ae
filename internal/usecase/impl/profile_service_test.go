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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service:     NewProfileService(txManager, profileRepo, newDiscardLogger()),
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	found, missing := uuid.New(), uuid.New()
	expected := &entity.Profile{ID: found, Role: entity.RoleCaretaker, Name: "Bob"}

	fx.profileRepo.EXPECT().FindByID(ctx, found).Return(expected, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, expected, profile)

	_, err = fx.service.GetProfile(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := "+1-555-0100"

	fx.profileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == userID && p.Role == entity.RolePatient && p.Name == "Alice" && *p.Phone == phone
		})).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, userID, &usecase.CreateProfileInput{
		Role:  entity.RolePatient,
		Name:  "  Alice ",
		Phone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	_, hasHome := profile.Home()
	assert.False(t, hasHome)
}

func TestProfileService_CreateProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	tests := []struct {
		name  string
		input *usecase.CreateProfileInput
	}{
		{name: "unknown role", input: &usecase.CreateProfileInput{Role: "ADMIN", Name: "Eve"}},
		{name: "blank name", input: &usecase.CreateProfileInput{Role: entity.RoleCaretaker, Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := fx.service.CreateProfile(context.Background(), uuid.New(), tt.input)

			assert.Nil(t, profile)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrProfileExists)

	_, err := fx.service.CreateProfile(ctx, uuid.New(), &usecase.CreateProfileInput{Role: entity.RoleCaretaker, Name: "Bob"})

	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		existing *entity.Profile
		input    *usecase.UpdateProfileInput
		verify   func(t *testing.T, p *entity.Profile)
	}{
		{
			name:     "set home",
			existing: &entity.Profile{Name: "Alice"},
			input:    &usecase.UpdateProfileInput{HomeLat: ptr(40.0), HomeLng: ptr(-74.0)},
			verify: func(t *testing.T, p *entity.Profile) {
				home, ok := p.Home()
				require.True(t, ok)
				assert.Equal(t, entity.Coordinate{Lat: 40.0, Lng: -74.0}, home)
			},
		},
		{
			name:     "clear home",
			existing: newPatientProfile(uuid.New(), &testHome),
			input:    &usecase.UpdateProfileInput{ClearHome: true},
			verify: func(t *testing.T, p *entity.Profile) {
				_, ok := p.Home()
				assert.False(t, ok)
			},
		},
		{
			name:     "rename and phone",
			existing: &entity.Profile{Name: "Alice"},
			input:    &usecase.UpdateProfileInput{Name: ptr(" Alicia "), Phone: ptr("555")},
			verify: func(t *testing.T, p *entity.Profile) {
				assert.Equal(t, "Alicia", p.Name)
				assert.Equal(t, "555", *p.Phone)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			userID := uuid.New()

			txProfileRepo := mockRepo.NewMockProfileRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
					return fn(factory)
				})
			txProfileRepo.EXPECT().FindByID(ctx, userID).Return(tt.existing, nil)
			txProfileRepo.EXPECT().Update(ctx, tt.existing).Return(nil)

			profile, err := fx.service.UpdateProfile(ctx, userID, tt.input)

			require.NoError(t, err)
			tt.verify(t, profile)
		})
	}
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	tests := []struct {
		name        string
		input       *usecase.UpdateProfileInput
		expectedErr error
	}{
		{
			name:        "latitude without longitude",
			input:       &usecase.UpdateProfileInput{HomeLat: ptr(40.0)},
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "clear with coordinates",
			input:       &usecase.UpdateProfileInput{ClearHome: true, HomeLat: ptr(1.0), HomeLng: ptr(1.0)},
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "latitude out of range",
			input:       &usecase.UpdateProfileInput{HomeLat: ptr(91.0), HomeLng: ptr(0.0)},
			expectedErr: domainerrors.ErrInvalidCoordinate,
		},
		{
			name:        "longitude out of range",
			input:       &usecase.UpdateProfileInput{HomeLat: ptr(0.0), HomeLng: ptr(-180.5)},
			expectedErr: domainerrors.ErrInvalidCoordinate,
		},
		{
			name:        "blank name",
			input:       &usecase.UpdateProfileInput{Name: ptr("")},
			expectedErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := fx.service.UpdateProfile(context.Background(), uuid.New(), tt.input)

			assert.Nil(t, profile)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(txProfileRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	txProfileRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.Wrap(repository.ErrProfileNotFound, "lookup"))

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: ptr("Alice")})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
