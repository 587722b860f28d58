package impl

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	mockRepo "lifelink/internal/mocks/repository"
	"lifelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Register_Donor(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	ctx := context.Background()
	identity := &service.Identity{UID: "uid-1", Email: "alex@example.com"}

	profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.UserProfile)
			assert.Equal(t, "uid-1", profile.UID)
			assert.Equal(t, "alex@example.com", profile.Email)
			assert.Equal(t, entity.RoleDonor, profile.Role)
		}).
		Return(nil)

	profile, err := svc.Register(ctx, identity, &usecase.RegisterInput{
		Name: "Alex",
		Role: entity.RoleDonor,
	})
	require.NoError(t, err)
	assert.True(t, profile.IsDonor())
}

func TestProfileService_Register_HospitalRequiresName(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	_, err := svc.Register(context.Background(), &service.Identity{UID: "uid-1"}, &usecase.RegisterInput{
		Name: "Admin",
		Role: entity.RoleHospital,
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileService_Register_AlreadyExists(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	ctx := context.Background()

	profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(repository.ErrProfileExists)

	_, err := svc.Register(ctx, &service.Identity{UID: "uid-1"}, &usecase.RegisterInput{
		Name: "Alex",
		Role: entity.RoleDonor,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	ctx := context.Background()

	profileRepo.EXPECT().FindByUID(ctx, "missing").Return(nil, repository.ErrProfileNotFound)

	_, err := svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	ctx := context.Background()

	existing := &entity.UserProfile{
		UID:           "uid-1",
		Name:          "Alex",
		Role:          entity.RoleDonor,
		Phone:         "0911111111",
		PhoneVerified: true,
	}
	profileRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil)
	profileRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := svc.UpdateProfile(ctx, "uid-1", &usecase.UpdateProfileInput{
		Phone:     "0922222222",
		BloodType: entity.BloodTypeONeg,
	})
	require.NoError(t, err)
	assert.Equal(t, "0922222222", profile.Phone)
	assert.Equal(t, entity.BloodTypeONeg, profile.BloodType)
	// A changed phone number drops the verified flag.
	assert.False(t, profile.PhoneVerified)
}

func TestProfileService_UpdateProfile_InvalidBloodType(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProfileService(profileRepo)

	ctx := context.Background()

	profileRepo.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.UserProfile{UID: "uid-1"}, nil)

	_, err := svc.UpdateProfile(ctx, "uid-1", &usecase.UpdateProfileInput{BloodType: "X+"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodType)
}
