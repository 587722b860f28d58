package impl

import (
	"context"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/usecase"

	"github.com/pkg/errors"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{profileRepo: profileRepo}
}

// Register records the profile document for a verified identity
func (s *profileService) Register(ctx context.Context, identity *service.Identity, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if input.Role == entity.RoleHospital && input.HospitalName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("hospital name must not be empty")
	}

	profile := &entity.UserProfile{
		UID:          identity.UID,
		Name:         input.Name,
		Email:        identity.Email,
		Role:         input.Role,
		HospitalName: input.HospitalName,
		Location:     input.Location,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, domainerrors.NewBackendError(err, "failed to create profile")
	}

	return profile, nil
}

// GetProfile retrieves the caller's profile
func (s *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile updates the caller's mutable profile fields
func (s *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	profile, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.BloodType != "" {
		if !input.BloodType.IsValid() {
			return nil, domainerrors.ErrInvalidBloodType
		}
		profile.BloodType = input.BloodType
	}
	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Phone != "" && input.Phone != profile.Phone {
		profile.Phone = input.Phone
		// A changed number needs the provider's verification flow again.
		profile.PhoneVerified = false
	}
	if input.Location != "" {
		profile.Location = input.Location
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to update profile")
	}

	return profile, nil
}
