package usecase

import (
	"context"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/service"
)

// RegisterInput carries the profile fields recorded at registration. The
// identity itself already exists with the auth provider.
type RegisterInput struct {
	Name         string      `json:"name" validate:"required"`
	Role         entity.Role `json:"role" validate:"required"`
	HospitalName string      `json:"hospitalName"`
	Location     string      `json:"location"`
}

// UpdateProfileInput carries the profile fields a user may change later.
type UpdateProfileInput struct {
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	BloodType entity.BloodType `json:"bloodType"`
	Location  string           `json:"location"`
}

// ProfileUsecase defines the interface for user profile use cases
type ProfileUsecase interface {
	// Register records the profile document for a verified identity
	Register(ctx context.Context, identity *service.Identity, input *RegisterInput) (*entity.UserProfile, error)

	// GetProfile retrieves the caller's profile
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// UpdateProfile updates the caller's mutable profile fields
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*entity.UserProfile, error)
}
