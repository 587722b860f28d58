// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lifelink/internal/domain/entity"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a user ID.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrProfileExists is returned when registering a profile for a user ID
	// that already has one.
	ErrProfileExists = errors.New("user profile already exists")
)

// ProfileRepository defines the operations on user profiles. Profiles are
// keyed by the identity provider's opaque user ID; the identity records
// themselves belong to the external auth collaborator.
type ProfileRepository interface {
	// Create persists a new profile, failing if one already exists for the UID.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByUID retrieves a profile by its user ID.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Update overwrites the mutable profile fields.
	Update(ctx context.Context, profile *entity.UserProfile) error

	// ListAll retrieves every profile, used by the admin statistics.
	ListAll(ctx context.Context) ([]*entity.UserProfile, error)
}
