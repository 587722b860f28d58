package firestore

import (
	"context"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// profileDoc is the Firestore document shape of a user profile. Documents
// are keyed by the identity provider's UID, so the UID itself is not stored
// as a field.
type profileDoc struct {
	Name          string `firestore:"name"`
	Email         string `firestore:"email"`
	Role          string `firestore:"role"`
	BloodType     string `firestore:"bloodType,omitempty"`
	Phone         string `firestore:"phone,omitempty"`
	PhoneVerified bool   `firestore:"phoneVerified"`
	HospitalName  string `firestore:"hospitalName,omitempty"`
	Location      string `firestore:"location,omitempty"`
}

func profileDocFrom(profile *entity.UserProfile) *profileDoc {
	return &profileDoc{
		Name:          profile.Name,
		Email:         profile.Email,
		Role:          string(profile.Role),
		BloodType:     string(profile.BloodType),
		Phone:         profile.Phone,
		PhoneVerified: profile.PhoneVerified,
		HospitalName:  profile.HospitalName,
		Location:      profile.Location,
	}
}

func (d *profileDoc) toEntity(uid string) *entity.UserProfile {
	return &entity.UserProfile{
		UID:           uid,
		Name:          d.Name,
		Email:         d.Email,
		Role:          entity.Role(d.Role),
		BloodType:     entity.BloodType(d.BloodType),
		Phone:         d.Phone,
		PhoneVerified: d.PhoneVerified,
		HospitalName:  d.HospitalName,
		Location:      d.Location,
	}
}

type profileRepository struct {
	client *fs.Client
}

// NewProfileRepository creates a Firestore-backed ProfileRepository.
func NewProfileRepository(client *fs.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	ref := r.client.Collection(collUsers).Doc(profile.UID)

	// Create fails when the document already exists, which makes the
	// register operation safe against double submission.
	if _, err := ref.Create(ctx, profileDocFrom(profile)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrProfileExists
		}

		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

func (r *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := r.client.Collection(collUsers).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	ref := r.client.Collection(collUsers).Doc(profile.UID)

	// Full overwrite keeps the document shape in lockstep with the entity.
	// The existence check preserves Create's exclusivity guarantee.
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to get profile document")
	}

	if _, err := ref.Set(ctx, profileDocFrom(profile)); err != nil {
		return errors.Wrap(err, "failed to update profile document")
	}

	return nil
}

func (r *profileRepository) ListAll(ctx context.Context) ([]*entity.UserProfile, error) {
	iter := r.client.Collection(collUsers).Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.UserProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate profile documents")
		}

		var doc profileDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode profile document")
		}
		profiles = append(profiles, doc.toEntity(snap.Ref.ID))
	}

	return profiles, nil
}
