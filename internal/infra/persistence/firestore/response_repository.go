package firestore

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// responseDoc is the Firestore document shape of a donor response.
type responseDoc struct {
	DonorID      string    `firestore:"donorId"`
	OfferedAt    time.Time `firestore:"offeredAt,serverTimestamp"`
	UnitsDonated int       `firestore:"unitsDonated"`
	Phone        string    `firestore:"phone"`
	Availability string    `firestore:"availability"`
	Donated      bool      `firestore:"donated"`
}

func (d *responseDoc) toEntity(requestID, id string) *entity.DonorResponse {
	return &entity.DonorResponse{
		ID:           id,
		RequestID:    requestID,
		DonorID:      d.DonorID,
		OfferedAt:    d.OfferedAt,
		UnitsDonated: d.UnitsDonated,
		Phone:        d.Phone,
		Availability: d.Availability,
		Donated:      d.Donated,
	}
}

func responseDocFrom(response *entity.DonorResponse) *responseDoc {
	return &responseDoc{
		DonorID:      response.DonorID,
		OfferedAt:    response.OfferedAt,
		UnitsDonated: response.UnitsDonated,
		Phone:        response.Phone,
		Availability: response.Availability,
		Donated:      response.Donated,
	}
}

type responseRepository struct {
	client *fs.Client
}

// NewResponseRepository creates a Firestore-backed ResponseRepository.
func NewResponseRepository(client *fs.Client) repository.ResponseRepository {
	return &responseRepository{client: client}
}

func (r *responseRepository) responseRef(requestID, responseID string) *fs.DocumentRef {
	return r.client.Collection(collRequests).Doc(requestID).Collection(collResponses).Doc(responseID)
}

func (r *responseRepository) FindByID(ctx context.Context, requestID, responseID string) (*entity.DonorResponse, error) {
	snap, err := r.responseRef(requestID, responseID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrResponseNotFound
		}

		return nil, errors.Wrap(err, "failed to get response document")
	}

	var doc responseDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode response document")
	}

	return doc.toEntity(requestID, snap.Ref.ID), nil
}

func (r *responseRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.DonorResponse, error) {
	iter := r.client.Collection(collRequests).Doc(requestID).Collection(collResponses).Documents(ctx)

	return collectResponses(iter, requestID)
}

// ListByDonor queries the responses subcollections across every request
// through a collection group query; the parent request ID is recovered from
// the document path.
func (r *responseRepository) ListByDonor(ctx context.Context, donorID string) ([]*entity.DonorResponse, error) {
	iter := r.client.CollectionGroup(collResponses).Where("donorId", "==", donorID).Documents(ctx)
	defer iter.Stop()

	var responses []*entity.DonorResponse
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate response documents")
		}

		var doc responseDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode response document")
		}

		requestID := ""
		if parent := snap.Ref.Parent.Parent; parent != nil {
			requestID = parent.ID
		}
		responses = append(responses, doc.toEntity(requestID, snap.Ref.ID))
	}

	return responses, nil
}

func (r *responseRepository) Update(ctx context.Context, response *entity.DonorResponse) error {
	updates := []fs.Update{
		{Path: "unitsDonated", Value: response.UnitsDonated},
		{Path: "phone", Value: response.Phone},
		{Path: "availability", Value: response.Availability},
	}

	if _, err := r.responseRef(response.RequestID, response.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrResponseNotFound
		}

		return errors.Wrap(err, "failed to update response document")
	}

	return nil
}

func (r *responseRepository) MarkDonated(ctx context.Context, requestID, responseID string) error {
	updates := []fs.Update{{Path: "donated", Value: true}}
	if _, err := r.responseRef(requestID, responseID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrResponseNotFound
		}

		return errors.Wrap(err, "failed to mark response donated")
	}

	return nil
}

func (r *responseRepository) Delete(ctx context.Context, requestID, responseID string) error {
	if _, err := r.responseRef(requestID, responseID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete response document")
	}

	return nil
}

func collectResponses(iter *fs.DocumentIterator, requestID string) ([]*entity.DonorResponse, error) {
	defer iter.Stop()

	var responses []*entity.DonorResponse
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate response documents")
		}

		var doc responseDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode response document")
		}
		responses = append(responses, doc.toEntity(requestID, snap.Ref.ID))
	}

	return responses, nil
}
