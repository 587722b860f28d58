package firestore

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// requestDoc is the Firestore document shape of a blood request.
type requestDoc struct {
	BloodType    string    `firestore:"bloodType"`
	Units        int       `firestore:"units"`
	Urgency      string    `firestore:"urgency"`
	HospitalID   string    `firestore:"hospitalId"`
	HospitalName string    `firestore:"hospitalName"`
	Location     string    `firestore:"location"`
	Status       string    `firestore:"status"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d *requestDoc) toEntity(id string) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:           id,
		BloodType:    entity.BloodType(d.BloodType),
		Units:        d.Units,
		Urgency:      entity.Urgency(d.Urgency),
		HospitalID:   d.HospitalID,
		HospitalName: d.HospitalName,
		Location:     d.Location,
		Status:       entity.RequestStatus(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

func requestDocFrom(request *entity.BloodRequest) *requestDoc {
	return &requestDoc{
		BloodType:    request.BloodType.String(),
		Units:        request.Units,
		Urgency:      request.Urgency.String(),
		HospitalID:   request.HospitalID,
		HospitalName: request.HospitalName,
		Location:     request.Location,
		Status:       request.Status.String(),
		CreatedAt:    request.CreatedAt,
	}
}

type requestRepository struct {
	client *fs.Client
}

// NewRequestRepository creates a Firestore-backed RequestRepository.
func NewRequestRepository(client *fs.Client) repository.RequestRepository {
	return &requestRepository{client: client}
}

func (r *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) (string, error) {
	ref := r.client.Collection(collRequests).NewDoc()
	// Zero CreatedAt lets the serverTimestamp tag assign the creation time.
	doc := requestDocFrom(request)
	doc.CreatedAt = time.Time{}

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", errors.Wrap(err, "failed to create request document")
	}

	return ref.ID, nil
}

func (r *requestRepository) FindByID(ctx context.Context, id string) (*entity.BloodRequest, error) {
	snap, err := r.client.Collection(collRequests).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to get request document")
	}

	var doc requestDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode request document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (r *requestRepository) ListAll(ctx context.Context) ([]*entity.BloodRequest, error) {
	return r.list(ctx, r.client.Collection(collRequests).Query)
}

func (r *requestRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*entity.BloodRequest, error) {
	return r.list(ctx, r.client.Collection(collRequests).Where("hospitalId", "==", hospitalID))
}

func (r *requestRepository) list(ctx context.Context, query fs.Query) ([]*entity.BloodRequest, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var requests []*entity.BloodRequest
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate request documents")
		}

		var doc requestDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode request document")
		}
		requests = append(requests, doc.toEntity(snap.Ref.ID))
	}

	return requests, nil
}

func (r *requestRepository) Update(ctx context.Context, request *entity.BloodRequest) error {
	updates := []fs.Update{
		{Path: "bloodType", Value: request.BloodType.String()},
		{Path: "units", Value: request.Units},
		{Path: "urgency", Value: request.Urgency.String()},
		{Path: "location", Value: request.Location},
	}

	if _, err := r.client.Collection(collRequests).Doc(request.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update request document")
	}

	return nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	updates := []fs.Update{{Path: "status", Value: status.String()}}
	if _, err := r.client.Collection(collRequests).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to update request status")
	}

	return nil
}

// Delete removes the request and every response under it. Firestore does
// not cascade subcollection deletes, so the responses are removed
// explicitly in a batched write before the parent document.
func (r *requestRepository) Delete(ctx context.Context, id string) error {
	requestRef := r.client.Collection(collRequests).Doc(id)

	iter := requestRef.Collection(collResponses).Documents(ctx)
	defer iter.Stop()

	writer := r.client.BulkWriter(ctx)
	var jobs []*fs.BulkWriterJob
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to iterate response documents")
		}
		job, err := writer.Delete(snap.Ref)
		if err != nil {
			return errors.Wrap(err, "failed to enqueue response delete")
		}
		jobs = append(jobs, job)
	}
	job, err := writer.Delete(requestRef)
	if err != nil {
		return errors.Wrap(err, "failed to enqueue request delete")
	}
	jobs = append(jobs, job)
	writer.End()

	// Enqueueing only fails fast; the writes themselves report through the
	// job results after End, and a partial cascade must not look like success.
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrap(err, "failed to delete request cascade")
		}
	}

	return nil
}

// SubmitResponse runs the duplicate-offer check, the insert, and the
// optional auto-fulfill flip inside a single Firestore transaction.
// Concurrent submissions against the same request serialize here instead of
// racing through an application-level pre-check.
func (r *requestRepository) SubmitResponse(ctx context.Context, requestID string, response *entity.DonorResponse, autoFulfill bool) (*repository.SubmitOutcome, error) {
	requestRef := r.client.Collection(collRequests).Doc(requestID)
	var outcome repository.SubmitOutcome

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		// RunTransaction re-runs this closure on commit contention, so the
		// outcome of an aborted attempt must not leak into the next one.
		outcome = repository.SubmitOutcome{}

		snap, err := tx.Get(requestRef)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to get request document")
		}

		var request requestDoc
		if err := snap.DataTo(&request); err != nil {
			return errors.Wrap(err, "failed to decode request document")
		}
		if entity.RequestStatus(request.Status) != entity.StatusPending {
			return repository.ErrRequestNotPending
		}

		responsesCol := requestRef.Collection(collResponses)
		existing, err := tx.Documents(responsesCol).GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to read response documents")
		}
		for _, respSnap := range existing {
			var resp responseDoc
			if err := respSnap.DataTo(&resp); err != nil {
				return errors.Wrap(err, "failed to decode response document")
			}
			if resp.DonorID == response.DonorID {
				return repository.ErrAlreadyResponded
			}
		}

		newRef := responsesCol.NewDoc()
		doc := responseDocFrom(response)
		doc.OfferedAt = time.Time{} // server assigns the offer timestamp
		if err := tx.Create(newRef, doc); err != nil {
			return errors.Wrap(err, "failed to create response document")
		}
		outcome.ResponseID = newRef.ID

		if autoFulfill && fulfillment.ShouldFulfill(request.Units, len(existing)+1) {
			updates := []fs.Update{{Path: "status", Value: entity.StatusFulfilled.String()}}
			if err := tx.Update(requestRef, updates); err != nil {
				return errors.Wrap(err, "failed to fulfill request")
			}
			outcome.Fulfilled = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}
