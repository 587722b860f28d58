// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lifelink/internal/domain/entity"
)

// ErrResponseNotFound is returned when a donor response is not found.
var ErrResponseNotFound = errors.New("donor response not found")

// ResponseRepository defines the operations on donor responses. Responses
// are addressed through their parent request except for the cross-request
// donor history lookup.
type ResponseRepository interface {
	// FindByID retrieves a single response from a request's subcollection.
	FindByID(ctx context.Context, requestID, responseID string) (*entity.DonorResponse, error)

	// ListByRequest retrieves all responses submitted against a request.
	ListByRequest(ctx context.Context, requestID string) ([]*entity.DonorResponse, error)

	// ListByDonor retrieves the donor's responses across all requests,
	// used for donation history and eligibility.
	ListByDonor(ctx context.Context, donorID string) ([]*entity.DonorResponse, error)

	// Update overwrites the donor-editable fields of a response
	// (units, phone, availability).
	Update(ctx context.Context, response *entity.DonorResponse) error

	// MarkDonated sets the hospital-confirmed completion flag.
	MarkDonated(ctx context.Context, requestID, responseID string) error

	// Delete removes a response (donor cancellation).
	Delete(ctx context.Context, requestID, responseID string) error
}
