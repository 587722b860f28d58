// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lifelink/internal/domain/entity"
)

// Domain-specific errors for request persistence.
var (
	// ErrRequestNotFound is returned when a blood request is not found.
	ErrRequestNotFound = errors.New("blood request not found")
	// ErrAlreadyResponded is returned when the donor already has a response
	// on the request. The check is enforced inside the submit transaction.
	ErrAlreadyResponded = errors.New("donor already responded to this request")
	// ErrRequestNotPending is returned when an offer targets a request that
	// is no longer pending.
	ErrRequestNotPending = errors.New("request is not pending")
)

// SubmitOutcome describes the result of an accepted donation offer.
type SubmitOutcome struct {
	// ResponseID is the identifier assigned to the new response document.
	ResponseID string
	// Fulfilled reports whether the accepted offer pushed the request over
	// its unit threshold and flipped it to Fulfilled.
	Fulfilled bool
}

// RequestRepository defines the standard operations for blood request persistence.
// The application layer will depend on this interface, not the concrete implementation.
type RequestRepository interface {
	// Create persists a new request and returns its assigned ID. The
	// creation timestamp is assigned server-side.
	Create(ctx context.Context, request *entity.BloodRequest) (string, error)

	// FindByID retrieves a single request by its ID.
	FindByID(ctx context.Context, id string) (*entity.BloodRequest, error)

	// ListAll retrieves every request in the store.
	ListAll(ctx context.Context) ([]*entity.BloodRequest, error)

	// ListByHospital retrieves the requests owned by a hospital.
	ListByHospital(ctx context.Context, hospitalID string) ([]*entity.BloodRequest, error)

	// Update overwrites the mutable fields of an existing request.
	Update(ctx context.Context, request *entity.BloodRequest) error

	// UpdateStatus sets the request status directly (manual override).
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error

	// Delete removes the request together with its responses subcollection.
	Delete(ctx context.Context, id string) error

	// SubmitResponse atomically accepts a donation offer: inside a single
	// transaction it verifies the request is still pending, rejects a
	// duplicate offer from the same donor, appends the response with a
	// server-assigned offer timestamp, and, when autoFulfill is set and the
	// accepted responses reach the requested units, flips the request to
	// Fulfilled. This is the conditional write that makes the
	// one-response-per-donor invariant hold under concurrent submissions.
	SubmitResponse(ctx context.Context, requestID string, response *entity.DonorResponse, autoFulfill bool) (*SubmitOutcome, error)
}
