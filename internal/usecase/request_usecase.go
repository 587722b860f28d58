// Package usecase defines the application-facing interfaces and their
// input/output types. Implementations live under impl.
package usecase

import (
	"context"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/fulfillment"
)

// CreateRequestInput carries the hospital-supplied fields of a new request.
type CreateRequestInput struct {
	BloodType entity.BloodType `json:"bloodType" validate:"required"`
	Units     int              `json:"units" validate:"required,gt=0"`
	Urgency   entity.Urgency   `json:"urgency" validate:"required"`
	Location  string           `json:"location"`
}

// UpdateRequestInput carries the editable fields of an existing request.
type UpdateRequestInput struct {
	BloodType entity.BloodType `json:"bloodType" validate:"required"`
	Units     int              `json:"units" validate:"required,gt=0"`
	Urgency   entity.Urgency   `json:"urgency" validate:"required"`
	Location  string           `json:"location"`
}

// RequestUsecase defines the interface for blood request management use cases
type RequestUsecase interface {
	// CreateRequest creates a pending request owned by the hospital and
	// publishes a request.created event for donor notification fanout
	CreateRequest(ctx context.Context, hospital *entity.UserProfile, input *CreateRequestInput) (*entity.BloodRequest, error)

	// GetRequest retrieves a single request by ID
	GetRequest(ctx context.Context, requestID string) (*entity.BloodRequest, error)

	// ListRequests retrieves all requests passing the filter, any role
	ListRequests(ctx context.Context, filter fulfillment.RequestFilter) ([]*entity.BloodRequest, error)

	// ListHospitalRequests retrieves the requests owned by the hospital
	ListHospitalRequests(ctx context.Context, hospitalID string) ([]*entity.BloodRequest, error)

	// UpdateRequest edits a request; only the owning hospital may edit
	UpdateRequest(ctx context.Context, hospitalID, requestID string, input *UpdateRequestInput) (*entity.BloodRequest, error)

	// DeleteRequest removes a request and all of its responses; only the
	// owning hospital may delete
	DeleteRequest(ctx context.Context, hospitalID, requestID string) error

	// SetRequestStatus manually overrides the request status; publishes a
	// request.fulfilled event when the override fulfills the request
	SetRequestStatus(ctx context.Context, hospitalID, requestID string, status entity.RequestStatus) error

	// ComputeSummary aggregates the hospital's own requests by status
	ComputeSummary(ctx context.Context, hospitalID string) (fulfillment.Summary, error)

	// GenerateRequestQR renders a shareable QR code PNG linking to a request
	GenerateRequestQR(ctx context.Context, requestID string) ([]byte, error)
}
