package usecase

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
)

// SubmitResponseInput carries the donor-supplied fields of a donation offer.
// Units is only consulted under the donor units policy.
type SubmitResponseInput struct {
	Units        int    `json:"units"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
}

// EditResponseInput carries the donor-editable fields of an existing offer.
type EditResponseInput struct {
	Units        int    `json:"units"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
}

// SubmitResult describes an accepted donation offer.
type SubmitResult struct {
	ResponseID string `json:"responseId"`
	// Fulfilled reports whether this offer flipped the request to Fulfilled.
	Fulfilled bool `json:"fulfilled"`
}

// EligibilityResult is the donor-facing eligibility check.
type EligibilityResult struct {
	Eligible     bool       `json:"eligible"`
	LastDonation *time.Time `json:"lastDonation,omitempty"`
	// NextEligibleAt is only set when the donor is currently ineligible.
	NextEligibleAt *time.Time `json:"nextEligibleAt,omitempty"`
}

// DonationUsecase defines the interface for donation offer use cases
type DonationUsecase interface {
	// SubmitResponse atomically accepts a donation offer against a pending
	// request and publishes a request.fulfilled event when the offer
	// completes the request
	SubmitResponse(ctx context.Context, donor *entity.UserProfile, requestID string, input *SubmitResponseInput) (*SubmitResult, error)

	// EditResponse updates the donor's own offer while the parent request
	// is still pending
	EditResponse(ctx context.Context, donorID, requestID, responseID string, input *EditResponseInput) (*entity.DonorResponse, error)

	// CancelResponse withdraws the donor's own offer while the parent
	// request is still pending
	CancelResponse(ctx context.Context, donorID, requestID, responseID string) error

	// MarkResponseDonated records that the donation actually happened;
	// only the hospital owning the request may confirm
	MarkResponseDonated(ctx context.Context, hospitalID, requestID, responseID string) error

	// ListRequestResponses retrieves the responders of a request for the
	// owning hospital's dashboard
	ListRequestResponses(ctx context.Context, hospitalID, requestID string) ([]*entity.DonorResponse, error)

	// GetDonationHistory retrieves the donor's offers across all requests,
	// joined with the parent request fields
	GetDonationHistory(ctx context.Context, donorID string) ([]*entity.DonationRecord, error)

	// CheckEligibility reports whether the donor may donate again under the
	// configured eligibility basis
	CheckEligibility(ctx context.Context, donorID string) (*EligibilityResult, error)
}
