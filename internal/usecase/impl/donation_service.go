package impl

import (
	"context"
	"log/slog"
	"time"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/usecase"

	"github.com/pkg/errors"
)

type donationService struct {
	requestRepo    repository.RequestRepository
	responseRepo   repository.ResponseRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// NewDonationService creates a new donation service instance
func NewDonationService(
	requestRepo repository.RequestRepository,
	responseRepo repository.ResponseRepository,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DonationUsecase {
	return &donationService{
		requestRepo:    requestRepo,
		responseRepo:   responseRepo,
		eventPublisher: eventPublisher,
		config:         cfg,
		logger:         logger,
	}
}

// SubmitResponse atomically accepts a donation offer against a pending request
func (s *donationService) SubmitResponse(ctx context.Context, donor *entity.UserProfile, requestID string, input *usecase.SubmitResponseInput) (*usecase.SubmitResult, error) {
	if input.Availability == "" {
		return nil, domainerrors.ErrMissingAvailability
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to find request")
	}

	units, err := s.resolveUnits(request, input.Units)
	if err != nil {
		return nil, err
	}

	response := &entity.DonorResponse{
		RequestID:    requestID,
		DonorID:      donor.UID,
		UnitsDonated: units,
		Phone:        input.Phone,
		Availability: input.Availability,
	}
	if response.Phone == "" {
		response.Phone = donor.Phone
	}

	autoFulfill := s.config.Fulfillment != nil && s.config.Fulfillment.AutoFulfill

	outcome, err := s.requestRepo.SubmitResponse(ctx, requestID, response, autoFulfill)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return nil, domainerrors.ErrRequestNotFound
		case errors.Is(err, repository.ErrRequestNotPending):
			return nil, domainerrors.ErrRequestNotPending
		case errors.Is(err, repository.ErrAlreadyResponded):
			return nil, domainerrors.ErrAlreadyResponded
		default:
			return nil, domainerrors.NewBackendError(err, "failed to submit response")
		}
	}

	if outcome.Fulfilled {
		request.Status = entity.StatusFulfilled
		s.publishFulfilled(ctx, request)
	}

	return &usecase.SubmitResult{
		ResponseID: outcome.ResponseID,
		Fulfilled:  outcome.Fulfilled,
	}, nil
}

// EditResponse updates the donor's own offer while the request is pending
func (s *donationService) EditResponse(ctx context.Context, donorID, requestID, responseID string, input *usecase.EditResponseInput) (*entity.DonorResponse, error) {
	request, response, err := s.findOwnedResponse(ctx, donorID, requestID, responseID)
	if err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, domainerrors.ErrResponseLocked
	}

	units, err := s.resolveUnits(request, input.Units)
	if err != nil {
		return nil, err
	}

	response.UnitsDonated = units
	if input.Phone != "" {
		response.Phone = input.Phone
	}
	if input.Availability != "" {
		response.Availability = input.Availability
	}

	if err := s.responseRepo.Update(ctx, response); err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return nil, domainerrors.ErrResponseNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to update response")
	}

	return response, nil
}

// CancelResponse withdraws the donor's own offer while the request is pending
func (s *donationService) CancelResponse(ctx context.Context, donorID, requestID, responseID string) error {
	request, _, err := s.findOwnedResponse(ctx, donorID, requestID, responseID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return domainerrors.ErrResponseLocked
	}

	if err := s.responseRepo.Delete(ctx, requestID, responseID); err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return domainerrors.ErrResponseNotFound
		}

		return domainerrors.NewBackendError(err, "failed to delete response")
	}

	return nil
}

// MarkResponseDonated records that the donation actually happened
func (s *donationService) MarkResponseDonated(ctx context.Context, hospitalID, requestID, responseID string) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return domainerrors.NewBackendError(err, "failed to find request")
	}
	if request.HospitalID != hospitalID {
		return domainerrors.ErrNotOwner
	}

	if err := s.responseRepo.MarkDonated(ctx, requestID, responseID); err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return domainerrors.ErrResponseNotFound
		}

		return domainerrors.NewBackendError(err, "failed to mark response donated")
	}

	return nil
}

// ListRequestResponses retrieves the responders of a request for its owner
func (s *donationService) ListRequestResponses(ctx context.Context, hospitalID, requestID string) ([]*entity.DonorResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to find request")
	}
	if request.HospitalID != hospitalID {
		return nil, domainerrors.ErrNotOwner
	}

	responses, err := s.responseRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list responses")
	}

	return responses, nil
}

// GetDonationHistory retrieves the donor's offers joined with request fields
func (s *donationService) GetDonationHistory(ctx context.Context, donorID string) ([]*entity.DonationRecord, error) {
	responses, err := s.responseRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list donor responses")
	}

	records := make([]*entity.DonationRecord, 0, len(responses))
	for _, response := range responses {
		record := &entity.DonationRecord{Response: *response}

		request, err := s.requestRepo.FindByID(ctx, response.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				// The parent request was deleted before the cascade landed;
				// show the bare response rather than dropping the row.
				records = append(records, record)

				continue
			}

			return nil, domainerrors.NewBackendError(err, "failed to find request for history")
		}

		record.HospitalName = request.HospitalName
		record.BloodType = request.BloodType
		record.Urgency = request.Urgency
		record.Status = request.Status
		records = append(records, record)
	}

	return records, nil
}

// CheckEligibility reports whether the donor may donate again
func (s *donationService) CheckEligibility(ctx context.Context, donorID string) (*usecase.EligibilityResult, error) {
	responses, err := s.responseRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list donor responses")
	}

	basis := fulfillment.BasisOffered
	if s.config.Fulfillment != nil && s.config.Fulfillment.EligibilityBasis.IsValid() {
		basis = s.config.Fulfillment.EligibilityBasis
	}

	now := time.Now()
	last := fulfillment.LastDonation(responses, basis)
	result := &usecase.EligibilityResult{
		Eligible:     fulfillment.IsEligible(last, now),
		LastDonation: last,
	}
	if !result.Eligible {
		next := last.Add(fulfillment.EligibilityWindow)
		result.NextEligibleAt = &next
	}

	return result, nil
}

// resolveUnits applies the configured units policy to an offer.
func (s *donationService) resolveUnits(request *entity.BloodRequest, requested int) (int, error) {
	policy := fulfillment.UnitsPolicyUrgency
	if s.config.Fulfillment != nil && s.config.Fulfillment.UnitsPolicy.IsValid() {
		policy = s.config.Fulfillment.UnitsPolicy
	}

	if policy == fulfillment.UnitsPolicyDonor {
		if requested <= 0 {
			return 0, domainerrors.ErrInvalidUnits
		}

		return requested, nil
	}

	return fulfillment.AllowedUnits(request.Urgency), nil
}

func (s *donationService) findOwnedResponse(ctx context.Context, donorID, requestID, responseID string) (*entity.BloodRequest, *entity.DonorResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, nil, domainerrors.ErrRequestNotFound
		}

		return nil, nil, domainerrors.NewBackendError(err, "failed to find request")
	}

	response, err := s.responseRepo.FindByID(ctx, requestID, responseID)
	if err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return nil, nil, domainerrors.ErrResponseNotFound
		}

		return nil, nil, domainerrors.NewBackendError(err, "failed to find response")
	}
	if response.DonorID != donorID {
		return nil, nil, domainerrors.ErrNotOwner
	}

	return request, response, nil
}

func (s *donationService) publishFulfilled(ctx context.Context, request *entity.BloodRequest) {
	event := &service.RequestEvent{
		Type:         service.EventRequestFulfilled,
		RequestID:    request.ID,
		BloodType:    request.BloodType.String(),
		Units:        request.Units,
		Urgency:      request.Urgency.String(),
		HospitalName: request.HospitalName,
		Location:     request.Location,
	}

	if err := s.eventPublisher.PublishRequestEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish fulfilled event",
			slog.String("request_id", request.ID),
			slog.Any("error", err),
		)
	}
}
