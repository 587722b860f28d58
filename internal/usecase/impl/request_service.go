// Package impl contains the application service implementations of the
// usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/usecase"

	"github.com/pkg/errors"
)

type requestService struct {
	requestRepo    repository.RequestRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// NewRequestService creates a new request service instance
func NewRequestService(
	requestRepo repository.RequestRepository,
	qrcodeService service.QRCodeService,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		requestRepo:    requestRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
		config:         cfg,
		logger:         logger,
	}
}

// CreateRequest creates a pending request owned by the hospital
func (s *requestService) CreateRequest(ctx context.Context, hospital *entity.UserProfile, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	if !input.BloodType.IsValid() {
		return nil, domainerrors.ErrInvalidBloodType
	}
	if !input.Urgency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown urgency: " + input.Urgency.String())
	}
	if input.Units <= 0 {
		return nil, domainerrors.ErrInvalidUnits
	}

	request := &entity.BloodRequest{
		BloodType:    input.BloodType,
		Units:        input.Units,
		Urgency:      input.Urgency,
		HospitalID:   hospital.UID,
		HospitalName: hospital.HospitalName,
		Location:     input.Location,
		Status:       entity.StatusPending,
	}
	if request.Location == "" {
		request.Location = hospital.Location
	}

	id, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to create request")
	}
	request.ID = id

	s.publishEvent(ctx, service.EventRequestCreated, request)

	return request, nil
}

// GetRequest retrieves a single request by ID
func (s *requestService) GetRequest(ctx context.Context, requestID string) (*entity.BloodRequest, error) {
	return s.findRequest(ctx, requestID)
}

// ListRequests retrieves all requests passing the filter
func (s *requestService) ListRequests(ctx context.Context, filter fulfillment.RequestFilter) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list requests")
	}

	return fulfillment.FilterRequests(requests, filter), nil
}

// ListHospitalRequests retrieves the requests owned by the hospital
func (s *requestService) ListHospitalRequests(ctx context.Context, hospitalID string) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list hospital requests")
	}

	return requests, nil
}

// UpdateRequest edits a request owned by the hospital
func (s *requestService) UpdateRequest(ctx context.Context, hospitalID, requestID string, input *usecase.UpdateRequestInput) (*entity.BloodRequest, error) {
	if !input.BloodType.IsValid() {
		return nil, domainerrors.ErrInvalidBloodType
	}
	if !input.Urgency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown urgency: " + input.Urgency.String())
	}
	if input.Units <= 0 {
		return nil, domainerrors.ErrInvalidUnits
	}

	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.HospitalID != hospitalID {
		return nil, domainerrors.ErrNotOwner
	}

	request.BloodType = input.BloodType
	request.Units = input.Units
	request.Urgency = input.Urgency
	request.Location = input.Location

	if err := s.requestRepo.Update(ctx, request); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to update request")
	}

	return request, nil
}

// DeleteRequest removes a request and its responses
func (s *requestService) DeleteRequest(ctx context.Context, hospitalID, requestID string) error {
	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.HospitalID != hospitalID {
		return domainerrors.ErrNotOwner
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return domainerrors.NewBackendError(err, "failed to delete request")
	}

	return nil
}

// SetRequestStatus manually overrides the request status
func (s *requestService) SetRequestStatus(ctx context.Context, hospitalID, requestID string, status entity.RequestStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status: " + status.String())
	}

	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.HospitalID != hospitalID {
		return domainerrors.ErrNotOwner
	}

	if request.Status == status {
		return nil
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return domainerrors.NewBackendError(err, "failed to update request status")
	}

	if status == entity.StatusFulfilled {
		request.Status = status
		s.publishEvent(ctx, service.EventRequestFulfilled, request)
	}

	return nil
}

// ComputeSummary aggregates the hospital's own requests by status
func (s *requestService) ComputeSummary(ctx context.Context, hospitalID string) (fulfillment.Summary, error) {
	requests, err := s.requestRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return fulfillment.Summary{}, domainerrors.NewBackendError(err, "failed to list hospital requests")
	}

	return fulfillment.Summarize(requests), nil
}

// GenerateRequestQR renders a shareable QR code PNG
func (s *requestService) GenerateRequestQR(ctx context.Context, requestID string) ([]byte, error) {
	if _, err := s.findRequest(ctx, requestID); err != nil {
		return nil, err
	}

	qrBytes, err := s.qrcodeService.GenerateRequestQR(requestID)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to generate QR code")
	}

	return qrBytes, nil
}

func (s *requestService) findRequest(ctx context.Context, requestID string) (*entity.BloodRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, domainerrors.NewBackendError(err, "failed to find request")
	}

	return request, nil
}

// publishEvent publishes a lifecycle event. Publishing is best effort and
// never fails the request operation itself.
func (s *requestService) publishEvent(ctx context.Context, eventType string, request *entity.BloodRequest) {
	event := &service.RequestEvent{
		Type:         eventType,
		RequestID:    request.ID,
		BloodType:    request.BloodType.String(),
		Units:        request.Units,
		Urgency:      request.Urgency.String(),
		HospitalName: request.HospitalName,
		Location:     request.Location,
	}

	if err := s.eventPublisher.PublishRequestEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish request event",
			slog.String("event_type", eventType),
			slog.String("request_id", request.ID),
			slog.Any("error", err),
		)
	}
}
