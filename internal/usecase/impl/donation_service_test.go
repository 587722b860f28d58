package impl

import (
	"context"
	"testing"
	"time"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	mockRepo "lifelink/internal/mocks/repository"
	mockSvc "lifelink/internal/mocks/service"
	"lifelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDonor() *entity.UserProfile {
	return &entity.UserProfile{
		UID:       "donor-1",
		Name:      "Alex",
		Role:      entity.RoleDonor,
		BloodType: entity.BloodTypeAPos,
		Phone:     "0912345678",
	}
}

func pendingRequest(urgency entity.Urgency) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:           "req-1",
		BloodType:    entity.BloodTypeAPos,
		Units:        2,
		Urgency:      urgency,
		HospitalID:   "hosp-1",
		HospitalName: "City Hospital",
		Status:       entity.StatusPending,
	}
}

func TestDonationService_SubmitResponse_UrgencyPolicy(t *testing.T) {
	tests := []struct {
		name      string
		urgency   entity.Urgency
		wantUnits int
	}{
		{"urgent request commits two units", entity.UrgencyUrgent, 2},
		{"normal request commits one unit", entity.UrgencyNormal, 1},
		{"critical request commits one unit", entity.UrgencyCritical, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := mockRepo.NewMockRequestRepository(t)
			responseRepo := mockRepo.NewMockResponseRepository(t)
			publisher := mockSvc.NewMockEventPublisher(t)
			svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

			ctx := context.Background()

			requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(tt.urgency), nil)
			requestRepo.EXPECT().
				SubmitResponse(ctx, "req-1", mock.AnythingOfType("*entity.DonorResponse"), true).
				Run(func(args mock.Arguments) {
					response := args.Get(2).(*entity.DonorResponse)
					assert.Equal(t, tt.wantUnits, response.UnitsDonated)
					assert.Equal(t, "donor-1", response.DonorID)
				}).
				Return(&repository.SubmitOutcome{ResponseID: "resp-1"}, nil)

			result, err := svc.SubmitResponse(ctx, newDonor(), "req-1", &usecase.SubmitResponseInput{
				Availability: "weekdays after 6pm",
			})
			require.NoError(t, err)
			assert.Equal(t, "resp-1", result.ResponseID)
			assert.False(t, result.Fulfilled)
		})
	}
}

func TestDonationService_SubmitResponse_DonorPolicy(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Fulfillment.UnitsPolicy = fulfillment.UnitsPolicyDonor
	svc := NewDonationService(requestRepo, responseRepo, publisher, cfg, newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)
	requestRepo.EXPECT().
		SubmitResponse(ctx, "req-1", mock.AnythingOfType("*entity.DonorResponse"), true).
		Run(func(args mock.Arguments) {
			response := args.Get(2).(*entity.DonorResponse)
			assert.Equal(t, 3, response.UnitsDonated)
		}).
		Return(&repository.SubmitOutcome{ResponseID: "resp-1"}, nil)

	_, err := svc.SubmitResponse(ctx, newDonor(), "req-1", &usecase.SubmitResponseInput{
		Units:        3,
		Availability: "anytime",
	})
	require.NoError(t, err)
}

func TestDonationService_SubmitResponse_DonorPolicy_InvalidUnits(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Fulfillment.UnitsPolicy = fulfillment.UnitsPolicyDonor
	svc := NewDonationService(requestRepo, responseRepo, publisher, cfg, newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)

	_, err := svc.SubmitResponse(ctx, newDonor(), "req-1", &usecase.SubmitResponseInput{
		Units:        0,
		Availability: "anytime",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUnits)
}

func TestDonationService_SubmitResponse_MissingAvailability(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	_, err := svc.SubmitResponse(context.Background(), newDonor(), "req-1", &usecase.SubmitResponseInput{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingAvailability)
}

func TestDonationService_SubmitResponse_ConflictErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"duplicate offer", repository.ErrAlreadyResponded, domainerrors.ErrAlreadyResponded},
		{"request no longer pending", repository.ErrRequestNotPending, domainerrors.ErrRequestNotPending},
		{"request vanished", repository.ErrRequestNotFound, domainerrors.ErrRequestNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := mockRepo.NewMockRequestRepository(t)
			responseRepo := mockRepo.NewMockResponseRepository(t)
			publisher := mockSvc.NewMockEventPublisher(t)
			svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

			ctx := context.Background()

			requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)
			requestRepo.EXPECT().
				SubmitResponse(ctx, "req-1", mock.AnythingOfType("*entity.DonorResponse"), true).
				Return(nil, tt.repoErr)

			_, err := svc.SubmitResponse(ctx, newDonor(), "req-1", &usecase.SubmitResponseInput{
				Availability: "anytime",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDonationService_SubmitResponse_FulfillmentPublishesEvent(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)
	requestRepo.EXPECT().
		SubmitResponse(ctx, "req-1", mock.AnythingOfType("*entity.DonorResponse"), true).
		Return(&repository.SubmitOutcome{ResponseID: "resp-1", Fulfilled: true}, nil)
	publisher.EXPECT().
		PublishRequestEvent(ctx, mock.AnythingOfType("*service.RequestEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.RequestEvent)
			assert.Equal(t, service.EventRequestFulfilled, event.Type)
			assert.Equal(t, "req-1", event.RequestID)
		}).
		Return(nil)

	result, err := svc.SubmitResponse(ctx, newDonor(), "req-1", &usecase.SubmitResponseInput{
		Availability: "anytime",
	})
	require.NoError(t, err)
	assert.True(t, result.Fulfilled)
}

func TestDonationService_EditResponse_LockedOnFulfilledRequest(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	fulfilled := pendingRequest(entity.UrgencyNormal)
	fulfilled.Status = entity.StatusFulfilled

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(fulfilled, nil)
	responseRepo.EXPECT().FindByID(ctx, "req-1", "resp-1").Return(&entity.DonorResponse{
		ID:        "resp-1",
		RequestID: "req-1",
		DonorID:   "donor-1",
	}, nil)

	_, err := svc.EditResponse(ctx, "donor-1", "req-1", "resp-1", &usecase.EditResponseInput{
		Availability: "weekends",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResponseLocked)
}

func TestDonationService_EditResponse_NotOwner(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)
	responseRepo.EXPECT().FindByID(ctx, "req-1", "resp-1").Return(&entity.DonorResponse{
		ID:        "resp-1",
		RequestID: "req-1",
		DonorID:   "someone-else",
	}, nil)

	_, err := svc.EditResponse(ctx, "donor-1", "req-1", "resp-1", &usecase.EditResponseInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestDonationService_CancelResponse(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)
	responseRepo.EXPECT().FindByID(ctx, "req-1", "resp-1").Return(&entity.DonorResponse{
		ID:        "resp-1",
		RequestID: "req-1",
		DonorID:   "donor-1",
	}, nil)
	responseRepo.EXPECT().Delete(ctx, "req-1", "resp-1").Return(nil)

	err := svc.CancelResponse(ctx, "donor-1", "req-1", "resp-1")
	require.NoError(t, err)
}

func TestDonationService_MarkResponseDonated_OwnerOnly(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyNormal), nil)

	err := svc.MarkResponseDonated(ctx, "another-hospital", "req-1", "resp-1")
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestDonationService_GetDonationHistory_JoinsRequestFields(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

	ctx := context.Background()

	responseRepo.EXPECT().ListByDonor(ctx, "donor-1").Return([]*entity.DonorResponse{
		{ID: "resp-1", RequestID: "req-1", DonorID: "donor-1"},
		{ID: "resp-2", RequestID: "req-gone", DonorID: "donor-1"},
	}, nil)
	requestRepo.EXPECT().FindByID(ctx, "req-1").Return(pendingRequest(entity.UrgencyUrgent), nil)
	requestRepo.EXPECT().FindByID(ctx, "req-gone").Return(nil, repository.ErrRequestNotFound)

	records, err := svc.GetDonationHistory(ctx, "donor-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "City Hospital", records[0].HospitalName)
	assert.Equal(t, entity.UrgencyUrgent, records[0].Urgency)
	// A deleted parent still leaves the bare response in the history.
	assert.Empty(t, records[1].HospitalName)
}

func TestDonationService_CheckEligibility(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		responses    []*entity.DonorResponse
		wantEligible bool
	}{
		{"no prior donations", nil, true},
		{
			"donation within the window",
			[]*entity.DonorResponse{{OfferedAt: now.Add(-30 * 24 * time.Hour)}},
			false,
		},
		{
			"donation beyond the window",
			[]*entity.DonorResponse{{OfferedAt: now.Add(-120 * 24 * time.Hour)}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := mockRepo.NewMockRequestRepository(t)
			responseRepo := mockRepo.NewMockResponseRepository(t)
			publisher := mockSvc.NewMockEventPublisher(t)
			svc := NewDonationService(requestRepo, responseRepo, publisher, newTestConfig(), newTestLogger())

			ctx := context.Background()

			responseRepo.EXPECT().ListByDonor(ctx, "donor-1").Return(tt.responses, nil)

			result, err := svc.CheckEligibility(ctx, "donor-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, result.Eligible)
			if !tt.wantEligible {
				require.NotNil(t, result.NextEligibleAt)
				assert.True(t, result.NextEligibleAt.After(now))
			}
		})
	}
}

func TestDonationService_CheckEligibility_ConfirmedBasis(t *testing.T) {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	responseRepo := mockRepo.NewMockResponseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Fulfillment.EligibilityBasis = fulfillment.BasisConfirmed
	svc := NewDonationService(requestRepo, responseRepo, publisher, cfg, newTestLogger())

	ctx := context.Background()

	// A recent unconfirmed offer does not block eligibility under the
	// confirmed basis.
	responseRepo.EXPECT().ListByDonor(ctx, "donor-1").Return([]*entity.DonorResponse{
		{OfferedAt: time.Now().Add(-24 * time.Hour), Donated: false},
	}, nil)

	result, err := svc.CheckEligibility(ctx, "donor-1")
	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Nil(t, result.LastDonation)
}
