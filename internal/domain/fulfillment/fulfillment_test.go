package fulfillment

import (
	"testing"
	"time"

	"lifelink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(bloodType entity.BloodType, units int, urgency entity.Urgency, status entity.RequestStatus) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:        "req-" + string(bloodType),
		BloodType: bloodType,
		Units:     units,
		Urgency:   urgency,
		Status:    status,
	}
}

func TestAllowedUnits(t *testing.T) {
	assert.Equal(t, 2, AllowedUnits(entity.UrgencyUrgent))
	assert.Equal(t, 1, AllowedUnits(entity.UrgencyNormal))
	assert.Equal(t, 1, AllowedUnits(entity.UrgencyCritical))
}

func TestShouldFulfill(t *testing.T) {
	assert.False(t, ShouldFulfill(2, 1))
	assert.True(t, ShouldFulfill(2, 2))
	assert.True(t, ShouldFulfill(2, 3))
}

func TestFilterRequests_EmptyFilterReturnsInputUnchanged(t *testing.T) {
	requests := []*entity.BloodRequest{
		request(entity.BloodTypeOPos, 2, entity.UrgencyNormal, entity.StatusPending),
		request(entity.BloodTypeAPos, 1, entity.UrgencyUrgent, entity.StatusFulfilled),
	}

	filtered := FilterRequests(requests, RequestFilter{})
	require.Len(t, filtered, len(requests))
	for i := range requests {
		assert.Same(t, requests[i], filtered[i])
	}
}

func TestFilterRequests_ExactMatchOnly(t *testing.T) {
	requests := []*entity.BloodRequest{
		request(entity.BloodTypeAPos, 1, entity.UrgencyNormal, entity.StatusPending),
		request(entity.BloodTypeABPos, 1, entity.UrgencyNormal, entity.StatusPending),
		request(entity.BloodTypeAPos, 1, entity.UrgencyUrgent, entity.StatusFulfilled),
	}

	filtered := FilterRequests(requests, RequestFilter{BloodType: entity.BloodTypeAPos})
	require.Len(t, filtered, 2)
	for _, req := range filtered {
		// No partial matching: "AB+" must not pass an "A+" filter.
		assert.Equal(t, entity.BloodTypeAPos, req.BloodType)
	}
}

func TestFilterRequests_ConjunctivePreservesOrder(t *testing.T) {
	first := request(entity.BloodTypeOPos, 2, entity.UrgencyUrgent, entity.StatusPending)
	second := request(entity.BloodTypeOPos, 1, entity.UrgencyUrgent, entity.StatusPending)
	requests := []*entity.BloodRequest{
		first,
		request(entity.BloodTypeOPos, 1, entity.UrgencyNormal, entity.StatusPending),
		second,
		request(entity.BloodTypeOPos, 1, entity.UrgencyUrgent, entity.StatusFulfilled),
	}

	filtered := FilterRequests(requests, RequestFilter{
		Urgency: entity.UrgencyUrgent,
		Status:  entity.StatusPending,
	})
	require.Len(t, filtered, 2)
	assert.Same(t, first, filtered[0])
	assert.Same(t, second, filtered[1])
}

func TestSummarize_CountsAddUp(t *testing.T) {
	tests := []struct {
		name     string
		requests []*entity.BloodRequest
		want     Summary
	}{
		{
			name:     "empty",
			requests: nil,
			want:     Summary{},
		},
		{
			name: "mixed statuses",
			requests: []*entity.BloodRequest{
				request(entity.BloodTypeAPos, 3, entity.UrgencyNormal, entity.StatusFulfilled),
				request(entity.BloodTypeAPos, 2, entity.UrgencyNormal, entity.StatusPending),
				request(entity.BloodTypeBNeg, 1, entity.UrgencyUrgent, entity.StatusPending),
			},
			want: Summary{Total: 3, Pending: 2, Fulfilled: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.requests)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Pending+got.Fulfilled)
		})
	}
}

func TestComputeAdminStatistics(t *testing.T) {
	users := []*entity.UserProfile{
		{UID: "d1", Role: entity.RoleDonor},
		{UID: "d2", Role: entity.RoleDonor},
		{UID: "h1", Role: entity.RoleHospital},
	}
	requests := []*entity.BloodRequest{
		request(entity.BloodTypeAPos, 3, entity.UrgencyNormal, entity.StatusFulfilled),
		request(entity.BloodTypeAPos, 2, entity.UrgencyNormal, entity.StatusPending),
	}

	stats := ComputeAdminStatistics(users, requests)

	assert.Equal(t, 2, stats.DonorCount)
	assert.Equal(t, 1, stats.HospitalCount)
	assert.Equal(t, map[entity.BloodType]int{entity.BloodTypeAPos: 5}, stats.UnitsRequestedByBloodType)
	assert.Equal(t, map[entity.BloodType]int{entity.BloodTypeAPos: 3}, stats.UnitsFulfilledByBloodType)
	assert.Equal(t, 50, stats.FulfillmentRatePercent)
}

func TestComputeAdminStatistics_NoRequests(t *testing.T) {
	stats := ComputeAdminStatistics(nil, nil)
	assert.Equal(t, 0, stats.FulfillmentRatePercent)
	assert.Empty(t, stats.UnitsRequestedByBloodType)
}

func TestIsEligible_Boundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsEligible(nil, now), "no prior donation is always eligible")

	at89 := now.Add(-89 * 24 * time.Hour)
	assert.False(t, IsEligible(&at89, now))

	at90 := now.Add(-90 * 24 * time.Hour)
	assert.True(t, IsEligible(&at90, now), "boundary at exactly 90 days")
}

func TestLastDonation(t *testing.T) {
	earlier := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	responses := []*entity.DonorResponse{
		{ID: "r1", OfferedAt: later},
		{ID: "r2", OfferedAt: earlier, Donated: true},
		{ID: "r3"}, // zero timestamp, ignored
	}

	offered := LastDonation(responses, BasisOffered)
	require.NotNil(t, offered)
	assert.Equal(t, later, *offered)

	confirmed := LastDonation(responses, BasisConfirmed)
	require.NotNil(t, confirmed)
	assert.Equal(t, earlier, *confirmed)

	assert.Nil(t, LastDonation(nil, BasisOffered))
}
