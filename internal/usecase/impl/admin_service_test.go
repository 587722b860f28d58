package impl

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/fulfillment"
	mockRepo "lifelink/internal/mocks/repository"
	mockSvc "lifelink/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_GetStatistics_CacheHit(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	statsCache := mockSvc.NewMockStatsCache(t)
	svc := NewAdminService(profileRepo, requestRepo, statsCache, newTestLogger())

	ctx := context.Background()

	cached := &fulfillment.AdminStatistics{DonorCount: 7}
	statsCache.EXPECT().GetAdminStatistics(ctx).Return(cached, true, nil)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, stats)
}

func TestAdminService_GetStatistics_CacheMissRecomputes(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	statsCache := mockSvc.NewMockStatsCache(t)
	svc := NewAdminService(profileRepo, requestRepo, statsCache, newTestLogger())

	ctx := context.Background()

	statsCache.EXPECT().GetAdminStatistics(ctx).Return(nil, false, nil)
	profileRepo.EXPECT().ListAll(ctx).Return([]*entity.UserProfile{
		{UID: "d1", Role: entity.RoleDonor},
		{UID: "d2", Role: entity.RoleDonor},
		{UID: "h1", Role: entity.RoleHospital},
	}, nil)
	requestRepo.EXPECT().ListAll(ctx).Return([]*entity.BloodRequest{
		{BloodType: entity.BloodTypeAPos, Units: 2, Status: entity.StatusFulfilled},
		{BloodType: entity.BloodTypeAPos, Units: 3, Status: entity.StatusPending},
	}, nil)
	statsCache.EXPECT().
		SetAdminStatistics(ctx, mock.AnythingOfType("*fulfillment.AdminStatistics")).
		Return(nil)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DonorCount)
	assert.Equal(t, 1, stats.HospitalCount)
	assert.Equal(t, 5, stats.UnitsRequestedByBloodType[entity.BloodTypeAPos])
	assert.Equal(t, 2, stats.UnitsFulfilledByBloodType[entity.BloodTypeAPos])
	assert.Equal(t, 50, stats.FulfillmentRatePercent)
}

func TestAdminService_GetStatistics_CacheFailureDegrades(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	statsCache := mockSvc.NewMockStatsCache(t)
	svc := NewAdminService(profileRepo, requestRepo, statsCache, newTestLogger())

	ctx := context.Background()

	statsCache.EXPECT().GetAdminStatistics(ctx).Return(nil, false, assert.AnError)
	profileRepo.EXPECT().ListAll(ctx).Return(nil, nil)
	requestRepo.EXPECT().ListAll(ctx).Return(nil, nil)
	statsCache.EXPECT().
		SetAdminStatistics(ctx, mock.AnythingOfType("*fulfillment.AdminStatistics")).
		Return(assert.AnError)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DonorCount)
	assert.Equal(t, 0, stats.FulfillmentRatePercent)
}
