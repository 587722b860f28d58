package impl

import (
	"context"
	"log/slog"

	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/usecase"
)

type adminService struct {
	profileRepo repository.ProfileRepository
	requestRepo repository.RequestRepository
	statsCache  service.StatsCache
	logger      *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	profileRepo repository.ProfileRepository,
	requestRepo repository.RequestRepository,
	statsCache service.StatsCache,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		profileRepo: profileRepo,
		requestRepo: requestRepo,
		statsCache:  statsCache,
		logger:      logger,
	}
}

// GetStatistics returns the platform-wide aggregate. The cache is advisory:
// any cache failure degrades to a recompute from the store.
func (s *adminService) GetStatistics(ctx context.Context) (*fulfillment.AdminStatistics, error) {
	cached, ok, err := s.statsCache.GetAdminStatistics(ctx)
	if err != nil {
		s.logger.Warn("Statistics cache read failed, recomputing", slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	users, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list profiles")
	}

	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list requests")
	}

	stats := fulfillment.ComputeAdminStatistics(users, requests)

	if err := s.statsCache.SetAdminStatistics(ctx, &stats); err != nil {
		s.logger.Warn("Statistics cache write failed", slog.Any("error", err))
	}

	return &stats, nil
}
