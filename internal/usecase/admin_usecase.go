package usecase

import (
	"context"

	"lifelink/internal/domain/fulfillment"
)

// AdminUsecase defines the interface for admin statistics use cases
type AdminUsecase interface {
	// GetStatistics returns the platform-wide aggregate, served from the
	// cache when fresh and recomputed otherwise
	GetStatistics(ctx context.Context) (*fulfillment.AdminStatistics, error)
}
