package service

import (
	"context"

	"lifelink/internal/domain/fulfillment"
)

// StatsCache caches the admin statistics snapshot. A miss or a cache
// failure simply means the caller recomputes; the cache is never
// authoritative.
type StatsCache interface {
	// GetAdminStatistics returns the cached snapshot, or ok=false on a miss.
	GetAdminStatistics(ctx context.Context) (stats *fulfillment.AdminStatistics, ok bool, err error)

	// SetAdminStatistics stores the snapshot with the configured TTL.
	SetAdminStatistics(ctx context.Context, stats *fulfillment.AdminStatistics) error
}
