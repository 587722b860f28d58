// Package cache implements the admin statistics cache on Redis. The cache
// is advisory: any failure degrades to a recompute by the caller.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"lifelink/config"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const statsKey = "lifelink:admin:statistics"

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client and closes it on shutdown.
func NewClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis configuration is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

type redisStatsCache struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisStatsCache creates a Redis-backed StatsCache.
func NewRedisStatsCache(client *redis.Client, cfg *config.Config) service.StatsCache {
	return &redisStatsCache{client: client, cfg: cfg.Redis}
}

func (c *redisStatsCache) GetAdminStatistics(ctx context.Context) (*fulfillment.AdminStatistics, bool, error) {
	val, err := c.client.Get(ctx, statsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to get cached statistics")
	}

	var stats fulfillment.AdminStatistics
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		// Treat a stale or corrupt payload as a miss.
		return nil, false, nil
	}

	return &stats, true, nil
}

func (c *redisStatsCache) SetAdminStatistics(ctx context.Context, stats *fulfillment.AdminStatistics) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return errors.Wrap(err, "failed to marshal statistics")
	}

	if err := c.client.Set(ctx, statsKey, payload, c.cfg.StatsTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to set cached statistics")
	}

	return nil
}
