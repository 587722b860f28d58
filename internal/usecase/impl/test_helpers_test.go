package impl

import (
	"io"
	"log/slog"

	"lifelink/config"
	"lifelink/internal/domain/fulfillment"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fulfillment = &config.FulfillmentConfig{
		AutoFulfill:      true,
		UnitsPolicy:      fulfillment.UnitsPolicyUrgency,
		EligibilityBasis: fulfillment.BasisOffered,
	}

	return cfg
}
