package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lifelink/config"
	"lifelink/internal/delivery"
	"lifelink/internal/delivery/http"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/delivery/http/router/handler"
	"lifelink/internal/domain/service"
	"lifelink/internal/infra/auth"
	"lifelink/internal/infra/cache"
	logs "lifelink/internal/infra/log"
	"lifelink/internal/infra/persistence/firestore"
	"lifelink/internal/infra/pubsub"
	"lifelink/internal/infra/qrcode"
	"lifelink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewClient,
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewRequestRepository,
			firestore.NewResponseRepository,
			firestore.NewCommentRepository,
			firestore.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityService,
			newQRCodeService,
			cache.NewRedisStatsCache,
			pubsub.NewEventPublisher,
		),
	)
}

// newIdentityService creates the Firebase ID token verifier
func newIdentityService(ctx context.Context, cfg *config.Config) (service.IdentityService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required for token verification")
	}

	svc, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase verifier: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRequestService,
			impl.NewDonationService,
			impl.NewCommentService,
			impl.NewAdminService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRequestHandler,
			handler.NewDonationHandler,
			handler.NewProfileHandler,
			handler.NewCommentHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
