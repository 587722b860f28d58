// Package firestore implements the persistence repositories on top of
// Google Cloud Firestore. Requests live in a top-level collection with
// their responses as a nested subcollection, mirroring how the documents
// are addressed by the web clients.
package firestore

import (
	"context"
	"log/slog"

	"lifelink/config"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names shared by all repositories.
const (
	collUsers     = "users"
	collRequests  = "requests"
	collResponses = "responses"
	collComments  = "donorComments"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Firestore client from the shared Firebase app
// credential and closes it on shutdown.
func NewClient(params ClientParams) (*fs.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// isNotFound reports whether the error is a Firestore missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
