// Package auth implements identity token verification against Firebase
// Authentication. Accounts and credentials live entirely in Firebase; this
// service only establishes who the bearer of a token is.
package auth

import (
	"context"

	"lifelink/config"
	"lifelink/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates an IdentityService backed by Firebase
// Authentication, sharing the app credential with the other Firebase
// collaborators.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityService, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		// Expired, malformed and revoked tokens all collapse to one
		// error; the caller only distinguishes valid from invalid.
		return nil, service.ErrInvalidToken
	}

	identity := &service.Identity{
		UID:    token.UID,
		Claims: token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
