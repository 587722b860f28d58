// Package service defines interfaces for external collaborators the
// application depends on but does not implement.
package service

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired identity token")

// Identity is the verified identity extracted from a bearer token.
type Identity struct {
	UID    string         // Opaque user ID assigned by the identity provider.
	Email  string         // Email claim, when present.
	Claims map[string]any // Remaining provider claims.
}

// IdentityService verifies bearer ID tokens issued by the external
// identity collaborator. Role lookup is not part of the token; it is read
// from the user profile collection by the caller.
type IdentityService interface {
	// VerifyToken validates the ID token and returns the identity it
	// asserts, or ErrInvalidToken.
	VerifyToken(ctx context.Context, idToken string) (*Identity, error)
}
