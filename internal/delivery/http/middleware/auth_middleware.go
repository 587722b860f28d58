// Package middleware holds the HTTP-specific middleware of the delivery
// layer.
package middleware

import (
	"strings"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUserID   = "userID"
	KeyIdentity = "identity"
	KeyProfile  = "profile"
)

// AuthMiddleware verifies Firebase bearer ID tokens and resolves the
// caller's profile. Roles live in the profile document, not in the token.
type AuthMiddleware struct {
	identitySvc service.IdentityService
	profileRepo repository.ProfileRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identitySvc service.IdentityService, profileRepo repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{identitySvc: identitySvc, profileRepo: profileRepo}
}

// Authenticate validates the bearer token and stores the verified identity
// on the echo context. The profile is not required yet; registration runs
// authenticated but before a profile exists.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.identitySvc.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyUserID, identity.UID)
		c.Set(KeyIdentity, identity)

		return next(c)
	}
}

// RequireProfile resolves the caller's profile and stores it on the context.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get(KeyUserID).(string)
		if !ok || uid == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		profile, err := m.profileRepo.FindByUID(c.Request().Context(), uid)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return response.Forbidden(c, "PROFILE_NOT_FOUND", "Complete registration before using this endpoint")
			}

			return err
		}

		c.Set(KeyProfile, profile)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's profile role.
// It must be used AFTER RequireProfile.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := c.Get(KeyProfile).(*entity.UserProfile)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: profile information missing")
			}

			if profile.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
