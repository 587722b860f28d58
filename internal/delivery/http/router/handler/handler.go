// Package handler contains the HTTP endpoint handlers.
package handler

import (
	"net/http"

	httpmiddleware "lifelink/internal/delivery/http/middleware"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentProfile returns the caller's profile placed on the context by the
// auth middleware chain.
func currentProfile(c echo.Context) (*entity.UserProfile, error) {
	profile, ok := c.Get(httpmiddleware.KeyProfile).(*entity.UserProfile)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return profile, nil
}

// currentIdentity returns the verified identity placed on the context by
// Authenticate.
func currentIdentity(c echo.Context) (*service.Identity, error) {
	identity, ok := c.Get(httpmiddleware.KeyIdentity).(*service.Identity)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return identity, nil
}
