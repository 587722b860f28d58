package handler

import (
	"log/slog"
	"net/http"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for registration and profile endpoints
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC, logger: logger}
}

// Register handles POST /auth/register
func (h *ProfileHandler) Register(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.Register(c.Request().Context(), identity, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, profile, "Registered")
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), identity.UID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Update handles PUT /profile
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), identity.UID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}
