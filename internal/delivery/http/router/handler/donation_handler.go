package handler

import (
	"log/slog"
	"net/http"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DonationHandler holds dependencies for donation offer endpoints
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(donationUC usecase.DonationUsecase, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{donationUC: donationUC, logger: logger}
}

// Submit handles POST /requests/:id/responses
func (h *DonationHandler) Submit(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.SubmitResponseInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	result, err := h.donationUC.SubmitResponse(c.Request().Context(), profile, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result, "Offer submitted")
}

// Edit handles PATCH /requests/:id/responses/:responseID
func (h *DonationHandler) Edit(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.EditResponseInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	updated, err := h.donationUC.EditResponse(c.Request().Context(), profile.UID, c.Param("id"), c.Param("responseID"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Offer updated")
}

// Cancel handles DELETE /requests/:id/responses/:responseID
func (h *DonationHandler) Cancel(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	if err := h.donationUC.CancelResponse(c.Request().Context(), profile.UID, c.Param("id"), c.Param("responseID")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Offer withdrawn")
}

// MarkDonated handles PATCH /requests/:id/responses/:responseID/donated
func (h *DonationHandler) MarkDonated(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	if err := h.donationUC.MarkResponseDonated(c.Request().Context(), profile.UID, c.Param("id"), c.Param("responseID")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Donation confirmed")
}

// ListResponses handles GET /requests/:id/responses for the owning hospital
func (h *DonationHandler) ListResponses(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	responses, err := h.donationUC.ListRequestResponses(c.Request().Context(), profile.UID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, responses, "")
}

// History handles GET /donor/history
func (h *DonationHandler) History(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	records, err := h.donationUC.GetDonationHistory(c.Request().Context(), profile.UID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Eligibility handles GET /donor/eligibility
func (h *DonationHandler) Eligibility(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	result, err := h.donationUC.CheckEligibility(c.Request().Context(), profile.UID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}
