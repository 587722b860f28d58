package handler

import (
	"log/slog"
	"net/http"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RequestHandler holds dependencies for blood request endpoints
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(requestUC usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requestUC: requestUC, logger: logger}
}

// SetStatusRequest represents the request body for the manual status override
type SetStatusRequest struct {
	Status entity.RequestStatus `json:"status" validate:"required"`
}

// Create handles POST /requests
func (h *RequestHandler) Create(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.CreateRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), profile, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, request, "Request created")
}

// List handles GET /requests with optional urgency/status/bloodType filters
func (h *RequestHandler) List(c echo.Context) error {
	filter := fulfillment.RequestFilter{
		Urgency:   entity.Urgency(c.QueryParam("urgency")),
		Status:    entity.RequestStatus(c.QueryParam("status")),
		BloodType: entity.BloodType(c.QueryParam("bloodType")),
	}

	requests, err := h.requestUC.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Get handles GET /requests/:id
func (h *RequestHandler) Get(c echo.Context) error {
	request, err := h.requestUC.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, request, "")
}

// GetQR handles GET /requests/:id/qr and returns a PNG image
func (h *RequestHandler) GetQR(c echo.Context) error {
	qrBytes, err := h.requestUC.GenerateRequestQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}

// Update handles PUT /requests/:id
func (h *RequestHandler) Update(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.requestUC.UpdateRequest(c.Request().Context(), profile.UID, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, request, "Request updated")
}

// Delete handles DELETE /requests/:id
func (h *RequestHandler) Delete(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	if err := h.requestUC.DeleteRequest(c.Request().Context(), profile.UID, c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Request deleted")
}

// SetStatus handles PATCH /requests/:id/status
func (h *RequestHandler) SetStatus(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.requestUC.SetRequestStatus(c.Request().Context(), profile.UID, c.Param("id"), req.Status); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// HospitalRequests handles GET /hospital/requests
func (h *RequestHandler) HospitalRequests(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListHospitalRequests(c.Request().Context(), profile.UID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// HospitalSummary handles GET /hospital/summary
func (h *RequestHandler) HospitalSummary(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	summary, err := h.requestUC.ComputeSummary(c.Request().Context(), profile.UID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "")
}
