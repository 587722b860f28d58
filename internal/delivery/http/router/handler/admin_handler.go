package handler

import (
	"log/slog"
	"net/http"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler holds dependencies for the admin statistics endpoint
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{adminUC: adminUC, logger: logger}
}

// Statistics handles GET /admin/statistics
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.adminUC.GetStatistics(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "")
}
