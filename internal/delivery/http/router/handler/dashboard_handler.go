package handler

import (
	"log/slog"
	"net/http"

	"workdesk/internal/delivery/http/response"
	"workdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard summary handler.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSummary returns the tenant's headline counts.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary retrieved successfully")
}
