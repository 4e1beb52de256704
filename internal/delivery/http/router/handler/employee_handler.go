package handler

import (
	"log/slog"
	"net/http"

	"workdesk/internal/delivery/http/response"
	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmployeeHandler holds dependencies for employee and assignment handlers.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListEmployees returns the tenant's active employees, optionally filtered by
// the compensation_type query parameter.
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	compensation := entity.CompensationType(c.QueryParam("compensation_type"))

	employees, err := h.uc.ListEmployees(c.Request().Context(), tenantID, compensation)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "Employees retrieved successfully")
}

// assignEmployeesRequest is the payload of an assignment save.
type assignEmployeesRequest struct {
	EmployeeIDs []uuid.UUID `json:"employee_ids"`
}

// AssignEmployees replaces the full assignment set of a geofence.
func (h *EmployeeHandler) AssignEmployees(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req assignEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	result, err := h.uc.AssignEmployees(c.Request().Context(), tenantID, geofenceID, req.EmployeeIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Assignments saved successfully")
}

// ListAssignments returns the current assignments of the geofence named by
// the geofence_id query parameter.
func (h *EmployeeHandler) ListAssignments(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := uuid.Parse(c.QueryParam("geofence_id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid geofence_id"))
	}

	assignments, err := h.uc.ListAssignments(c.Request().Context(), tenantID, geofenceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assignments, "Assignments retrieved successfully")
}
