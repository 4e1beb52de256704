package handler

import (
	"log/slog"
	"net/http"

	"workdesk/internal/delivery/http/response"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for push-device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice registers the caller's device for push alerts.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	// Devices without a tenant still receive personal notifications.
	tenantID := uuid.Nil
	if id, err := sessionTenantID(c); err == nil {
		tenantID = id
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, tenantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices returns the caller's active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// RemoveDevice deactivates one of the caller's devices.
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device removed successfully")
}
