package handler

import (
	"log/slog"
	"net/http"

	"workdesk/config"
	"workdesk/internal/delivery/http/response"
	"workdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeofenceHandler holds dependencies for geofence management handlers.
type GeofenceHandler struct {
	uc     usecase.GeofenceUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler, injected by Fx.
func NewGeofenceHandler(uc usecase.GeofenceUsecase, cfg *config.Config, logger *slog.Logger) *GeofenceHandler {
	return &GeofenceHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// MapConfig hands the browser maps key to clients. An empty key only degrades
// the zone-editing map, never the rest of the geofence features.
func (h *GeofenceHandler) MapConfig(c echo.Context) error {
	apiKey := ""
	if h.cfg.Maps != nil {
		apiKey = h.cfg.Maps.APIKey
	}

	return response.Success(c, http.StatusOK, map[string]string{"api_key": apiKey}, "Map configuration retrieved")
}

// ListGeofences returns the tenant's geofences.
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofences, err := h.uc.ListGeofences(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, geofences, "Geofences retrieved successfully")
}

// GetGeofence returns a single geofence owned by the tenant.
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	geofence, err := h.uc.GetGeofence(c.Request().Context(), tenantID, geofenceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence retrieved successfully")
}

// CreateGeofence creates a geofence for the tenant.
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	// Bind leaves the pointer nil on an empty body, so guard both.
	var input *usecase.CreateGeofenceInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	geofence, err := h.uc.CreateGeofence(c.Request().Context(), tenantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, geofence, "Geofence created successfully")
}

// UpdateGeofence patches a geofence's editable fields.
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateGeofenceInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	geofence, err := h.uc.UpdateGeofence(c.Request().Context(), tenantID, geofenceID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence updated successfully")
}

// DeleteGeofence removes a geofence and its assignments.
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteGeofence(c.Request().Context(), tenantID, geofenceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Geofence deleted successfully")
}

// DebugListGeofences returns every geofence annotated with tenant visibility.
func (h *GeofenceHandler) DebugListGeofences(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	entries, err := h.uc.DebugListGeofences(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Geofences retrieved successfully")
}

// SiteQRCode streams the clock-in QR code of a geofenced site as PNG.
func (h *GeofenceHandler) SiteQRCode(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	geofenceID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.SiteQRCode(c.Request().Context(), tenantID, geofenceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
