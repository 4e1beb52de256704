// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"workdesk/internal/delivery/http/middleware"
	domainerrors "workdesk/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// sessionUserID returns the authenticated caller's user ID set by the auth
// middleware.
func sessionUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// sessionTenantID returns the tenant scope of the session as a UUID. Sessions
// without a parseable tenant cannot reach tenant-scoped resources.
func sessionTenantID(c echo.Context) (uuid.UUID, error) {
	raw, ok := c.Get(middleware.ContextKeyTenantID).(string)
	if !ok || raw == "" {
		return uuid.Nil, domainerrors.ErrTenantRequired
	}

	tenantID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTenantRequired
	}

	return tenantID, nil
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
