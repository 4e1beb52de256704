package repository

import (
	"context"
	"errors"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device persistence.
type DeviceRepository interface {
	// Upsert creates a device registration or refreshes the FCM token of an
	// existing one, keyed by (user, device ID).
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all active devices of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveByTenant retrieves all active devices across a tenant.
	// Used for alert fan-out by the clock-event worker.
	FindActiveByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.UserDevice, error)

	// Deactivate marks a device as inactive (soft delete).
	Deactivate(ctx context.Context, userID, deviceID uuid.UUID) error
}
