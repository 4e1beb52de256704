package usecase

import (
	"context"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines the interface for push-device registration.
type DeviceUsecase interface {
	// RegisterDevice registers a device for push alerts or refreshes its token.
	RegisterDevice(ctx context.Context, userID, tenantID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// ListDevices retrieves the caller's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice deactivates one of the caller's devices.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

// RegisterDeviceInput defines the data required to register a device.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}
