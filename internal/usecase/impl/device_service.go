package impl

import (
	"context"
	"log/slog"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a device for push alerts or refreshes its token.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID, tenantID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   userID,
		TenantID: tenantID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.logger.Info("Device registered",
		slog.String("userID", userID.String()),
		slog.String("platform", input.Platform),
	)

	return device, nil
}

// ListDevices retrieves the caller's active devices.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// RemoveDevice deactivates one of the caller's devices.
func (srv *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := srv.deviceRepo.Deactivate(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to remove device")
	}

	return nil
}
