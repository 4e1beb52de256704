package impl

import (
	"context"
	"testing"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	mockRepo "workdesk/internal/mocks/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	tenantID := uuid.New()

	var saved *entity.UserDevice
	mockDeviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			saved = device
		}).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, tenantID, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, tenantID, saved.TenantID)
	assert.Equal(t, "fcm-token-abc", saved.FCMToken)
	assert.True(t, saved.IsActive)
	assert.Equal(t, saved, device)
}

func TestDeviceService_ListDevices(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, DeviceID: "device-123"},
	}

	mockDeviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(expected, nil)

	devices, err := service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		Deactivate(ctx, userID, deviceID).
		Return(repository.ErrDeviceNotFound)

	err := service.RemoveDevice(ctx, userID, deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		Deactivate(ctx, userID, deviceID).
		Return(nil)

	require.NoError(t, service.RemoveDevice(ctx, userID, deviceID))
}
