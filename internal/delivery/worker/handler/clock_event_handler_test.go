package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workdesk/config"
	"workdesk/internal/domain/entity"
	"workdesk/internal/domain/service"
	mockRepo "workdesk/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClockEventHandler(t *testing.T) (*ClockEventHandler, *mockRepo.MockGeofenceRepository, *mockRepo.MockGeofenceEventRepository) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	eventRepo := mockRepo.NewMockGeofenceEventRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	handler := NewClockEventHandler(ClockEventHandlerParams{
		Config:       cfg,
		Logger:       slog.Default(),
		GeofenceRepo: geofenceRepo,
		EventRepo:    eventRepo,
		DeviceRepo:   deviceRepo,
	})

	return handler, geofenceRepo, eventRepo
}

func pushRequest(t *testing.T, event *service.ClockEvent) echo.Context {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = "m-1"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/clock-events", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestClockEventHandler_HandlePush_RecordsEntry(t *testing.T) {
	handler, geofenceRepo, eventRepo := newClockEventHandler(t)

	tenantID := uuid.New()
	employeeID := uuid.New()
	fence := &entity.Geofence{
		ID:              uuid.New(),
		TenantID:        tenantID,
		Name:            "HQ",
		GeofenceType:    entity.GeofenceTypeOffice,
		CenterLatitude:  25.0330,
		CenterLongitude: 121.5654,
		Radius:          100,
		IsActive:        true,
	}

	geofenceRepo.EXPECT().FindByTenant(mock.Anything, tenantID).
		Return([]*entity.Geofence{fence}, nil).Once()
	eventRepo.EXPECT().FindLastByGeofenceAndEmployee(mock.Anything, fence.ID, employeeID).
		Return(nil, nil).Once()

	var recorded *entity.GeofenceEvent
	eventRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.GeofenceEvent")).
		Run(func(_ context.Context, event *entity.GeofenceEvent) {
			recorded = event
		}).
		Return(nil).Once()

	c := pushRequest(t, &service.ClockEvent{
		TenantID:   tenantID.String(),
		EmployeeID: employeeID.String(),
		Kind:       service.ClockEventPing,
		Latitude:   fence.CenterLatitude,
		Longitude:  fence.CenterLongitude,
		ClockedIn:  true,
		OccurredAt: time.Now().Unix(),
	})

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, c.Response().Status)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.GeofenceEventEntry, recorded.EventType)
	assert.Equal(t, employeeID, recorded.EmployeeID)
}

// An exit must be detected from the employee's own last event. A crowded zone
// where co-workers keep pinging cannot be allowed to mask one employee's
// boundary crossing, so the lookup is scoped per employee.
func TestClockEventHandler_HandlePush_RecordsExitInBusyZone(t *testing.T) {
	handler, geofenceRepo, eventRepo := newClockEventHandler(t)

	tenantID := uuid.New()
	employeeID := uuid.New()
	fence := &entity.Geofence{
		ID:              uuid.New(),
		TenantID:        tenantID,
		Name:            "Site 7",
		GeofenceType:    entity.GeofenceTypeConstructionSite,
		CenterLatitude:  25.0330,
		CenterLongitude: 121.5654,
		Radius:          100,
		IsActive:        true,
	}

	geofenceRepo.EXPECT().FindByTenant(mock.Anything, tenantID).
		Return([]*entity.Geofence{fence}, nil).Once()
	// The employee entered a while ago; dozens of co-worker events have been
	// written to the same fence since. Only the per-employee lookup sees the
	// entry row.
	eventRepo.EXPECT().FindLastByGeofenceAndEmployee(mock.Anything, fence.ID, employeeID).
		Return(&entity.GeofenceEvent{
			GeofenceID: fence.ID,
			EmployeeID: employeeID,
			EventType:  entity.GeofenceEventEntry,
			OccurredAt: time.Now().Add(-time.Hour),
		}, nil).Once()

	var recorded *entity.GeofenceEvent
	eventRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.GeofenceEvent")).
		Run(func(_ context.Context, event *entity.GeofenceEvent) {
			recorded = event
		}).
		Return(nil).Once()

	c := pushRequest(t, &service.ClockEvent{
		TenantID:   tenantID.String(),
		EmployeeID: employeeID.String(),
		Kind:       service.ClockEventPing,
		Latitude:   25.0430, // ~1.1km north of the center
		Longitude:  121.5654,
		ClockedIn:  true,
		OccurredAt: time.Now().Unix(),
	})

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, c.Response().Status)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.GeofenceEventExit, recorded.EventType)
	assert.Equal(t, employeeID, recorded.EmployeeID)
}
