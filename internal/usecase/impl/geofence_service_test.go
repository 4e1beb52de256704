package impl

import (
	"context"
	"testing"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	mockRepo "workdesk/internal/mocks/repository"
	mockSvc "workdesk/internal/mocks/service"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeofenceService(t *testing.T) (usecase.GeofenceUsecase, *mockRepo.MockGeofenceRepository, *mockRepo.MockAssignmentRepository, *mockSvc.MockQRCodeService) {
	t.Helper()
	mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	mockQRService := mockSvc.NewMockQRCodeService(t)
	service := NewGeofenceService(mockGeofenceRepo, mockAssignmentRepo, mockQRService, testLogger())

	return service, mockGeofenceRepo, mockAssignmentRepo, mockQRService
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestGeofenceService_CreateGeofence(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	var created *entity.Geofence
	mockGeofenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Geofence")).
		Run(func(ctx context.Context, geofence *entity.Geofence) {
			created = geofence
		}).
		Return(nil)

	geofence, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
		Name:            "Warehouse",
		GeofenceType:    "construction_site",
		CenterLatitude:  floatPtr(40.7128),
		CenterLongitude: floatPtr(-74.0060),
		Radius:          250,
		EnforceClockIn:  true,
		AutoClockOut:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, geofence)
	require.NotNil(t, created)
	assert.Equal(t, tenantID, created.TenantID)
	assert.Equal(t, "Warehouse", created.Name)
	assert.Equal(t, entity.GeofenceTypeConstructionSite, created.GeofenceType)
	assert.Equal(t, 250, created.Radius)
	assert.True(t, created.IsActive)
	assert.True(t, created.EnforceClockIn)
	assert.True(t, created.AutoClockOut)
}

func TestGeofenceService_CreateGeofence_CenterRequired(t *testing.T) {
	service, _, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
		Name:         "Warehouse",
		GeofenceType: "office",
		Radius:       100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceCenterRequired)
}

func TestGeofenceService_CreateGeofence_ZeroZeroCenterIsValid(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	mockGeofenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(nil)

	// (0, 0) is a legitimate coordinate, distinct from "never placed".
	_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
		Name:            "Null Island",
		GeofenceType:    "custom",
		CenterLatitude:  floatPtr(0),
		CenterLongitude: floatPtr(0),
		Radius:          100,
	})
	require.NoError(t, err)
}

func TestGeofenceService_CreateGeofence_ValidationOrder(t *testing.T) {
	service, _, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("name required", func(t *testing.T) {
		_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
			GeofenceType:    "office",
			CenterLatitude:  floatPtr(40),
			CenterLongitude: floatPtr(-70),
			Radius:          100,
		})
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceNameRequired)
	})

	t.Run("radius out of range", func(t *testing.T) {
		_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
			Name:            "Warehouse",
			GeofenceType:    "office",
			CenterLatitude:  floatPtr(40),
			CenterLongitude: floatPtr(-70),
			Radius:          5000,
		})
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceRadiusOutOfRange)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
			Name:            "Warehouse",
			GeofenceType:    "submarine",
			CenterLatitude:  floatPtr(40),
			CenterLongitude: floatPtr(-70),
			Radius:          100,
		})
		assert.ErrorIs(t, err, domainerrors.ErrGeofenceTypeInvalid)
	})
}

func TestGeofenceService_CreateGeofence_DuplicateName(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	mockGeofenceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(repository.ErrDuplicateGeofence)

	_, err := service.CreateGeofence(ctx, tenantID, &usecase.CreateGeofenceInput{
		Name:            "Warehouse",
		GeofenceType:    "office",
		CenterLatitude:  floatPtr(40),
		CenterLongitude: floatPtr(-70),
		Radius:          100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestGeofenceService_UpdateGeofence_CenterImmutable(t *testing.T) {
	service, _, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	// Rejected before the geofence is even loaded.
	_, err := service.UpdateGeofence(ctx, tenantID, geofenceID, &usecase.UpdateGeofenceInput{
		Name:           strPtr("Renamed"),
		CenterLatitude: floatPtr(41.0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceCenterImmutable)

	_, err = service.UpdateGeofence(ctx, tenantID, geofenceID, &usecase.UpdateGeofenceInput{
		CenterLongitude: floatPtr(-73.0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceCenterImmutable)
}

func TestGeofenceService_UpdateGeofence_PatchesFields(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	stored := &entity.Geofence{
		ID:              geofenceID,
		TenantID:        tenantID,
		Name:            "Warehouse",
		GeofenceType:    entity.GeofenceTypeOffice,
		CenterLatitude:  40.7128,
		CenterLongitude: -74.0060,
		Radius:          100,
		IsActive:        true,
	}

	mockGeofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(stored, nil)

	mockGeofenceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(nil)

	updated, err := service.UpdateGeofence(ctx, tenantID, geofenceID, &usecase.UpdateGeofenceInput{
		Name:     strPtr("Warehouse B"),
		Radius:   intPtr(300),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse B", updated.Name)
	assert.Equal(t, 300, updated.Radius)
	assert.False(t, updated.IsActive)
	// Untouched fields survive.
	assert.Equal(t, entity.GeofenceTypeOffice, updated.GeofenceType)
	assert.Equal(t, 40.7128, updated.CenterLatitude)
}

func TestGeofenceService_GetGeofence_CrossTenant(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	mockGeofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{
			ID:       geofenceID,
			TenantID: uuid.New(), // owned by someone else
		}, nil)

	// Another tenant's geofence reads as missing, never as forbidden.
	_, err := service.GetGeofence(ctx, tenantID, geofenceID)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_GetGeofence_NotFound(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	mockGeofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(nil, repository.ErrGeofenceNotFound)

	_, err := service.GetGeofence(ctx, tenantID, geofenceID)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_DebugListGeofences(t *testing.T) {
	service, mockGeofenceRepo, mockAssignmentRepo, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	otherTenant := uuid.New()

	mine := &entity.Geofence{ID: uuid.New(), TenantID: tenantID, Name: "Mine"}
	theirs := &entity.Geofence{ID: uuid.New(), TenantID: otherTenant, Name: "Theirs"}

	mockGeofenceRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Geofence{mine, theirs}, nil)

	mockAssignmentRepo.EXPECT().
		FindByGeofence(ctx, mine.ID).
		Return([]*entity.EmployeeGeofenceAssignment{
			{EmployeeID: uuid.New(), GeofenceID: mine.ID},
			{EmployeeID: uuid.New(), GeofenceID: mine.ID},
		}, nil)

	mockAssignmentRepo.EXPECT().
		FindByGeofence(ctx, theirs.ID).
		Return(nil, nil)

	entries, err := service.DebugListGeofences(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].OwnedByTenant)
	assert.Equal(t, 2, entries[0].AssignmentCount)
	assert.False(t, entries[1].OwnedByTenant)
	assert.Equal(t, 0, entries[1].AssignmentCount)
}

func TestGeofenceService_SiteQRCode(t *testing.T) {
	service, mockGeofenceRepo, _, mockQRService := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	mockGeofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mockQRService.EXPECT().
		GenerateSiteQR(geofenceID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.SiteQRCode(ctx, tenantID, geofenceID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGeofenceService_DeleteGeofence_CrossTenant(t *testing.T) {
	service, mockGeofenceRepo, _, _ := newGeofenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	mockGeofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: uuid.New()}, nil)

	err := service.DeleteGeofence(ctx, tenantID, geofenceID)
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}
