package impl

import (
	"context"
	"testing"

	mockRepo "workdesk/internal/mocks/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceMocks struct {
	employeeRepo   *mockRepo.MockEmployeeRepository
	geofenceRepo   *mockRepo.MockGeofenceRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	userRepo       *mockRepo.MockUserRepository
}

func newDashboardService(t *testing.T) (usecase.DashboardUsecase, *dashboardServiceMocks) {
	t.Helper()
	mocks := &dashboardServiceMocks{
		employeeRepo:   mockRepo.NewMockEmployeeRepository(t),
		geofenceRepo:   mockRepo.NewMockGeofenceRepository(t),
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
	}
	service := NewDashboardService(
		mocks.employeeRepo,
		mocks.geofenceRepo,
		mocks.assignmentRepo,
		mocks.userRepo,
		testLogger(),
	)

	return service, mocks
}

func TestDashboardService_GetSummary(t *testing.T) {
	service, mocks := newDashboardService(t)

	tenantID := uuid.New()

	// The counts run on a derived context, so only the tenant is matched.
	mocks.employeeRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(12), nil)
	mocks.geofenceRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(3), nil)
	mocks.assignmentRepo.EXPECT().
		CountActiveByTenant(mock.Anything, tenantID).
		Return(int64(9), nil)
	mocks.userRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(2), nil)

	summary, err := service.GetSummary(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Employees)
	assert.Equal(t, int64(3), summary.Geofences)
	assert.Equal(t, int64(9), summary.Assignments)
	assert.Equal(t, int64(2), summary.Accounts)
}

func TestDashboardService_GetSummary_FailedCountReportsZero(t *testing.T) {
	service, mocks := newDashboardService(t)

	tenantID := uuid.New()

	mocks.employeeRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(0), errors.New("relation does not exist"))
	mocks.geofenceRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(3), nil)
	mocks.assignmentRepo.EXPECT().
		CountActiveByTenant(mock.Anything, tenantID).
		Return(int64(9), nil)
	mocks.userRepo.EXPECT().
		CountByTenant(mock.Anything, tenantID).
		Return(int64(2), nil)

	// One broken table never blanks the whole dashboard.
	summary, err := service.GetSummary(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Employees)
	assert.Equal(t, int64(3), summary.Geofences)
	assert.Equal(t, int64(9), summary.Assignments)
	assert.Equal(t, int64(2), summary.Accounts)
}
