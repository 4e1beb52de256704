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

type employeeServiceMocks struct {
	employeeRepo   *mockRepo.MockEmployeeRepository
	geofenceRepo   *mockRepo.MockGeofenceRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	txManager      *mockRepo.MockTransactionManager
}

func newEmployeeService(t *testing.T) (usecase.EmployeeUsecase, *employeeServiceMocks) {
	t.Helper()
	mocks := &employeeServiceMocks{
		employeeRepo:   mockRepo.NewMockEmployeeRepository(t),
		geofenceRepo:   mockRepo.NewMockGeofenceRepository(t),
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
	}
	service := NewEmployeeService(
		mocks.employeeRepo,
		mocks.geofenceRepo,
		mocks.assignmentRepo,
		mocks.txManager,
		testLogger(),
	)

	return service, mocks
}

func wageEmployee(tenantID uuid.UUID) *entity.Employee {
	return &entity.Employee{
		ID:               uuid.New(),
		TenantID:         tenantID,
		FirstName:        "Alex",
		LastName:         "Kim",
		CompensationType: entity.CompensationWage,
		IsActive:         true,
	}
}

func TestEmployeeService_ListEmployees_WageFilter(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	expected := []*entity.Employee{wageEmployee(tenantID)}

	mocks.employeeRepo.EXPECT().
		FindByTenant(ctx, tenantID, entity.CompensationWage).
		Return(expected, nil)

	employees, err := service.ListEmployees(ctx, tenantID, entity.CompensationWage)
	require.NoError(t, err)
	assert.Equal(t, expected, employees)
}

func TestEmployeeService_ListEmployees_UnknownCompensation(t *testing.T) {
	service, _ := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	_, err := service.ListEmployees(ctx, tenantID, entity.CompensationType("COMMISSION"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmployeeService_AssignEmployees_ReplacesSet(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	first := wageEmployee(tenantID)
	second := wageEmployee(tenantID)
	submitted := []uuid.UUID{first.ID, second.ID}

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, submitted).
		Return([]*entity.Employee{first, second}, nil)

	mocks.assignmentRepo.EXPECT().
		FindByGeofence(ctx, geofenceID).
		Return([]*entity.EmployeeGeofenceAssignment{
			{EmployeeID: first.ID, GeofenceID: geofenceID},
		}, nil)

	txAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	txAssignmentRepo.EXPECT().
		ReplaceForGeofence(ctx, geofenceID, submitted).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewAssignmentRepository().
		Return(txAssignmentRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := service.AssignEmployees(ctx, tenantID, geofenceID, submitted)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 2, result.Assigned)
	assert.Equal(t, 1, result.ReplacedOld)
}

func TestEmployeeService_AssignEmployees_UnchangedSetSkipsWrite(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	first := wageEmployee(tenantID)
	second := wageEmployee(tenantID)

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	// Submitted in reverse order of the stored set; still the same set.
	submitted := []uuid.UUID{second.ID, first.ID}

	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, submitted).
		Return([]*entity.Employee{second, first}, nil)

	mocks.assignmentRepo.EXPECT().
		FindByGeofence(ctx, geofenceID).
		Return([]*entity.EmployeeGeofenceAssignment{
			{EmployeeID: first.ID, GeofenceID: geofenceID},
			{EmployeeID: second.ID, GeofenceID: geofenceID},
		}, nil)

	// No transaction is expected; the set did not change.
	result, err := service.AssignEmployees(ctx, tenantID, geofenceID, submitted)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, 2, result.Assigned)
	assert.Equal(t, 2, result.ReplacedOld)
}

func TestEmployeeService_AssignEmployees_DeduplicatesSubmission(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	employee := wageEmployee(tenantID)

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, []uuid.UUID{employee.ID}).
		Return([]*entity.Employee{employee}, nil)

	mocks.assignmentRepo.EXPECT().
		FindByGeofence(ctx, geofenceID).
		Return([]*entity.EmployeeGeofenceAssignment{
			{EmployeeID: employee.ID, GeofenceID: geofenceID},
		}, nil)

	// The same employee twice collapses to one, which equals the stored set.
	result, err := service.AssignEmployees(ctx, tenantID, geofenceID, []uuid.UUID{employee.ID, employee.ID})
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestEmployeeService_AssignEmployees_SalariedRejected(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	salaried := wageEmployee(tenantID)
	salaried.CompensationType = entity.CompensationSalary

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, []uuid.UUID{salaried.ID}).
		Return([]*entity.Employee{salaried}, nil)

	_, err := service.AssignEmployees(ctx, tenantID, geofenceID, []uuid.UUID{salaried.ID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPLOYEE_NOT_ELIGIBLE", appErr.ErrorCode())
}

func TestEmployeeService_AssignEmployees_InactiveRejected(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	inactive := wageEmployee(tenantID)
	inactive.IsActive = false

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, []uuid.UUID{inactive.ID}).
		Return([]*entity.Employee{inactive}, nil)

	_, err := service.AssignEmployees(ctx, tenantID, geofenceID, []uuid.UUID{inactive.ID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPLOYEE_NOT_ELIGIBLE", appErr.ErrorCode())
}

func TestEmployeeService_AssignEmployees_UnknownEmployee(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()
	unknownID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	// One of the submitted IDs does not exist in this tenant.
	mocks.employeeRepo.EXPECT().
		FindByIDs(ctx, tenantID, []uuid.UUID{unknownID}).
		Return([]*entity.Employee{}, nil)

	_, err := service.AssignEmployees(ctx, tenantID, geofenceID, []uuid.UUID{unknownID})
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_AssignEmployees_EmptySetClearsAssignments(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	existing := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.assignmentRepo.EXPECT().
		FindByGeofence(ctx, geofenceID).
		Return([]*entity.EmployeeGeofenceAssignment{
			{EmployeeID: existing, GeofenceID: geofenceID},
		}, nil)

	txAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	txAssignmentRepo.EXPECT().
		ReplaceForGeofence(ctx, geofenceID, []uuid.UUID{}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewAssignmentRepository().
		Return(txAssignmentRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := service.AssignEmployees(ctx, tenantID, geofenceID, nil)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 0, result.Assigned)
	assert.Equal(t, 1, result.ReplacedOld)
}

func TestEmployeeService_AssignEmployees_CrossTenantGeofence(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: uuid.New()}, nil)

	_, err := service.AssignEmployees(ctx, tenantID, geofenceID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestEmployeeService_ListAssignments(t *testing.T) {
	service, mocks := newEmployeeService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	geofenceID := uuid.New()

	expected := []*entity.EmployeeGeofenceAssignment{
		{EmployeeID: uuid.New(), GeofenceID: geofenceID},
	}

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(&entity.Geofence{ID: geofenceID, TenantID: tenantID}, nil)

	mocks.assignmentRepo.EXPECT().
		FindByGeofence(ctx, geofenceID).
		Return(expected, nil)

	assignments, err := service.ListAssignments(ctx, tenantID, geofenceID)
	require.NoError(t, err)
	assert.Equal(t, expected, assignments)
}
