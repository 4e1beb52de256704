package impl

import (
	"context"
	"log/slog"
	"slices"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employeeRepo   repository.EmployeeRepository
	geofenceRepo   repository.GeofenceRepository
	assignmentRepo repository.AssignmentRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	geofenceRepo repository.GeofenceRepository,
	assignmentRepo repository.AssignmentRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo:   employeeRepo,
		geofenceRepo:   geofenceRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// ListEmployees retrieves the active employees of a tenant, optionally
// filtered by compensation type.
func (srv *employeeService) ListEmployees(ctx context.Context, tenantID uuid.UUID, compensation entity.CompensationType) ([]*entity.Employee, error) {
	if compensation != "" && !compensation.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown compensation type")
	}

	employees, err := srv.employeeRepo.FindByTenant(ctx, tenantID, compensation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}

// ListAssignments retrieves the current assignments of a geofence.
func (srv *employeeService) ListAssignments(ctx context.Context, tenantID, geofenceID uuid.UUID) ([]*entity.EmployeeGeofenceAssignment, error) {
	if err := srv.checkGeofenceOwned(ctx, tenantID, geofenceID); err != nil {
		return nil, err
	}

	assignments, err := srv.assignmentRepo.FindByGeofence(ctx, geofenceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	return assignments, nil
}

// AssignEmployees replaces the full assignment set of a geofence. The
// submitted set is compared order-insensitively against the stored one;
// equal sets skip the write entirely.
func (srv *employeeService) AssignEmployees(ctx context.Context, tenantID, geofenceID uuid.UUID, employeeIDs []uuid.UUID) (*usecase.AssignmentResult, error) {
	srv.logger.Info("Saving geofence assignments",
		"geofenceID", geofenceID,
		"submitted", len(employeeIDs),
	)

	if err := srv.checkGeofenceOwned(ctx, tenantID, geofenceID); err != nil {
		return nil, err
	}

	submitted := dedupe(employeeIDs)

	if err := srv.checkEligibility(ctx, tenantID, submitted); err != nil {
		return nil, err
	}

	current, err := srv.assignmentRepo.FindByGeofence(ctx, geofenceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current assignments")
	}

	currentIDs := make([]uuid.UUID, 0, len(current))
	for _, assignment := range current {
		currentIDs = append(currentIDs, assignment.EmployeeID)
	}

	if sameIDSet(currentIDs, submitted) {
		srv.logger.Debug("Assignment set unchanged, skipping save", "geofenceID", geofenceID)

		return &usecase.AssignmentResult{
			Changed:     false,
			Assigned:    len(currentIDs),
			ReplacedOld: len(currentIDs),
		}, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.NewAssignmentRepository()

		if err := assignmentRepo.ReplaceForGeofence(ctx, geofenceID, submitted); err != nil {
			return errors.Wrap(err, "failed to replace assignments")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save assignments")
	}

	srv.logger.Info("Assignments saved",
		"geofenceID", geofenceID,
		"assigned", len(submitted),
		"replacedOld", len(currentIDs),
	)

	return &usecase.AssignmentResult{
		Changed:     true,
		Assigned:    len(submitted),
		ReplacedOld: len(currentIDs),
	}, nil
}

// checkGeofenceOwned verifies the geofence exists and belongs to the tenant.
func (srv *employeeService) checkGeofenceOwned(ctx context.Context, tenantID, geofenceID uuid.UUID) error {
	geofence, err := srv.geofenceRepo.FindByID(ctx, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return domainerrors.ErrGeofenceNotFound
		}

		return errors.Wrap(err, "failed to find geofence")
	}
	if geofence.TenantID != tenantID {
		return domainerrors.ErrGeofenceNotFound
	}

	return nil
}

// checkEligibility verifies every submitted employee exists in the tenant, is
// active and is paid by the hour. Salaried staff are rejected, not silently
// dropped.
func (srv *employeeService) checkEligibility(ctx context.Context, tenantID uuid.UUID, employeeIDs []uuid.UUID) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	employees, err := srv.employeeRepo.FindByIDs(ctx, tenantID, employeeIDs)
	if err != nil {
		return errors.Wrap(err, "failed to load employees for eligibility check")
	}

	if len(employees) != len(employeeIDs) {
		return domainerrors.ErrEmployeeNotFound
	}

	for _, employee := range employees {
		if !employee.IsActive || employee.CompensationType != entity.CompensationWage {
			return domainerrors.ErrEmployeeNotEligible.WithDetails(
				"employee " + employee.ID.String() + " is not an active wage employee",
			)
		}
	}

	return nil
}

// dedupe removes duplicate IDs while preserving first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// sameIDSet reports whether two ID lists contain the same members regardless
// of order.
func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}

	as := slices.Clone(a)
	bs := slices.Clone(b)
	cmp := func(x, y uuid.UUID) int {
		return slices.Compare(x[:], y[:])
	}
	slices.SortFunc(as, cmp)
	slices.SortFunc(bs, cmp)

	return slices.Equal(as, bs)
}
