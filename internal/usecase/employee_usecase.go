package usecase

import (
	"context"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// EmployeeUsecase defines the interface for employee listing and geofence
// assignment operations.
type EmployeeUsecase interface {
	// ListEmployees retrieves the active employees of a tenant, optionally
	// filtered by compensation type (empty means all).
	ListEmployees(ctx context.Context, tenantID uuid.UUID, compensation entity.CompensationType) ([]*entity.Employee, error)

	// ListAssignments retrieves the current assignments of a geofence.
	ListAssignments(ctx context.Context, tenantID, geofenceID uuid.UUID) ([]*entity.EmployeeGeofenceAssignment, error)

	// AssignEmployees replaces the full assignment set of a geofence. Passing
	// a set equal to the current one (in any order) is a no-op.
	AssignEmployees(ctx context.Context, tenantID, geofenceID uuid.UUID, employeeIDs []uuid.UUID) (*AssignmentResult, error)
}

// AssignmentResult reports the outcome of an assignment save.
type AssignmentResult struct {
	Changed     bool `json:"changed"`      // False when the submitted set equaled the stored one.
	Assigned    int  `json:"assigned"`     // Number of employees now assigned.
	ReplacedOld int  `json:"replaced_old"` // Number of assignments that existed before the save.
}
