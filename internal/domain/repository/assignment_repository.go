package repository

import (
	"context"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentRepository defines the interface for employee-geofence assignment persistence.
// Assignment sets are replaced wholesale, never patched incrementally.
type AssignmentRepository interface {
	// FindByGeofence retrieves the current assignments of a geofence.
	FindByGeofence(ctx context.Context, geofenceID uuid.UUID) ([]*entity.EmployeeGeofenceAssignment, error)

	// FindGeofencesByEmployee retrieves the geofence IDs an employee is assigned to.
	FindGeofencesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]uuid.UUID, error)

	// ReplaceForGeofence atomically replaces the full assignment set of a
	// geofence with the given employee IDs.
	ReplaceForGeofence(ctx context.Context, geofenceID uuid.UUID, employeeIDs []uuid.UUID) error

	// CountActiveByTenant returns the number of assignments on active geofences of a tenant.
	CountActiveByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
