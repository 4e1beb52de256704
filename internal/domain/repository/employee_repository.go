package repository

import (
	"context"
	"errors"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByTenant retrieves all active employees of a tenant, optionally
	// filtered by compensation type (empty means no filter).
	FindByTenant(ctx context.Context, tenantID uuid.UUID, compensation entity.CompensationType) ([]*entity.Employee, error)

	// FindByIDs retrieves the employees matching the given IDs within a tenant.
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*entity.Employee, error)

	// Create persists a new employee entity to the storage.
	Create(ctx context.Context, employee *entity.Employee) error

	// CountByTenant returns the number of active employees in a tenant.
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
