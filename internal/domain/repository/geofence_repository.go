package repository

import (
	"context"
	"errors"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for geofence persistence.
var (
	// ErrGeofenceNotFound is returned when a geofence is not found.
	ErrGeofenceNotFound = errors.New("geofence not found")
	// ErrDuplicateGeofence is returned when a tenant already has a geofence with the same name.
	ErrDuplicateGeofence = errors.New("geofence already exists")
)

// GeofenceRepository defines the interface for geofence-related database operations.
type GeofenceRepository interface {
	// Create persists a new geofence.
	Create(ctx context.Context, geofence *entity.Geofence) error

	// FindByID retrieves a geofence by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// FindByTenant retrieves all geofences owned by a tenant.
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Geofence, error)

	// FindAll retrieves every geofence regardless of tenant. Used only by the
	// diagnostic listing to surface tenant mismatches.
	FindAll(ctx context.Context) ([]*entity.Geofence, error)

	// Update persists the mutable fields of a geofence (name, type, radius,
	// enforcement flags, active state). The center point is never written.
	Update(ctx context.Context, geofence *entity.Geofence) error

	// Delete removes a geofence by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByTenant returns the number of geofences owned by a tenant.
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
