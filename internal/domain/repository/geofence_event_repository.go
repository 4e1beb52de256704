package repository

import (
	"context"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceEventRepository defines the interface for geofence boundary-event persistence.
type GeofenceEventRepository interface {
	// Create persists a new boundary event.
	Create(ctx context.Context, event *entity.GeofenceEvent) error

	// FindLastByGeofenceAndEmployee retrieves the most recent event of one
	// employee on one geofence, or nil when the employee has no recorded
	// events there. Boundary detection must not depend on how busy the zone
	// is, so the lookup is scoped to the employee rather than a shared
	// recent window.
	FindLastByGeofenceAndEmployee(ctx context.Context, geofenceID, employeeID uuid.UUID) (*entity.GeofenceEvent, error)
}
