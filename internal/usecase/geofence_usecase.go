package usecase

import (
	"context"

	"workdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceUsecase defines the interface for geofence management operations.
// All operations are tenant-scoped; a geofence belonging to another tenant is
// reported as not found, never as forbidden.
type GeofenceUsecase interface {
	ListGeofences(ctx context.Context, tenantID uuid.UUID) ([]*entity.Geofence, error)
	GetGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID) (*entity.Geofence, error)
	CreateGeofence(ctx context.Context, tenantID uuid.UUID, input *CreateGeofenceInput) (*entity.Geofence, error)
	UpdateGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID, input *UpdateGeofenceInput) (*entity.Geofence, error)
	DeleteGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID) error

	// DebugListGeofences lists every geofence in the system annotated with
	// whether it is visible to the given tenant. Diagnostic use only.
	DebugListGeofences(ctx context.Context, tenantID uuid.UUID) ([]*GeofenceDebugEntry, error)

	// SiteQRCode renders the clock-in QR code of a geofenced site as PNG.
	SiteQRCode(ctx context.Context, tenantID, geofenceID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// CreateGeofenceInput defines the data required to create a geofence. The
// center coordinates are pointers so "never placed on the map" is
// distinguishable from a legitimate (0, 0) center.
type CreateGeofenceInput struct {
	Name                  string   `json:"name"`
	GeofenceType          string   `json:"geofence_type"`
	CenterLatitude        *float64 `json:"center_latitude"`
	CenterLongitude       *float64 `json:"center_longitude"`
	Radius                int      `json:"radius"`
	EnforceClockIn        bool     `json:"enforce_clock_in"`
	EnforceClockOut       bool     `json:"enforce_clock_out"`
	AutoClockOut          bool     `json:"auto_clock_out"`
	AlertOnUnexpectedExit bool     `json:"alert_on_unexpected_exit"`
}

// UpdateGeofenceInput defines the patchable fields of a geofence. Center
// coordinates are present only to reject attempts to move them.
type UpdateGeofenceInput struct {
	Name                  *string  `json:"name,omitempty"`
	GeofenceType          *string  `json:"geofence_type,omitempty"`
	CenterLatitude        *float64 `json:"center_latitude,omitempty"`
	CenterLongitude       *float64 `json:"center_longitude,omitempty"`
	Radius                *int     `json:"radius,omitempty"`
	EnforceClockIn        *bool    `json:"enforce_clock_in,omitempty"`
	EnforceClockOut       *bool    `json:"enforce_clock_out,omitempty"`
	AutoClockOut          *bool    `json:"auto_clock_out,omitempty"`
	AlertOnUnexpectedExit *bool    `json:"alert_on_unexpected_exit,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

// GeofenceDebugEntry is one row of the diagnostic listing.
type GeofenceDebugEntry struct {
	Geofence        *entity.Geofence `json:"geofence"`
	OwnedByTenant   bool             `json:"owned_by_tenant"`
	AssignmentCount int              `json:"assignment_count"`
}
