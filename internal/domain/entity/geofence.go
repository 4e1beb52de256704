// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceType categorizes the kind of site a geofence covers.
type GeofenceType string

const (
	GeofenceTypeOffice           GeofenceType = "office"
	GeofenceTypeConstructionSite GeofenceType = "construction_site"
	GeofenceTypeClientLocation   GeofenceType = "client_location"
	GeofenceTypeDeliveryZone     GeofenceType = "delivery_zone"
	GeofenceTypeFieldLocation    GeofenceType = "field_location"
	GeofenceTypeCustom           GeofenceType = "custom"
)

// String returns the string representation of the GeofenceType.
func (g GeofenceType) String() string {
	return string(g)
}

// IsValid checks if the GeofenceType is a known value.
func (g GeofenceType) IsValid() bool {
	switch g {
	case GeofenceTypeOffice, GeofenceTypeConstructionSite, GeofenceTypeClientLocation,
		GeofenceTypeDeliveryZone, GeofenceTypeFieldLocation, GeofenceTypeCustom:
		return true
	default:
		return false
	}
}

// Geofence radius bounds in meters, validated on create and update.
const (
	GeofenceMinRadius = 10
	GeofenceMaxRadius = 1000
)

// Geofence is a named circular zone used to gate employee clock-in/out.
// The center point is fixed at creation; name, radius, type and the
// enforcement flags remain editable afterwards.
type Geofence struct {
	ID                    uuid.UUID    `json:"id"`                       // The Global Unique Identifier (GUID) for the geofence.
	TenantID              uuid.UUID    `json:"tenant_id"`                // The tenant (business) that owns this geofence.
	Name                  string       `json:"name"`                     // Human-readable site name. Required.
	GeofenceType          GeofenceType `json:"geofence_type"`            // The kind of site this zone covers.
	CenterLatitude        float64      `json:"center_latitude"`          // Latitude of the zone center. Immutable after creation.
	CenterLongitude       float64      `json:"center_longitude"`         // Longitude of the zone center. Immutable after creation.
	Radius                int          `json:"radius"`                   // Zone radius in meters, within [10, 1000].
	EnforceClockIn        bool         `json:"enforce_clock_in"`         // Require employees to be inside the zone to clock in.
	EnforceClockOut       bool         `json:"enforce_clock_out"`        // Require employees to be inside the zone to clock out.
	AutoClockOut          bool         `json:"auto_clock_out"`           // Clock employees out automatically when they leave the zone.
	AlertOnUnexpectedExit bool         `json:"alert_on_unexpected_exit"` // Push an alert when a clocked-in employee leaves the zone.
	IsActive              bool         `json:"is_active"`                // Indicates if this geofence is currently enforced.
	CreatedAt             time.Time    `json:"created_at"`               // Timestamp of when this geofence was created.
	UpdatedAt             time.Time    `json:"updated_at"`               // Timestamp of the last modification.
}

// EmployeeGeofenceAssignment links a wage employee to a geofence. The
// assignment set of a geofence is always replaced wholesale on save, never
// patched incrementally.
type EmployeeGeofenceAssignment struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the assignment.
	EmployeeID uuid.UUID `json:"employee_id"` // The assigned employee.
	GeofenceID uuid.UUID `json:"geofence_id"` // The geofence the employee is assigned to.
	AssignedAt time.Time `json:"assigned_at"` // Timestamp of when the assignment was created.
}
