// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceEventType classifies a recorded geofence boundary event.
type GeofenceEventType string

const (
	// GeofenceEventEntry records an employee entering a zone.
	GeofenceEventEntry GeofenceEventType = "entry"
	// GeofenceEventExit records an employee leaving a zone.
	GeofenceEventExit GeofenceEventType = "exit"
	// GeofenceEventAutoClockOut records a forced clock-out after leaving a
	// zone with auto clock-out enabled.
	GeofenceEventAutoClockOut GeofenceEventType = "auto_clock_out"
)

// GeofenceEvent is an audit record of an employee crossing a geofence
// boundary, written by the clock-event worker.
type GeofenceEvent struct {
	ID         uuid.UUID         `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	GeofenceID uuid.UUID         `json:"geofence_id"` // The geofence whose boundary was crossed.
	EmployeeID uuid.UUID         `json:"employee_id"` // The employee involved.
	EventType  GeofenceEventType `json:"event_type"`  // entry, exit or auto_clock_out.
	Latitude   float64           `json:"latitude"`    // Latitude reported by the device at the time of the event.
	Longitude  float64           `json:"longitude"`   // Longitude reported by the device at the time of the event.
	Distance   float64           `json:"distance"`    // Distance in meters from the zone center when the event fired.
	OccurredAt time.Time         `json:"occurred_at"` // Timestamp of when the event occurred.
}
