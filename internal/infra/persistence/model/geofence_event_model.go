package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceEventModel mirrors the 'geofence_events' table. Rows are written by
// the clock-event worker and are append-only.
type GeofenceEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GeofenceID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType  string    `gorm:"type:varchar(30);not null"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Distance   float64   `gorm:"type:double precision;not null"`
	OccurredAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceEventModel) TableName() string {
	return "geofence_events"
}
