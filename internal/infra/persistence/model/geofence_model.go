package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeofenceModel mirrors the 'geofences' table. The center columns are written
// once at creation and never updated afterwards.
type GeofenceModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID              uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_geofences_tenant_name"`
	Name                  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_geofences_tenant_name"`
	GeofenceType          string    `gorm:"type:varchar(50);not null"`
	CenterLatitude        float64   `gorm:"type:double precision;not null"`
	CenterLongitude       float64   `gorm:"type:double precision;not null"`
	Radius                int       `gorm:"not null"`
	EnforceClockIn        bool      `gorm:"not null;default:false"`
	EnforceClockOut       bool      `gorm:"not null;default:false"`
	AutoClockOut          bool      `gorm:"not null;default:false"`
	AlertOnUnexpectedExit bool      `gorm:"not null;default:false"`
	IsActive              bool      `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`

	Assignments []EmployeeGeofenceAssignmentModel `gorm:"foreignKey:GeofenceID"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

// EmployeeGeofenceAssignmentModel mirrors the 'employee_geofence_assignments'
// table. The pair (employee, geofence) is unique; saves replace the full set
// for a geofence.
type EmployeeGeofenceAssignmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_employee_geofence"`
	GeofenceID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_employee_geofence"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeGeofenceAssignmentModel) TableName() string {
	return "employee_geofence_assignments"
}
