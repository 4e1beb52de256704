package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel mirrors the 'employees' table.
type EmployeeModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100)"`
	Email            string    `gorm:"type:varchar(255)"`
	CompensationType string    `gorm:"type:varchar(20);not null;index"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Assignments []EmployeeGeofenceAssignmentModel `gorm:"foreignKey:EmployeeID"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
