package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	FirstName        string    `gorm:"type:varchar(100)"`
	LastName         string    `gorm:"type:varchar(100)"`
	BusinessName     string    `gorm:"type:varchar(255)"`
	SubscriptionPlan string    `gorm:"type:varchar(100)"`
	ClosedAt         *time.Time
	ClosureReason    string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Devices []UserDeviceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
