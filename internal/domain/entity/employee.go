// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompensationType represents how an employee is paid.
type CompensationType string

const (
	// CompensationWage marks hourly employees. Only wage employees are
	// eligible for geofenced clock-in/out assignment.
	CompensationWage CompensationType = "WAGE"
	// CompensationSalary marks salaried employees.
	CompensationSalary CompensationType = "SALARY"
)

// String returns the string representation of the CompensationType.
func (c CompensationType) String() string {
	return string(c)
}

// IsValid checks if the CompensationType is a known value.
func (c CompensationType) IsValid() bool {
	switch c {
	case CompensationWage, CompensationSalary:
		return true
	default:
		return false
	}
}

// Employee represents a staff member of a tenant.
type Employee struct {
	ID               uuid.UUID        `json:"id"`                // The Global Unique Identifier (GUID) for the employee.
	TenantID         uuid.UUID        `json:"tenant_id"`         // The tenant (business) this employee works for.
	FirstName        string           `json:"first_name"`        // The employee's given name.
	LastName         string           `json:"last_name"`         // The employee's family name.
	Email            string           `json:"email"`             // The employee's contact email.
	CompensationType CompensationType `json:"compensation_type"` // How the employee is paid (WAGE or SALARY).
	IsActive         bool             `json:"is_active"`         // Indicates if the employee is currently employed.
	CreatedAt        time.Time        `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt        time.Time        `json:"updated_at"`        // Timestamp of the last modification.
}
