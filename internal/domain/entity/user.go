// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account record, scoped to a single tenant (business).
// Display attributes (full name, initials, resolved business name) are not
// stored here; they are derived per request by the identity resolution service.
type User struct {
	ID               uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the user.
	TenantID         uuid.UUID `json:"tenant_id"`         // The tenant (business) this account belongs to.
	Email            string    `json:"email"`             // The user's primary contact email, used as a login identifier.
	FirstName        string    `json:"first_name"`        // The user's given name. May be empty for invite-only accounts.
	LastName         string    `json:"last_name"`         // The user's family name. May be empty.
	BusinessName     string    `json:"business_name"`     // The display name of the business, as stored on the profile.
	SubscriptionPlan string    `json:"subscription_plan"` // Raw subscription plan string as received from billing. Normalized on read.
	CreatedAt        time.Time `json:"created_at"`        // Timestamp of when this account was created.
	UpdatedAt        time.Time `json:"updated_at"`        // Timestamp of the last modification.
}
