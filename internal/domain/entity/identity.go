// Package entity contains the core business objects of the project.
package entity

// SubscriptionTier is the normalized subscription level of a tenant.
// Raw plan strings from upstream systems are inconsistent in casing and
// abbreviation; they are always normalized to one of these values before
// comparison or display.
type SubscriptionTier string

const (
	// TierFree is the default tier when no plan can be resolved.
	TierFree SubscriptionTier = "free"
	// TierProfessional is the paid mid tier.
	TierProfessional SubscriptionTier = "professional"
	// TierEnterprise is the paid top tier.
	TierEnterprise SubscriptionTier = "enterprise"
)

// String returns the string representation of the SubscriptionTier.
func (t SubscriptionTier) String() string {
	return string(t)
}

// UserIdentity is the reconciled, display-ready identity of the caller.
// It is rebuilt on every request from the session claims, the stored profile
// and the tenant attribute cache; it is never persisted by this layer.
type UserIdentity struct {
	Email            string           `json:"email"`             // The user's email address.
	FirstName        string           `json:"first_name"`        // Given name, empty when unknown.
	LastName         string           `json:"last_name"`         // Family name, empty when unknown.
	FullName         string           `json:"full_name"`         // Derived "First Last", trimmed.
	Initials         string           `json:"initials"`          // 1-2 uppercase characters for avatar display. Empty means "render a placeholder".
	TenantID         string           `json:"tenant_id"`         // The tenant the session is bound to, empty when absent.
	BusinessName     string           `json:"business_name"`     // Resolved business name, empty when nothing trustworthy was found.
	SubscriptionTier SubscriptionTier `json:"subscription_type"` // Normalized tier, defaults to free.
}
