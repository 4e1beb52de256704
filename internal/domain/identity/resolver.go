package identity

import (
	"strings"

	"workdesk/internal/domain/entity"
)

// ClaimNamespace is the vendor prefix under which the auth provider exposes
// custom claims on session tokens.
const ClaimNamespace = "https://workdesk.app/"

// Key spellings per logical field, in strict priority order:
// provider/session claim form, profile form, cached form, request-scoped
// fallback form. The duplication is historical and must be preserved; every
// spelling below has shipped in at least one upstream system.
var (
	businessNameKeys = []string{
		ClaimNamespace + "business_name",
		"business_name",
		"businessName",
		"company_name",
	}

	subscriptionKeys = []string{
		ClaimNamespace + "subscription_type",
		"subscription_type",
		"subscriptionType",
		"subscription_plan",
		"subscriptionPlan",
	}

	tenantKeys = []string{
		ClaimNamespace + "tenant_id",
		"tenant_id",
		"tenantId",
		"business_id",
	}

	emailKeys     = []string{"email", "email_address"}
	firstNameKeys = []string{"given_name", "first_name", "firstName"}
	lastNameKeys  = []string{"family_name", "last_name", "lastName"}
)

// ResolveBusinessName returns the authoritative business name from the bag,
// or the empty string when no source had a trustworthy value. A generated
// placeholder is never substituted; showing no business name beats showing a
// fabricated one.
func ResolveBusinessName(bag Bag) string {
	if name, ok := bag.Lookup(businessNameKeys...); ok {
		return strings.TrimSpace(name)
	}

	return ""
}

// ResolveSubscriptionTier normalizes the subscription plan found in the bag.
// Matching is deliberately fuzzy: upstream billing systems have sent
// "PROFESSIONAL", "Pro", "pro-trial", "ent" and similar over the years, so
// the raw value is lowercased and matched by substring, not equality.
// Anything unrecognized resolves to the free tier.
func ResolveSubscriptionTier(bag Bag) entity.SubscriptionTier {
	raw, ok := bag.Lookup(subscriptionKeys...)
	if !ok {
		return entity.TierFree
	}

	return NormalizeTier(raw)
}

// NormalizeTier maps a raw plan string onto a SubscriptionTier using the
// same fuzzy substring rules as ResolveSubscriptionTier.
func NormalizeTier(raw string) entity.SubscriptionTier {
	plan := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(plan, "ent"):
		return entity.TierEnterprise
	case strings.Contains(plan, "pro"):
		return entity.TierProfessional
	default:
		return entity.TierFree
	}
}

// ResolveTenantID returns the tenant identifier from the bag, empty when
// absent.
func ResolveTenantID(bag Bag) string {
	id, _ := bag.Lookup(tenantKeys...)

	return strings.TrimSpace(id)
}

// ResolveEmail returns the email address from the bag, empty when absent.
func ResolveEmail(bag Bag) string {
	email, _ := bag.Lookup(emailKeys...)

	return strings.TrimSpace(email)
}

// ResolveName returns the first and last name from the bag, each empty when
// absent.
func ResolveName(bag Bag) (firstName, lastName string) {
	firstName, _ = bag.Lookup(firstNameKeys...)
	lastName, _ = bag.Lookup(lastNameKeys...)

	return strings.TrimSpace(firstName), strings.TrimSpace(lastName)
}

// FullName joins the name parts with a single space, tolerating either part
// being empty.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
