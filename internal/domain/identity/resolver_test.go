package identity

import (
	"testing"

	"workdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveBusinessName_NeverFabricates(t *testing.T) {
	assert.Equal(t, "", ResolveBusinessName(Bag{}))
	assert.Equal(t, "", ResolveBusinessName(Bag{"business_name": "undefined"}))
	assert.Equal(t, "", ResolveBusinessName(Bag{"unrelated": "value"}))
}

func TestResolveBusinessName_ClaimFormWins(t *testing.T) {
	bag := Bag{
		ClaimNamespace + "business_name": "Claim Co",
		"business_name":                  "Profile Co",
		"businessName":                   "Cache Co",
	}

	assert.Equal(t, "Claim Co", ResolveBusinessName(bag))
}

func TestResolveSubscriptionTier_FuzzyMatching(t *testing.T) {
	tests := []struct {
		raw  string
		want entity.SubscriptionTier
	}{
		{"PROFESSIONAL", entity.TierProfessional},
		{"pro-trial", entity.TierProfessional},
		{"Pro", entity.TierProfessional},
		{"ENTERPRISE", entity.TierEnterprise},
		{"ent", entity.TierEnterprise},
		{"Enterprise Annual", entity.TierEnterprise},
		{"basic", entity.TierFree},
		{"free", entity.TierFree},
		{"", entity.TierFree},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTier(tt.raw))
		})
	}
}

func TestResolveSubscriptionTier_AbsentDefaultsToFree(t *testing.T) {
	assert.Equal(t, entity.TierFree, ResolveSubscriptionTier(Bag{}))
	assert.Equal(t, entity.TierFree, ResolveSubscriptionTier(Bag{"subscription_type": "null"}))
}

func TestResolveSubscriptionTier_ProfileFormUsedWhenClaimAbsent(t *testing.T) {
	bag := Bag{"subscription_plan": "Pro"}

	assert.Equal(t, entity.TierProfessional, ResolveSubscriptionTier(bag))
}

func TestResolveName_TrimsAndFallsBack(t *testing.T) {
	first, last := ResolveName(Bag{"given_name": " Ada ", "lastName": "Lovelace"})
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace", last)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", FullName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", FullName("Ada", ""))
	assert.Equal(t, "Lovelace", FullName("", "Lovelace"))
	assert.Equal(t, "", FullName("", ""))
}
