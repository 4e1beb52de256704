package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapt_SourcePriority(t *testing.T) {
	claims := Source{"business_name": "Acme Claims"}
	profile := Source{"business_name": "Acme Profile", "first_name": "Ada"}
	cache := Source{"business_name": "Acme Cache", "subscriptionType": "pro"}

	bag := Adapt(claims, profile, cache)

	assert.Equal(t, "Acme Claims", bag["business_name"])
	assert.Equal(t, "Ada", bag["first_name"])
	assert.Equal(t, "pro", bag["subscriptionType"])
}

func TestAdapt_SkipsUnacceptableValuesSoLowerSourcesFill(t *testing.T) {
	claims := Source{"business_name": "undefined", "tenant_id": ""}
	profile := Source{"business_name": "Acme", "tenant_id": "t-1"}

	bag := Adapt(claims, profile)

	assert.Equal(t, "Acme", bag["business_name"])
	assert.Equal(t, "t-1", bag["tenant_id"])
}

func TestAdapt_NilSourcesAreEmpty(t *testing.T) {
	bag := Adapt(nil, Source{"email": "a@b.co"}, nil)

	assert.Equal(t, "a@b.co", bag["email"])
	assert.Len(t, bag, 1)
}

func TestAdapt_StringifiesScalarsOnly(t *testing.T) {
	bag := Adapt(Source{
		"retries":  3,
		"active":   true,
		"radius":   250.0,
		"ignored":  map[string]any{"nested": true},
		"alsoNil":  nil,
		"fraction": 0.5,
	})

	assert.Equal(t, "3", bag["retries"])
	assert.Equal(t, "true", bag["active"])
	assert.Equal(t, "250", bag["radius"])
	assert.Equal(t, "0.5", bag["fraction"])
	assert.NotContains(t, bag, "ignored")
	assert.NotContains(t, bag, "alsoNil")
}

func TestLookup_ProbesSpellingsInOrder(t *testing.T) {
	bag := Bag{"businessName": "Cached Name", "business_name": "Profile Name"}

	value, ok := bag.Lookup("https://workdesk.app/business_name", "business_name", "businessName")
	assert.True(t, ok)
	assert.Equal(t, "Profile Name", value)

	_, ok = bag.Lookup("company_name")
	assert.False(t, ok)
}

func TestAcceptable_RejectsSerializedAbsence(t *testing.T) {
	for _, bad := range []string{"", "  ", "undefined", "null", "NULL", "Undefined"} {
		assert.False(t, Acceptable(bad), "value %q should be rejected", bad)
	}
	assert.True(t, Acceptable("0"))
	assert.True(t, Acceptable("false"))
	assert.True(t, Acceptable("Acme LLC"))
}
