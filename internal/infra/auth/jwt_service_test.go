package auth

import (
	"testing"

	"workdesk/config"
	"workdesk/internal/domain/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "tenant-1", []string{"admin"}, map[string]any{
		identity.ClaimNamespace + "business_name": "Acme LLC",
		"subscription_type":                       "pro",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "Acme LLC", claims.Attributes[identity.ClaimNamespace+"business_name"])
	assert.Equal(t, "pro", claims.Attributes["subscription_type"])
}

func TestJWTService_AttributeCannotShadowReservedClaims(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "tenant-1", nil, map[string]any{
		"sub":       "attacker",
		"tenant_id": "tenant-evil",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.NotContains(t, claims.Attributes, "tenant_id")
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	require.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc := newTestService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(uuid.New(), "tenant-1", nil, nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
}
