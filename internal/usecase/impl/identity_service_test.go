package impl

import (
	"context"
	"testing"

	"workdesk/internal/domain/entity"
	"workdesk/internal/domain/identity"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/infra/attrcache"
	mockRepo "workdesk/internal/mocks/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T) (usecase.IdentityUsecase, *mockRepo.MockUserRepository, service.AttributeStore) {
	t.Helper()
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	attrs := attrcache.NewStore(testLogger())
	svc := NewIdentityService(mockUserRepo, attrs, testLogger())

	return svc, mockUserRepo, attrs
}

func TestIdentityService_ResolveIdentity_FromClaimsOnly(t *testing.T) {
	svc, mockUserRepo, attrs := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: "tenant-1",
		Attributes: map[string]any{
			"given_name":  "Jordan",
			"family_name": "Diaz",
			"email":       "jordan@acme.test",
			identity.ClaimNamespace + "business_name":     "Acme Plumbing",
			identity.ClaimNamespace + "subscription_type": "Pro",
		},
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", resolved.FirstName)
	assert.Equal(t, "Diaz", resolved.LastName)
	assert.Equal(t, "Jordan Diaz", resolved.FullName)
	assert.Equal(t, "JD", resolved.Initials)
	assert.Equal(t, "jordan@acme.test", resolved.Email)
	assert.Equal(t, "Acme Plumbing", resolved.BusinessName)
	assert.Equal(t, entity.TierProfessional, resolved.SubscriptionTier)
	assert.Equal(t, "tenant-1", resolved.TenantID)

	// The resolved attributes are cached for the next request.
	cached, ok := attrs.Get("tenant:tenant-1", "business_name")
	require.True(t, ok)
	assert.Equal(t, "Acme Plumbing", cached)
}

func TestIdentityService_ResolveIdentity_ProfileFallback(t *testing.T) {
	svc, mockUserRepo, _ := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	tenantUUID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:               userID,
			TenantID:         tenantUUID,
			Email:            "sam@store.test",
			FirstName:        "Sam",
			LastName:         "Okafor",
			BusinessName:     "Okafor Hardware",
			SubscriptionPlan: "ENTERPRISE-ANNUAL",
		}, nil)

	// The session carries nothing beyond its subject.
	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: tenantUUID.String(),
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Sam", resolved.FirstName)
	assert.Equal(t, "Okafor", resolved.LastName)
	assert.Equal(t, "SO", resolved.Initials)
	assert.Equal(t, "Okafor Hardware", resolved.BusinessName)
	assert.Equal(t, entity.TierEnterprise, resolved.SubscriptionTier)
}

func TestIdentityService_ResolveIdentity_ClaimsBeatProfile(t *testing.T) {
	svc, mockUserRepo, _ := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	tenantUUID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			TenantID:     tenantUUID,
			FirstName:    "Old",
			LastName:     "Name",
			BusinessName: "Stale Business",
		}, nil)

	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: tenantUUID.String(),
		Attributes: map[string]any{
			identity.ClaimNamespace + "business_name": "Fresh Business",
			"first_name": "New",
		},
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "New", resolved.FirstName)
	assert.Equal(t, "Fresh Business", resolved.BusinessName)
	// Fields only the profile knows still fall through.
	assert.Equal(t, "Name", resolved.LastName)
}

func TestIdentityService_ResolveIdentity_UndefinedLiteralSkipped(t *testing.T) {
	svc, mockUserRepo, _ := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	tenantUUID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			TenantID:     tenantUUID,
			BusinessName: "Real Business",
		}, nil)

	// Upstream serialized an absent value as the literal string.
	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: tenantUUID.String(),
		Attributes: map[string]any{
			identity.ClaimNamespace + "business_name": "undefined",
		},
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Real Business", resolved.BusinessName)
}

func TestIdentityService_ResolveIdentity_TenantMismatchInvalidatesCache(t *testing.T) {
	svc, mockUserRepo, attrs := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	// A previous session left attributes scoped to another tenant behind.
	require.NoError(t, attrs.Claim("tenant:tenant-1", "identity_service"))
	require.NoError(t, attrs.Put("tenant:tenant-1", "identity_service", "tenant_id", "tenant-OTHER"))
	require.NoError(t, attrs.Put("tenant:tenant-1", "identity_service", "business_name", "Stale Corp"))

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: "tenant-1",
		Attributes: map[string]any{
			identity.ClaimNamespace + "business_name": "Fresh LLC",
		},
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)

	// The stale namespace contributed nothing and no error surfaced.
	assert.Equal(t, "Fresh LLC", resolved.BusinessName)

	// The cache now holds the re-derived values under the session tenant.
	cachedTenant, ok := attrs.Get("tenant:tenant-1", "tenant_id")
	require.True(t, ok)
	assert.Equal(t, "tenant-1", cachedTenant)
	cachedName, ok := attrs.Get("tenant:tenant-1", "business_name")
	require.True(t, ok)
	assert.Equal(t, "Fresh LLC", cachedName)
}

func TestIdentityService_ResolveIdentity_CacheContributesWhenTenantMatches(t *testing.T) {
	svc, mockUserRepo, attrs := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, attrs.Claim("tenant:tenant-1", "identity_service"))
	require.NoError(t, attrs.Put("tenant:tenant-1", "identity_service", "tenant_id", "tenant-1"))
	require.NoError(t, attrs.Put("tenant:tenant-1", "identity_service", "business_name", "Cached Bakery"))

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	claims := &service.SessionClaims{
		UserID:   userID,
		TenantID: "tenant-1",
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Cached Bakery", resolved.BusinessName)
}

func TestIdentityService_ResolveIdentity_InitialsFromEmail(t *testing.T) {
	svc, mockUserRepo, _ := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	claims := &service.SessionClaims{
		UserID: userID,
		Attributes: map[string]any{
			"email": "maria.lopez@tiles.test",
		},
	}

	resolved, err := svc.ResolveIdentity(ctx, claims)
	require.NoError(t, err)
	assert.Empty(t, resolved.FirstName)
	assert.Equal(t, "ML", resolved.Initials)
}

func TestIdentityService_ResolveIdentity_NilClaims(t *testing.T) {
	svc, _, _ := newIdentityService(t)

	_, err := svc.ResolveIdentity(context.Background(), nil)
	assert.Error(t, err)
}

func TestIdentityService_ResolveIdentity_RepositoryFailure(t *testing.T) {
	svc, mockUserRepo, _ := newIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, errors.New("connection reset"))

	_, err := svc.ResolveIdentity(ctx, &service.SessionClaims{UserID: userID})
	assert.Error(t, err)
}
