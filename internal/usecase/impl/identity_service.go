// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"workdesk/internal/domain/entity"
	"workdesk/internal/domain/identity"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/usecase"

	"github.com/pkg/errors"
)

// attributeStoreOwner is the writer identity under which this service claims
// tenant namespaces in the attribute store.
const attributeStoreOwner = "identity_service"

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo repository.UserRepository
	attrs    service.AttributeStore
	logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	userRepo repository.UserRepository,
	attrs service.AttributeStore,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		userRepo: userRepo,
		attrs:    attrs,
		logger:   logger,
	}
}

// ResolveIdentity reconciles the caller's display identity from the session
// claims, the stored profile and the tenant attribute cache, in that priority
// order. The cache namespace is dropped wholesale when its tenant scope does
// not match the session.
func (srv *identityService) ResolveIdentity(ctx context.Context, claims *service.SessionClaims) (*entity.UserIdentity, error) {
	if claims == nil {
		return nil, errors.New("session claims are required")
	}

	claimSource := identity.Source(claims.Attributes)

	profileSource, err := srv.profileSource(ctx, claims)
	if err != nil {
		return nil, err
	}

	cacheSource := srv.cacheSource(claims)

	bag := identity.Adapt(claimSource, profileSource, cacheSource)

	firstName, lastName := identity.ResolveName(bag)
	email := identity.ResolveEmail(bag)

	resolved := &entity.UserIdentity{
		Email:            email,
		FirstName:        firstName,
		LastName:         lastName,
		FullName:         identity.FullName(firstName, lastName),
		Initials:         identity.Initials(firstName, lastName, email),
		TenantID:         identity.ResolveTenantID(bag),
		BusinessName:     identity.ResolveBusinessName(bag),
		SubscriptionTier: identity.ResolveSubscriptionTier(bag),
	}

	srv.cacheResolved(claims, resolved)

	return resolved, nil
}

// profileSource flattens the stored profile row into a raw attribute source.
// A missing profile is not an error; the resolver falls through to the other
// sources.
func (srv *identityService) profileSource(ctx context.Context, claims *service.SessionClaims) (identity.Source, error) {
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("No stored profile for session, resolving from claims only",
				slog.String("userID", claims.UserID.String()),
			)

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load profile for identity resolution")
	}

	return identity.Source{
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"business_name":     user.BusinessName,
		"subscription_plan": user.SubscriptionPlan,
		"tenant_id":         user.TenantID.String(),
	}, nil
}

// cacheSource snapshots the tenant's cached attribute namespace, applying the
// tenant-isolation guard first. A mismatched namespace is invalidated and
// contributes nothing; the event is logged but never surfaces to the caller.
func (srv *identityService) cacheSource(claims *service.SessionClaims) identity.Source {
	if claims.TenantID == "" {
		return nil
	}

	namespace := tenantNamespace(claims.TenantID)
	snapshot := srv.attrs.Snapshot(namespace)
	if len(snapshot) == 0 {
		return nil
	}

	cachedTenant, _ := snapshot["tenant_id"].(string)
	if !identity.TenantMatch(claims.TenantID, cachedTenant) {
		srv.logger.Warn("Cached attributes scoped to a different tenant, invalidating namespace",
			slog.String("sessionTenant", claims.TenantID),
			slog.String("cachedTenant", cachedTenant),
		)
		srv.attrs.Invalidate(namespace)

		return nil
	}

	return identity.Source(snapshot)
}

// cacheResolved writes the resolved display attributes back into the tenant
// namespace so later requests can fall through to them. Write failures only
// mean another component owns the namespace; resolution already succeeded.
func (srv *identityService) cacheResolved(claims *service.SessionClaims, resolved *entity.UserIdentity) {
	if claims.TenantID == "" {
		return
	}

	namespace := tenantNamespace(claims.TenantID)
	if err := srv.attrs.Claim(namespace, attributeStoreOwner); err != nil {
		srv.logger.Debug("Tenant namespace owned elsewhere, skipping attribute cache write",
			slog.String("namespace", namespace),
		)

		return
	}

	entries := map[string]any{
		"tenant_id": claims.TenantID,
	}
	if resolved.BusinessName != "" {
		entries["business_name"] = resolved.BusinessName
	}
	if resolved.SubscriptionTier != "" {
		entries["subscription_type"] = resolved.SubscriptionTier.String()
	}

	for key, value := range entries {
		if err := srv.attrs.Put(namespace, attributeStoreOwner, key, value); err != nil {
			srv.logger.Warn("Failed to cache resolved attribute",
				slog.String("namespace", namespace),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)

			return
		}
	}
}

// tenantNamespace returns the attribute-store namespace of a tenant.
func tenantNamespace(tenantID string) string {
	return "tenant:" + tenantID
}
