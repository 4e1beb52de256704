// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"workdesk/internal/domain/entity"
	"workdesk/internal/domain/service"
)

// IdentityUsecase defines the interface for identity resolution operations.
// The resolved identity is rebuilt on every request; it is never persisted.
type IdentityUsecase interface {
	// ResolveIdentity reconciles the caller's display identity from the
	// session claims, the stored profile and the tenant attribute cache.
	ResolveIdentity(ctx context.Context, claims *service.SessionClaims) (*entity.UserIdentity, error)
}
