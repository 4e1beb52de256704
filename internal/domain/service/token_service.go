// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims holds the decoded claims of an access token. Attributes
// carries every remaining claim verbatim (including the vendor-prefixed
// business-name and subscription spellings) so the identity resolver can
// treat the session as one of its raw attribute sources.
type SessionClaims struct {
	UserID     uuid.UUID
	TenantID   string
	Roles      []string
	Attributes map[string]any
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user session.
	GenerateAccessToken(userID uuid.UUID, tenantID string, roles []string, attributes map[string]any) (string, error)

	// ValidateAccessToken checks a token string and returns its decoded claims.
	ValidateAccessToken(tokenString string) (*SessionClaims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
