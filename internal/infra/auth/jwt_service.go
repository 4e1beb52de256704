// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"workdesk/config"
	"workdesk/internal/domain/service"
	"workdesk/internal/errors"
)

// Claims the token layer never copies into SessionClaims.Attributes; every
// other claim is handed to the identity resolver verbatim.
var reservedClaims = map[string]struct{}{
	"sub": {}, "iat": {}, "exp": {}, "nbf": {}, "iss": {}, "aud": {}, "jti": {},
	"tenant_id": {}, "roles": {},
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: time.Hour,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the session
// identity plus any extra attribute claims (business name, subscription
// plan spellings) the auth provider wants to expose to the resolver.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, tenantID string, roles []string, attributes map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}
	if tenantID != "" {
		claims["tenant_id"] = tenantID
	}
	if roles != nil {
		claims["roles"] = roles
	}
	for key, value := range attributes {
		if _, reserved := reservedClaims[key]; reserved {
			continue
		}
		claims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks the validity of a token string and decodes its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return decodeClaims(mapClaims)
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// decodeClaims converts raw map claims into SessionClaims, keeping all
// non-reserved claims as raw attributes for the identity resolver.
func decodeClaims(mapClaims jwt.MapClaims) (*service.SessionClaims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("subject missing from token")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	claims := &service.SessionClaims{
		UserID:     userID,
		Attributes: make(map[string]any),
	}

	if tenantID, ok := mapClaims["tenant_id"].(string); ok {
		claims.TenantID = tenantID
	}
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}
	for key, value := range mapClaims {
		if _, reserved := reservedClaims[key]; reserved {
			continue
		}
		claims.Attributes[key] = value
	}

	return claims, nil
}
