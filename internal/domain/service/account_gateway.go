package service

import (
	"context"
)

// ClosureRequest is the payload sent to the downstream deprovisioning service
// when a user closes their account.
type ClosureRequest struct {
	Reason   string `json:"reason"`
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
	Retry    int    `json:"retry"` // Attempt counter, included for downstream log correlation
}

// GatewayError is the structured error returned by the account gateway. Code
// is filled when the downstream responds with a machine-readable error code;
// Body always carries the raw response for the legacy substring fallback.
type GatewayError struct {
	StatusCode int
	Code       string
	Body       string
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return e.Body
}

// AccountGateway defines the interface to the downstream account
// deprovisioning service.
type AccountGateway interface {
	// CloseAccount requests deprovisioning of the account downstream.
	CloseAccount(ctx context.Context, req *ClosureRequest) error
}
