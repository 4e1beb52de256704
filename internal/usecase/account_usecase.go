package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AccountUsecase defines the interface for account lifecycle operations.
type AccountUsecase interface {
	// CloseAccount requests deprovisioning of the caller's account from the
	// downstream service, retrying transient database failures, and marks the
	// local account closed on success.
	CloseAccount(ctx context.Context, input *CloseAccountInput) error
}

// CloseAccountInput defines the data required to close an account.
type CloseAccountInput struct {
	UserID   uuid.UUID `json:"-"`
	TenantID string    `json:"-"`
	Reason   string    `json:"reason"`
}
