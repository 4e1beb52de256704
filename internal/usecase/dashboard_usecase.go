package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DashboardUsecase defines the interface for the tenant dashboard summary.
type DashboardUsecase interface {
	// GetSummary gathers the tenant's headline counts. Counts that cannot be
	// loaded are reported as zero rather than failing the whole summary.
	GetSummary(ctx context.Context, tenantID uuid.UUID) (*DashboardSummary, error)
}

// DashboardSummary holds the headline counts shown on the tenant dashboard.
type DashboardSummary struct {
	Employees   int64 `json:"employees"`
	Geofences   int64 `json:"geofences"`
	Assignments int64 `json:"assignments"`
	Accounts    int64 `json:"accounts"`
}
