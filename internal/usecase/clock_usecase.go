package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ClockUsecase defines the interface for publishing clock events onto the
// async evaluation stream consumed by the geofence worker.
type ClockUsecase interface {
	// PublishClockEvent validates and publishes one clock/location sample.
	PublishClockEvent(ctx context.Context, tenantID uuid.UUID, input *PublishClockEventInput) error
}

// PublishClockEventInput defines one clock/location sample from a device.
type PublishClockEventInput struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Kind       string    `json:"kind"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ClockedIn  bool      `json:"clocked_in"`
	OccurredAt int64     `json:"occurred_at,omitempty"`
}
