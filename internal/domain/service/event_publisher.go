package service

import (
	"context"
)

// Clock event kinds carried on the location stream.
const (
	ClockEventPing     = "ping"
	ClockEventClockIn  = "clock_in"
	ClockEventClockOut = "clock_out"
)

// ClockEvent is an employee clock/location sample published for async
// geofence evaluation by the worker.
type ClockEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	TenantID   string  `json:"tenant_id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"` // ping, clock_in or clock_out
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ClockedIn  bool    `json:"clocked_in"` // Whether the employee is currently on the clock
	OccurredAt int64   `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing clock events to a
// message queue for asynchronous geofence evaluation.
type EventPublisher interface {
	// PublishClockEvent publishes a clock event for async processing.
	PublishClockEvent(ctx context.Context, event *ClockEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
