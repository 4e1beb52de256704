package impl

import (
	"context"
	"log/slog"
	"time"

	deliveryctx "workdesk/internal/delivery/context"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type clockService struct {
	publisher    service.EventPublisher
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// NewClockService creates a new clock event publishing service instance
func NewClockService(
	publisher service.EventPublisher,
	employeeRepo repository.EmployeeRepository,
	logger *slog.Logger,
) usecase.ClockUsecase {
	return &clockService{
		publisher:    publisher,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (srv *clockService) PublishClockEvent(ctx context.Context, tenantID uuid.UUID, input *usecase.PublishClockEventInput) error {
	if input == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing clock event"))
	}

	switch input.Kind {
	case service.ClockEventPing, service.ClockEventClockIn, service.ClockEventClockOut:
	default:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown clock event kind: " + input.Kind))
	}

	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("coordinates out of range"))
	}

	// Events for employees of other tenants never reach the stream.
	employee, err := srv.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.WithStack(domainerrors.ErrEmployeeNotFound)
		}

		return errors.Wrap(err, "failed to load employee for clock event")
	}
	if employee.TenantID != tenantID {
		return errors.WithStack(domainerrors.ErrEmployeeNotFound)
	}

	occurredAt := input.OccurredAt
	if occurredAt == 0 {
		occurredAt = time.Now().Unix()
	}

	event := &service.ClockEvent{
		RequestID:  deliveryctx.GetRequestIDFromContext(ctx),
		TenantID:   tenantID.String(),
		EmployeeID: input.EmployeeID.String(),
		Kind:       input.Kind,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		ClockedIn:  input.ClockedIn,
		OccurredAt: occurredAt,
	}

	if err := srv.publisher.PublishClockEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish clock event")
	}

	srv.logger.Debug("Published clock event",
		slog.String("employee_id", event.EmployeeID),
		slog.String("kind", event.Kind),
	)

	return nil
}
