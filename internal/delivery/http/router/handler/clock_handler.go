package handler

import (
	"log/slog"
	"net/http"

	deliveryctx "workdesk/internal/delivery/context"
	"workdesk/internal/delivery/http/response"
	"workdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClockHandler holds dependencies for clock event ingestion handlers.
type ClockHandler struct {
	uc     usecase.ClockUsecase
	logger *slog.Logger
}

// NewClockHandler is the constructor for ClockHandler, injected by Fx.
func NewClockHandler(uc usecase.ClockUsecase, logger *slog.Logger) *ClockHandler {
	return &ClockHandler{
		uc:     uc,
		logger: logger,
	}
}

// PublishClockEvent accepts a clock/location sample and puts it on the async
// evaluation stream. The response only acknowledges acceptance; evaluation
// happens in the worker.
func (h *ClockHandler) PublishClockEvent(c echo.Context) error {
	tenantID, err := sessionTenantID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.PublishClockEventInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid clock event input")
	}

	ctx := deliveryctx.WithRequestID(c.Request().Context(), deliveryctx.GetRequestID(c))
	if err := h.uc.PublishClockEvent(ctx, tenantID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Clock event accepted")
}
