package handler

import (
	"log/slog"
	"net/http"

	"workdesk/internal/delivery/http/middleware"
	"workdesk/internal/delivery/http/response"
	"workdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account lifecycle handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// CloseAccount handles the account closure request. The subject and tenant
// come from the session, never from the request body.
func (h *AccountHandler) CloseAccount(c echo.Context) error {
	// Bind leaves the pointer nil on an empty body, so guard both.
	var input *usecase.CloseAccountInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid closure input")
	}

	userID, err := sessionUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID
	input.TenantID, _ = c.Get(middleware.ContextKeyTenantID).(string)

	if err := h.uc.CloseAccount(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account closed successfully")
}
