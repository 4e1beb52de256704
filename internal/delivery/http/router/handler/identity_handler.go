package handler

import (
	"log/slog"
	"net/http"

	"workdesk/internal/delivery/http/middleware"
	"workdesk/internal/delivery/http/response"
	"workdesk/internal/domain/service"
	"workdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler holds dependencies for identity-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile resolves and returns the caller's display identity.
func (h *IdentityHandler) GetProfile(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*service.SessionClaims)
	if !ok || claims == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Session claims missing")
	}

	resolved, err := h.uc.ResolveIdentity(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolved, "Profile resolved successfully")
}
