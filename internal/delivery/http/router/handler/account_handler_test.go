package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"workdesk/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Echo skips body binding entirely on a zero-length body, leaving the bound
// pointer nil. The handler has to reject that as a bad request instead of
// dereferencing it.
func TestAccountHandler_CloseAccount_EmptyBody(t *testing.T) {
	handler := &AccountHandler{logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/close-account-fixed", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, uuid.New())
	c.Set(middleware.ContextKeyTenantID, uuid.New().String())

	err := handler.CloseAccount(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
