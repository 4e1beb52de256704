package accountapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCloseAccount_Success(t *testing.T) {
	var received service.ClosureRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := NewClient(server.URL, time.Second, discardLogger())
	err := gateway.CloseAccount(context.Background(), &service.ClosureRequest{
		Reason:   "closing my business",
		UserID:   "user-1",
		TenantID: "tenant-1",
		Retry:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", received.UserID)
	assert.Equal(t, 1, received.Retry)
}

func TestCloseAccount_StructuredErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"DB_UNAVAILABLE","detail":"connection pool exhausted"}`))
	}))
	defer server.Close()

	gateway := NewClient(server.URL, time.Second, discardLogger())
	err := gateway.CloseAccount(context.Background(), &service.ClosureRequest{UserID: "user-1"})

	var gatewayErr *service.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusServiceUnavailable, gatewayErr.StatusCode)
	assert.Equal(t, "DB_UNAVAILABLE", gatewayErr.Code)
	assert.Contains(t, gatewayErr.Body, "connection pool exhausted")
}

func TestCloseAccount_LegacyPlainTextBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`FATAL: no pg_hba.conf entry for host "10.0.0.3"`))
	}))
	defer server.Close()

	gateway := NewClient(server.URL, time.Second, discardLogger())
	err := gateway.CloseAccount(context.Background(), &service.ClosureRequest{UserID: "user-1"})

	var gatewayErr *service.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Empty(t, gatewayErr.Code)
	assert.Contains(t, gatewayErr.Body, "pg_hba.conf")
}

func TestCloseAccount_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := NewClient(server.URL, time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gateway.CloseAccount(ctx, &service.ClosureRequest{UserID: "user-1"})
	require.Error(t, err)

	// Transport failures are not gateway responses.
	var gatewayErr *service.GatewayError
	assert.False(t, errors.As(err, &gatewayErr))
}
