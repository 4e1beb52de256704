// Package accountapi talks to the downstream account deprovisioning service
// over HTTP.
package accountapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"workdesk/internal/domain/service"

	"github.com/pkg/errors"
)

// errorEnvelope is the downstream error body. Newer deployments fill code;
// older ones only return a free-form detail string.
type errorEnvelope struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an AccountGateway backed by the deprovisioning HTTP API.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) service.AccountGateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CloseAccount posts the closure request downstream. Non-2xx responses are
// returned as *service.GatewayError so callers can classify them.
func (c *client) CloseAccount(ctx context.Context, closure *service.ClosureRequest) error {
	body, err := json.Marshal(closure)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("[AccountAPI] Requesting account closure",
		slog.String("user_id", closure.UserID),
		slog.Int("retry", closure.Retry),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Read a bounded chunk of the body for classification and logging.
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if readErr != nil {
		raw = nil
	}

	gatewayErr := &service.GatewayError{
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}

	var envelope errorEnvelope
	if unmarshalErr := json.Unmarshal(raw, &envelope); unmarshalErr == nil {
		gatewayErr.Code = envelope.Code
	}

	c.logger.Warn("[AccountAPI] Closure request failed",
		slog.String("user_id", closure.UserID),
		slog.Int("status", resp.StatusCode),
		slog.String("code", gatewayErr.Code),
	)

	return gatewayErr
}
