// Package handler contains the Pub/Sub push handlers of the worker delivery.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"workdesk/config"
	deliverycontext "workdesk/internal/delivery/context"
	"workdesk/internal/domain/constants"
	"workdesk/internal/domain/entity"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/infra/geo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ClockEventHandler evaluates employee clock/location events against the
// tenant's geofences: it records boundary crossings, forces auto clock-outs
// and fans exit alerts out to the tenant's registered devices.
type ClockEventHandler struct {
	verifyPushAuth  bool
	autoGrace       time.Duration
	logger          *slog.Logger
	geofenceRepo    repository.GeofenceRepository
	eventRepo       repository.GeofenceEventRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
}

// ClockEventHandlerParams holds dependencies for the ClockEventHandler.
type ClockEventHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	GeofenceRepo    repository.GeofenceRepository
	EventRepo       repository.GeofenceEventRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
}

// NewClockEventHandler creates a new Pub/Sub push handler for clock events.
func NewClockEventHandler(params ClockEventHandlerParams) *ClockEventHandler {
	// Push auth is only verifiable for the Google provider outside development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var autoGrace time.Duration
	if params.Config.Geofence != nil {
		autoGrace = params.Config.Geofence.AutoClockOutGrace
	}

	return &ClockEventHandler{
		verifyPushAuth:  verifyPushAuth,
		autoGrace:       autoGrace,
		logger:          params.Logger,
		geofenceRepo:    params.GeofenceRepo,
		eventRepo:       params.EventRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
func (h *ClockEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ClockEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse clock event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// request_id priority: message attributes > event field > existing context.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing clock event",
		slog.String("tenant_id", event.TenantID),
		slog.String("employee_id", event.EmployeeID),
		slog.String("kind", event.Kind),
	)

	if err := h.processClockEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process clock event",
			slog.String("employee_id", event.EmployeeID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; 200 acknowledges permanently
		// broken events so they do not loop forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the event, or
// generates a new one.
func (h *ClockEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ClockEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processClockEvent evaluates the reported position against every active
// geofence of the tenant.
func (h *ClockEventHandler) processClockEvent(ctx context.Context, event *service.ClockEvent) error {
	tenantID, employeeID, err := h.parseEventIDs(event)
	if err != nil {
		return err
	}

	fences, err := h.geofenceRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	occurredAt := time.Unix(event.OccurredAt, 0)
	if event.OccurredAt == 0 {
		occurredAt = time.Now()
	}

	for _, fence := range fences {
		if !fence.IsActive {
			continue
		}

		if err := h.evaluateFence(ctx, fence, tenantID, employeeID, event, occurredAt); err != nil {
			return err
		}
	}

	return nil
}

// evaluateFence records the boundary crossing (if any) for one geofence and
// triggers the configured side effects.
func (h *ClockEventHandler) evaluateFence(ctx context.Context, fence *entity.Geofence, tenantID, employeeID uuid.UUID, event *service.ClockEvent, occurredAt time.Time) error {
	evaluation := geo.Evaluate(fence, event.Latitude, event.Longitude)

	last, err := h.eventRepo.FindLastByGeofenceAndEmployee(ctx, fence.ID, employeeID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if evaluation.Inside {
		// Re-entering (or first sighting inside) yields one entry row, not
		// one per ping.
		if last != nil && last.EventType == entity.GeofenceEventEntry {
			return nil
		}

		return h.recordEvent(ctx, fence, employeeID, entity.GeofenceEventEntry, event, evaluation, occurredAt)
	}

	// Outside the zone.
	if last == nil {
		return nil
	}

	switch last.EventType {
	case entity.GeofenceEventEntry:
		// Only a previously-inside employee who is still on the clock (or
		// explicitly clocking out) constitutes an exit.
		if !event.ClockedIn && event.Kind != service.ClockEventClockOut {
			return nil
		}

		if err := h.recordEvent(ctx, fence, employeeID, entity.GeofenceEventExit, event, evaluation, occurredAt); err != nil {
			return err
		}

		// With no grace period the forced clock-out accompanies the exit;
		// otherwise a later ping past the grace window records it.
		if fence.AutoClockOut && event.Kind != service.ClockEventClockOut && h.autoGrace <= 0 {
			if err := h.autoClockOut(ctx, fence, employeeID, event, evaluation, occurredAt); err != nil {
				return err
			}
		}

		if fence.AlertOnUnexpectedExit && event.Kind == service.ClockEventPing {
			h.sendExitAlerts(ctx, fence, tenantID, employeeID, evaluation)
		}

	case entity.GeofenceEventExit:
		if fence.AutoClockOut && event.ClockedIn && event.Kind == service.ClockEventPing &&
			h.autoGrace > 0 && occurredAt.Sub(last.OccurredAt) >= h.autoGrace {
			if err := h.autoClockOut(ctx, fence, employeeID, event, evaluation, occurredAt); err != nil {
				return err
			}
		}

	case entity.GeofenceEventAutoClockOut:
		// Already forced out, nothing left to do.
	}

	return nil
}

// autoClockOut records the forced clock-out audit row.
func (h *ClockEventHandler) autoClockOut(ctx context.Context, fence *entity.Geofence, employeeID uuid.UUID, event *service.ClockEvent, evaluation geo.Evaluation, occurredAt time.Time) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("[Worker] Auto clock-out triggered",
		slog.String("geofence_id", fence.ID.String()),
		slog.String("employee_id", employeeID.String()),
	)

	return h.recordEvent(ctx, fence, employeeID, entity.GeofenceEventAutoClockOut, event, evaluation, occurredAt)
}

// recordEvent persists one boundary-event audit row.
func (h *ClockEventHandler) recordEvent(ctx context.Context, fence *entity.Geofence, employeeID uuid.UUID, eventType entity.GeofenceEventType, event *service.ClockEvent, evaluation geo.Evaluation, occurredAt time.Time) error {
	record := &entity.GeofenceEvent{
		GeofenceID: fence.ID,
		EmployeeID: employeeID,
		EventType:  eventType,
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		Distance:   evaluation.Distance,
		OccurredAt: occurredAt,
	}

	if err := h.eventRepo.Create(ctx, record); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// sendExitAlerts pushes an unexpected-exit alert to every active device of
// the tenant. Delivery failures are logged, never retried through Pub/Sub;
// the audit row is already written.
func (h *ClockEventHandler) sendExitAlerts(ctx context.Context, fence *entity.Geofence, tenantID, employeeID uuid.UUID, evaluation geo.Evaluation) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// Firebase is optional; without it the audit trail alone stands.
	if h.notificationSvc == nil {
		return
	}

	devices, err := h.deviceRepo.FindActiveByTenant(ctx, tenantID)
	if err != nil {
		logger.Error("[Worker] Failed to load devices for exit alert",
			slog.String("geofence_id", fence.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if len(devices) == 0 {
		return
	}

	title := "Geofence alert"
	body := fmt.Sprintf("An employee left %q while clocked in", fence.Name)
	data := map[string]string{
		"geofence_id": fence.ID.String(),
		"employee_id": employeeID.String(),
		"event_type":  string(entity.GeofenceEventExit),
		"distance":    fmt.Sprintf("%.0f", evaluation.Distance),
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	const batchSize = 500

	totalSent := 0
	totalFailed := 0
	var allInvalidTokens []string

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, invalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send alert batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		allInvalidTokens = append(allInvalidTokens, invalidTokens...)
	}

	h.cleanupInvalidTokens(ctx, allInvalidTokens, deviceMap)

	logger.Info("[Worker] Exit alerts sent",
		slog.String("geofence_id", fence.ID.String()),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(allInvalidTokens)),
	)
}

// cleanupInvalidTokens deactivates devices whose FCM tokens came back invalid.
func (h *ClockEventHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.Deactivate(ctx, device.UserID, device.ID); err != nil {
				logger.Warn("[Worker] Failed to deactivate invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

// parseEventIDs parses and validates the IDs carried on the event. Malformed
// IDs are permanent failures; redelivering the message cannot fix them.
func (h *ClockEventHandler) parseEventIDs(event *service.ClockEvent) (tenantID, employeeID uuid.UUID, err error) {
	tenantID, err = uuid.Parse(event.TenantID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.WithStack(err)
	}

	employeeID, err = uuid.Parse(event.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.WithStack(err)
	}

	return tenantID, employeeID, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	if _, err := idtoken.Validate(req.Context(), token, audience); err != nil {
		return errors.Wrap(err, "invalid pub/sub token")
	}

	return nil
}
