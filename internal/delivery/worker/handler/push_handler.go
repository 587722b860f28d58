package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lifelink/config"
	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/domain/constants"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// fcmTopicPrefix prefixes the blood type topic key, so donors with
// blood type A+ subscribe to "blood-A_POS".
const fcmTopicPrefix = "blood-"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying request lifecycle
// events and fans them out as FCM topic notifications.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google-delivered pushes carry a verifiable OIDC token, and
	// local development skips verification entirely.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse request event
	var event service.RequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse request event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract trace id for distributed tracing
	// Priority: message attributes > event field > existing context
	traceID := h.extractTraceID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", traceID))

	ctx = deliverycontext.WithRequestID(ctx, traceID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing request event",
		slog.String("event_type", event.Type),
		slog.String("blood_request_id", event.RequestID),
		slog.String("blood_type", event.BloodType),
	)

	// Fan out to FCM
	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process request event",
			slog.String("blood_request_id", event.RequestID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Request event processed successfully",
		slog.String("blood_request_id", event.RequestID),
	)

	return c.NoContent(http.StatusOK)
}

// processEvent builds the notification for the event and sends it to the
// topic of the matching blood type.
func (h *PushHandler) processEvent(ctx context.Context, event *service.RequestEvent) error {
	bloodType := entity.BloodType(event.BloodType)
	if !bloodType.IsValid() {
		// Malformed events never become valid on retry.
		return errors.Errorf("unknown blood type %q in event", event.BloodType)
	}

	title, body := h.buildNotification(event, bloodType)
	topic := fcmTopicPrefix + bloodType.TopicKey()

	data := map[string]string{
		"type":       event.Type,
		"request_id": event.RequestID,
		"blood_type": event.BloodType,
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		// FCM failures are usually transient, let Pub/Sub redeliver.
		return newRetryableError(errors.Wrapf(err, "send to topic %s", topic))
	}

	return nil
}

// buildNotification derives the user-facing title and body from the event.
func (h *PushHandler) buildNotification(event *service.RequestEvent, bloodType entity.BloodType) (string, string) {
	switch event.Type {
	case service.EventRequestFulfilled:
		title := fmt.Sprintf("%s request fulfilled", bloodType)

		return title, fmt.Sprintf("The %s blood request at %s has been fulfilled. Thank you!",
			bloodType, event.HospitalName)
	default:
		// request.created and anything newer fall back to the announcement form.
		title := fmt.Sprintf("New %s blood request", bloodType)
		body := fmt.Sprintf("%s needs %d unit(s) of %s blood", event.HospitalName, event.Units, bloodType)
		if strings.EqualFold(event.Urgency, string(entity.UrgencyUrgent)) ||
			strings.EqualFold(event.Urgency, string(entity.UrgencyCritical)) {
			body = fmt.Sprintf("[%s] %s", strings.ToUpper(event.Urgency), body)
		}
		if event.Location != "" {
			body += " at " + event.Location
		}

		return title, body
	}
}

// extractTraceID extracts the trace id from message attributes, the event, or
// generates a new one.
func (h *PushHandler) extractTraceID(ctx context.Context, pushMsg *PubSubMessage, event *service.RequestEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if traceID, ok := pushMsg.Message.Attributes["trace_id"]; ok && traceID != "" {
		return traceID
	}

	// 2. Try event field (from JSON payload)
	if event.TraceID != "" {
		return event.TraceID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if traceID := deliverycontext.GetRequestIDFromContext(ctx); traceID != "" {
		return traceID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
