package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelink/config"
	"lifelink/internal/domain/service"
	mockservice "lifelink/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockservice.MockNotificationService) {
	t.Helper()

	notificationSvc := mockservice.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func newPushRequest(t *testing.T, event *service.RequestEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/local/subscriptions/request-events-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHandlePush_CreatedEventFansOutToBloodTypeTopic(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.RequestEvent{
		Type:         service.EventRequestCreated,
		RequestID:    "req-1",
		BloodType:    "A+",
		Units:        2,
		Urgency:      "Normal",
		HospitalName: "City General",
		Location:     "Springfield",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "blood-A_POS", "New A+ blood request",
			"City General needs 2 unit(s) of A+ blood at Springfield",
			map[string]string{
				"type":       service.EventRequestCreated,
				"request_id": "req-1",
				"blood_type": "A+",
			}).
		Return(nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UrgentEventPrefixesBody(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.RequestEvent{
		Type:         service.EventRequestCreated,
		RequestID:    "req-2",
		BloodType:    "O-",
		Units:        1,
		Urgency:      "Urgent",
		HospitalName: "St. Mary",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "blood-O_NEG", "New O- blood request",
			"[URGENT] St. Mary needs 1 unit(s) of O- blood", mock.Anything).
		Return(nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_FulfilledEvent(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.RequestEvent{
		Type:         service.EventRequestFulfilled,
		RequestID:    "req-3",
		BloodType:    "B+",
		HospitalName: "City General",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "blood-B_POS", "B+ request fulfilled",
			"The B+ blood request at City General has been fulfilled. Thank you!", mock.Anything).
		Return(nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SendFailureIsRetryable(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t)

	event := &service.RequestEvent{
		Type:         service.EventRequestCreated,
		RequestID:    "req-4",
		BloodType:    "AB+",
		Units:        1,
		Urgency:      "Normal",
		HospitalName: "City General",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_UnknownBloodTypeIsNotRetried(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := &service.RequestEvent{
		Type:      service.EventRequestCreated,
		RequestID: "req-5",
		BloodType: "X+",
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(newPushRequest(t, event), rec)

	// 200 so Pub/Sub does not redeliver a message that can never succeed.
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_InvalidBase64Data(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not-base64!!"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractTraceID_Priority(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Attributes = map[string]string{"trace_id": "from-attributes"}
	event := &service.RequestEvent{TraceID: "from-event"}

	assert.Equal(t, "from-attributes", h.extractTraceID(context.Background(), &pushMsg, event))

	pushMsg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractTraceID(context.Background(), &pushMsg, event))

	event.TraceID = ""
	assert.NotEmpty(t, h.extractTraceID(context.Background(), &pushMsg, event))
}
