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

	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderEventUsecase struct {
	mock.Mock
}

func (m *mockOrderEventUsecase) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func encodedEvent(t *testing.T, event *service.OrderEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPushHandler_DeliversEvent(t *testing.T) {
	eventUC := new(mockOrderEventUsecase)
	h := NewPushHandlerWithVerifier(eventUC, discardLogger(), nil)

	event := &service.OrderEvent{Type: service.OrderEventCreated, OrderID: "0190a0e8-0000-7000-8000-000000000001", RequestID: "from-event"}
	eventUC.On("HandleOrderEvent", mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
		return got.Type == service.OrderEventCreated && got.OrderID == event.OrderID
	})).Return(nil).Once()

	rec := servePush(h, pushBody(t, encodedEvent(t, event), map[string]string{"request_id": "from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	eventUC.AssertExpectations(t)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	eventUC := new(mockOrderEventUsecase)
	h := NewPushHandlerWithVerifier(eventUC, discardLogger(), nil)
	eventUC.On("HandleOrderEvent", mock.Anything, mock.Anything).Return(errors.New("database unavailable")).Once()

	rec := servePush(h, pushBody(t, encodedEvent(t, &service.OrderEvent{Type: service.OrderEventCreated}), nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedEventIsAcknowledged(t *testing.T) {
	eventUC := new(mockOrderEventUsecase)
	h := NewPushHandlerWithVerifier(eventUC, discardLogger(), nil)
	eventUC.On("HandleOrderEvent", mock.Anything, mock.Anything).
		Return(errors.Wrap(usecase.ErrMalformedOrderEvent, "order id")).Once()

	rec := servePush(h, pushBody(t, encodedEvent(t, &service.OrderEvent{Type: service.OrderEventCreated, OrderID: "bad"}), nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsBadPayloads(t *testing.T) {
	eventUC := new(mockOrderEventUsecase)
	h := NewPushHandlerWithVerifier(eventUC, discardLogger(), nil)

	rec := servePush(h, pushBody(t, "%%%not-base64", nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, []byte("{"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	eventUC.AssertNotCalled(t, "HandleOrderEvent", mock.Anything, mock.Anything)
}

func TestPushHandler_VerifierRejects(t *testing.T) {
	eventUC := new(mockOrderEventUsecase)
	h := NewPushHandlerWithVerifier(eventUC, discardLogger(), func(*http.Request) error {
		return errors.New("bad token")
	})

	rec := servePush(h, pushBody(t, encodedEvent(t, &service.OrderEvent{}), nil), http.Header{"Authorization": {"Bearer x"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	eventUC.AssertNotCalled(t, "HandleOrderEvent", mock.Anything, mock.Anything)
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestExtractRequestID_Precedence(t *testing.T) {
	h := NewPushHandlerWithVerifier(new(mockOrderEventUsecase), discardLogger(), nil)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "attr"}
	assert.Equal(t, "attr", h.extractRequestID(context.Background(), &msg, &service.OrderEvent{RequestID: "event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "event", h.extractRequestID(context.Background(), &msg, &service.OrderEvent{RequestID: "event"}))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, &service.OrderEvent{}))
}
