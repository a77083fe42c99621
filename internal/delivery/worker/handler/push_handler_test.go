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
	"time"

	"biaresh/config"
	"biaresh/internal/domain/constants"
	"biaresh/internal/domain/entity"
	"biaresh/internal/errors"
	"biaresh/internal/infra/pubsub"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotificationUsecase struct {
	mock.Mock
}

func (m *mockNotificationUsecase) HandleStoreEvent(ctx context.Context, event *entity.StoreEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func newTestHandler(uc usecase.NotificationUsecase) *PushHandler {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: uc,
	})
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/notifier"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodedEvent(t *testing.T) string {
	t.Helper()

	event, err := entity.NewStoreEvent(entity.EventOrderPlaced, time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC), map[string]int64{"id": 7})
	require.NoError(t, err)
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_Success(t *testing.T) {
	uc := &mockNotificationUsecase{}
	uc.On("HandleStoreEvent", mock.Anything, mock.MatchedBy(func(e *entity.StoreEvent) bool {
		return e.Type == entity.EventOrderPlaced && string(e.Payload) == `{"id":7}`
	})).Return(nil).Once()

	rec := servePush(newTestHandler(uc), pushBody(t, encodedEvent(t), map[string]string{"request_id": "req-42"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandlePush_RetryableFailure(t *testing.T) {
	uc := &mockNotificationUsecase{}
	uc.On("HandleStoreEvent", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	rec := servePush(newTestHandler(uc), pushBody(t, encodedEvent(t), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedEventIsAcknowledged(t *testing.T) {
	uc := &mockNotificationUsecase{}
	uc.On("HandleStoreEvent", mock.Anything, mock.Anything).
		Return(errors.Wrap(usecase.ErrMalformedEvent, "decode order")).Once()

	rec := servePush(newTestHandler(uc), pushBody(t, encodedEvent(t), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BadEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "not base64", body: pushBody(t, "%%%", nil)},
		{name: "not an event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockNotificationUsecase{}

			rec := servePush(newTestHandler(uc), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "HandleStoreEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePush_RejectsUnverifiedToken(t *testing.T) {
	uc := &mockNotificationUsecase{}
	h := newTestHandler(uc)
	h.verifyPushAuth = true
	h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(h, pushBody(t, encodedEvent(t), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "HandleStoreEvent", mock.Anything, mock.Anything)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, want: false},
		{name: "local in production", env: constants.EnvProduction, provider: constants.PubSubProviderLocal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}

func TestExtractRequestID(t *testing.T) {
	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", extractRequestID(context.Background(), &msg))

	msg.Message.Attributes = nil
	assert.NotEmpty(t, extractRequestID(context.Background(), &msg))
}
