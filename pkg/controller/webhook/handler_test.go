package webhook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hubsync-io/hubsync/pkg/controller/webhook"
	"github.com/hubsync-io/hubsync/pkg/domain/interfaces/mocks"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestHandleValidationHandshake(t *testing.T) {
	processor := &mocks.NotificationProcessorMock{}
	handler := webhook.NewHandler("secret", processor)

	req := httptest.NewRequest(http.MethodPost, "/hooks/notification?validationToken=token-123", nil)
	rec := httptest.NewRecorder()

	handler.HandleNotification(rec, req)

	gt.Equal(t, http.StatusOK, rec.Code)
	gt.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	gt.Equal(t, "token-123", rec.Body.String())
	gt.Equal(t, 0, len(processor.ProcessNotificationCalls()))
}

func TestHandleNotification(t *testing.T) {
	validBody := `{
		"value": [{
			"subscriptionId": "sub-1",
			"clientState": "secret",
			"changeType": "updated",
			"resource": "Groups",
			"resourceData": {"id": "g1", "members@delta": [{"id": "m1"}]}
		}]
	}`

	t.Run("Valid notification is processed before the ack", func(t *testing.T) {
		processed := false
		processor := &mocks.NotificationProcessorMock{
			ProcessNotificationFunc: func(ctx context.Context, notification *model.Notification) ([]model.MemberOutcome, error) {
				processed = true
				gt.Equal(t, "sub-1", notification.SubscriptionID)
				return nil, nil
			},
		}
		handler := webhook.NewHandler("secret", processor)

		req := httptest.NewRequest(http.MethodPost, "/hooks/notification", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		handler.HandleNotification(rec, req)

		gt.Equal(t, http.StatusOK, rec.Code)
		gt.True(t, processed)
		gt.Equal(t, 1, len(processor.ProcessNotificationCalls()))
	})

	t.Run("Unknown clientState is rejected without processing", func(t *testing.T) {
		processor := &mocks.NotificationProcessorMock{}
		handler := webhook.NewHandler("another-secret", processor)

		req := httptest.NewRequest(http.MethodPost, "/hooks/notification", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		handler.HandleNotification(rec, req)

		gt.Equal(t, http.StatusUnauthorized, rec.Code)
		gt.Equal(t, 0, len(processor.ProcessNotificationCalls()))
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		processor := &mocks.NotificationProcessorMock{}
		handler := webhook.NewHandler("secret", processor)

		req := httptest.NewRequest(http.MethodPost, "/hooks/notification", strings.NewReader("not json"))
		rec := httptest.NewRecorder()

		handler.HandleNotification(rec, req)

		gt.Equal(t, http.StatusBadRequest, rec.Code)
		gt.Equal(t, 0, len(processor.ProcessNotificationCalls()))
	})

	t.Run("Empty envelope is acknowledged", func(t *testing.T) {
		processor := &mocks.NotificationProcessorMock{}
		handler := webhook.NewHandler("secret", processor)

		req := httptest.NewRequest(http.MethodPost, "/hooks/notification", strings.NewReader(`{"value": []}`))
		rec := httptest.NewRecorder()

		handler.HandleNotification(rec, req)

		gt.Equal(t, http.StatusOK, rec.Code)
		gt.Equal(t, 0, len(processor.ProcessNotificationCalls()))
	})

	t.Run("Every notification in the envelope is processed", func(t *testing.T) {
		body := `{
			"value": [
				{"subscriptionId": "sub-1", "clientState": "secret", "resourceData": {"id": "g1", "members@delta": [{"id": "m1"}]}},
				{"subscriptionId": "sub-2", "clientState": "secret", "resourceData": {"id": "g2", "members@delta": [{"id": "m2"}]}}
			]
		}`
		processor := &mocks.NotificationProcessorMock{
			ProcessNotificationFunc: func(ctx context.Context, notification *model.Notification) ([]model.MemberOutcome, error) {
				return nil, nil
			},
		}
		handler := webhook.NewHandler("secret", processor)

		req := httptest.NewRequest(http.MethodPost, "/hooks/notification", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleNotification(rec, req)

		gt.Equal(t, http.StatusOK, rec.Code)
		calls := processor.ProcessNotificationCalls()
		gt.Value(t, 2).Equal(len(calls)).Required()
		gt.Equal(t, "sub-1", calls[0].Notification.SubscriptionID)
		gt.Equal(t, "sub-2", calls[1].Notification.SubscriptionID)
	})
}
