package webhook

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handler receives directory change notifications. It owns transport
// concerns only: the validation handshake, the shared secret check and
// body parsing; everything behind it is the processor's business.
type Handler struct {
	clientState string
	processor   interfaces.NotificationProcessor
}

// NewHandler creates a webhook handler. clientState is the shared
// secret every notification must echo back.
func NewHandler(clientState string, processor interfaces.NotificationProcessor) *Handler {
	return &Handler{
		clientState: clientState,
		processor:   processor,
	}
}

// HandleNotification handles both the subscription validation
// handshake and notification deliveries. Notifications are processed
// to completion before the 200 acknowledgement; the feed redelivers on
// non-2xx, which is the only retry mechanism this service relies on.
func (h *Handler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	// Subscription validation handshake: echo the token as plain text
	if token := r.URL.Query().Get("validationToken"); token != "" {
		logger.Info("Responding to subscription validation handshake")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(token)); err != nil {
			logger.Error("Failed to write validation token", "error", err)
		}
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var notifications model.Notifications
	if err := json.Unmarshal(body, &notifications); err != nil {
		logger.Error("Failed to parse notification body", "error", err)
		http.Error(w, "malformed notification body", http.StatusBadRequest)
		return
	}

	for i := range notifications.Items {
		notification := &notifications.Items[i]

		if subtle.ConstantTimeCompare([]byte(notification.ClientState), []byte(h.clientState)) != 1 {
			logger.Warn("Notification with unknown clientState rejected",
				"subscriptionID", notification.SubscriptionID,
				"resource", notification.Resource,
			)
			http.Error(w, "unknown clientState", http.StatusUnauthorized)
			return
		}

		// Processed to completion before the ack; a redelivered
		// notification converges to the same state.
		if _, err := h.processor.ProcessNotification(r.Context(), notification); err != nil {
			apperr.Handle(r.Context(), goerr.Wrap(err, "failed to process notification",
				goerr.V("subscriptionID", notification.SubscriptionID),
				goerr.V("resource", notification.Resource)))
		}
	}

	w.WriteHeader(http.StatusOK)
}
