package model

import (
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// Subscription is a directory change notification subscription
type Subscription struct {
	ID                 types.SubscriptionID `json:"id,omitempty"`
	ChangeType         string               `json:"changeType,omitempty"`
	NotificationURL    string               `json:"notificationUrl,omitempty"`
	Resource           string               `json:"resource,omitempty"`
	ExpirationDateTime time.Time            `json:"expirationDateTime"`
	ClientState        string               `json:"clientState,omitempty"`
}

// ExpiresWithin reports whether the subscription expires before
// now+window
func (s *Subscription) ExpiresWithin(now time.Time, window time.Duration) bool {
	return now.Add(window).After(s.ExpirationDateTime)
}
