package subscription

import (
	"context"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Settings describe the change notification subscription this service
// keeps alive
type Settings struct {
	Resource        string
	ChangeType      string
	NotificationURL string
	ClientState     string
	Lifetime        time.Duration
	RenewWindow     time.Duration
}

// Manager keeps the directory change notification subscription alive:
// it creates one when none exists and renews the longest lived one
// before it expires.
type Manager struct {
	directory interfaces.DirectoryClient
	settings  Settings
	now       func() time.Time
}

// NewManager creates a subscription manager
func NewManager(directory interfaces.DirectoryClient, settings Settings) *Manager {
	return &Manager{
		directory: directory,
		settings:  settings,
		now:       time.Now,
	}
}

// Ensure makes sure a live subscription exists: create when absent,
// renew when the longest lived one expires within the renewal window,
// otherwise leave it alone.
func (m *Manager) Ensure(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	subs, err := m.directory.ListSubscriptions(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list subscriptions")
	}

	longest := longestToLive(subs)
	if longest == nil {
		logger.Info("No subscription found, creating new subscription",
			"resource", m.settings.Resource,
		)
		created, err := m.directory.CreateSubscription(ctx, model.Subscription{
			ChangeType:         m.settings.ChangeType,
			NotificationURL:    m.settings.NotificationURL,
			Resource:           m.settings.Resource,
			ExpirationDateTime: m.now().UTC().Add(m.settings.Lifetime),
			ClientState:        m.settings.ClientState,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to create subscription")
		}
		logger.Info("Subscribed",
			"subscriptionID", created.ID,
			"expiration", created.ExpirationDateTime,
		)
		return nil
	}

	if !longest.ExpiresWithin(m.now(), m.settings.RenewWindow) {
		logger.Info("Subscription does not need renewal yet",
			"subscriptionID", longest.ID,
			"expiration", longest.ExpirationDateTime,
		)
		return nil
	}

	logger.Info("Subscription expires soon, renewing",
		"subscriptionID", longest.ID,
		"expiration", longest.ExpirationDateTime,
	)
	renewed, err := m.directory.RenewSubscription(ctx, longest.ID, m.now().UTC().Add(m.settings.Lifetime))
	if err != nil {
		return goerr.Wrap(err, "failed to renew subscription",
			goerr.V("subscriptionID", longest.ID))
	}
	logger.Info("Renewed subscription",
		"subscriptionID", longest.ID,
		"newExpiration", renewed.ExpirationDateTime,
	)
	return nil
}

// Run ensures the subscription immediately and then on every tick of
// interval until the context is cancelled
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if err := m.Ensure(ctx); err != nil {
		ctxlog.From(ctx).Error("Subscription check failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := m.Ensure(ctx); err != nil {
				ctxlog.From(ctx).Error("Subscription check failed", "error", err)
			}
		}
	}
}

func longestToLive(subs []model.Subscription) *model.Subscription {
	var longest *model.Subscription
	for i := range subs {
		if longest == nil || subs[i].ExpirationDateTime.After(longest.ExpirationDateTime) {
			longest = &subs[i]
		}
	}
	return longest
}
