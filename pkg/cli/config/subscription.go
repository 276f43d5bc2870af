package config

import (
	"log/slog"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/service/subscription"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Subscription holds change notification subscription configuration
type Subscription struct {
	Resource        string
	ChangeType      string
	NotificationURL string
	LifetimeDays    int64
	RenewWindowDays int64
	Interval        time.Duration
}

// Flags returns CLI flags for Subscription configuration
func (s *Subscription) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "subscription-resource",
			Usage:       "Directory resource to watch for membership changes",
			Category:    "Subscription",
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_RESOURCE"),
			Destination: &s.Resource,
		},
		&cli.StringFlag{
			Name:        "subscription-change-type",
			Usage:       "Change types the subscription covers",
			Category:    "Subscription",
			Value:       "updated",
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_CHANGE_TYPE"),
			Destination: &s.ChangeType,
		},
		&cli.StringFlag{
			Name:        "subscription-notification-url",
			Usage:       "Public URL of the notification webhook",
			Category:    "Subscription",
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_NOTIFICATION_URL"),
			Destination: &s.NotificationURL,
		},
		&cli.Int64Flag{
			Name:        "subscription-lifetime-days",
			Usage:       "Lifetime of a new or renewed subscription in days",
			Category:    "Subscription",
			Value:       25,
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_LIFETIME_DAYS"),
			Destination: &s.LifetimeDays,
		},
		&cli.Int64Flag{
			Name:        "subscription-renew-window-days",
			Usage:       "Renew when the subscription expires within this many days",
			Category:    "Subscription",
			Value:       7,
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_RENEW_WINDOW_DAYS"),
			Destination: &s.RenewWindowDays,
		},
		&cli.DurationFlag{
			Name:        "subscription-check-interval",
			Usage:       "How often the server re-checks the subscription (0 disables the background check)",
			Category:    "Subscription",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("HUBSYNC_SUBSCRIPTION_CHECK_INTERVAL"),
			Destination: &s.Interval,
		},
	}
}

// IsConfigured reports whether subscription management is enabled
func (s *Subscription) IsConfigured() bool {
	return s.Resource != "" && s.NotificationURL != ""
}

// Validate checks that required settings are present
func (s *Subscription) Validate() error {
	if s.Resource == "" {
		return goerr.New("subscription resource is required. Please provide HUBSYNC_SUBSCRIPTION_RESOURCE")
	}
	if s.NotificationURL == "" {
		return goerr.New("subscription notification URL is required. Please provide HUBSYNC_SUBSCRIPTION_NOTIFICATION_URL")
	}
	if s.LifetimeDays <= 0 {
		return goerr.New("subscription lifetime must be positive", goerr.V("days", s.LifetimeDays))
	}
	return nil
}

// Configure creates the subscription manager. clientState is the same
// shared secret the webhook verifies.
func (s *Subscription) Configure(directory interfaces.DirectoryClient, clientState string) (*subscription.Manager, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return subscription.NewManager(directory, subscription.Settings{
		Resource:        s.Resource,
		ChangeType:      s.ChangeType,
		NotificationURL: s.NotificationURL,
		ClientState:     clientState,
		Lifetime:        time.Duration(s.LifetimeDays) * 24 * time.Hour,
		RenewWindow:     time.Duration(s.RenewWindowDays) * 24 * time.Hour,
	}), nil
}

// LogValue returns structured log value
func (s Subscription) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("resource", s.Resource),
		slog.String("changeType", s.ChangeType),
		slog.String("notificationURL", s.NotificationURL),
		slog.Int64("lifetimeDays", s.LifetimeDays),
		slog.Int64("renewWindowDays", s.RenewWindowDays),
		slog.Duration("checkInterval", s.Interval),
	)
}
