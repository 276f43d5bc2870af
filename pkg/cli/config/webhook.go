package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Webhook holds notification webhook configuration
type Webhook struct {
	ClientState string
}

// Flags returns CLI flags for Webhook configuration
func (w *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-client-state",
			Usage:       "Shared secret every change notification must echo back",
			Category:    "Webhook",
			Sources:     cli.EnvVars("HUBSYNC_WEBHOOK_CLIENT_STATE"),
			Destination: &w.ClientState,
		},
	}
}

// Validate checks that required settings are present
func (w *Webhook) Validate() error {
	if w.ClientState == "" {
		return goerr.New("webhook client state is required. Please provide HUBSYNC_WEBHOOK_CLIENT_STATE")
	}
	return nil
}

// LogValue returns structured log value
func (w Webhook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_client_state", w.ClientState != ""),
	)
}
