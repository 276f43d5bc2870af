package config

import (
	"log/slog"

	"github.com/hubsync-io/hubsync/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Hub holds membership API configuration
type Hub struct {
	BaseURL    string
	APIPath    string
	APIVersion string
	APIKey     string
}

// Flags returns CLI flags for Hub configuration
func (h *Hub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hub-base-url",
			Usage:       "Base URL of the hub",
			Category:    "Hub",
			Value:       "https://api.swaggerhub.com",
			Sources:     cli.EnvVars("HUBSYNC_HUB_BASE_URL"),
			Destination: &h.BaseURL,
		},
		&cli.StringFlag{
			Name:        "hub-api-path",
			Usage:       "Path prefix of the hub's user management API",
			Category:    "Hub",
			Value:       "/user-management",
			Sources:     cli.EnvVars("HUBSYNC_HUB_API_PATH"),
			Destination: &h.APIPath,
		},
		&cli.StringFlag{
			Name:        "hub-api-version",
			Usage:       "Version segment of the hub's user management API",
			Category:    "Hub",
			Value:       "v1",
			Sources:     cli.EnvVars("HUBSYNC_HUB_API_VERSION"),
			Destination: &h.APIVersion,
		},
		&cli.StringFlag{
			Name:        "hub-api-key",
			Usage:       "API key for the hub's user management API",
			Category:    "Hub",
			Sources:     cli.EnvVars("HUBSYNC_HUB_API_KEY"),
			Destination: &h.APIKey,
		},
	}
}

// Validate checks that required settings are present
func (h *Hub) Validate() error {
	if h.BaseURL == "" {
		return goerr.New("hub base URL is required")
	}
	if h.APIKey == "" {
		return goerr.New("hub API key is required. Please provide HUBSYNC_HUB_API_KEY")
	}
	return nil
}

// Configure creates the hub repository
func (h *Hub) Configure() (*repository.Hub, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return repository.NewHub(h.BaseURL, h.APIPath, h.APIVersion, h.APIKey), nil
}

// LogValue returns structured log value
func (h Hub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", h.BaseURL),
		slog.String("apiPath", h.APIPath),
		slog.String("apiVersion", h.APIVersion),
		slog.Bool("has_api_key", h.APIKey != ""),
	)
}
