package config

import (
	"log/slog"

	"github.com/hubsync-io/hubsync/pkg/service/directory"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Directory holds identity provider configuration
type Directory struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	AuthBase     string
	APIBase      string
}

// Flags returns CLI flags for Directory configuration
func (d *Directory) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "directory-tenant-id",
			Usage:       "Directory tenant ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("HUBSYNC_DIRECTORY_TENANT_ID"),
			Destination: &d.TenantID,
		},
		&cli.StringFlag{
			Name:        "directory-client-id",
			Usage:       "Directory application (client) ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("HUBSYNC_DIRECTORY_CLIENT_ID"),
			Destination: &d.ClientID,
		},
		&cli.StringFlag{
			Name:        "directory-client-secret",
			Usage:       "Directory application client secret",
			Category:    "Directory",
			Sources:     cli.EnvVars("HUBSYNC_DIRECTORY_CLIENT_SECRET"),
			Destination: &d.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "directory-auth-base",
			Usage:       "Token endpoint base URL",
			Category:    "Directory",
			Value:       "https://login.microsoftonline.com",
			Sources:     cli.EnvVars("HUBSYNC_DIRECTORY_AUTH_BASE"),
			Destination: &d.AuthBase,
		},
		&cli.StringFlag{
			Name:        "directory-api-base",
			Usage:       "Directory API base URL",
			Category:    "Directory",
			Value:       "https://graph.microsoft.com",
			Sources:     cli.EnvVars("HUBSYNC_DIRECTORY_API_BASE"),
			Destination: &d.APIBase,
		},
	}
}

// Validate checks that required settings are present
func (d *Directory) Validate() error {
	if d.TenantID == "" {
		return goerr.New("directory tenant ID is required. Please provide HUBSYNC_DIRECTORY_TENANT_ID")
	}
	if d.ClientID == "" {
		return goerr.New("directory client ID is required. Please provide HUBSYNC_DIRECTORY_CLIENT_ID")
	}
	if d.ClientSecret == "" {
		return goerr.New("directory client secret is required. Please provide HUBSYNC_DIRECTORY_CLIENT_SECRET")
	}
	return nil
}

// Configure creates the directory client
func (d *Directory) Configure() (*directory.Client, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return directory.New(d.TenantID, d.ClientID, d.ClientSecret,
		directory.WithAuthBase(d.AuthBase),
		directory.WithAPIBase(d.APIBase),
	), nil
}

// LogValue returns structured log value
func (d Directory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenantID", d.TenantID),
		slog.Bool("has_client_id", d.ClientID != ""),
		slog.Bool("has_client_secret", d.ClientSecret != ""),
		slog.String("authBase", d.AuthBase),
		slog.String("apiBase", d.APIBase),
	)
}
