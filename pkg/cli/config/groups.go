package config

import (
	"log/slog"
	"os"

	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Groups holds the group mapping configuration source
type Groups struct {
	Path string
}

// Flags returns CLI flags for Groups configuration
func (g *Groups) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "group-mappings",
			Usage:       "Path to the YAML file mapping directory groups to hub organizations",
			Category:    "Groups",
			Sources:     cli.EnvVars("HUBSYNC_GROUP_MAPPINGS"),
			Destination: &g.Path,
		},
	}
}

// Configure loads and validates the group mappings
func (g *Groups) Configure() (*model.Mappings, error) {
	cfg, err := LoadGroupMappings(g.Path)
	if err != nil {
		return nil, err
	}
	return model.NewMappings(cfg), nil
}

// LogValue returns structured log value
func (g Groups) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", g.Path),
	)
}

// LoadGroupMappings loads group mappings from a YAML file
func LoadGroupMappings(path string) (*model.MappingsConfig, error) {
	if path == "" {
		return nil, goerr.New("group mapping file path is required. Please provide HUBSYNC_GROUP_MAPPINGS")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "group mapping file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read group mapping file",
			goerr.V("path", path))
	}

	var config model.MappingsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML group mappings",
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid group mappings",
			goerr.V("path", path))
	}

	return &config, nil
}
