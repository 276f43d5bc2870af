package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubsync-io/hubsync/pkg/cli/config"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeMappings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groups.yml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadGroupMappings(t *testing.T) {
	t.Run("Valid file loads", func(t *testing.T) {
		path := writeMappings(t, `
groups:
  - id: g-designers
    name: Designers
    role: DESIGNER
    organizations:
      - name: org-a
      - name: org-b
  - id: g-consumers
    role: CONSUMER
    organizations:
      - name: org-a
`)

		cfg, err := config.LoadGroupMappings(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, len(cfg.Groups))
		gt.Equal(t, types.GroupID("g-designers"), cfg.Groups[0].ID)
		gt.Equal(t, types.Role("DESIGNER"), cfg.Groups[0].Role)
		gt.Equal(t, 2, len(cfg.Groups[0].Organizations))
	})

	t.Run("Empty path fails", func(t *testing.T) {
		_, err := config.LoadGroupMappings("")
		gt.Error(t, err)
	})

	t.Run("Missing file fails", func(t *testing.T) {
		_, err := config.LoadGroupMappings(filepath.Join(t.TempDir(), "nope.yml"))
		gt.Error(t, err)
	})

	t.Run("Malformed YAML fails", func(t *testing.T) {
		path := writeMappings(t, "groups: [broken")
		_, err := config.LoadGroupMappings(path)
		gt.Error(t, err)
	})

	t.Run("Duplicate group IDs fail validation", func(t *testing.T) {
		path := writeMappings(t, `
groups:
  - id: g1
    role: DESIGNER
    organizations:
      - name: org-a
  - id: g1
    role: CONSUMER
    organizations:
      - name: org-b
`)
		_, err := config.LoadGroupMappings(path)
		gt.Error(t, err)
	})

	t.Run("Group without organizations fails validation", func(t *testing.T) {
		path := writeMappings(t, `
groups:
  - id: g1
    role: DESIGNER
    organizations: []
`)
		_, err := config.LoadGroupMappings(path)
		gt.Error(t, err)
	})
}

func TestGroupsConfigure(t *testing.T) {
	path := writeMappings(t, `
groups:
  - id: g1
    role: DESIGNER
    organizations:
      - name: org-a
`)

	groups := &config.Groups{Path: path}
	mappings, err := groups.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, mappings.Len())

	mapping, ok := mappings.Lookup("g1")
	gt.True(t, ok)
	gt.Equal(t, types.Role("DESIGNER"), mapping.Role)
}
