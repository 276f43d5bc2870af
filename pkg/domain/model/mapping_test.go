package model_test

import (
	"testing"

	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestGroupMappingValidate(t *testing.T) {
	t.Run("Valid mapping passes", func(t *testing.T) {
		mapping := model.GroupMapping{
			ID:   "g1",
			Name: "Designers",
			Role: "DESIGNER",
			Organizations: []model.Organization{
				{Name: "org-a"},
			},
		}
		gt.NoError(t, mapping.Validate())
	})

	t.Run("Missing ID fails", func(t *testing.T) {
		mapping := model.GroupMapping{
			Role:          "DESIGNER",
			Organizations: []model.Organization{{Name: "org-a"}},
		}
		gt.Error(t, mapping.Validate())
	})

	t.Run("Missing role fails", func(t *testing.T) {
		mapping := model.GroupMapping{
			ID:            "g1",
			Organizations: []model.Organization{{Name: "org-a"}},
		}
		gt.Error(t, mapping.Validate())
	})

	t.Run("No organizations fails", func(t *testing.T) {
		mapping := model.GroupMapping{
			ID:   "g1",
			Role: "DESIGNER",
		}
		gt.Error(t, mapping.Validate())
	})

	t.Run("Organization without name fails", func(t *testing.T) {
		mapping := model.GroupMapping{
			ID:            "g1",
			Role:          "DESIGNER",
			Organizations: []model.Organization{{Name: ""}},
		}
		gt.Error(t, mapping.Validate())
	})
}

func TestMappingsConfigValidate(t *testing.T) {
	t.Run("Duplicate group IDs fail", func(t *testing.T) {
		cfg := model.MappingsConfig{
			Groups: []model.GroupMapping{
				{ID: "g1", Role: "DESIGNER", Organizations: []model.Organization{{Name: "org-a"}}},
				{ID: "g1", Role: "CONSUMER", Organizations: []model.Organization{{Name: "org-b"}}},
			},
		}
		gt.Error(t, cfg.Validate())
	})

	t.Run("Empty configuration fails", func(t *testing.T) {
		cfg := model.MappingsConfig{}
		gt.Error(t, cfg.Validate())
	})
}

func TestMappingsLookup(t *testing.T) {
	cfg := model.MappingsConfig{
		Groups: []model.GroupMapping{
			{ID: "g1", Role: "DESIGNER", Organizations: []model.Organization{{Name: "org-a"}, {Name: "org-b"}}},
			{ID: "g2", Role: "CONSUMER", Organizations: []model.Organization{{Name: "org-c"}}},
		},
	}
	gt.NoError(t, cfg.Validate())
	mappings := model.NewMappings(&cfg)

	t.Run("Known group resolves with organizations in order", func(t *testing.T) {
		mapping, ok := mappings.Lookup(types.GroupID("g1"))
		gt.True(t, ok)
		gt.Equal(t, types.Role("DESIGNER"), mapping.Role)
		gt.Equal(t, 2, len(mapping.Organizations))
		gt.Equal(t, types.OrgName("org-a"), mapping.Organizations[0].Name)
		gt.Equal(t, types.OrgName("org-b"), mapping.Organizations[1].Name)
	})

	t.Run("Unknown group does not resolve", func(t *testing.T) {
		_, ok := mappings.Lookup(types.GroupID("nope"))
		gt.False(t, ok)
	})

	t.Run("Len counts mappings", func(t *testing.T) {
		gt.Equal(t, 2, mappings.Len())
	})
}
