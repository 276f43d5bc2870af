package model

import (
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Organization is a hub organization targeted by a group mapping
type Organization struct {
	Name types.OrgName `yaml:"name" json:"name"`
}

// GroupMapping links a directory group to a hub role and the
// organizations the group's members belong to
type GroupMapping struct {
	ID            types.GroupID  `yaml:"id"`
	Name          string         `yaml:"name"`
	Role          types.Role     `yaml:"role"`
	Organizations []Organization `yaml:"organizations"`
}

// Validate validates the group mapping
func (m *GroupMapping) Validate() error {
	if m.ID == "" {
		return goerr.New("group mapping ID is required")
	}
	if m.Role == "" {
		return goerr.New("group mapping role is required", goerr.V("group", m.ID))
	}
	if len(m.Organizations) == 0 {
		return goerr.New("group mapping needs at least one organization", goerr.V("group", m.ID))
	}
	for _, org := range m.Organizations {
		if org.Name == "" {
			return goerr.New("organization name is required", goerr.V("group", m.ID))
		}
	}
	return nil
}

// MappingsConfig is the on-disk shape of the group mapping configuration
type MappingsConfig struct {
	Groups []GroupMapping `yaml:"groups"`
}

// Validate validates the whole configuration
func (c *MappingsConfig) Validate() error {
	if len(c.Groups) == 0 {
		return goerr.New("at least one group mapping is required")
	}
	seen := make(map[types.GroupID]struct{}, len(c.Groups))
	for i := range c.Groups {
		g := &c.Groups[i]
		if err := g.Validate(); err != nil {
			return err
		}
		if _, ok := seen[g.ID]; ok {
			return goerr.New("duplicate group mapping ID", goerr.V("group", g.ID))
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

// Mappings is the immutable lookup over validated group mappings. It is
// bound once at startup and injected into whatever needs to resolve
// groups; it is never mutated afterwards.
type Mappings struct {
	byID map[types.GroupID]*GroupMapping
}

// NewMappings builds a Mappings from a validated configuration
func NewMappings(cfg *MappingsConfig) *Mappings {
	byID := make(map[types.GroupID]*GroupMapping, len(cfg.Groups))
	for i := range cfg.Groups {
		g := cfg.Groups[i]
		byID[g.ID] = &g
	}
	return &Mappings{byID: byID}
}

// Lookup resolves a group ID to its mapping. A missing group is not an
// error; the notification feed may cover groups outside our scope.
func (m *Mappings) Lookup(id types.GroupID) (*GroupMapping, bool) {
	g, ok := m.byID[id]
	return g, ok
}

// Len returns the number of configured mappings
func (m *Mappings) Len() int {
	return len(m.byID)
}
