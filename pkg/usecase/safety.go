package usecase

import (
	"context"
	"fmt"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// RemovalGuard decides whether removing a member from an organization
// is safe. The hub does not expose which directory groups granted a
// role, so this is a conservative heuristic: it skips deletions it is
// unsure about rather than risk revoking an entitlement granted by a
// second, still-active group.
type RemovalGuard struct {
	hub interfaces.HubRepository
}

// NewRemovalGuard creates a removal guard
func NewRemovalGuard(hub interfaces.HubRepository) *RemovalGuard {
	return &RemovalGuard{hub: hub}
}

// SafeToRemove checks the member's current record in org against the
// role of the group being removed from. Deletion is safe only when
// exactly one record exists and its role matches the removed group's
// role (case-insensitively). A failed lookup, an absent member, or an
// ambiguous multi-match all report unsafe with a diagnostic reason.
func (g *RemovalGuard) SafeToRemove(ctx context.Context, org types.OrgName, email string, role types.Role) (bool, string) {
	result := g.hub.GetMembers(ctx, org, email)

	if !result.Success || result.Data == nil {
		return false, fmt.Sprintf("member %s could not be retrieved from organization %s (status code: %d)", email, org, result.StatusCode)
	}

	switch n := len(result.Data.Items); {
	case n == 0:
		return false, fmt.Sprintf("member %s does not exist in organization %s", email, org)
	case n > 1:
		return false, fmt.Sprintf("member %s matches %d records in organization %s", email, n, org)
	}

	current := types.Role(result.Data.Items[0].Role)
	if !current.EqualFold(role) {
		return false, fmt.Sprintf("member %s has role %s in %s but removal is for role %s, assuming multiple group assignments", email, current, org, role)
	}

	return true, ""
}
