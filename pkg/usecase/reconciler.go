package usecase

import (
	"context"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

// Reconciler maps one group membership change onto idempotent hub
// operations across every organization the group is configured for.
// Organizations are processed sequentially in mapping order; a failure
// on one organization never blocks the rest of the fan-out.
type Reconciler struct {
	hub      interfaces.HubRepository
	mappings *model.Mappings
	guard    *RemovalGuard
}

// NewReconciler creates a reconciler over an immutable set of group
// mappings
func NewReconciler(hub interfaces.HubRepository, mappings *model.Mappings) *Reconciler {
	return &Reconciler{
		hub:      hub,
		mappings: mappings,
		guard:    NewRemovalGuard(hub),
	}
}

// Resolve looks up the mapping of a directory group. Unknown groups
// are expected; the feed may cover groups outside our scope.
func (r *Reconciler) Resolve(groupID types.GroupID) (*model.GroupMapping, bool) {
	return r.mappings.Lookup(groupID)
}

// SyncMember upserts the member into every organization the group maps
// to: patch the role when the member already exists, create otherwise.
// Role assignment is last write wins — when two groups race to assign
// different roles, whichever patch lands last determines the final
// role; no locking is applied here.
func (r *Reconciler) SyncMember(ctx context.Context, groupID types.GroupID, profile model.MemberProfile) []model.MemberOutcome {
	mapping, ok := r.Resolve(groupID)
	if !ok {
		ctxlog.From(ctx).Debug("Ignoring unknown group", "groupID", groupID)
		return nil
	}

	outcomes := make([]model.MemberOutcome, 0, len(mapping.Organizations))
	for _, org := range mapping.Organizations {
		outcome := r.upsertOne(ctx, org.Name, mapping.Role, profile)
		logOutcome(ctx, outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// RemoveMember deletes the member from every organization the group
// maps to, guarded per organization by the removal safety check. An
// unsafe check yields a skipped outcome, not an error; redelivered
// removals for an already absent member land there too.
func (r *Reconciler) RemoveMember(ctx context.Context, groupID types.GroupID, email string) []model.MemberOutcome {
	mapping, ok := r.Resolve(groupID)
	if !ok {
		ctxlog.From(ctx).Debug("Ignoring unknown group", "groupID", groupID)
		return nil
	}

	outcomes := make([]model.MemberOutcome, 0, len(mapping.Organizations))
	for _, org := range mapping.Organizations {
		outcome := r.removeOne(ctx, org.Name, mapping.Role, email)
		logOutcome(ctx, outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (r *Reconciler) upsertOne(ctx context.Context, org types.OrgName, role types.Role, profile model.MemberProfile) model.MemberOutcome {
	existing := r.hub.GetMembers(ctx, org, profile.Email)

	if existing.Success && existing.Data != nil && len(existing.Data.Items) > 0 {
		if n := len(existing.Data.Items); n > 1 {
			// The hub guarantees email uniqueness within an organization,
			// so this is an invariant violation on the remote side. Take
			// the first match as authoritative and patch it.
			ctxlog.From(ctx).Warn("Ambiguous member lookup, treating first match as authoritative",
				"org", org,
				"email", profile.Email,
				"matches", n,
			)
		}
		return r.patchMember(ctx, org, role, profile.Email)
	}

	if !existing.Success {
		ctxlog.From(ctx).Warn("Member lookup failed before create, attempting create anyway",
			"org", org,
			"email", profile.Email,
			"result", existing,
		)
	}

	return r.createMember(ctx, org, role, profile)
}

func (r *Reconciler) patchMember(ctx context.Context, org types.OrgName, role types.Role, email string) model.MemberOutcome {
	outcome := model.MemberOutcome{Org: org, Email: email, Role: role, Op: model.OpUpdate}

	result := r.hub.UpdateMembers(ctx, org, model.PatchMemberRequest{
		Members: []model.ModifiedMember{{Email: email, Role: role.String()}},
	})
	outcome.StatusCode = result.StatusCode

	if result.Success && result.Data != nil && len(*result.Data) > 0 {
		patched := (*result.Data)[0]
		outcome.Email = patched.Email
		outcome.Status = patched.Status
		return outcome
	}

	outcome.Err = remoteError(result.Error)
	return outcome
}

func (r *Reconciler) createMember(ctx context.Context, org types.OrgName, role types.Role, profile model.MemberProfile) model.MemberOutcome {
	outcome := model.MemberOutcome{Org: org, Email: profile.Email, Role: role, Op: model.OpCreate}

	result := r.hub.CreateMembers(ctx, org, model.NewMemberRequest{
		Members: []model.Member{{
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Role:      role.String(),
		}},
	})
	outcome.StatusCode = result.StatusCode

	if result.Success && result.Data != nil && len(result.Data.Invited) > 0 {
		invited := result.Data.Invited[0]
		outcome.Email = invited.Email
		outcome.Status = invited.Status
		return outcome
	}

	outcome.Err = remoteError(result.Error)
	return outcome
}

func (r *Reconciler) removeOne(ctx context.Context, org types.OrgName, role types.Role, email string) model.MemberOutcome {
	outcome := model.MemberOutcome{Org: org, Email: email, Role: role, Op: model.OpDelete}

	if safe, reason := r.guard.SafeToRemove(ctx, org, email, role); !safe {
		outcome.Skipped = true
		outcome.Reason = reason
		return outcome
	}

	result := r.hub.DeleteMember(ctx, org, email)
	outcome.StatusCode = result.StatusCode

	if result.Success && result.Data != nil && len(*result.Data) > 0 {
		deleted := (*result.Data)[0]
		outcome.Email = deleted.Email
		outcome.Username = deleted.Username
		outcome.Status = deleted.Status
		return outcome
	}

	outcome.Err = remoteError(result.Error)
	return outcome
}

// remoteError makes sure a failed step always carries a structured
// error even when the hub returned no parseable body
func remoteError(detail *model.ErrorDetail) *model.ErrorDetail {
	if detail != nil {
		return detail
	}
	return &model.ErrorDetail{
		ID:      "unknown_error",
		Message: "the hub returned no error detail",
	}
}

func logOutcome(ctx context.Context, outcome model.MemberOutcome) {
	logger := ctxlog.From(ctx)
	switch {
	case outcome.Failed():
		logger.Error("Reconciliation step failed", "outcome", outcome)
	case outcome.Skipped:
		logger.Info("Reconciliation step skipped", "outcome", outcome)
	default:
		logger.Info("Reconciliation step completed", "outcome", outcome)
	}
}
