package usecase

import (
	"context"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Processor drives the reconciler from inbound change notifications:
// it resolves member profiles through the directory and dispatches
// each membership delta to the reconciler. Members inside one
// notification are processed strictly sequentially.
type Processor struct {
	directory  interfaces.DirectoryClient
	reconciler *Reconciler
}

var _ interfaces.NotificationProcessor = &Processor{}

// NewProcessor creates a notification processor
func NewProcessor(directory interfaces.DirectoryClient, reconciler *Reconciler) *Processor {
	return &Processor{
		directory:  directory,
		reconciler: reconciler,
	}
}

// ProcessNotification handles one validated notification end to end
// and returns the per-organization outcomes. The feed may redeliver
// notifications; every downstream step is idempotent, so reprocessing
// converges to the same state. An error is returned only when the
// notification itself is unusable, never for per-organization failures.
func (p *Processor) ProcessNotification(ctx context.Context, notification *model.Notification) ([]model.MemberOutcome, error) {
	if notification == nil {
		return nil, goerr.New("notification is nil")
	}

	logger := ctxlog.From(ctx).With("correlationID", types.NewCorrelationID())
	ctx = ctxlog.With(ctx, logger)

	data := notification.ResourceData
	if data == nil || len(data.Members) == 0 {
		logger.Debug("Notification carries no membership delta",
			"resource", notification.Resource,
			"subscriptionID", notification.SubscriptionID,
		)
		return nil, nil
	}

	groupID := data.GroupID()
	mapping, known := p.reconciler.Resolve(groupID)
	if !known {
		// Not an error: the subscription may cover groups this service
		// is not configured for.
		logger.Debug("Ignoring notification for unknown group", "groupID", groupID)
		return nil, nil
	}

	logger.Info("Processing membership notification",
		"groupID", groupID,
		"group", mapping.Name,
		"members", len(data.Members),
	)

	var outcomes []model.MemberOutcome
	for _, delta := range data.Members {
		outcomes = append(outcomes, p.processDelta(ctx, groupID, delta)...)
	}
	return outcomes, nil
}

func (p *Processor) processDelta(ctx context.Context, groupID types.GroupID, delta model.MemberDelta) []model.MemberOutcome {
	logger := ctxlog.From(ctx)
	changeType := delta.ChangeType()

	profile, err := p.directory.GetMemberProfile(ctx, delta.MemberID())
	if err != nil {
		logger.Error("Member profile lookup failed",
			"memberID", delta.MemberID(),
			"changeType", changeType,
			"error", err,
		)
		return []model.MemberOutcome{{
			Op:      model.OpResolve,
			Skipped: true,
			Reason:  "member profile lookup failed: " + err.Error(),
		}}
	}
	if profile == nil || profile.Email == "" {
		logger.Warn("Member has no resolvable profile, skipping",
			"memberID", delta.MemberID(),
			"changeType", changeType,
		)
		return []model.MemberOutcome{{
			Op:      model.OpResolve,
			Skipped: true,
			Reason:  "member not found in directory or has no email",
		}}
	}

	logger.Info("Dispatching membership change",
		"memberID", delta.MemberID(),
		"email", profile.Email,
		"changeType", changeType,
	)

	switch changeType {
	case types.ChangeTypeRemoved:
		return p.reconciler.RemoveMember(ctx, groupID, profile.Email)
	default:
		return p.reconciler.SyncMember(ctx, groupID, *profile)
	}
}
