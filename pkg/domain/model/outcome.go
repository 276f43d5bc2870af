package model

import (
	"log/slog"

	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// Operation identifies which hub call an outcome refers to
type Operation string

const (
	// OpCreate is a member create (POST)
	OpCreate Operation = "create"
	// OpUpdate is a member role patch
	OpUpdate Operation = "update"
	// OpDelete is a member delete
	OpDelete Operation = "delete"
	// OpResolve is a directory profile lookup, used for outcomes that
	// never reached the hub
	OpResolve Operation = "resolve"
)

// MemberOutcome records the result of one reconciliation step for one
// organization. Outcomes carry the full context (user, organization,
// operation, error) so callers can log without the core depending on a
// logger.
type MemberOutcome struct {
	Org        types.OrgName
	Email      string
	Username   string
	Role       types.Role
	Status     string
	Op         Operation
	Skipped    bool
	Reason     string
	StatusCode int
	Err        *ErrorDetail
}

// Failed reports whether the step ended in a hub or transport error.
// A skipped deletion is an expected divergence, not a failure.
func (o MemberOutcome) Failed() bool {
	return o.Err != nil
}

// LogValue returns structured log value
func (o MemberOutcome) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("org", o.Org.String()),
		slog.String("email", o.Email),
		slog.String("op", string(o.Op)),
	}
	if o.Username != "" {
		attrs = append(attrs, slog.String("username", o.Username))
	}
	if o.Role != "" {
		attrs = append(attrs, slog.String("role", o.Role.String()))
	}
	if o.Status != "" {
		attrs = append(attrs, slog.String("status", o.Status))
	}
	if o.Skipped {
		attrs = append(attrs, slog.Bool("skipped", true), slog.String("reason", o.Reason))
	}
	if o.Err != nil {
		attrs = append(attrs,
			slog.Int("statusCode", o.StatusCode),
			slog.String("errorID", o.Err.ID),
			slog.String("errorMessage", o.Err.Message),
		)
	}
	return slog.GroupValue(attrs...)
}
