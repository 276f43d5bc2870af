package types

import (
	"strings"

	"github.com/google/uuid"
)

// GroupID represents a directory group identifier (the identity
// provider object ID)
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// MemberID represents a directory member identifier
type MemberID string

// String returns the string representation
func (id MemberID) String() string {
	return string(id)
}

// OrgName represents a hub organization name, used as an API path segment
type OrgName string

// String returns the string representation
func (n OrgName) String() string {
	return string(n)
}

// Role represents a membership role within a hub organization
type Role string

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// EqualFold reports whether two roles match ignoring case. The hub is
// not consistent about role casing across endpoints.
func (r Role) EqualFold(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// ChangeType represents the nature of a group membership change
type ChangeType string

const (
	// ChangeTypeAdded indicates a member was added to a group
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates a member was removed from a group
	ChangeTypeRemoved ChangeType = "removed"
)

// String returns the string representation
func (t ChangeType) String() string {
	return string(t)
}

// SubscriptionID represents a change notification subscription identifier
type SubscriptionID string

// String returns the string representation
func (id SubscriptionID) String() string {
	return string(id)
}

// CorrelationID ties together all log records produced while processing
// one notification
type CorrelationID string

// String returns the string representation
func (id CorrelationID) String() string {
	return string(id)
}

// NewCorrelationID creates a new CorrelationID
func NewCorrelationID() CorrelationID {
	return CorrelationID(uuid.New().String())
}
