package model

import (
	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// Notifications is the envelope of a change notification delivery
type Notifications struct {
	Items []Notification `json:"value"`
}

// Notification is a single change notification from the directory feed
type Notification struct {
	SubscriptionID string        `json:"subscriptionId"`
	ClientState    string        `json:"clientState"`
	ChangeType     string        `json:"changeType"`
	Resource       string        `json:"resource"`
	ResourceData   *ResourceData `json:"resourceData"`
}

// ResourceData carries the group the notification refers to and the
// membership delta
type ResourceData struct {
	ID        string        `json:"id"`
	ODataType string        `json:"@odata.type,omitempty"`
	ODataID   string        `json:"@odata.id,omitempty"`
	Members   []MemberDelta `json:"members@delta"`
}

// GroupID returns the directory group the notification is about
func (d *ResourceData) GroupID() types.GroupID {
	return types.GroupID(d.ID)
}

// MemberDelta is one member entry of a membership delta. Removed is set
// by the feed only when the member left the group.
type MemberDelta struct {
	ID        string `json:"id"`
	ODataType string `json:"@odata.type,omitempty"`
	Removed   string `json:"@removed,omitempty"`
}

// MemberID returns the directory member identifier
func (d MemberDelta) MemberID() types.MemberID {
	return types.MemberID(d.ID)
}

// ChangeType normalizes the delta marker: presence of the removed
// annotation means the member left the group, anything else is an add.
func (d MemberDelta) ChangeType() types.ChangeType {
	if d.Removed != "" {
		return types.ChangeTypeRemoved
	}
	return types.ChangeTypeAdded
}
