package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// DirectoryClient talks to the identity provider: member profile
// resolution and change notification subscription lifecycle.
type DirectoryClient interface {
	// GetMemberProfile resolves a directory member ID to its profile
	// fields. Returns (nil, nil) when the member does not exist.
	GetMemberProfile(ctx context.Context, id types.MemberID) (*model.MemberProfile, error)

	// ListSubscriptions lists the active change notification subscriptions
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)

	// CreateSubscription registers a new change notification subscription
	CreateSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error)

	// RenewSubscription extends an existing subscription to the given expiry
	RenewSubscription(ctx context.Context, id types.SubscriptionID, expires time.Time) (*model.Subscription, error)
}
