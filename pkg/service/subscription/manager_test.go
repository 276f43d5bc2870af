package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces/mocks"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/hubsync-io/hubsync/pkg/service/subscription"
	"github.com/m-mizutani/gt"
)

var testSettings = subscription.Settings{
	Resource:        "/groups/g1/members",
	ChangeType:      "updated",
	NotificationURL: "https://hubsync.example.com/hooks/notification",
	ClientState:     "secret",
	Lifetime:        25 * 24 * time.Hour,
	RenewWindow:     7 * 24 * time.Hour,
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a subscription when none exists", func(t *testing.T) {
		directory := &mocks.DirectoryClientMock{
			ListSubscriptionsFunc: func(ctx context.Context) ([]model.Subscription, error) {
				return nil, nil
			},
			CreateSubscriptionFunc: func(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
				created := sub
				created.ID = "sub-new"
				return &created, nil
			},
		}
		manager := subscription.NewManager(directory, testSettings)
		manager.SetNow(func() time.Time { return now })

		gt.NoError(t, manager.Ensure(ctx)).Required()

		created := directory.CreateSubscriptionCalls()
		gt.Value(t, 1).Equal(len(created)).Required()
		gt.Equal(t, "/groups/g1/members", created[0].Sub.Resource)
		gt.Equal(t, "updated", created[0].Sub.ChangeType)
		gt.Equal(t, "secret", created[0].Sub.ClientState)
		gt.Equal(t, now.Add(25*24*time.Hour), created[0].Sub.ExpirationDateTime)
		gt.Equal(t, 0, len(directory.RenewSubscriptionCalls()))
	})

	t.Run("Renews when expiry falls within the window", func(t *testing.T) {
		directory := &mocks.DirectoryClientMock{
			ListSubscriptionsFunc: func(ctx context.Context) ([]model.Subscription, error) {
				return []model.Subscription{
					{ID: "sub-1", ExpirationDateTime: now.Add(3 * 24 * time.Hour)},
				}, nil
			},
			RenewSubscriptionFunc: func(ctx context.Context, id types.SubscriptionID, expires time.Time) (*model.Subscription, error) {
				return &model.Subscription{ID: id, ExpirationDateTime: expires}, nil
			},
		}
		manager := subscription.NewManager(directory, testSettings)
		manager.SetNow(func() time.Time { return now })

		gt.NoError(t, manager.Ensure(ctx)).Required()

		renewed := directory.RenewSubscriptionCalls()
		gt.Value(t, 1).Equal(len(renewed)).Required()
		gt.Equal(t, types.SubscriptionID("sub-1"), renewed[0].ID)
		gt.Equal(t, now.Add(25*24*time.Hour), renewed[0].Expires)
		gt.Equal(t, 0, len(directory.CreateSubscriptionCalls()))
	})

	t.Run("Leaves a healthy subscription alone", func(t *testing.T) {
		directory := &mocks.DirectoryClientMock{
			ListSubscriptionsFunc: func(ctx context.Context) ([]model.Subscription, error) {
				return []model.Subscription{
					{ID: "sub-1", ExpirationDateTime: now.Add(20 * 24 * time.Hour)},
				}, nil
			},
		}
		manager := subscription.NewManager(directory, testSettings)
		manager.SetNow(func() time.Time { return now })

		gt.NoError(t, manager.Ensure(ctx)).Required()
		gt.Equal(t, 0, len(directory.CreateSubscriptionCalls()))
		gt.Equal(t, 0, len(directory.RenewSubscriptionCalls()))
	})

	t.Run("Renewal targets the longest lived subscription", func(t *testing.T) {
		directory := &mocks.DirectoryClientMock{
			ListSubscriptionsFunc: func(ctx context.Context) ([]model.Subscription, error) {
				return []model.Subscription{
					{ID: "sub-old", ExpirationDateTime: now.Add(24 * time.Hour)},
					{ID: "sub-long", ExpirationDateTime: now.Add(5 * 24 * time.Hour)},
				}, nil
			},
			RenewSubscriptionFunc: func(ctx context.Context, id types.SubscriptionID, expires time.Time) (*model.Subscription, error) {
				return &model.Subscription{ID: id, ExpirationDateTime: expires}, nil
			},
		}
		manager := subscription.NewManager(directory, testSettings)
		manager.SetNow(func() time.Time { return now })

		gt.NoError(t, manager.Ensure(ctx)).Required()

		renewed := directory.RenewSubscriptionCalls()
		gt.Value(t, 1).Equal(len(renewed)).Required()
		gt.Equal(t, types.SubscriptionID("sub-long"), renewed[0].ID)
	})

	t.Run("Listing failure is returned", func(t *testing.T) {
		directory := &mocks.DirectoryClientMock{
			ListSubscriptionsFunc: func(ctx context.Context) ([]model.Subscription, error) {
				return nil, context.DeadlineExceeded
			},
		}
		manager := subscription.NewManager(directory, testSettings)

		gt.Error(t, manager.Ensure(ctx))
	})
}
