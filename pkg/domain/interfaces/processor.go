package interfaces

//go:generate moq -out mocks/processor_mock.go -pkg mocks . NotificationProcessor

import (
	"context"

	"github.com/hubsync-io/hubsync/pkg/domain/model"
)

// NotificationProcessor turns one validated change notification into
// reconciliation outcomes
type NotificationProcessor interface {
	ProcessNotification(ctx context.Context, notification *model.Notification) ([]model.MemberOutcome, error)
}
