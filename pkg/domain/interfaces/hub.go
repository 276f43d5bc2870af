package interfaces

//go:generate moq -out mocks/hub_mock.go -pkg mocks . HubRepository

import (
	"context"

	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

// HubRepository issues membership API calls against the hub, scoped to
// one organization per call. Methods never return a Go error; transport
// and HTTP level failures are folded into the Result so the caller can
// decide per organization how to proceed.
type HubRepository interface {
	// GetMembers lists members of org filtered by email (q={email})
	GetMembers(ctx context.Context, org types.OrgName, email string) model.Result[model.MembersResponse]

	// CreateMembers invites new members to org
	CreateMembers(ctx context.Context, org types.OrgName, req model.NewMemberRequest) model.Result[model.NewMemberResponse]

	// UpdateMembers patches roles of existing members of org
	UpdateMembers(ctx context.Context, org types.OrgName, req model.PatchMemberRequest) model.Result[[]model.PatchedMember]

	// DeleteMember removes the member identified by email from org
	DeleteMember(ctx context.Context, org types.OrgName, email string) model.Result[[]model.DeletedMember]
}
