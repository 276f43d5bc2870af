package model

// MemberProfile holds the directory-sourced identity fields used to
// create a hub member. It is transient, resolved per event.
type MemberProfile struct {
	Email     string
	FirstName string
	LastName  string
}

// Member is the hub wire representation of an organization member
type Member struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// MemberDetail is the full member record as returned by the hub's
// member listing endpoint
type MemberDetail struct {
	Member
	UserID     string `json:"userId,omitempty"`
	Username   string `json:"username,omitempty"`
	InviteTime string `json:"inviteTime,omitempty"`
	StartTime  string `json:"startTime,omitempty"`
	LastActive string `json:"lastActive,omitempty"`
}

// MembersResponse is the hub's paged member listing
type MembersResponse struct {
	TotalCount int            `json:"totalCount"`
	PageSize   int            `json:"pageSize"`
	Page       int            `json:"page"`
	Items      []MemberDetail `json:"items"`
}

// NewMemberRequest is the body of a member create call
type NewMemberRequest struct {
	Members []Member `json:"members"`
}

// NewMember is a single entry of a member create response
type NewMember struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// NewMemberResponse is the body of a member create response
type NewMemberResponse struct {
	Invited []NewMember `json:"invited"`
}

// ModifiedMember is a single entry of a member patch request
type ModifiedMember struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PatchMemberRequest is the body of a member patch call
type PatchMemberRequest struct {
	Members []ModifiedMember `json:"members"`
}

// PatchedMember is a single entry of a member patch response
type PatchedMember struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// DeletedMember is a single entry of a member delete response
type DeletedMember struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Status   string `json:"status"`
}
