package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
)

const (
	// internalErrorID classifies transport level failures that never
	// produced an HTTP response from the hub
	internalErrorID = "internal_server_error"

	defaultTimeout = 30 * time.Second
)

// Hub is the HTTP client for the hub's user management API. It is
// stateless across calls; failures are folded into the returned Result
// so the reconciler can decide per organization how to proceed.
type Hub struct {
	baseURL    string
	apiPath    string
	apiVersion string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.HubRepository = &Hub{}

// Option configures a Hub client
type Option func(*Hub)

// WithHTTPClient overrides the transport, mainly for tests
func WithHTTPClient(c *http.Client) Option {
	return func(h *Hub) {
		h.httpClient = c
	}
}

// NewHub creates a hub repository. baseURL is the scheme and host,
// apiPath and apiVersion form the user management API prefix, apiKey is
// sent as-is in the Authorization header.
func NewHub(baseURL, apiPath, apiVersion, apiKey string, opts ...Option) *Hub {
	h := &Hub{
		baseURL:    baseURL,
		apiPath:    apiPath,
		apiVersion: apiVersion,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetMembers lists members of org filtered by email
func (h *Hub) GetMembers(ctx context.Context, org types.OrgName, email string) model.Result[model.MembersResponse] {
	return send[model.MembersResponse](ctx, h, http.MethodGet, membersPath(org), "q="+url.QueryEscape(email), nil)
}

// CreateMembers invites new members to org
func (h *Hub) CreateMembers(ctx context.Context, org types.OrgName, req model.NewMemberRequest) model.Result[model.NewMemberResponse] {
	return send[model.NewMemberResponse](ctx, h, http.MethodPost, membersPath(org), "", req)
}

// UpdateMembers patches roles of existing members of org
func (h *Hub) UpdateMembers(ctx context.Context, org types.OrgName, req model.PatchMemberRequest) model.Result[[]model.PatchedMember] {
	return send[[]model.PatchedMember](ctx, h, http.MethodPatch, membersPath(org), "", req)
}

// DeleteMember removes the member identified by email from org
func (h *Hub) DeleteMember(ctx context.Context, org types.OrgName, email string) model.Result[[]model.DeletedMember] {
	return send[[]model.DeletedMember](ctx, h, http.MethodDelete, membersPath(org), "user="+url.QueryEscape(email), nil)
}

func membersPath(org types.OrgName) string {
	return "/orgs/" + url.PathEscape(org.String()) + "/members"
}

// send performs one hub API call. It never returns a Go error: the
// Result reports either the hub's response or an internal error for
// anything that failed before a response arrived.
func send[T any](ctx context.Context, h *Hub, method, path, query string, body any) model.Result[T] {
	result := model.Result[T]{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
	}

	endpoint := h.baseURL + h.apiPath + "/" + h.apiVersion + path
	if query != "" {
		endpoint += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			result.Error = &model.ErrorDetail{ID: internalErrorID, Message: err.Error()}
			return result
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		result.Error = &model.ErrorDetail{ID: internalErrorID, Message: err.Error()}
		return result
	}
	req.Header.Set("Authorization", h.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		result.Error = &model.ErrorDetail{ID: internalErrorID, Message: err.Error()}
		return result
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = &model.ErrorDetail{ID: internalErrorID, Message: err.Error()}
		return result
	}

	result.StatusCode = resp.StatusCode

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Decode the hub's structured error body if there is one; an
		// undecodable body still yields a failure with the status code.
		var detail model.ErrorDetail
		if len(raw) > 0 && json.Unmarshal(raw, &detail) == nil {
			result.Error = &detail
		}
		return result
	}

	result.Success = true
	if len(raw) > 0 {
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			result.StatusCode = http.StatusInternalServerError
			result.Success = false
			result.Error = &model.ErrorDetail{ID: internalErrorID, Message: err.Error()}
			return result
		}
		result.Data = &data
	}
	return result
}
