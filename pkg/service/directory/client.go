package directory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hubsync-io/hubsync/pkg/domain/interfaces"
	"github.com/hubsync-io/hubsync/pkg/domain/model"
	"github.com/hubsync-io/hubsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultAuthBase = "https://login.microsoftonline.com"
	defaultAPIBase  = "https://graph.microsoft.com"

	defaultTimeout = 30 * time.Second

	// tokenSkew renews the cached token slightly before it expires
	tokenSkew = 2 * time.Minute
)

// Client talks to the directory (Microsoft Graph style): member
// profile resolution and change notification subscriptions. API access
// uses the client credentials flow; the token is cached until shortly
// before expiry.
type Client struct {
	authBase     string
	apiBase      string
	tenantID     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

var _ interfaces.DirectoryClient = &Client{}

// Option configures a directory client
type Option func(*Client)

// WithAuthBase overrides the token endpoint base URL, mainly for tests
func WithAuthBase(base string) Option {
	return func(c *Client) {
		c.authBase = base
	}
}

// WithAPIBase overrides the directory API base URL, mainly for tests
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.apiBase = base
	}
}

// WithHTTPClient overrides the transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a directory client
func New(tenantID, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		authBase:     defaultAuthBase,
		apiBase:      defaultAPIBase,
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMemberProfile resolves a directory member ID to its profile
// fields. A member that no longer exists yields (nil, nil).
func (c *Client) GetMemberProfile(ctx context.Context, id types.MemberID) (*model.MemberProfile, error) {
	var user struct {
		DisplayName       string `json:"displayName"`
		GivenName         string `json:"givenName"`
		Surname           string `json:"surname"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}

	endpoint := c.apiBase + "/v1.0/users/" + url.PathEscape(id.String())
	found, err := c.getJSON(ctx, endpoint, &user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get directory user", goerr.V("memberID", id))
	}
	if !found {
		return nil, nil
	}

	email := user.Mail
	if email == "" {
		// Guest and member accounts without a provisioned mailbox still
		// carry a principal name that is routable in most tenants.
		email = user.UserPrincipalName
	}

	return &model.MemberProfile{
		Email:     email,
		FirstName: user.GivenName,
		LastName:  user.Surname,
	}, nil
}

// ListSubscriptions lists active change notification subscriptions
func (c *Client) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	var resp struct {
		Value []model.Subscription `json:"value"`
	}
	found, err := c.getJSON(ctx, c.apiBase+"/v1.0/subscriptions", &resp)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list subscriptions")
	}
	if !found {
		return nil, nil
	}
	return resp.Value, nil
}

// CreateSubscription registers a new change notification subscription
func (c *Client) CreateSubscription(ctx context.Context, sub model.Subscription) (*model.Subscription, error) {
	var created model.Subscription
	if err := c.sendJSON(ctx, http.MethodPost, c.apiBase+"/v1.0/subscriptions", sub, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create subscription",
			goerr.V("resource", sub.Resource))
	}
	return &created, nil
}

// RenewSubscription extends an existing subscription to the given expiry
func (c *Client) RenewSubscription(ctx context.Context, id types.SubscriptionID, expires time.Time) (*model.Subscription, error) {
	body := struct {
		ExpirationDateTime time.Time `json:"expirationDateTime"`
	}{ExpirationDateTime: expires}

	var renewed model.Subscription
	endpoint := c.apiBase + "/v1.0/subscriptions/" + url.PathEscape(id.String())
	if err := c.sendJSON(ctx, http.MethodPatch, endpoint, body, &renewed); err != nil {
		return nil, goerr.Wrap(err, "failed to renew subscription", goerr.V("subscriptionID", id))
	}
	return &renewed, nil
}

// getJSON performs an authenticated GET. Returns found=false on 404.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, goerr.Wrap(err, "failed to build request")
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, responseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, goerr.Wrap(err, "failed to decode directory response")
	}
	return true, nil
}

// sendJSON performs an authenticated POST or PATCH with a JSON body
// and decodes the response into out
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(string(raw)))
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return responseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode directory response")
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "directory request failed",
			goerr.V("method", req.Method),
			goerr.V("url", req.URL.String()))
	}
	return resp, nil
}

// accessToken returns a cached token or fetches a fresh one via the
// client credentials grant
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp.Add(-tokenSkew)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"scope":         {c.apiBase + "/.default"},
	}

	endpoint := c.authBase + "/" + url.PathEscape(c.tenantID) + "/oauth2/v2.0/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", responseError(resp)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", goerr.Wrap(err, "failed to decode token response")
	}
	if token.AccessToken == "" {
		return "", goerr.New("token response contains no access token")
	}

	c.token = token.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.token, nil
}

func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return goerr.New("directory returned an error",
		goerr.V("statusCode", resp.StatusCode),
		goerr.V("body", string(body)))
}
