// Package restapi is the REST collaborator of the SSO engine: a thin client
// for the IdP's userinfo and entity APIs. It consumes the engine only
// through an oauth2.TokenSource (in practice the session store), attaching
// the current bearer token to every request and nothing more.
package restapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tenduke/go-sso-client/config"
	"golang.org/x/oauth2"
)

// Client is an authenticated IdP REST API client.
type Client struct {
	baseURL    string
	apiBaseURL string
	cfg        config.Config
	httpClient httpDoer
}

// NewClient creates a REST API client whose requests carry
// "Authorization: Bearer" headers drawn from source. Requests made with no
// active session fail with the token source's error.
//
// The source is consulted on every request rather than wrapped in a caching
// ReuseTokenSource: the session can be reset between calls and a cached
// token would outlive the sign-out.
func NewClient(cfg config.Config, source oauth2.TokenSource) *Client {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: source},
		Timeout:   10 * time.Second,
	}

	baseURL := strings.TrimSuffix(cfg.GetIdPBaseURL(), "/")
	return &Client{
		baseURL:    baseURL,
		apiBaseURL: baseURL + "/" + strings.TrimSuffix(cfg.GetIdPAPIPath(), "/"),
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// UserInfo fetches the IdP /userinfo document for the active session.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.getJSON(ctx, c.baseURL+"/"+c.cfg.GetUserinfoPath(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Users lists all user accounts visible to the session.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, c.apiBaseURL+"/"+c.cfg.GetUsersAPIPath(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single user account by id.
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, c.apiBaseURL+"/"+c.cfg.GetUsersAPIPath()+"/"+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Groups lists all user groups.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.getJSON(ctx, c.apiBaseURL+"/"+c.cfg.GetGroupsAPIPath(), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Roles lists all roles.
func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.getJSON(ctx, c.apiBaseURL+"/"+c.cfg.GetRolesAPIPath(), &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// Organizations lists all organizations.
func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	var organizations []Organization
	if err := c.getJSON(ctx, c.apiBaseURL+"/"+c.cfg.GetOrganizationsAPIPath(), &organizations); err != nil {
		return nil, err
	}
	return organizations, nil
}
