// Package graph is the Microsoft Graph connector for SharePoint lists.
// It owns the OAuth2 token lifecycle, site and list resolution,
// paginated item retrieval and item updates. All failures cross the
// boundary as classified domain errors.
package graph

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// Scope is requested on every token operation. offline_access makes
	// the provider return refresh tokens.
	Scope = "https://graph.microsoft.com/Sites.ReadWrite.All offline_access"

	// PageSize is the largest item page Microsoft Graph supports.
	PageSize = 500

	// MaxPages bounds pagination as a runaway guard; at PageSize items
	// per page this still covers 50k items.
	MaxPages = 100

	defaultGraphBase = "https://graph.microsoft.com/v1.0"
	defaultLoginBase = "https://login.microsoftonline.com"

	// refreshSafetyMargin shortens the stored token deadline so a token
	// is refreshed before it can expire mid-request.
	refreshSafetyMargin = 5 * time.Minute

	// Proactive throttle, well below the published Graph limits.
	requestsPerSecond = 4
	burstSize         = 8
)

// Client talks to Microsoft Graph and to the site's REST endpoint on
// behalf of the stored credential. It implements both the ListSource
// and the AuthGateway ports.
type Client struct {
	rest      *resty.Client
	creds     driven.CredentialStore
	limiter   *rate.Limiter
	graphBase string
	loginBase string

	// refreshMu serializes token refresh so concurrent callers cannot
	// race a one-time-use refresh token.
	refreshMu sync.Mutex
}

var (
	_ driven.ListSource  = (*Client)(nil)
	_ driven.AuthGateway = (*Client)(nil)
)

// Option customizes a Client. Used by tests to point at local servers.
type Option func(*Client)

// WithGraphBase overrides the Graph API base URL.
func WithGraphBase(base string) Option {
	return func(c *Client) { c.graphBase = base }
}

// WithLoginBase overrides the identity provider base URL.
func WithLoginBase(base string) Option {
	return func(c *Client) { c.loginBase = base }
}

// WithTimeout overrides the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rest.SetTimeout(d) }
}

// WithRequestRate overrides the proactive throttle.
func WithRequestRate(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewClient creates a connector backed by the given credential store.
func NewClient(creds driven.CredentialStore, opts ...Option) *Client {
	rest := resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("Cache-Control", "no-cache")

	c := &Client{
		rest:      rest,
		creds:     creds,
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
		graphBase: defaultGraphBase,
		loginBase: defaultLoginBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
