// Package shared provides the HTTP sessions used to reach the Copernicus Data Space.
package shared

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/oauth2"

	"github.com/airbusgeo/cdse-catalog/service/log"
)

const (
	// CopernicusTokenURL is the OpenID token endpoint of the Copernicus Data Space
	CopernicusTokenURL = "https://identity.dataspace.copernicus.eu/auth/realms/CDSE/protocol/openid-connect/token"
	// CopernicusClientID is the public client of the Copernicus Data Space
	CopernicusClientID = "cdse-public"
)

// Credentials creates HTTP sessions. Without Username, the sessions are anonymous.
// Otherwise, a token is requested with the password grant on the first session and refreshed when it expires.
type Credentials struct {
	Username string
	Password string
	// ClientID (CopernicusClientID if empty)
	ClientID string
	// TokenURL (CopernicusTokenURL if empty)
	TokenURL string

	mu     sync.Mutex
	tokens oauth2.TokenSource
}

// Anonymous returns true if the credentials do not authenticate the sessions
func (c *Credentials) Anonymous() bool {
	return c == nil || c.Username == ""
}

func (c *Credentials) config() *oauth2.Config {
	cfg := &oauth2.Config{
		ClientID: c.ClientID,
		Endpoint: oauth2.Endpoint{TokenURL: c.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
	}
	if cfg.ClientID == "" {
		cfg.ClientID = CopernicusClientID
	}
	if cfg.Endpoint.TokenURL == "" {
		cfg.Endpoint.TokenURL = CopernicusTokenURL
	}
	return cfg
}

// TokenSource returns the source of the access tokens, authenticating on the first call.
// client is used to reach the token endpoint (http.DefaultClient if nil).
func (c *Credentials) TokenSource(ctx context.Context, client *http.Client) (oauth2.TokenSource, error) {
	if c.Anonymous() {
		return nil, fmt.Errorf("TokenSource: no credentials")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tokens != nil {
		return c.tokens, nil
	}
	if client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client)
	}
	cfg := c.config()
	token, err := cfg.PasswordCredentialsToken(ctx, c.Username, c.Password)
	if err != nil {
		return nil, fmt.Errorf("TokenSource.PasswordCredentialsToken: %w", err)
	}
	log.Logger(ctx).Sugar().Debugf("authenticated as %s (token expires at %s)", c.Username, token.Expiry)
	c.tokens = oauth2.ReuseTokenSource(token, cfg.TokenSource(context.WithoutCancel(ctx), token))
	return c.tokens, nil
}

// MakeSession returns an HTTP client using the proxies ("http", "https" => proxy url)
// and authenticating its requests with a bearer token if the credentials are not anonymous.
func (c *Credentials) MakeSession(ctx context.Context, proxies map[string]string) (*http.Client, error) {
	transport, err := NewTransport(proxies)
	if err != nil {
		return nil, fmt.Errorf("MakeSession.%w", err)
	}
	client := &http.Client{Transport: transport}
	if c.Anonymous() {
		return client, nil
	}
	tokens, err := c.TokenSource(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("MakeSession.%w", err)
	}
	return &http.Client{Transport: &oauth2.Transport{Source: tokens, Base: transport}}, nil
}

// NewTransport returns a transport using the proxies (keyed by url scheme).
// Schemes without proxy use the environment (HTTP_PROXY, HTTPS_PROXY...).
func NewTransport(proxies map[string]string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if len(proxies) == 0 {
		return transport, nil
	}
	parsed := map[string]*url.URL{}
	for scheme, proxy := range proxies {
		if proxy == "" {
			continue
		}
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("NewTransport: invalid %s proxy: %w", scheme, err)
		}
		parsed[scheme] = u
	}
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		if u, ok := parsed[req.URL.Scheme]; ok {
			return u, nil
		}
		return http.ProxyFromEnvironment(req)
	}
	return transport, nil
}
