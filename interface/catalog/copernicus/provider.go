// Package copernicus queries the OData catalogue of the Copernicus Data Space Ecosystem.
package copernicus

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/airbusgeo/cdse-catalog/interface/shared"
)

const (
	// CatalogueURL is the root of the CDSE OData API
	CatalogueURL = "https://catalogue.dataspace.copernicus.eu/odata/v1"

	// DefaultRetryDelay is the base delay before retrying a page that returned a non-200 status
	DefaultRetryDelay = 60 * time.Second
	// DefaultMaxAttempts is the maximum number of requests for one page
	DefaultMaxAttempts = 10
	// DefaultAttributesTimeout is the timeout of the collection attributes request
	DefaultAttributesTimeout = 30 * time.Second
)

var (
	// ErrCollectionNotFound is returned when the catalogue does not know the collection
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrIndexOutOfRange is returned by FeatureQuery.Get for an index beyond the last product
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownCount is returned by FeatureQuery.Len when the catalogue did not return the total count
	ErrUnknownCount = errors.New("total result count not present in response")
)

// SessionFactory creates the HTTP sessions used to query the catalogue
type SessionFactory interface {
	MakeSession(ctx context.Context, proxies map[string]string) (*http.Client, error)
}

// Provider is a CDSE catalogue
type Provider struct {
	// BaseURL of the OData API (CatalogueURL if empty)
	BaseURL string
	// Sessions creates the HTTP sessions (anonymous sessions if nil)
	Sessions SessionFactory
	// RetryDelay is the base backoff after a non-200 status. It is jittered by up to +25%.
	RetryDelay time.Duration
	// MaxAttempts is the number of requests for a page before giving up (DefaultMaxAttempts if <= 0)
	MaxAttempts int
	// Timeout of the collection attributes request (no timeout if <= 0)
	Timeout time.Duration
}

// DefaultProvider returns the public CDSE catalogue with anonymous sessions
func DefaultProvider() *Provider {
	return &Provider{
		BaseURL:     CatalogueURL,
		Sessions:    &shared.Credentials{},
		RetryDelay:  DefaultRetryDelay,
		MaxAttempts: DefaultMaxAttempts,
		Timeout:     DefaultAttributesTimeout,
	}
}

func (p *Provider) baseURL() string {
	if p.BaseURL == "" {
		return CatalogueURL
	}
	return p.BaseURL
}

func (p *Provider) maxAttempts() int {
	if p.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}

func (p *Provider) session(ctx context.Context, proxies map[string]string) (*http.Client, error) {
	if p.Sessions == nil {
		return (&shared.Credentials{}).MakeSession(ctx, proxies)
	}
	return p.Sessions.MakeSession(ctx, proxies)
}

// backoff returns RetryDelay * (1 + U), U uniform in [0, 0.25)
func (p *Provider) backoff() time.Duration {
	return time.Duration(float64(p.RetryDelay) * (1 + rand.Float64()/4))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
