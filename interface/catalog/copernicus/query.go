package copernicus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/common"
	"github.com/airbusgeo/cdse-catalog/service"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

// FeatureQuery is a lazy, randomly indexable sequence of the products matching a query.
// Pages are fetched on demand and cached: the products are never fetched twice.
// A FeatureQuery is not safe for concurrent use.
type FeatureQuery struct {
	provider         *Provider
	collection       string
	terms            entities.SearchTerms
	proxies          map[string]string
	logger           *zap.Logger
	expandAttributes bool

	top, skip int

	features []entities.Product
	nextURL  string // empty when exhausted
	total    int    // -1 until known
	pages    int
}

// QueryOption configures a FeatureQuery
type QueryOption func(*FeatureQuery)

// WithLogger sets the logger of the query (default: the logger of the context)
func WithLogger(l *zap.Logger) QueryOption {
	return func(q *FeatureQuery) {
		if l != nil {
			q.logger = l
		}
	}
}

// WithExpandAttributes requests the Attributes of the products ($expand=Attributes)
func WithExpandAttributes(expand bool) QueryOption {
	return func(q *FeatureQuery) { q.expandAttributes = expand }
}

// WithProxies sets the proxies ("http", "https") of the HTTP sessions
func WithProxies(proxies map[string]string) QueryOption {
	return func(q *FeatureQuery) { q.proxies = proxies }
}

// QueryFeatures queries the default CDSE catalogue
func QueryFeatures(ctx context.Context, collection string, terms entities.SearchTerms, opts ...QueryOption) (*FeatureQuery, error) {
	return DefaultProvider().QueryFeatures(ctx, collection, terms, opts...)
}

// QueryFeatures returns the products of the collection matching the search terms.
// The search terms are validated (filter.ErrValidation) but nothing is fetched until the products are accessed.
// The reserved terms "top" (page size, at most common.MaxPageSize) and "skip" control the pagination.
func (p *Provider) QueryFeatures(ctx context.Context, collection string, terms entities.SearchTerms, opts ...QueryOption) (*FeatureQuery, error) {
	q := &FeatureQuery{
		provider:   p,
		collection: collection,
		terms:      terms,
		logger:     log.Logger(ctx),
		total:      -1,
	}
	for _, opt := range opts {
		opt(q)
	}

	var err error
	if q.skip, err = intTerm(terms, filter.TermSkip, 0); err != nil {
		return nil, fmt.Errorf("QueryFeatures: %w", err)
	}
	if q.top, err = intTerm(terms, filter.TermTop, common.MaxPageSize); err != nil {
		return nil, fmt.Errorf("QueryFeatures: %w", err)
	}
	if q.top > common.MaxPageSize {
		q.logger.Sugar().Warnf("Maximum 'top' value is %d, setting to %d", common.MaxPageSize, common.MaxPageSize)
		q.top = common.MaxPageSize
	}

	f, err := filter.Build(collection, terms)
	if err != nil {
		return nil, fmt.Errorf("QueryFeatures: %w", err)
	}
	q.nextURL = q.firstPageURL(f)
	return q, nil
}

func intTerm(terms entities.SearchTerms, key string, def int) (int, error) {
	v, ok := terms.Get(key)
	if !ok {
		return def, nil
	}
	var i int
	switch v := v.(type) {
	case entities.Int:
		i = int(v)
	case entities.String:
		var err error
		if i, err = strconv.Atoi(strings.TrimSpace(string(v))); err != nil {
			return 0, &filter.ValidationError{Key: key, Msg: fmt.Sprintf("Invalid integer value '%s' for '%s'.", v, key)}
		}
	default:
		return 0, &filter.ValidationError{Key: key, Msg: fmt.Sprintf("Expected an integer or a string for '%s', got %T: %v", key, v, v)}
	}
	if i < 0 {
		return 0, &filter.ValidationError{Key: key, Msg: fmt.Sprintf("'%s' must be positive, got %d.", key, i)}
	}
	return i, nil
}

func (q *FeatureQuery) firstPageURL(odataFilter string) string {
	params := []string{
		"$filter=" + pathEscape(odataFilter),
		"$top=" + strconv.Itoa(q.top),
		"$orderby=ContentDate/Start%20asc",
	}
	if q.skip > 0 {
		params = append(params, "$skip="+strconv.Itoa(q.skip))
	}
	params = append(params, "$count=true")
	if q.expandAttributes {
		params = append(params, "$expand=Attributes")
	}
	return strings.TrimSuffix(q.provider.baseURL(), "/") + "/Products?" + strings.Join(params, "&")
}

// Collection returns the collection of the query
func (q *FeatureQuery) Collection() string { return q.collection }

// SearchTerms returns the search terms of the query
func (q *FeatureQuery) SearchTerms() entities.SearchTerms { return q.terms }

// Fetched returns the number of products already fetched
func (q *FeatureQuery) Fetched() int { return len(q.features) }

// Exhausted returns true when no more page will be fetched
func (q *FeatureQuery) Exhausted() bool { return q.nextURL == "" }

// Len returns the total number of products matching the query, as declared by the catalogue.
// The first page is fetched if nothing was fetched yet. It may differ from the number of products actually returned.
func (q *FeatureQuery) Len(ctx context.Context) (int, error) {
	if q.pages == 0 {
		if err := q.fetch(ctx); err != nil {
			return 0, fmt.Errorf("Len.%w", err)
		}
	}
	if q.total < 0 {
		return 0, fmt.Errorf("Len: %w", ErrUnknownCount)
	}
	return q.total, nil
}

// Get returns the i-th product, fetching the pages up to i if needed.
// ErrIndexOutOfRange is returned if the query is exhausted before i.
func (q *FeatureQuery) Get(ctx context.Context, i int) (entities.Product, error) {
	if i < 0 {
		return nil, fmt.Errorf("Get(%d): %w", i, ErrIndexOutOfRange)
	}
	for i >= len(q.features) && q.nextURL != "" {
		if err := q.fetch(ctx); err != nil {
			return nil, fmt.Errorf("Get(%d).%w", i, err)
		}
	}
	if i >= len(q.features) {
		return nil, fmt.Errorf("Get(%d): %w", i, ErrIndexOutOfRange)
	}
	return q.features[i], nil
}

type productPage struct {
	Value    []entities.Product `json:"value"`
	Count    *int               `json:"@odata.count"`
	NextLink string             `json:"@odata.nextLink"`
}

// fetch fetches the next page. Transient failures are retried. When the retries are exhausted,
// the query is truncated: the products already fetched remain available.
// Only a cancelled context or a session failure is returned.
func (q *FeatureQuery) fetch(ctx context.Context) error {
	if q.nextURL == "" {
		return nil
	}
	client, err := q.provider.session(ctx, q.proxies)
	if err != nil {
		return fmt.Errorf("fetch.%w", err)
	}

	totalPages := "?"
	if q.total >= 0 && q.top > 0 {
		totalPages = strconv.Itoa((q.total-1)/q.top + 1)
	}
	q.logger.Sugar().Debugf("[Copernicus] Search page %d/%s", q.pages+1, totalPages)

	attempts := 0
	for attempts < q.provider.maxAttempts() {
		attempts++
		var page productPage
		err := service.HTTPGetJSON(ctx, client, q.nextURL, &page)
		if err == nil {
			q.appendPage(page)
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("fetch: %w", ctx.Err())
		}
		var serr *service.HTTPStatusError
		if errors.As(err, &serr) {
			q.logger.Sugar().Warnf("Status code %d, retrying..", serr.StatusCode)
			if err := sleep(ctx, q.provider.backoff()); err != nil {
				return fmt.Errorf("fetch: %w", err)
			}
			continue
		}
		if service.Temporary(err) {
			q.logger.Sugar().Warn(err)
			continue
		}
		q.logger.Sugar().Error(err)
		break
	}

	q.logger.Sugar().Errorf("Failed to fetch features after %d attempts", attempts)
	q.nextURL = ""
	return nil
}

func (q *FeatureQuery) appendPage(page productPage) {
	for i, p := range page.Value {
		if p == nil {
			p = entities.Product{}
			page.Value[i] = p
		}
		p[entities.ProductCollection] = q.collection
	}
	q.features = append(q.features, page.Value...)
	q.pages++

	if page.Count != nil {
		q.total = *page.Count
	} else if q.pages == 1 {
		q.logger.Sugar().Error("Total result count not present in response.")
	}

	if page.NextLink != "" && q.top > 0 {
		q.nextURL = StripCountParam(page.NextLink)
	} else {
		q.nextURL = ""
	}
}
