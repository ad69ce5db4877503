package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
)

// DefaultLimit is the number of products returned by Products when no limit is given
const DefaultLimit = 100

// Catalog is the main class of this package
type Catalog struct {
	Provider *copernicus.Provider
	Proxies  map[string]string
	// MaxLimit caps the number of products returned by a single call to Products (no cap if 0)
	MaxLimit int
}

// ProductList is a page of products and the total number of products matching the query
type ProductList struct {
	Count *int               `json:"count,omitempty"`
	Value []entities.Product `json:"value"`
}

func (c *Catalog) provider() *copernicus.Provider {
	if c.Provider == nil {
		return copernicus.DefaultProvider()
	}
	return c.Provider
}

// SearchTerms returns the builtin search terms if collection is empty, or the search terms of the collection.
func (c *Catalog) SearchTerms(ctx context.Context, collection string) (entities.TermDescriptors, error) {
	if collection == "" {
		return filter.DescribeSearchTerms(), nil
	}
	tds, err := c.provider().DescribeCollection(ctx, collection, c.Proxies)
	if err != nil {
		return nil, fmt.Errorf("SearchTerms.%w", err)
	}
	return tds, nil
}

// Products returns at most limit products of the collection matching the search terms.
// The count is nil if the catalogue did not return it.
func (c *Catalog) Products(ctx context.Context, collection string, terms entities.SearchTerms, limit int, expandAttributes bool) (ProductList, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if c.MaxLimit > 0 && limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	list := ProductList{Value: []entities.Product{}}

	q, err := c.provider().QueryFeatures(ctx, collection, terms, copernicus.WithProxies(c.Proxies), copernicus.WithExpandAttributes(expandAttributes))
	if err != nil {
		return list, fmt.Errorf("Products.%w", err)
	}

	it := q.Iter(ctx)
	for len(list.Value) < limit && it.Next() {
		list.Value = append(list.Value, it.Product())
	}
	if err := it.Err(); err != nil {
		return list, fmt.Errorf("Products.%w", err)
	}

	count, err := q.Len(ctx)
	switch {
	case err == nil:
		list.Count = &count
	case !errors.Is(err, copernicus.ErrUnknownCount):
		return list, fmt.Errorf("Products.%w", err)
	}
	return list, nil
}
