package copernicus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/airbusgeo/cdse-catalog/catalog/attributes"
	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/service"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

// CollectionAttribute is an attribute declared by the catalogue for a collection
type CollectionAttribute struct {
	Name      string `json:"Name"`
	ValueType string `json:"ValueType"`
}

// FetchCollectionAttributes returns the attributes declared by the catalogue for the collection.
// ErrCollectionNotFound is returned if the catalogue answers 404.
func (p *Provider) FetchCollectionAttributes(ctx context.Context, collection string, proxies map[string]string) ([]CollectionAttribute, error) {
	client, err := p.session(ctx, proxies)
	if err != nil {
		return nil, fmt.Errorf("FetchCollectionAttributes.%w", err)
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/Attributes(%s)", strings.TrimSuffix(p.baseURL(), "/"), collection)
	var attrs []CollectionAttribute
	if err := service.HTTPGetJSON(ctx, client, url, &attrs); err != nil {
		var serr *service.HTTPStatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("FetchCollectionAttributes: '%s': %w", collection, ErrCollectionNotFound)
		}
		return nil, fmt.Errorf("FetchCollectionAttributes(%s).%w", collection, err)
	}
	return attrs, nil
}

// DescribeCollection describes the default CDSE catalogue
func DescribeCollection(ctx context.Context, collection string, proxies map[string]string) (entities.TermDescriptors, error) {
	return DefaultProvider().DescribeCollection(ctx, collection, proxies)
}

// DescribeCollection returns the search terms supported by the collection, sorted by name:
// the builtin terms and the attributes declared by the catalogue.
// If the catalogue cannot be reached, the attributes are taken from the local registry.
func (p *Provider) DescribeCollection(ctx context.Context, collection string, proxies map[string]string) (entities.TermDescriptors, error) {
	tds := filter.BuiltinTerms()

	attrs, err := p.FetchCollectionAttributes(ctx, collection, proxies)
	switch {
	case errors.Is(err, ErrCollectionNotFound):
		return nil, fmt.Errorf("DescribeCollection.%w", err)
	case err != nil && ctx.Err() != nil:
		return nil, fmt.Errorf("DescribeCollection: %w", ctx.Err())
	case err != nil:
		log.Logger(ctx).Sugar().Warnf("DescribeCollection: %v: using the local attribute registry", err)
		for _, a := range attributes.ForCollection(collection) {
			tds = append(tds, entities.TermDescriptor{Name: a.Name, Type: a.Type.String(), Title: a.Title})
		}
	default:
		for _, a := range attrs {
			if a.Name == "" {
				continue
			}
			td := entities.TermDescriptor{Name: a.Name, Type: a.ValueType}
			if td.Type == "" {
				td.Type = "String"
			}
			if d, ok := attributes.Lookup(a.Name); ok {
				td.Title = d.Title
			}
			tds = append(tds, td)
		}
	}

	return entities.NewTermDescriptors(tds...), nil
}
