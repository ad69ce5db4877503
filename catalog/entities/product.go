package entities

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// Product is a record returned by the catalogue. Its schema is defined by the server.
// It always contains "Name" and "Id" and the query injects "Collection".
type Product map[string]interface{}

// Product fields
const (
	ProductName       = "Name"
	ProductID         = "Id"
	ProductCollection = "Collection"
	ProductAttributes = "Attributes"
)

func (p Product) str(key string) string {
	if v, ok := p[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Name of the product
func (p Product) Name() string { return p.str(ProductName) }

// ID of the product
func (p Product) ID() string { return p.str(ProductID) }

// Collection the product was queried from
func (p Product) Collection() string { return p.str(ProductCollection) }

// UUID parses the product Id
func (p Product) UUID() (uuid.UUID, error) {
	id, err := uuid.Parse(p.ID())
	if err != nil {
		return uuid.Nil, fmt.Errorf("product %s: invalid Id '%s': %w", p.Name(), p.ID(), err)
	}
	return id, nil
}

// Attribute returns the value of the named attribute from the expanded Attributes array
func (p Product) Attribute(name string) (interface{}, bool) {
	attrs, ok := p[ProductAttributes].([]interface{})
	if !ok {
		return nil, false
	}
	for _, a := range attrs {
		attr, ok := a.(map[string]interface{})
		if !ok {
			continue
		}
		if attr["Name"] == name {
			return attr["Value"], true
		}
	}
	return nil, false
}

func (p Product) date(key, sub string) (time.Time, error) {
	var raw interface{} = p[key]
	if sub != "" {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return time.Time{}, fmt.Errorf("product %s: missing %s", p.Name(), key)
		}
		raw = m[sub]
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("product %s: missing %s/%s", p.Name(), key, sub)
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("product %s: %w", p.Name(), err)
	}
	return t, nil
}

// ContentStart returns the acquisition start date (ContentDate/Start)
func (p Product) ContentStart() (time.Time, error) { return p.date("ContentDate", "Start") }

// ContentEnd returns the acquisition end date (ContentDate/End)
func (p Product) ContentEnd() (time.Time, error) { return p.date("ContentDate", "End") }

// PublicationDate returns the publication date of the product
func (p Product) PublicationDate() (time.Time, error) { return p.date("PublicationDate", "") }
