// Package attributes is the static registry of the product attributes that can be used as search terms.
// It is loaded once and never modified.
package attributes

import (
	"sort"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/common"
	"github.com/airbusgeo/cdse-catalog/service"
)

type attribute struct {
	name        string
	typ         common.AttributeType
	title       string
	collections []string
}

var registry = func() map[string]entities.AttributeDescriptor {
	r := make(map[string]entities.AttributeDescriptor, len(table))
	for _, a := range table {
		r[a.name] = entities.AttributeDescriptor{
			Name:        a.name,
			Type:        a.typ,
			Title:       a.title,
			Collections: service.NewStringSet(a.collections...),
		}
	}
	return r
}()

// Lookup returns the descriptor of the attribute (case-sensitive)
func Lookup(name string) (entities.AttributeDescriptor, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns the names of all the attributes, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ForCollection returns the attributes declared for the collection, sorted by name
func ForCollection(collection string) []entities.AttributeDescriptor {
	var attrs []entities.AttributeDescriptor
	for _, name := range Names() {
		if a := registry[name]; a.SupportedBy(collection) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}
