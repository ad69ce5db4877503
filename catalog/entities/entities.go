package entities

import (
	"sort"

	"github.com/airbusgeo/cdse-catalog/common"
	"github.com/airbusgeo/cdse-catalog/service"
)

// AttributeDescriptor describes a product attribute that can be used as a search term
type AttributeDescriptor struct {
	Name        string
	Type        common.AttributeType
	Title       string
	Collections service.StringSet
}

// SupportedBy returns true if the attribute is declared for the collection
func (a AttributeDescriptor) SupportedBy(collection string) bool {
	return a.Collections.Exists(collection)
}

// TermDescriptor describes a search term available for a collection
type TermDescriptor struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Title   string `json:"title,omitempty"`
	Example string `json:"example,omitempty"`
}

// TermDescriptors is a list of TermDescriptor sorted by name
type TermDescriptors []TermDescriptor

// Get returns the descriptor of the given term
func (tds TermDescriptors) Get(name string) (TermDescriptor, bool) {
	for _, td := range tds {
		if td.Name == name {
			return td, true
		}
	}
	return TermDescriptor{}, false
}

// Names returns the names of the terms
func (tds TermDescriptors) Names() []string {
	names := make([]string, len(tds))
	for i, td := range tds {
		names[i] = td.Name
	}
	return names
}

// NewTermDescriptors merges the descriptors by name (the last one wins) and sorts them
func NewTermDescriptors(descriptors ...TermDescriptor) TermDescriptors {
	byName := map[string]TermDescriptor{}
	for _, d := range descriptors {
		byName[d.Name] = d
	}
	tds := make(TermDescriptors, 0, len(byName))
	for _, d := range byName {
		tds = append(tds, d)
	}
	sort.Slice(tds, func(i, j int) bool { return tds[i].Name < tds[j].Name })
	return tds
}
