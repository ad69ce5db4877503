package filter

import (
	"fmt"
	"strings"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/common"
)

// Reserved search terms controlling the pagination. They never appear in the filter.
const (
	TermTop  = "top"
	TermSkip = "skip"
)

// Builtin search terms
const (
	TermName     = "name"
	TermGeometry = "geometry"
)

// DateExample is the example displayed for the date search terms
const DateExample = "2024-01-01 or 2024-01-01T00:00:00Z"

// DateFilter describes a date search term
type DateFilter struct {
	Key      string
	Field    string // OData field (e.g. ContentDate/Start)
	Operator common.Operator
	Title    string
	// IntervalOnly is true for the base name (no operator suffix): the value must be an interval
	IntervalOnly bool
}

type dateField struct {
	base, field, desc string
}

var dateFields = []dateField{
	{"contentDateStart", "ContentDate/Start", "Acquisition start date"},
	{"contentDateEnd", "ContentDate/End", "Acquisition end date"},
	{"publicationDate", "PublicationDate", "Publication date"},
}

// DateFilters lists the date search terms in a stable order (base name first, then each operator suffix)
var DateFilters = func() []DateFilter {
	var dfs []DateFilter
	for _, f := range dateFields {
		dfs = append(dfs, DateFilter{Key: f.base, Field: f.field, Operator: common.OperatorEq,
			Title: dateTitle(f, common.OperatorEq), IntervalOnly: true})
		for _, op := range common.Operators {
			dfs = append(dfs, DateFilter{Key: f.base + op.Suffix(), Field: f.field, Operator: op,
				Title: dateTitle(f, op)})
		}
	}
	return dfs
}()

func dateTitle(f dateField, op common.Operator) string {
	return fmt.Sprintf("%s %s (%s %s)", f.desc, op.Label(), f.field, op)
}

var dateFiltersByKey = func() map[string]DateFilter {
	m := make(map[string]DateFilter, len(DateFilters))
	for _, df := range DateFilters {
		m[df.Key] = df
	}
	return m
}()

var builtinTerms = []entities.TermDescriptor{
	{Name: TermName, Title: "Filter by product name (substring match)", Example: "S2A_MSIL2A_20240110"},
	{Name: TermGeometry, Title: "WKT geometry for spatial filtering", Example: "POLYGON((lon1 lat1, lon2 lat2, ...))"},
}

// deprecated search terms of the former OpenSearch API and their replacement
var deprecatedTerms = map[string]struct{ replacement, msg string }{
	"box": {TermGeometry, "The 'box' parameter was only supported in the old OpenSearch API, " +
		"use the 'geometry' parameter with a polygon in WKT format instead. " +
		"Example: geometry='POLYGON((west south, west north, east north, east south, west south))'."},
	"startDate":       {"contentDateStartGt", "The 'startDate' parameter has been renamed. Use 'contentDateStartGt' instead."},
	"completionDate":  {"contentDateEndLt", "The 'completionDate' parameter has been renamed. Use 'contentDateEndLt' instead."},
	"publishedAfter":  {"publicationDateGt", "The 'publishedAfter' parameter has been renamed. Use 'publicationDateGt' instead."},
	"publishedBefore": {"publicationDateLt", "The 'publishedBefore' parameter has been renamed. Use 'publicationDateLt' instead."},
	"maxRecords":      {TermTop, "The 'maxRecords' parameter has been renamed. Use 'top' instead."},
}

// Deprecated returns an error if key is a deprecated search term
func Deprecated(key string) error {
	if d, ok := deprecatedTerms[key]; ok {
		return &DeprecatedParameterError{Key: key, Replacement: d.replacement, Msg: d.msg}
	}
	return nil
}

// ParseOperatorSuffix splits a key like "cloudCoverLt" into ("cloudCover", lt, true).
// Without a known suffix, the operator is eq and hasSuffix is false.
func ParseOperatorSuffix(key string) (base string, op common.Operator, hasSuffix bool) {
	for _, op := range common.Operators {
		if base, ok := strings.CutSuffix(key, op.Suffix()); ok {
			return base, op, true
		}
	}
	return key, common.OperatorEq, false
}

// DescribeSearchTerms returns the builtin search terms, available for all the collections:
// the date filters with an operator suffix, name and geometry.
func DescribeSearchTerms() entities.TermDescriptors {
	var tds []entities.TermDescriptor
	for _, df := range DateFilters {
		if !df.IntervalOnly {
			tds = append(tds, entities.TermDescriptor{Name: df.Key, Title: df.Title, Example: DateExample})
		}
	}
	return entities.NewTermDescriptors(append(tds, builtinTerms...)...)
}

// BuiltinTerms returns the base date search terms (interval syntax), name and geometry.
func BuiltinTerms() []entities.TermDescriptor {
	var tds []entities.TermDescriptor
	for _, f := range dateFields {
		tds = append(tds, entities.TermDescriptor{Name: f.base, Title: f.desc, Example: DateExample})
	}
	return append(tds, builtinTerms...)
}
