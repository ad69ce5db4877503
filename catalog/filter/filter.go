// Package filter translates search terms into an OData $filter expression for the CDSE catalogue.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/airbusgeo/cdse-catalog/catalog/attributes"
	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/common"
)

// Build returns the OData filter selecting the products of the collection matching the search terms.
// The clauses are joined with "and" in the order of the terms, after the collection clause.
// The reserved terms (top, skip) are ignored. No partial filter is returned on error.
func Build(collection string, terms entities.SearchTerms) (string, error) {
	filters := []string{"Collection/Name eq " + quote(collection)}

	for _, term := range terms {
		key := term.Key
		if key == TermTop || key == TermSkip {
			continue
		}
		if err := Deprecated(key); err != nil {
			return "", err
		}
		if term.Value == nil {
			return "", invalid(key, "The '%s' parameter has no value.", key)
		}
		value := term.Value.String()

		var clauses []string
		var err error
		if df, ok := dateFiltersByKey[key]; ok {
			clauses, err = dateClauses(df, value)
		} else {
			switch key {
			case TermName, TermName + "Eq":
				clauses = []string{"contains(Name," + quote(value) + ")"}
			case TermGeometry, TermGeometry + "Eq":
				clauses = []string{"OData.CSC.Intersects(area=geography'SRID=4326;" + value + "')"}
			default:
				clauses, err = attributeClauses(key, value)
			}
		}
		if err != nil {
			return "", err
		}
		filters = append(filters, clauses...)
	}

	return strings.Join(filters, " and "), nil
}

func dateClauses(df DateFilter, value string) ([]string, error) {
	interval, isInterval := ParseInterval(value)
	if df.IntervalOnly {
		if !isInterval {
			return nil, requiresInterval(df.Key)
		}
		return []string{
			fmt.Sprintf("%s %s %s", df.Field, interval.LowerOp, interval.Lower),
			fmt.Sprintf("%s %s %s", df.Field, interval.UpperOp, interval.Upper),
		}, nil
	}
	if isInterval {
		return nil, invalid(df.Key, "Interval syntax is not allowed on '%s'. Use the base name for intervals instead.", df.Key)
	}
	return []string{fmt.Sprintf("%s %s %s", df.Field, df.Operator, value)}, nil
}

func attributeClauses(key, value string) ([]string, error) {
	base, op, hasSuffix := ParseOperatorSuffix(key)

	attr, ok := attributes.Lookup(base)
	if !ok {
		return nil, invalid(key, "The '%s' parameter is not supported.", key)
	}

	if !attr.Type.Ordered() {
		if op != common.OperatorEq {
			return nil, invalid(key, "Comparison operators are not supported on %s attribute '%s'.",
				strings.ToLower(attr.Type.String()), base)
		}
		c, err := attributeClause(attr, value, op)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}

	interval, isInterval := ParseInterval(value)
	if !hasSuffix {
		if !isInterval {
			return nil, requiresInterval(key)
		}
		lower, err := attributeClause(attr, interval.Lower, interval.LowerOp)
		if err != nil {
			return nil, err
		}
		upper, err := attributeClause(attr, interval.Upper, interval.UpperOp)
		if err != nil {
			return nil, err
		}
		return []string{lower, upper}, nil
	}
	if isInterval {
		return nil, invalid(key, "Interval syntax is not allowed on '%s'. Use '%s' for intervals instead.", key, base)
	}
	c, err := attributeClause(attr, value, op)
	if err != nil {
		return nil, err
	}
	return []string{c}, nil
}

func requiresInterval(key string) error {
	return invalid(key, "'%s' requires interval syntax, e.g. %s=[a,b]. For an exact match, use '%sEq' instead.", key, key, key)
}

// attributeClause returns Attributes/OData.CSC.<T>/any(att:att/Name eq '<name>' and att/OData.CSC.<T>/Value <op> <value>)
func attributeClause(attr entities.AttributeDescriptor, value string, op common.Operator) (string, error) {
	v, err := renderValue(attr, value)
	if err != nil {
		return "", err
	}
	t := attr.Type.ODataType()
	return fmt.Sprintf("Attributes/OData.CSC.%s/any(att:att/Name eq %s and att/OData.CSC.%s/Value %s %s)",
		t, quote(attr.Name), t, op, v), nil
}

func renderValue(attr entities.AttributeDescriptor, value string) (string, error) {
	switch attr.Type {
	case common.AttributeString:
		return quote(value), nil
	case common.AttributeDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return "", invalid(attr.Name, "Invalid double value '%s' for attribute '%s'.", value, attr.Name)
		}
		return common.FormatDouble(f), nil
	case common.AttributeInteger:
		i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return "", invalid(attr.Name, "Invalid integer value '%s' for attribute '%s'.", value, attr.Name)
		}
		return strconv.FormatInt(i, 10), nil
	case common.AttributeDateTimeOffset:
		return value, nil
	case common.AttributeBoolean:
		b := strings.ToLower(value)
		if b != "true" && b != "false" {
			return "", invalid(attr.Name, "Invalid boolean value '%s' for attribute '%s'. Use 'true' or 'false'.", b, attr.Name)
		}
		return b, nil
	}
	return "", invalid(attr.Name, "Unsupported attribute type '%s' for parameter '%s'.", attr.Type, attr.Name)
}

// quote returns an OData string literal
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
