package common

import (
	"strconv"
	"strings"
	"time"
)

// Wire constants of the catalogue
const (
	// MaxPageSize is the maximum number of products returned per page
	MaxPageSize = 1000
	// DateLayout is the date format expected in OData filters (the milliseconds are always zero)
	DateLayout = "2006-01-02T15:04:05.000Z"
)

// FormatDateTime formats t (converted to UTC) for an OData filter
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + ".000Z"
}

// FormatDate formats the calendar day of t at midnight for an OData filter
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02") + "T00:00:00.000Z"
}

// FormatDouble formats f with an explicit fractional part (40 => "40.0")
func FormatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
