package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/airbusgeo/cdse-catalog/common"
)

// Value is the value of a search term.
// It is one of String, Int, Float, Bool, Date, DateTime or Interval.
type Value interface {
	fmt.Stringer
	isValue()
}

type (
	String string
	Int    int64
	Float  float64
	Bool   bool
	// Date is a calendar day (the time of day is ignored)
	Date struct{ time.Time }
	// DateTime is an instant
	DateTime struct{ time.Time }
)

// Interval is a two-bound value. Exclusive bounds are rendered with parentheses.
type Interval struct {
	Lower, Upper                   Value
	LowerExclusive, UpperExclusive bool
}

func (String) isValue()   {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Date) isValue()     {}
func (DateTime) isValue() {}
func (Interval) isValue() {}

func (v String) String() string   { return string(v) }
func (v Int) String() string      { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string    { return common.FormatDouble(float64(v)) }
func (v Bool) String() string     { return strconv.FormatBool(bool(v)) }
func (v Date) String() string     { return common.FormatDate(v.Time) }
func (v DateTime) String() string { return common.FormatDateTime(v.Time) }

func (v Interval) String() string {
	var sb strings.Builder
	if v.LowerExclusive {
		sb.WriteByte('(')
	} else {
		sb.WriteByte('[')
	}
	sb.WriteString(stringOf(v.Lower))
	sb.WriteByte(',')
	sb.WriteString(stringOf(v.Upper))
	if v.UpperExclusive {
		sb.WriteByte(')')
	} else {
		sb.WriteByte(']')
	}
	return sb.String()
}

func stringOf(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// NewDate returns the Date of the given day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Closed returns the interval [lower, upper]
func Closed(lower, upper Value) Interval {
	return Interval{Lower: lower, Upper: upper}
}

// Open returns the interval (lower, upper)
func Open(lower, upper Value) Interval {
	return Interval{Lower: lower, Upper: upper, LowerExclusive: true, UpperExclusive: true}
}

// Term is a key/value search term
type Term struct {
	Key   string
	Value Value
}

// SearchTerms is an ordered list of search terms with unique keys
type SearchTerms []Term

// NewSearchTerms creates SearchTerms from terms. A repeated key replaces the previous value in place.
func NewSearchTerms(terms ...Term) SearchTerms {
	var st SearchTerms
	for _, t := range terms {
		st = st.With(t.Key, t.Value)
	}
	return st
}

// With returns a copy of st with key set to v (appended if key is new)
func (st SearchTerms) With(key string, v Value) SearchTerms {
	nst := make(SearchTerms, len(st), len(st)+1)
	copy(nst, st)
	for i := range nst {
		if nst[i].Key == key {
			nst[i].Value = v
			return nst
		}
	}
	return append(nst, Term{Key: key, Value: v})
}

// Get returns the value of the key
func (st SearchTerms) Get(key string) (Value, bool) {
	for _, t := range st {
		if t.Key == key {
			return t.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order
func (st SearchTerms) Keys() []string {
	keys := make([]string, len(st))
	for i, t := range st {
		keys[i] = t.Key
	}
	return keys
}

// ParseTerm parses "key=value" (split on the first '=' only). The value is kept as a String.
func ParseTerm(s string) (Term, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return Term{}, fmt.Errorf("ParseTerm: expected key=value, got '%s'", s)
	}
	return Term{Key: key, Value: String(value)}, nil
}

// ParseTerms parses a list of "key=value"
func ParseTerms(list []string) (SearchTerms, error) {
	var st SearchTerms
	for _, s := range list {
		t, err := ParseTerm(s)
		if err != nil {
			return nil, err
		}
		st = st.With(t.Key, t.Value)
	}
	return st, nil
}
