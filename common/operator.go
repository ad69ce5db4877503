package common

// Operator is an OData comparison operator
type Operator string

const (
	OperatorEq Operator = "eq"
	OperatorLt Operator = "lt"
	OperatorLe Operator = "le"
	OperatorGt Operator = "gt"
	OperatorGe Operator = "ge"
)

// Operators lists the comparison operators in suffix-matching order
var Operators = []Operator{OperatorEq, OperatorLt, OperatorLe, OperatorGt, OperatorGe}

// Suffix returns the search-term key suffix of the operator (e.g. "Lt")
func (o Operator) Suffix() string {
	if o == "" {
		return ""
	}
	return string(o[0]-'a'+'A') + string(o[1:])
}

// Label returns a human-readable description of the operator
func (o Operator) Label() string {
	switch o {
	case OperatorEq:
		return "equals"
	case OperatorLt:
		return "less than"
	case OperatorLe:
		return "less than or equal"
	case OperatorGt:
		return "greater than"
	case OperatorGe:
		return "greater than or equal"
	}
	return string(o)
}
