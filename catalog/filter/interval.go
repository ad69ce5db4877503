package filter

import (
	"strings"

	"github.com/airbusgeo/cdse-catalog/common"
)

// Interval is a parsed interval value such as [a,b), (a,b]...
type Interval struct {
	Lower, Upper     string
	LowerOp, UpperOp common.Operator
}

// ParseInterval parses "[a,b]", "(a,b)", "[a,b)" or "(a,b]" (surrounding whitespaces are ignored).
// '[' gives ge, '(' gt, ']' le and ')' lt.
// It returns false if value is not an interval, which is not an error by itself.
func ParseInterval(value string) (Interval, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 3 {
		return Interval{}, false
	}
	start, end := value[0], value[len(value)-1]
	if (start != '[' && start != '(') || (end != ']' && end != ')') {
		return Interval{}, false
	}
	parts := strings.Split(value[1:len(value)-1], ",")
	if len(parts) != 2 {
		return Interval{}, false
	}
	i := Interval{
		Lower:   strings.TrimSpace(parts[0]),
		Upper:   strings.TrimSpace(parts[1]),
		LowerOp: common.OperatorGe,
		UpperOp: common.OperatorLe,
	}
	if i.Lower == "" || i.Upper == "" {
		return Interval{}, false
	}
	if start == '(' {
		i.LowerOp = common.OperatorGt
	}
	if end == ')' {
		i.UpperOp = common.OperatorLt
	}
	return i, true
}
