package guard

import (
	"math"
	"reflect"
	"strconv"

	"github.com/compose-network/filedemo/internal/outcome"
)

// Divide divides a by b. Operands may be any Go value; only numeric kinds
// take part in arithmetic.
func Divide(a, b any) outcome.Result {
	x, okA := asFloat(a)
	y, okB := asFloat(b)
	if !okA || !okB {
		return outcome.Failure(outcome.ErrInvalidOperand, "Error: Invalid input types for division!")
	}
	if y == 0 {
		return outcome.Failure(outcome.ErrDivideByZero, "Error: Cannot divide by zero!")
	}
	return outcome.Success("%v / %v = %s", a, b, formatQuotient(x/y))
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	default:
		return 0, false
	}
}

// formatQuotient keeps one decimal place on integral results so a
// quotient always reads as a real number.
func formatQuotient(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
