package guard

import (
	"fmt"
	"math"
	"reflect"

	"github.com/compose-network/filedemo/internal/outcome"
)

// ElementAt returns the element of seq at index. seq must be a slice,
// array or string and index an integer. Negative indexes count back from
// the end.
func ElementAt(seq, index any) outcome.Result {
	rv := reflect.ValueOf(seq)
	isString := false
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	case reflect.String:
		rv = reflect.ValueOf([]rune(rv.String()))
		isString = true
	default:
		return invalidIndex()
	}

	iv := reflect.ValueOf(index)
	var i int64
	switch {
	case iv.CanInt():
		i = iv.Int()
	case iv.CanUint():
		u := iv.Uint()
		if u > math.MaxInt64 {
			return outOfRange(u)
		}
		i = int64(u)
	default:
		return invalidIndex()
	}

	n := int64(rv.Len())
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return outOfRange(i)
	}

	elem := rv.Index(int(pos)).Interface()
	if isString {
		elem = string(elem.(rune))
	}
	return outcome.Success("Element at index %d: %v", i, elem)
}

func invalidIndex() outcome.Result {
	return outcome.Failure(outcome.ErrInvalidOperand, "Error: Invalid list or index type!")
}

func outOfRange(index any) outcome.Result {
	return outcome.Failure(fmt.Errorf("index %v: %w", index, outcome.ErrOutOfRange), "Error: Index %v is out of range!", index)
}
