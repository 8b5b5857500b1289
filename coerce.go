package argv

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Scalar is the closed set of types a raw option value can be coerced to.
type Scalar interface {
	bool | int | int64 | uint | uint64 | float64 | string
}

// Maybe is one slot of a multi-value result: the coerced value plus
// whether coercion succeeded for that occurrence. Multi keeps one slot per
// occurrence so slot positions always line up with the command line.
type Maybe[T any] struct {
	Val T
	OK  bool
}

// Or returns the slot's value, or def when the slot is absent.
func (m Maybe[T]) Or(def T) T {
	if m.OK {
		return m.Val
	}
	return def
}

// falsities are the exact raw values that make a boolean option false.
// Comparison is case-sensitive; anything else, including a bare flag,
// is true.
var falsities = [...]string{"0", "n", "no", "f", "false"}

func isFalsity(raw string) bool {
	for _, f := range falsities {
		if raw == f {
			return true
		}
	}
	return false
}

// coerce converts one occurrence into T.
//
// Booleans never fail once the occurrence exists: a bare flag is true,
// a value is false iff it is in the falsity set. Strings are identity,
// absent for a bare flag. Numeric targets go through the cty number
// model: the whole raw value must parse as a number, and integer targets
// additionally require a whole number, so `"42.42"` coerces to float64
// but not to int. Anything unparseable is absence, never an error.
func coerce[T Scalar](v Value) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = !v.HasValue || !isFalsity(v.Raw)
		return out, true
	case *string:
		if !v.HasValue {
			return out, false
		}
		*p = v.Raw
		return out, true
	}
	if !v.HasValue {
		return out, false
	}
	num, err := cty.ParseNumberVal(v.Raw)
	if err != nil {
		return out, false
	}
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return out, false
	}
	return out, true
}
