// core/stats/value.go
package stats

import (
	"fmt"
	"strconv"
)

// NA is the missing marker used in all text/TSV output. It is distinct from
// any numeric value, so "no data" never collides with a true zero.
const NA = "NA"

// Value is a statistic that may be undefined (zero denominator, unknown
// ancestral state, unmatched join). Undefined values render as NA in TSV
// and null in JSON, never as 0 or NaN.
type Value struct {
	V       float64
	Defined bool
}

// Undefined is the canonical missing value.
var Undefined = Value{}

// Of wraps a defined float.
func Of(v float64) Value { return Value{V: v, Defined: true} }

// Ratio divides num by den, returning an undefined Value when den == 0.
func Ratio(num, den float64) Value {
	if den == 0 {
		return Undefined
	}
	return Of(num / den)
}

// String renders the value for TSV output.
func (v Value) String() string {
	if !v.Defined {
		return NA
	}
	return strconv.FormatFloat(v.V, 'g', -1, 64)
}

// Format renders with a fixed number of decimals (tables meant for humans).
func (v Value) Format(prec int) string {
	if !v.Defined {
		return NA
	}
	return strconv.FormatFloat(v.V, 'f', prec, 64)
}

// MarshalJSON emits null for undefined values.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.V, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts null or a number.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Undefined
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("stats value: %w", err)
	}
	*v = Of(f)
	return nil
}

// Parse reads a TSV cell written by String/Format.
func Parse(s string) (Value, error) {
	if s == NA {
		return Undefined, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Undefined, fmt.Errorf("stats value %q: %w", s, err)
	}
	return Of(f), nil
}
