package query

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueSized // number with a size-unit suffix, e.g. 10mb
	ValueBool
)

// Value is a literal from the query text. The kind decides which of the
// payload fields is meaningful.
type Value struct {
	Kind ValueKind
	Text string  // ValueString
	Num  float64 // ValueNumber, ValueSized
	Unit string  // ValueSized, lowercase
	Bool bool    // ValueBool
}

// ValueError reports a malformed literal
type ValueError struct {
	Literal string
	Reason  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Literal, e.Reason)
}

var unitMultipliers = map[string]float64{
	"b":  1,
	"kb": 1024,
	"mb": 1024 * 1024,
	"gb": 1024 * 1024 * 1024,
	"tb": 1024 * 1024 * 1024 * 1024,
}

// StringValue builds a string Value
func StringValue(s string) Value {
	return Value{Kind: ValueString, Text: s}
}

// NumberValue builds a plain numeric Value
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// BoolValue builds a boolean Value
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// ParseNumeric parses a number token, splitting off a trailing unit
// suffix if present ("10mb" -> 10, "mb"). The numeric part must be a
// valid float; the unit is kept verbatim (lowercased) even when it is
// not a known size unit, and comparison decides what to do with it.
func ParseNumeric(literal string) (Value, error) {
	digits := literal
	unit := ""
	for i, ch := range literal {
		if ch != '-' && ch != '.' && (ch < '0' || ch > '9') {
			digits = literal[:i]
			unit = strings.ToLower(literal[i:])
			break
		}
	}

	if digits == "" {
		return Value{}, &ValueError{Literal: literal, Reason: "no digits"}
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Value{}, &ValueError{Literal: literal, Reason: "not a number"}
	}

	if unit == "" {
		return NumberValue(n), nil
	}
	return Value{Kind: ValueSized, Num: n, Unit: unit}, nil
}

// Bytes returns the value as a byte count. For sized values the unit is
// resolved against the 1024-based table; an unknown unit returns ok=false
// so comparisons against it are always false rather than an error.
func (v Value) Bytes() (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Num, true
	case ValueSized:
		mult, ok := unitMultipliers[v.Unit]
		if !ok {
			return 0, false
		}
		return v.Num * mult, true
	default:
		return 0, false
	}
}

// String renders the value roughly as it appeared in the query
func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return fmt.Sprintf("%q", v.Text)
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueSized:
		return strconv.FormatFloat(v.Num, 'f', -1, 64) + v.Unit
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "?"
	}
}
