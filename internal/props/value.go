// Package props defines the property value model used for frontmatter editing.
//
// A Value is a tagged union over the five supported shapes (text, number,
// checkbox, date, list-of-strings) plus null for keys present with no
// meaningful value. Values are immutable; editing always replaces the whole
// value.
package props

import (
	"strconv"
	"strings"
	"time"

	"github.com/magpiemd/magpie/internal/dates"
)

// Value represents a parsed property value.
type Value struct {
	value interface{}
}

// Text creates a text Value.
func Text(s string) Value {
	return Value{value: s}
}

// Number creates a numeric Value.
func Number(n float64) Value {
	return Value{value: n}
}

// Bool creates a checkbox Value.
func Bool(b bool) Value {
	return Value{value: b}
}

// Date creates a date Value holding a YYYY-MM-DD string.
func Date(s string) Value {
	return Value{value: dateValue{s}}
}

// List creates a list Value over an ordered sequence of strings.
func List(items []string) Value {
	return Value{value: append([]string(nil), items...)}
}

// Null creates a null Value. A null round-trips as YAML null; it is never
// coerced into the text "null".
func Null() Value {
	return Value{value: nil}
}

// dateValue distinguishes date strings from plain text.
type dateValue struct{ s string }

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.value == nil
}

// AsText returns the value as a string, if possible. Date values report
// their YYYY-MM-DD form.
func (v Value) AsText() (string, bool) {
	switch t := v.value.(type) {
	case string:
		return t, true
	case dateValue:
		return t.s, true
	}
	return "", false
}

// AsNumber returns the value as a float64, if possible.
func (v Value) AsNumber() (float64, bool) {
	if n, ok := v.value.(float64); ok {
		return n, true
	}
	return 0, false
}

// AsBool returns the value as a boolean, if possible.
func (v Value) AsBool() (bool, bool) {
	if b, ok := v.value.(bool); ok {
		return b, true
	}
	return false, false
}

// AsList returns the value as a string slice, if possible.
func (v Value) AsList() ([]string, bool) {
	if items, ok := v.value.([]string); ok {
		return items, true
	}
	return nil, false
}

// IsDate returns true if this value was stored as a date.
func (v Value) IsDate() bool {
	_, ok := v.value.(dateValue)
	return ok
}

// Raw returns the value in the shape the YAML layer serializes:
// string, float64, bool, []interface{}, or nil.
func (v Value) Raw() interface{} {
	switch t := v.value.(type) {
	case dateValue:
		return t.s
	case []string:
		items := make([]interface{}, len(t))
		for i, s := range t {
			items[i] = s
		}
		return items
	default:
		return t
	}
}

// Equal reports whether two values hold the same content. Date and text
// values with identical strings compare equal; the distinction only drives
// type inference.
func (v Value) Equal(o Value) bool {
	return v.canonical() == o.canonical()
}

// canonical returns a stable string form used for set membership.
func (v Value) canonical() string {
	switch t := v.value.(type) {
	case nil:
		return "null:"
	case bool:
		return "bool:" + strconv.FormatBool(t)
	case float64:
		return "num:" + strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return "str:" + t
	case dateValue:
		return "str:" + t.s
	case []string:
		return "list:" + strings.Join(t, "\x00")
	}
	return ""
}

// String returns a human-readable display form.
func (v Value) String() string {
	switch t := v.value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	case dateValue:
		return t.s
	case []string:
		return strings.Join(t, ", ")
	}
	return ""
}

// FromYAML converts a decoded YAML value to a Value.
//
// Lists are flattened to their scalar string forms; nested structures are
// out of scope and collapse to null.
func FromYAML(raw interface{}) Value {
	switch t := raw.(type) {
	case string:
		if dates.MatchesDateShape(t) {
			return Date(t)
		}
		return Text(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case float64:
		return Number(t)
	case bool:
		return Bool(t)
	case time.Time:
		// Some YAML decoders hand dates back as time.Time.
		return Date(t.Format(dates.DateLayout))
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, scalarString(item))
		}
		return List(items)
	case nil:
		return Null()
	default:
		return Null()
	}
}

func scalarString(raw interface{}) string {
	switch t := raw.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(dates.DateLayout)
	default:
		return ""
	}
}
