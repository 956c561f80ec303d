package props

import "github.com/magpiemd/magpie/internal/dates"

// Type classifies a property value for form rendering and codec selection.
type Type string

const (
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypeCheckbox Type = "checkbox"
	TypeDate     Type = "date"
	TypeList     Type = "list"
)

// AllTypes lists the supported type tags in display order.
var AllTypes = []Type{TypeText, TypeNumber, TypeCheckbox, TypeDate, TypeList}

// ParseType parses a type tag string. Returns false for unknown tags.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeText, TypeNumber, TypeCheckbox, TypeDate, TypeList:
		return Type(s), true
	}
	return "", false
}

// Infer classifies a value, in priority order: boolean, number, list,
// date-shaped string, then text. Null values classify as text. Pure and
// stable for any given value.
func Infer(v Value) Type {
	if _, ok := v.AsBool(); ok {
		return TypeCheckbox
	}
	if _, ok := v.AsNumber(); ok {
		return TypeNumber
	}
	if _, ok := v.AsList(); ok {
		return TypeList
	}
	if s, ok := v.AsText(); ok && dates.MatchesDateShape(s) {
		return TypeDate
	}
	return TypeText
}

// Default returns the empty value for a type tag. Switching a property's
// type always resets to this default; there is no cross-type coercion.
func Default(t Type) Value {
	switch t {
	case TypeCheckbox:
		return Bool(false)
	case TypeNumber:
		return Number(0)
	case TypeList:
		return List(nil)
	case TypeDate:
		return Date("")
	default:
		return Text("")
	}
}
