package props

import (
	"strconv"
	"strings"

	"github.com/magpiemd/magpie/internal/dates"
)

// Codec converts between raw user input, Values, and YAML-ready shapes
// for one type tag. Adding a new property type means adding one table row.
type Codec struct {
	// Decode parses raw user input into a Value of this type.
	// Unparseable input falls back to the type's default.
	Decode func(raw string) Value

	// Encode returns the YAML-ready shape of a value.
	Encode func(v Value) interface{}

	// Default is the empty value for this type.
	Default Value
}

var codecs = map[Type]Codec{
	TypeText: {
		Decode:  func(raw string) Value { return Text(raw) },
		Encode:  func(v Value) interface{} { return v.Raw() },
		Default: Text(""),
	},
	TypeNumber: {
		Decode: func(raw string) Value {
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return Number(0)
			}
			return Number(n)
		},
		Encode:  func(v Value) interface{} { return v.Raw() },
		Default: Number(0),
	},
	TypeCheckbox: {
		Decode: func(raw string) Value {
			return Bool(strings.EqualFold(strings.TrimSpace(raw), "true"))
		},
		Encode:  func(v Value) interface{} { return v.Raw() },
		Default: Bool(false),
	},
	TypeDate: {
		Decode: func(raw string) Value {
			raw = strings.TrimSpace(raw)
			if !dates.IsValidDate(raw) {
				return Date("")
			}
			return Date(raw)
		},
		Encode:  func(v Value) interface{} { return v.Raw() },
		Default: Date(""),
	},
	TypeList: {
		Decode: func(raw string) Value {
			parts := strings.Split(raw, ",")
			items := make([]string, 0, len(parts))
			for _, part := range parts {
				part = strings.TrimSpace(part)
				if part != "" {
					items = append(items, part)
				}
			}
			return List(items)
		},
		Encode:  func(v Value) interface{} { return v.Raw() },
		Default: List(nil),
	},
}

// CodecFor returns the codec for a type tag. Unknown tags get the text codec.
func CodecFor(t Type) Codec {
	if c, ok := codecs[t]; ok {
		return c
	}
	return codecs[TypeText]
}

// DecodeLiteral parses a raw command-line literal without an explicit type:
// bracketed lists, booleans, numbers, date-shaped strings, quoted strings,
// then plain text.
func DecodeLiteral(raw string) Value {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return CodecFor(TypeList).Decode(trimmed[1 : len(trimmed)-1])
	}
	if trimmed == "true" || trimmed == "false" {
		return Bool(trimmed == "true")
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(n)
	}
	if dates.MatchesDateShape(trimmed) {
		return Date(trimmed)
	}
	if len(trimmed) >= 2 {
		if (strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`)) ||
			(strings.HasPrefix(trimmed, "'") && strings.HasSuffix(trimmed, "'")) {
			return Text(trimmed[1 : len(trimmed)-1])
		}
	}
	return Text(raw)
}
