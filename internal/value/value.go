// internal/value/value.go
//
// Scalar values as they come out of a parsed list: numbers, booleans and
// strings, each tagged with its kind. Equality is strict per kind — a number
// 1 is never equal to the string "1". Non-scalar JSON elements (nested arrays
// or objects) are carried through opaquely and compare by their canonical
// JSON encoding.

package value

import (
	"encoding/json"
	"strconv"
)

// Kind tags which payload of a Value is live.
type Kind string

const (
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindOpaque Kind = "opaque"
)

// Value is a tagged union of the element types a list may contain.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Num  float64
	Bool bool
	Str  string
	// Raw holds the canonical JSON text of a non-scalar element.
	Raw string
}

// Number wraps a float64 as a Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Boolean wraps a bool as a Value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// String wraps a string as a Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Opaque wraps the canonical JSON text of a non-scalar element.
func Opaque(raw string) Value { return Value{Kind: KindOpaque, Raw: raw} }

// FromJSON maps one element of a decoded JSON array into a Value.
// Scalars map to their kinds; anything else (arrays, objects, null) is
// re-encoded and kept opaque so two structurally equal elements still
// compare equal.
func FromJSON(elem any) Value {
	switch v := elem.(type) {
	case float64:
		return Number(v)
	case bool:
		return Boolean(v)
	case string:
		return String(v)
	default:
		raw, err := json.Marshal(elem)
		if err != nil {
			// Anything produced by json.Unmarshal re-marshals cleanly; this
			// branch exists only for values handed in directly.
			return Opaque("null")
		}
		return Opaque(string(raw))
	}
}

// Equal reports strict value equality: kinds must match and the live
// payload must be identical. There is no cross-kind coercion.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.Num == b.Num
	case KindBool:
		return a.Bool == b.Bool
	case KindString:
		return a.Str == b.Str
	case KindOpaque:
		return a.Raw == b.Raw
	default:
		return false
	}
}

// Key returns a collision-free map key for membership sets. The kind prefix
// keeps the number 1, the string "1" and the opaque text "1" distinct.
func (v Value) Key() string {
	switch v.Kind {
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return "b:" + strconv.FormatBool(v.Bool)
	case KindString:
		return "s:" + v.Str
	default:
		return "o:" + v.Raw
	}
}

// String renders the value for display: numbers without a forced decimal
// point, booleans as true/false, strings bare, opaque values as their
// JSON text.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	default:
		return v.Raw
	}
}
