package config

import (
	"reflect"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent marks a value that was never bound (or bound to null).
	KindAbsent Kind = iota
	// KindString is a textual value.
	KindString
	// KindNumber is a float64 value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindOther holds nested sequences or mappings below the flattened level.
	KindOther
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Value is a single configuration attribute.
// The zero Value is Absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	raw  any
}

// Absent returns the sentinel for attributes that were never configured.
func Absent() Value {
	return Value{}
}

// StringValue wraps a string without applying digit coercion.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue wraps a float64.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// BoolValue wraps a bool.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// OtherValue wraps a decoded nested structure (slice or map).
func OtherValue(v any) Value {
	if v == nil {
		return Absent()
	}

	return Value{kind: KindOther, raw: v}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v is the absent sentinel.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the bool held by v.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Raw returns v as a plain Go value: nil, string, float64, bool or the nested structure.
func (v Value) Raw() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindOther:
		return v.raw
	default:
		return nil
	}
}

// String renders the textual form of v. Absent renders as an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindOther:
		return formatOther(v.raw)
	default:
		return ""
	}
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindOther:
		return reflect.DeepEqual(v.raw, other.raw)
	default:
		return true
	}
}

// IsDigits reports whether s is non-empty and made of ASCII decimal digits only.
// Signs, decimal points and exponents do not count.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Coerce applies the digit-only rule to a textual value:
// digit-only text becomes a number, anything else stays a string.
func Coerce(s string) Value {
	if !IsDigits(s) {
		return StringValue(s)
	}

	// Out of range digit strings parse to +Inf together with ErrRange; keep the Inf.
	f, _ := strconv.ParseFloat(s, 64) //nolint:errcheck // Digit-only input can only fail with ErrRange.

	return NumberValue(f)
}
