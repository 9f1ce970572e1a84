package lumina

import (
	"strconv"
	"strings"
)

//
// Value is the tagged sum from spec.md section 3: a Number (64-bit
// float), a String, or a Boolean.  Modeled on the teacher's symValue,
// which is itself a tagged container of parallel float/int16/string
// slices -- here there's exactly one of each per Value instead of a
// whole array, since Lumina variables are scalar
//

type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBoolean
)

type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

func NumberValue(f float64) Value  { return Value{kind: KindNumber, num: f} }
func StringValue(s string) Value   { return Value{kind: KindString, str: s} }
func BooleanValue(b bool) Value    { return Value{kind: KindBoolean, b: b} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNumber() bool  { return v.kind == KindNumber }
func (v Value) IsString() bool  { return v.kind == KindString }
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }

func (v Value) Number() float64 {
	luminaAssert(v.kind == KindNumber, "Number() called on non-numeric Value")
	return v.num
}

func (v Value) StringRaw() string {
	luminaAssert(v.kind == KindString, "StringRaw() called on non-string Value")
	return v.str
}

func (v Value) Boolean() bool {
	luminaAssert(v.kind == KindBoolean, "Boolean() called on non-boolean Value")
	return v.b
}

//
// Stringify renders a Value the way spec.md section 3 requires:
// general float formatting with no exponent when the value is
// integral-valued where possible, lowercase true/false, and strings
// verbatim.  Grounded on the teacher's prtuFormat/symtab.go traceVar,
// which pick a fmt verb ('%g' vs '%d' vs '%q') by looking at the
// variable's declared type; here the Value itself carries the tag
//

func (v Value) Stringify() string {

	switch v.kind {

	case KindNumber:
		return stringifyNumber(v.num)

	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"

	case KindString:
		return v.str

	default:
		luminaAssert(false, "unknown Value kind %d", int(v.kind))
		return ""
	}
}

func stringifyNumber(f float64) string {

	if f == float64(int64(f)) && !strings.ContainsAny(strconv.FormatFloat(f, 'g', -1, 64), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

//
// Compare is a three-way comparison, defined only between same-tag
// values (spec.md section 3).  ok is false on a cross-tag comparison,
// which callers turn into TypeError
//

func (v Value) Compare(other Value) (cmp int, ok bool) {

	if v.kind != other.kind {
		return 0, false
	}

	switch v.kind {

	case KindNumber:
		switch {
		case v.num < other.num:
			return -1, true
		case v.num > other.num:
			return 1, true
		default:
			return 0, true
		}

	case KindString:
		return strings.Compare(v.str, other.str), true

	case KindBoolean:
		switch {
		case v.b == other.b:
			return 0, true
		case !v.b && other.b:
			return -1, true
		default:
			return 1, true
		}

	default:
		luminaAssert(false, "unknown Value kind %d", int(v.kind))
		return 0, false
	}
}

//
// Truthy implements the single-expression truthiness rule from
// spec.md section 4.3: Boolean -> itself, Number -> nonzero,
// String -> nonempty
//

func (v Value) Truthy() bool {

	switch v.kind {

	case KindBoolean:
		return v.b

	case KindNumber:
		return v.num != 0

	case KindString:
		return len(v.str) > 0

	default:
		luminaAssert(false, "unknown Value kind %d", int(v.kind))
		return false
	}
}
