package ember

import (
	"fmt"
	"strconv"

	"github.com/orsinium-labs/enum"
)

// valueKind represents the type tag of a single cell.
type valueKind = enum.Member[string]

var (
	kindNull    = valueKind{Value: "null"}
	kindInteger = valueKind{Value: "integer"}
	kindText    = valueKind{Value: "text"}
)

// Value is the content of a single cell: null, a 64-bit signed
// integer, or a text string. Values are immutable and owned by the
// relation that holds them.
type Value struct {
	kind    valueKind
	integer int64
	text    string
}

// NullValue returns the null Value.
func NullValue() Value {
	return Value{kind: kindNull}
}

// IntegerValue returns a Value holding the given integer.
func IntegerValue(i int64) Value {
	return Value{kind: kindInteger, integer: i}
}

// TextValue returns a Value holding the given text.
func TextValue(s string) Value {
	return Value{kind: kindText, text: s}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// IsInteger returns true if the value holds an integer.
func (v Value) IsInteger() bool {
	return v.kind == kindInteger
}

// IsText returns true if the value holds text.
func (v Value) IsText() bool {
	return v.kind == kindText
}

// CastInt coerces the value to an integer. Text is parsed as decimal;
// text that does not parse coerces to 0. Null has no integer form and
// reports false.
func (v Value) CastInt() (int64, bool) {
	switch v.kind {
	case kindInteger:
		return v.integer, true
	case kindText:
		i, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, true
		}
		return i, true
	}
	return 0, false
}

// CastText coerces the value to text. Integers render in canonical
// decimal form. Null has no text form and reports false.
func (v Value) CastText() (string, bool) {
	switch v.kind {
	case kindInteger:
		return strconv.FormatInt(v.integer, 10), true
	case kindText:
		return v.text, true
	}
	return "", false
}

// valueFromCell converts a driver-level cell into a Value. Integers
// and booleans keep their numeric identity; every other non-null cell
// is carried as text.
func valueFromCell(cell any) Value {
	switch c := cell.(type) {
	case nil:
		return NullValue()
	case int64:
		return IntegerValue(c)
	case bool:
		if c {
			return IntegerValue(1)
		}
		return IntegerValue(0)
	case string:
		return TextValue(c)
	case []byte:
		return TextValue(string(c))
	case float64:
		return TextValue(strconv.FormatFloat(c, 'g', -1, 64))
	default:
		return TextValue(fmt.Sprint(c))
	}
}
