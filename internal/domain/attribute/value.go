package attribute

import (
	"fmt"
	"strconv"
	"time"

	"friendkb-go/internal/domain/repoerr"
)

// Kind is the type tag stored next to an attribute's text value.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindDate    Kind = "date"
	KindBoolean Kind = "boolean"
)

const dateLayout = "2006-01-02"

// Value is a tagged variant over the kinds above. Application code works
// with Values; the stored text+tag pair exists only at the store boundary.
type Value struct {
	kind    Kind
	text    string
	number  float64
	date    time.Time
	boolean bool
}

func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func NumberValue(f float64) Value {
	return Value{kind: KindNumber, number: f}
}

func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func BooleanValue(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) Number() (float64, bool) {
	return v.number, v.kind == KindNumber
}

func (v Value) Date() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

func (v Value) Boolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// Encode serializes the value to its canonical text form and tag.
func (v Value) Encode() (text string, tag Kind) {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64), KindNumber
	case KindDate:
		return v.date.Format(dateLayout), KindDate
	case KindBoolean:
		return strconv.FormatBool(v.boolean), KindBoolean
	default:
		return v.text, KindText
	}
}

// DecodeValue parses stored text under its tag. Text that does not parse
// under its own tag fails with ErrSerialization rather than degrading to a
// best-effort guess; a disagreeing tag means the row is corrupt.
func DecodeValue(text string, tag Kind) (Value, error) {
	switch tag {
	case KindText:
		return TextValue(text), nil
	case KindNumber:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", repoerr.ErrSerialization, text)
		}
		return NumberValue(f), nil
	case KindDate:
		t, err := time.Parse(dateLayout, text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a date", repoerr.ErrSerialization, text)
		}
		return DateValue(t), nil
	case KindBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a boolean", repoerr.ErrSerialization, text)
		}
		return BooleanValue(b), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown value type %q", repoerr.ErrSerialization, tag)
	}
}
