package attribute

import (
	"errors"
	"testing"
	"time"

	"friendkb-go/internal/domain/repoerr"
)

func TestValueEncodeDecodeRoundTrip(t *testing.T) {
	day := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value Value
	}{
		{"text", TextValue("likes jazz")},
		{"empty text", TextValue("")},
		{"number", NumberValue(42.5)},
		{"negative number", NumberValue(-3)},
		{"date", DateValue(day)},
		{"boolean true", BooleanValue(true)},
		{"boolean false", BooleanValue(false)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, tag := tc.value.Encode()
			decoded, err := DecodeValue(text, tag)
			if err != nil {
				t.Fatalf("decode %q/%s: %v", text, tag, err)
			}
			if decoded != tc.value {
				t.Errorf("round trip changed value: got %+v, want %+v", decoded, tc.value)
			}
		})
	}
}

func TestValueCanonicalText(t *testing.T) {
	text, tag := NumberValue(42).Encode()
	if text != "42" || tag != KindNumber {
		t.Errorf("number encoding: got %q/%s, want 42/number", text, tag)
	}

	text, tag = DateValue(time.Date(2001, time.December, 5, 0, 0, 0, 0, time.UTC)).Encode()
	if text != "2001-12-05" || tag != KindDate {
		t.Errorf("date encoding: got %q/%s, want 2001-12-05/date", text, tag)
	}

	text, tag = BooleanValue(true).Encode()
	if text != "true" || tag != KindBoolean {
		t.Errorf("boolean encoding: got %q/%s, want true/boolean", text, tag)
	}
}

func TestDecodeValueCorruptText(t *testing.T) {
	cases := []struct {
		name string
		text string
		tag  Kind
	}{
		{"text under number tag", "not-a-number", KindNumber},
		{"text under date tag", "yesterday", KindDate},
		{"text under boolean tag", "maybe", KindBoolean},
		{"unknown tag", "anything", Kind("timestamp")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeValue(tc.text, tc.tag)
			if !errors.Is(err, repoerr.ErrSerialization) {
				t.Errorf("got %v, want ErrSerialization", err)
			}
		})
	}
}

func TestDecodeValueTextTagNeverFails(t *testing.T) {
	decoded, err := DecodeValue("12x34", KindText)
	if err != nil {
		t.Fatalf("text decode: %v", err)
	}
	got, ok := decoded.Text()
	if !ok || got != "12x34" {
		t.Errorf("got %q (ok=%v), want 12x34", got, ok)
	}
}
