// Package xform converts textual input into structured values before it is
// validated. Every function here follows the same contract: it never
// panics, and a failure comes back as an error wrapping errors.ErrUnparsable
// so callers can fall back to the raw input.
package xform

import (
	"fmt"
	"strings"
	"time"

	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/value"
)

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(text string) (value.Value, error) {
	t, err := parse(DateLayout, text, "date")
	if err != nil {
		return value.Null(), err
	}

	return value.DateOf(t), nil
}

// ParseDateTime parses an ISO-8601 date and time (YYYY-MM-DDTHH:MM:SS).
// Fractional seconds are rejected. The result carries no zone and is
// treated as UTC.
func ParseDateTime(text string) (value.Value, error) {
	t, err := parse(DateTimeLayout, text, "date-time")
	if err != nil {
		return value.Null(), err
	}

	return value.DateTime(t), nil
}

// ParseTime parses an ISO-8601 time of day (HH:MM:SS). Fractional seconds
// are rejected.
func ParseTime(text string) (value.Value, error) {
	t, err := parse(TimeLayout, text, "time")
	if err != nil {
		return value.Null(), err
	}

	return value.TimeOf(t), nil
}

func parse(layout, text, what string) (time.Time, error) {
	// time.Parse accepts a fractional second after the seconds field even
	// when the layout has none.
	if strings.ContainsAny(text, ".,") {
		return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 %s: unexpected fractional part",
			errors.ErrUnparsable, text, what)
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 %s: %w", errors.ErrUnparsable, text, what, err)
	}

	return t, nil
}

// ToDate is a validator transform: text is parsed with ParseDate, any
// other input is returned unchanged.
func ToDate(in value.Value) (value.Value, error) {
	return textOnly(in, ParseDate)
}

// ToDateTime is a validator transform: text is parsed with ParseDateTime,
// any other input is returned unchanged.
func ToDateTime(in value.Value) (value.Value, error) {
	return textOnly(in, ParseDateTime)
}

// ToTime is a validator transform: text is parsed with ParseTime, any other
// input is returned unchanged.
func ToTime(in value.Value) (value.Value, error) {
	return textOnly(in, ParseTime)
}

func textOnly(in value.Value, parser func(string) (value.Value, error)) (value.Value, error) {
	text, ok := in.AsString()
	if !ok {
		return in, nil
	}

	return parser(text)
}
