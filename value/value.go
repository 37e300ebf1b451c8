package value

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant of the union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDate
	KindDateTime
	KindTime
	KindList
	KindMap
)

var kindNames = [...]string{ //nolint:gochecknoglobals
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindDate:     "date",
	KindDateTime: "datetime",
	KindTime:     "time",
	KindList:     "list",
	KindMap:      "map",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Entry is a single key/value pair of a map Value.
type Entry struct {
	Key   string
	Value Value
}

// Value is an immutable, already-decoded datum. The zero Value is null.
//
// Temporal kinds all live in a time.Time: dates are midnight UTC, times of
// day sit on 0000-01-01 UTC, and date-times keep whatever instant they were
// built from.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
	instant time.Time
	list    []Value
	entries []Entry
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindInt, integer: i}
}

// Float wraps a floating-point number.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// String wraps a piece of text.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) Value {
	return Value{kind: KindDate, instant: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf keeps only the calendar date of t, as seen in t's location.
func DateOf(t time.Time) Value {
	return Date(t.Year(), t.Month(), t.Day())
}

// DateTime wraps a date and time of day.
func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, instant: t}
}

// Time builds a time of day.
func Time(hour, minute, second, nanosecond int) Value {
	return Value{kind: KindTime, instant: time.Date(0, time.January, 1, hour, minute, second, nanosecond, time.UTC)}
}

// TimeOf keeps only the clock reading of t, as seen in t's location.
func TimeOf(t time.Time) Value {
	return Time(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// List builds an ordered sequence. The slice is copied.
func List(elems ...Value) Value {
	if len(elems) == 0 {
		return Value{kind: KindList}
	}

	return Value{kind: KindList, list: slices.Clone(elems)}
}

// Map builds a keyed mapping from entries, keeping their order. A key that
// appears more than once keeps its first position and its last value.
func Map(entries ...Entry) Value {
	out := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		if i, ok := index[e.Key]; ok {
			out[i].Value = e.Value

			continue
		}

		index[e.Key] = len(out)
		out = append(out, e)
	}

	if len(out) == 0 {
		out = nil
	}

	return Value{kind: KindMap, entries: out}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.integer, v.kind == KindInt
}

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// AsString returns the text held by v.
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsTime returns the time.Time backing a date, date-time or time-of-day value.
func (v Value) AsTime() (time.Time, bool) {
	switch v.kind { //nolint:exhaustive
	case KindDate, KindDateTime, KindTime:
		return v.instant, true
	default:
		return time.Time{}, false
	}
}

// AsList returns a copy of the elements of a list value.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	return slices.Clone(v.list), true
}

// AsMap returns a copy of the entries of a map value, in order.
func (v Value) AsMap() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return slices.Clone(v.entries), true
}

// Lookup returns the value stored under key in a map value.
func (v Value) Lookup(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Len returns the length of a string (in runes), list or map value.
func (v Value) Len() (int, bool) {
	switch v.kind { //nolint:exhaustive
	case KindString:
		return len([]rune(v.text)), true
	case KindList:
		return len(v.list), true
	case KindMap:
		return len(v.entries), true
	default:
		return 0, false
	}
}

// String renders v the way bounds appear in messages: floats always carry
// a fractional part, dates are ISO-8601, date-times use a space separator.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.boolean {
			return "True"
		}

		return "False"
	case KindInt:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return formatFloat(v.float)
	case KindString:
		return v.text
	case KindDate:
		return v.instant.Format(time.DateOnly)
	case KindDateTime:
		return v.instant.Format("2006-01-02 15:04:05.999999")
	case KindTime:
		return v.instant.Format("15:04:05.999999")
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.quoted()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = strconv.Quote(e.Key) + ": " + e.Value.quoted()
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.kind.String()
	}
}

func (v Value) quoted() string {
	if v.kind == KindString {
		return strconv.Quote(v.text)
	}

	return v.String()
}

func formatFloat(f float64) string {
	abs := math.Abs(f)
	if math.IsNaN(f) || math.IsInf(f, 0) || (abs != 0 && (abs < 1e-4 || abs >= 1e16)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
