package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/amp-labs/amp-schema/engine"
	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/value"
)

// Option configures a validator factory. Factories panic when given an
// option they have no use for.
type Option func(*settings)

// Bound is what Min and Max accept. Plain Go numbers cover the numeric
// validators; temporal bounds are passed as a value.Value, either
// structured (value.Date(...)) or as ISO-8601 text.
type Bound interface {
	int | int64 | float64 | value.Value
}

type optionName string

const (
	optMin           optionName = "Min"
	optMax           optionName = "Max"
	optMinLen        optionName = "MinLen"
	optMaxLen        optionName = "MaxLen"
	optNullable      optionName = "Nullable"
	optElements      optionName = "Elements"
	optFields        optionName = "Fields"
	optMissingAsNull optionName = "MissingAsNull"
)

type settings struct {
	given         []optionName
	min, max      value.Value
	minLen        int
	maxLen        int
	nullable      bool
	elements      engine.Validator
	fields        map[string]engine.Validator
	missingAsNull bool
}

func (s *settings) mark(name optionName) {
	if !slices.Contains(s.given, name) {
		s.given = append(s.given, name)
	}
}

func (s *settings) has(name optionName) bool {
	return slices.Contains(s.given, name)
}

// Min sets the inclusive lower bound of a numeric or temporal validator.
func Min[T Bound](bound T) Option {
	b := boundValue(bound)

	return func(s *settings) {
		s.mark(optMin)
		s.min = b
	}
}

// Max sets the inclusive upper bound of a numeric or temporal validator.
func Max[T Bound](bound T) Option {
	b := boundValue(bound)

	return func(s *settings) {
		s.mark(optMax)
		s.max = b
	}
}

// MinLen sets the inclusive minimum length: runes for strings, elements
// for lists, entries for maps.
func MinLen(n int) Option {
	return func(s *settings) {
		s.mark(optMinLen)
		s.minLen = n
	}
}

// MaxLen sets the inclusive maximum length: runes for strings, elements
// for lists, entries for maps.
func MaxLen(n int) Option {
	return func(s *settings) {
		s.mark(optMaxLen)
		s.maxLen = n
	}
}

// Nullable makes the validator accept null.
func Nullable() Option {
	return func(s *settings) {
		s.mark(optNullable)
		s.nullable = true
	}
}

// Elements sets the validator applied to every element of a list.
func Elements(v engine.Validator) Option {
	return func(s *settings) {
		s.mark(optElements)
		s.elements = v
	}
}

// Fields sets the validators applied to the values of a map, by key. Keys
// of the input without a validator are not checked. The map is copied.
func Fields(fields map[string]engine.Validator) Option {
	copied := maps.Clone(fields)

	return func(s *settings) {
		s.mark(optFields)
		s.fields = copied
	}
}

// MissingAsNull makes a map validator check every key declared in Fields
// but absent from the input as if it were present with a null value. Without
// it, absent keys are not reported.
func MissingAsNull() Option {
	return func(s *settings) {
		s.mark(optMissingAsNull)
		s.missingAsNull = true
	}
}

func boundValue(bound any) value.Value {
	switch b := bound.(type) {
	case int:
		return value.Int(int64(b))
	case int64:
		return value.Int(b)
	case float64:
		return value.Float(b)
	case value.Value:
		return b
	default:
		return value.Null()
	}
}

// apply runs opts and panics if one of them is not in allowed.
func apply(family string, opts []Option, allowed ...optionName) settings {
	var s settings

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	var unsupported []string

	for _, name := range s.given {
		if !slices.Contains(allowed, name) {
			unsupported = append(unsupported, string(name))
		}
	}

	if len(unsupported) > 0 {
		panic(fmt.Errorf("%w: %s validator does not accept %s",
			errors.ErrUnsupportedOption, family, strings.Join(unsupported, ", ")))
	}

	return s
}

// lengths returns the configured length bounds, panicking on negative or
// inverted ones.
func (s *settings) lengths(family string) (minLen, maxLen int, hasMin, hasMax bool) {
	hasMin, hasMax = s.has(optMinLen), s.has(optMaxLen)

	if hasMin && s.minLen < 0 {
		panic(fmt.Errorf("%w: %s minimum length %d is negative", errors.ErrInvalidBounds, family, s.minLen))
	}

	if hasMax && s.maxLen < 0 {
		panic(fmt.Errorf("%w: %s maximum length %d is negative", errors.ErrInvalidBounds, family, s.maxLen))
	}

	if hasMin && hasMax && s.minLen > s.maxLen {
		panic(fmt.Errorf("%w: %s minimum length %d exceeds maximum %d",
			errors.ErrInvalidBounds, family, s.minLen, s.maxLen))
	}

	return s.minLen, s.maxLen, hasMin, hasMax
}
