// Package rules holds the single-constraint checks that validators are
// composed from. A Rule looks at exactly one value and either accepts it
// or returns one message; it keeps no state between calls.
package rules

import (
	"math"
	"strconv"

	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/value"
)

// Rule is a pure check of one value.
type Rule func(v value.Value) outcome.Outcome

// If returns the failure message when failed is true, and Valid otherwise.
func If(failed bool, message string) outcome.Outcome {
	if failed {
		return outcome.Invalid(message)
	}

	return outcome.Valid()
}

// TypeCheck fails unless the value is of the given kind. The message names
// typeName.
func TypeCheck(kind value.Kind, typeName string) Rule {
	msg := messages.Format(messages.WrongType, typeName, "")

	return func(v value.Value) outcome.Outcome {
		return If(v.Kind() != kind, msg)
	}
}

// Min fails when the value orders strictly below bound. A value equal to
// the bound passes.
func Min(bound value.Value, typeName string) Rule {
	return compare(bound, typeName, messages.BelowMinimum, func(c int) bool { return c < 0 })
}

// Max fails when the value orders strictly above bound. A value equal to
// the bound passes.
func Max(bound value.Value, typeName string) Rule {
	return compare(bound, typeName, messages.AboveMaximum, func(c int) bool { return c > 0 })
}

func compare(bound value.Value, typeName string, constraint messages.Constraint, fails func(int) bool) Rule {
	msg := messages.Format(constraint, typeName, bound.String())
	wrongType := messages.Format(messages.WrongType, typeName, "")

	return func(v value.Value) outcome.Outcome {
		// NaN is neither above nor below any bound.
		if f, isFloat := v.AsFloat(); isFloat && math.IsNaN(f) {
			return outcome.Invalid(msg)
		}

		c, ok := value.Compare(v, bound)
		if !ok {
			// Only reachable when the rule is used without a type check in front.
			return outcome.Invalid(wrongType)
		}

		return If(fails(c), msg)
	}
}

// MinLen fails when the length of a string, list or map is below n.
func MinLen(n int, typeName string) Rule {
	return length(n, typeName, messages.TooShort, func(l int) bool { return l < n })
}

// MaxLen fails when the length of a string, list or map is above n.
func MaxLen(n int, typeName string) Rule {
	return length(n, typeName, messages.TooLong, func(l int) bool { return l > n })
}

// MinEntries is MinLen worded for maps.
func MinEntries(n int, typeName string) Rule {
	return length(n, typeName, messages.TooFewEntries, func(l int) bool { return l < n })
}

// MaxEntries is MaxLen worded for maps.
func MaxEntries(n int, typeName string) Rule {
	return length(n, typeName, messages.TooManyEntries, func(l int) bool { return l > n })
}

func length(n int, typeName string, constraint messages.Constraint, fails func(int) bool) Rule {
	msg := messages.Format(constraint, typeName, strconv.Itoa(n))
	wrongType := messages.Format(messages.WrongType, typeName, "")

	return func(v value.Value) outcome.Outcome {
		l, ok := v.Len()
		if !ok {
			return outcome.Invalid(wrongType)
		}

		return If(fails(l), msg)
	}
}
