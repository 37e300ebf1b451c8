// Package messages formats the human-readable text of every constraint
// violation. It is a pure lookup: the same constraint, type name and bound
// always produce the same text.
package messages

import "fmt"

// Constraint names the kind of rule that was violated.
type Constraint int

const (
	NullNotAllowed Constraint = iota
	WrongType
	BelowMinimum
	AboveMaximum
	TooShort
	TooLong
	TooFewEntries
	TooManyEntries
	InvertedBounds
)

// Type names used in messages, one per validator family.
const (
	IntegerType  = "Integer"
	FloatType    = "Float"
	StringType   = "String"
	BooleanType  = "Boolean"
	DateType     = "Date"
	DateTimeType = "Datetime"
	TimeType     = "Time"
	ListType     = "List"
	MapType      = "Dictionary"
)

// NullNotPermitted is the message for a null input to a non-nullable validator.
const NullNotPermitted = "null not permitted"

var templates = map[Constraint]string{ //nolint:gochecknoglobals
	WrongType:      "Value must be %[1]s",
	BelowMinimum:   "%[1]s must be greater or equal to %[2]s",
	AboveMaximum:   "%[1]s must be smaller or equal to %[2]s",
	TooShort:       "%[1]s's length must be larger or equal to %[2]s",
	TooLong:        "%[1]s's length must be shorter or equal to %[2]s",
	TooFewEntries:  "%[1]s must contain %[2]s or more elements",
	TooManyEntries: "%[1]s must contain %[2]s or less elements",
	InvertedBounds: "%[1]s minimum %[2]s must not exceed its maximum",
}

// Format returns the message for constraint c on values of typeName.
// bound is the rendered limit for the bounded constraints and ignored by
// the others.
func Format(c Constraint, typeName, bound string) string {
	if c == NullNotAllowed {
		return NullNotPermitted
	}

	tmpl, ok := templates[c]
	if !ok {
		return fmt.Sprintf("%s violates constraint %d", typeName, int(c))
	}

	if c == WrongType {
		return fmt.Sprintf(tmpl, typeName)
	}

	return fmt.Sprintf(tmpl, typeName, bound)
}

// String names the constraint.
func (c Constraint) String() string {
	switch c {
	case NullNotAllowed:
		return "NullNotAllowed"
	case WrongType:
		return "WrongType"
	case BelowMinimum:
		return "BelowMinimum"
	case AboveMaximum:
		return "AboveMaximum"
	case TooShort:
		return "TooShort"
	case TooLong:
		return "TooLong"
	case TooFewEntries:
		return "TooFewEntries"
	case TooManyEntries:
		return "TooManyEntries"
	case InvertedBounds:
		return "InvertedBounds"
	default:
		return fmt.Sprintf("Constraint(%d)", int(c))
	}
}
