// Package outcome defines what a validator returns: valid, a single
// message, or an ordered list of path-tagged element failures.
package outcome

import (
	"errors"
	"slices"
	"strings"

	commonErrors "github.com/amp-labs/amp-schema/errors"
)

// ElementSeparator joins an element's path and message when rendered.
const ElementSeparator = " => "

type shape int

const (
	shapeValid shape = iota
	shapeMessage
	shapeElements
)

// Element is the failure of one element of a list or map. Path is the
// decimal index for lists and the key for maps.
type Element struct {
	Path    string
	Message string
}

// String renders the element as "<path> => <message>".
func (e Element) String() string {
	return e.Path + ElementSeparator + e.Message
}

// Outcome is the result of a single validation. The zero Outcome is valid.
// Outcomes are immutable and compare by value with Equals.
type Outcome struct {
	shape    shape
	message  string
	elements []Element
}

// Valid returns the successful outcome.
func Valid() Outcome {
	return Outcome{}
}

// Invalid returns a failure carrying a single message.
func Invalid(message string) Outcome {
	return Outcome{shape: shapeMessage, message: message}
}

// Elements returns a failure made of element failures, in the given order.
// With no elements it returns Valid: an element outcome is never empty.
func Elements(elems ...Element) Outcome {
	if len(elems) == 0 {
		return Valid()
	}

	return Outcome{shape: shapeElements, elements: slices.Clone(elems)}
}

// IsValid reports whether the validation succeeded.
func (o Outcome) IsValid() bool {
	return o.shape == shapeValid
}

// IsMessage reports whether o is a single-message failure.
func (o Outcome) IsMessage() bool {
	return o.shape == shapeMessage
}

// IsElements reports whether o is made of element failures.
func (o Outcome) IsElements() bool {
	return o.shape == shapeElements
}

// Message returns the message of a single-message failure, or "".
func (o Outcome) Message() string {
	return o.message
}

// Elements returns a copy of the element failures, or nil.
func (o Outcome) Elements() []Element {
	return slices.Clone(o.elements)
}

// Lines renders o as text lines: nothing when valid, the message for a
// single failure, and one "<path> => <message>" line per element otherwise.
func (o Outcome) Lines() []string {
	switch o.shape {
	case shapeMessage:
		return []string{o.message}
	case shapeElements:
		lines := make([]string, len(o.elements))
		for i, e := range o.elements {
			lines[i] = e.String()
		}

		return lines
	default:
		return nil
	}
}

// String renders o on a single line. Element failures are folded into
// "[<line>; <line>]", which is how a nested collection's failures appear
// inside its parent element's message.
func (o Outcome) String() string {
	switch o.shape {
	case shapeMessage:
		return o.message
	case shapeElements:
		return "[" + strings.Join(o.Lines(), "; ") + "]"
	default:
		return "valid"
	}
}

// Equals reports whether both outcomes have the same shape and content.
func (o Outcome) Equals(other Outcome) bool {
	return o.shape == other.shape &&
		o.message == other.message &&
		slices.Equal(o.elements, other.elements)
}

// Err converts o to an error: nil when valid, the message as an error for a
// single failure, and the joined element errors (one per element, in order)
// otherwise.
func (o Outcome) Err() error {
	switch o.shape {
	case shapeMessage:
		return errors.New(o.message) //nolint:err113
	case shapeElements:
		var errs commonErrors.Collection

		for _, e := range o.elements {
			errs.Add(errors.New(e.String())) //nolint:err113
		}

		return errs.GetError()
	default:
		return nil
	}
}

// Fold turns a child outcome into the message text of its parent element.
// It returns "" for a valid child.
func Fold(child Outcome) string {
	if child.IsValid() {
		return ""
	}

	return child.String()
}
