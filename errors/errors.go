// Package errors holds the sentinel errors shared by the schema packages,
// along with a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrValidation wraps every failed validation returned by the validate package.
	ErrValidation = errors.New("validation failed")

	// ErrWrongType marks a value that is not of the kind an operation expected,
	// such as a Date bound given an integer. It is always wrapped together
	// with a more specific sentinel.
	ErrWrongType = errors.New("wrong type")

	// ErrInvalidBounds is raised (as a panic) when a validator is built with an
	// inverted, negative or mistyped bound.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrUnsupportedOption is raised (as a panic) when an option is passed to a
	// factory that has no use for it, e.g. Fields on a list validator.
	ErrUnsupportedOption = errors.New("unsupported option")

	// ErrUnsupportedValue is returned when a Go value has no representation
	// in the value model (channels, funcs, maps with non-string keys...).
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnparsable is returned by the textual parsers in xform.
	ErrUnparsable = errors.New("unparsable text")

	// ErrMalformedInput is returned when raw JSON or YAML bytes cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")
)

// Collection accumulates errors in the order they were added. It is not
// safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends err to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// GetError returns nil for an empty collection, the error itself when
// there is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Is reports whether any error in err's tree matches target. It mirrors the
// standard library so callers only need to import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
