// Package engine composes rules into validators.
//
// A validator built by Compose runs, in this order:
//
//  1. the null check: a null input is rejected with "null not permitted"
//     unless the validator is nullable, in which case it is accepted outright;
//  2. the optional transform: when it succeeds the rules see the transformed
//     value, when it fails they see the original input;
//  3. the rules, in order, stopping at the first failure.
//
// Everything is fixed when Compose returns. The result holds no reference
// to any input and is safe for concurrent use.
package engine

import (
	"slices"

	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/rules"
	"github.com/amp-labs/amp-schema/value"
)

// Validator checks a value and reports the outcome.
type Validator interface {
	Validate(input value.Value) outcome.Outcome
}

// Func adapts a plain function to the Validator interface. A nil Func
// accepts everything.
type Func func(input value.Value) outcome.Outcome

// Compile-time assertion that Func implements Validator.
var _ Validator = Func(nil)

// Validate calls f.
func (f Func) Validate(input value.Value) outcome.Outcome {
	if f == nil {
		return outcome.Valid()
	}

	return f(input)
}

// Transform re-expresses an input before the rules see it, e.g. by parsing
// text into a date. Returning an error means "could not transform"; it is
// never reported to the caller.
type Transform func(input value.Value) (value.Value, error)

// Composed is the validator returned by Compose.
type Composed struct {
	rules     []rules.Rule
	nullable  bool
	transform Transform
}

// Compile-time assertion that Composed implements Validator.
var _ Validator = (*Composed)(nil)

// Compose builds a validator from rules and options. The rules slice is
// copied; changing it afterwards has no effect on the validator.
func Compose(rs []rules.Rule, opts ...Option) *Composed {
	cfg := config{}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Composed{
		rules:     slices.Clone(rs),
		nullable:  cfg.nullable,
		transform: cfg.transform,
	}
}

// Validate runs the null check, the transform and the rules.
func (c *Composed) Validate(input value.Value) outcome.Outcome {
	if input.IsNull() {
		if c.nullable {
			return outcome.Valid()
		}

		return outcome.Invalid(messages.NullNotPermitted)
	}

	subject := input

	if c.transform != nil {
		transformed, err := c.transform(input)
		if err == nil {
			subject = transformed
		} else {
			// Fall back to the raw input and let the type check reject it.
			subject = input
		}
	}

	return evaluate(c.rules, subject)
}

func evaluate(rs []rules.Rule, subject value.Value) outcome.Outcome {
	for _, rule := range rs {
		if result := rule(subject); !result.IsValid() {
			return result
		}
	}

	return outcome.Valid()
}
