package schema

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-schema/engine"
	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/rules"
	"github.com/amp-labs/amp-schema/value"
	"github.com/amp-labs/amp-schema/xform"
)

// scalar describes one bounded scalar family.
type scalar struct {
	kind      value.Kind
	typeName  string
	transform engine.Transform
	// widen converts a bound of another kind into this family's kind, or
	// returns it unchanged.
	widen func(value.Value) value.Value
}

// Int validates integers. Options: Min, Max, Nullable.
//
// Example:
//
//	age := schema.Int(schema.Min(0), schema.Max(150))
func Int(opts ...Option) engine.Validator {
	return scalar{kind: value.KindInt, typeName: messages.IntegerType}.build(opts)
}

// Float validates floating-point numbers. Integers are not floats; an
// integer bound, however, is accepted and widened. Options: Min, Max,
// Nullable.
func Float(opts ...Option) engine.Validator {
	return scalar{kind: value.KindFloat, typeName: messages.FloatType, widen: intToFloat}.build(opts)
}

// Date validates calendar dates. ISO-8601 text (YYYY-MM-DD) is parsed
// first; text that does not parse is reported as not being a date.
// Options: Min, Max, Nullable.
func Date(opts ...Option) engine.Validator {
	return scalar{kind: value.KindDate, typeName: messages.DateType, transform: xform.ToDate}.build(opts)
}

// DateTime validates dates with a time of day. ISO-8601 text
// (YYYY-MM-DDTHH:MM:SS) is parsed first. Options: Min, Max, Nullable.
func DateTime(opts ...Option) engine.Validator {
	return scalar{kind: value.KindDateTime, typeName: messages.DateTimeType, transform: xform.ToDateTime}.build(opts)
}

// Time validates times of day. ISO-8601 text (HH:MM:SS) is parsed first.
// Options: Min, Max, Nullable.
func Time(opts ...Option) engine.Validator {
	return scalar{kind: value.KindTime, typeName: messages.TimeType, transform: xform.ToTime}.build(opts)
}

// String validates text. Options: MinLen, MaxLen (in runes), Nullable.
func String(opts ...Option) engine.Validator {
	s := apply(messages.StringType, opts, optMinLen, optMaxLen, optNullable)
	rs := []rules.Rule{rules.TypeCheck(value.KindString, messages.StringType)}

	minLen, maxLen, hasMin, hasMax := s.lengths(messages.StringType)
	if hasMin {
		rs = append(rs, rules.MinLen(minLen, messages.StringType))
	}

	if hasMax {
		rs = append(rs, rules.MaxLen(maxLen, messages.StringType))
	}

	return engine.Compose(rs, engine.Nullable(s.nullable))
}

// Bool validates booleans. Options: Nullable.
func Bool(opts ...Option) engine.Validator {
	s := apply(messages.BooleanType, opts, optNullable)

	return engine.Compose(
		[]rules.Rule{rules.TypeCheck(value.KindBool, messages.BooleanType)},
		engine.Nullable(s.nullable),
	)
}

func (sc scalar) build(opts []Option) *engine.Composed {
	s := apply(sc.typeName, opts, optMin, optMax, optNullable)
	rs := []rules.Rule{rules.TypeCheck(sc.kind, sc.typeName)}

	var lower, upper value.Value

	if s.has(optMin) {
		lower = sc.bound(s.min, "minimum")
		rs = append(rs, rules.Min(lower, sc.typeName))
	}

	if s.has(optMax) {
		upper = sc.bound(s.max, "maximum")
		rs = append(rs, rules.Max(upper, sc.typeName))
	}

	if s.has(optMin) && s.has(optMax) {
		if c, _ := value.Compare(lower, upper); c > 0 {
			panic(fmt.Errorf("%w: %s (maximum %s)", errors.ErrInvalidBounds,
				messages.Format(messages.InvertedBounds, sc.typeName, lower.String()), upper))
		}
	}

	return engine.Compose(rs, engine.Nullable(s.nullable), engine.WithTransform(sc.transform))
}

// bound normalizes a bound the way inputs are normalized and checks that it
// belongs to this family.
func (sc scalar) bound(b value.Value, which string) value.Value {
	if sc.transform != nil {
		if transformed, err := sc.transform(b); err == nil {
			b = transformed
		}
	}

	if sc.widen != nil {
		b = sc.widen(b)
	}

	if b.Kind() != sc.kind {
		panic(fmt.Errorf("%w: %w: %s %s %s is a %s, not a %s",
			errors.ErrInvalidBounds, errors.ErrWrongType, sc.typeName, which, b, b.Kind(), sc.kind))
	}

	if f, ok := b.AsFloat(); ok && math.IsNaN(f) {
		panic(fmt.Errorf("%w: %s %s is NaN", errors.ErrInvalidBounds, sc.typeName, which))
	}

	return b
}

func intToFloat(b value.Value) value.Value {
	if i, ok := b.AsInt(); ok {
		return value.Float(float64(i))
	}

	return b
}
