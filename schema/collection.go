package schema

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"facette.io/natsort"
	"github.com/amp-labs/amp-schema/engine"
	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/rules"
	"github.com/amp-labs/amp-schema/value"
)

// List validates sequences. Options: MinLen, MaxLen, Nullable, Elements.
//
// The shape (is it a list, is its length in bounds) is checked first and
// its failure is returned as a single message. Only then is every element
// validated, and every failing element is reported, in index order.
//
// Example:
//
//	ids := schema.List(schema.MinLen(1), schema.Elements(schema.Int(schema.Min(1))))
func List(opts ...Option) engine.Validator {
	s := apply(messages.ListType, opts, optMinLen, optMaxLen, optNullable, optElements)
	rs := []rules.Rule{rules.TypeCheck(value.KindList, messages.ListType)}

	minLen, maxLen, hasMin, hasMax := s.lengths(messages.ListType)
	if hasMin {
		rs = append(rs, rules.MinLen(minLen, messages.ListType))
	}

	if hasMax {
		rs = append(rs, rules.MaxLen(maxLen, messages.ListType))
	}

	return &listValidator{
		shape:   engine.Compose(rs, engine.Nullable(s.nullable)),
		element: s.elements,
	}
}

type listValidator struct {
	shape   *engine.Composed
	element engine.Validator
}

var _ engine.Validator = (*listValidator)(nil)

func (l *listValidator) Validate(input value.Value) outcome.Outcome {
	if shape := l.shape.Validate(input); !shape.IsValid() || input.IsNull() {
		return shape
	}

	if l.element == nil {
		return outcome.Valid()
	}

	elems, _ := input.AsList()
	failures := make([]outcome.Element, 0)

	for i, elem := range elems {
		if result := l.element.Validate(elem); !result.IsValid() {
			failures = append(failures, outcome.Element{Path: strconv.Itoa(i), Message: outcome.Fold(result)})
		}
	}

	return outcome.Elements(failures...)
}

// Map validates keyed mappings. Options: MinLen, MaxLen (entry count),
// Nullable, Fields, MissingAsNull.
//
// The shape is checked first, as for List. Then every input key that has a
// field validator is validated and every failure is reported, in input key
// order. Input keys without a validator pass through unchecked. Declared
// keys missing from the input are ignored unless MissingAsNull is given,
// in which case they are validated as null and reported after the present
// keys, in natural key order.
func Map(opts ...Option) engine.Validator {
	s := apply(messages.MapType, opts, optMinLen, optMaxLen, optNullable, optFields, optMissingAsNull)
	rs := []rules.Rule{rules.TypeCheck(value.KindMap, messages.MapType)}

	minLen, maxLen, hasMin, hasMax := s.lengths(messages.MapType)
	if hasMin {
		rs = append(rs, rules.MinEntries(minLen, messages.MapType))
	}

	if hasMax {
		rs = append(rs, rules.MaxEntries(maxLen, messages.MapType))
	}

	for key, field := range s.fields {
		if field == nil {
			panic(fmt.Errorf("%w: field %q of %s has a nil validator", errors.ErrUnsupportedOption, key, messages.MapType))
		}
	}

	keys := slices.Collect(maps.Keys(s.fields))
	natsort.Sort(keys)

	return &mapValidator{
		shape:         engine.Compose(rs, engine.Nullable(s.nullable)),
		fields:        s.fields,
		declared:      keys,
		missingAsNull: s.missingAsNull,
	}
}

type mapValidator struct {
	shape         *engine.Composed
	fields        map[string]engine.Validator
	declared      []string
	missingAsNull bool
}

var _ engine.Validator = (*mapValidator)(nil)

func (m *mapValidator) Validate(input value.Value) outcome.Outcome {
	if shape := m.shape.Validate(input); !shape.IsValid() || input.IsNull() {
		return shape
	}

	if len(m.fields) == 0 {
		return outcome.Valid()
	}

	entries, _ := input.AsMap()
	failures := make([]outcome.Element, 0)

	for _, entry := range entries {
		field, ok := m.fields[entry.Key]
		if !ok {
			continue
		}

		if result := field.Validate(entry.Value); !result.IsValid() {
			failures = append(failures, outcome.Element{Path: entry.Key, Message: outcome.Fold(result)})
		}
	}

	if m.missingAsNull {
		for _, key := range m.declared {
			if _, present := input.Lookup(key); present {
				continue
			}

			if result := m.fields[key].Validate(value.Null()); !result.IsValid() {
				failures = append(failures, outcome.Element{Path: key, Message: outcome.Fold(result)})
			}
		}
	}

	return outcome.Elements(failures...)
}
