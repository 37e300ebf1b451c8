// Package schema builds validators for decoded data from plain factory
// calls.
//
// Scalar factories (Int, Float, String, Bool, Date, DateTime, Time) check
// the kind of the value and then its bounds, stopping at the first failure
// and returning one message. Temporal factories accept ISO-8601 text as
// well as structured values. Collection factories (List, Map) check the
// shape of the collection the same way, then validate every element with
// the validator they were given and report all failing elements, each
// tagged with its index or key.
//
//	user := schema.Map(schema.Fields(map[string]engine.Validator{
//	    "name":     schema.String(schema.MinLen(1), schema.MaxLen(64)),
//	    "age":      schema.Int(schema.Min(0), schema.Nullable()),
//	    "birthday": schema.Date(schema.Max(value.String("2020-01-01"))),
//	    "tags":     schema.List(schema.Elements(schema.String())),
//	}))
//
//	result := user.Validate(input)
//	for _, line := range result.Lines() {
//	    fmt.Println(line)
//	}
//
// Misconfiguration is a programming error, not a validation outcome:
// factories panic with an error wrapping errors.ErrInvalidBounds (a bound of
// the wrong kind, min above max, a negative length) or
// errors.ErrUnsupportedOption (e.g. Elements passed to Map).
//
// Validators are immutable once built and safe for concurrent use.
package schema
