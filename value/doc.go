// Package value defines the decoded-data model validators operate on.
//
// A Value is a small tagged union: null, bool, int, float, string, date,
// date-time, time of day, list, or map with string keys. Raw input enters
// the model once, at the boundary, through FromAny (Go values produced by
// any decoder), FromJSON or FromYAML. After that every validator works on
// the same closed set of kinds, so "is this an integer" is a tag
// comparison rather than a runtime type assertion.
//
// Values are immutable. Constructors copy the slices they are given and
// accessors return copies, so a Value can be shared freely between
// goroutines.
package value
