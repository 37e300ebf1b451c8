package value

import "cmp"

// Compare orders two values of the same comparable kind. Ints and floats
// compare with each other; temporal kinds compare only with their own kind.
// The second result is false when the values cannot be ordered.
func Compare(a, b Value) (int, bool) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return cmp.Compare(a.integer, b.integer), true
	case isNumber(a) && isNumber(b):
		return cmp.Compare(a.number(), b.number()), true
	case a.kind != b.kind:
		return 0, false
	}

	switch a.kind { //nolint:exhaustive
	case KindString:
		return cmp.Compare(a.text, b.text), true
	case KindBool:
		return cmp.Compare(boolRank(a.boolean), boolRank(b.boolean)), true
	case KindDate, KindDateTime, KindTime:
		return a.instant.Compare(b.instant), true
	default:
		return 0, false
	}
}

// Equal reports whether a and b hold the same kind and structurally equal
// contents. Temporal values are equal when they denote the same instant.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}

		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}

		return true
	case KindMap:
		if len(a.entries) != len(b.entries) {
			return false
		}

		for i := range a.entries {
			if a.entries[i].Key != b.entries[i].Key || !Equal(a.entries[i].Value, b.entries[i].Value) {
				return false
			}
		}

		return true
	case KindFloat:
		return a.float == b.float
	default:
		c, ok := Compare(a, b)

		return ok && c == 0
	}
}

func isNumber(v Value) bool {
	return v.kind == KindInt || v.kind == KindFloat
}

func (v Value) number() float64 {
	if v.kind == KindInt {
		return float64(v.integer)
	}

	return v.float
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
