package value

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"facette.io/natsort"
	"github.com/amp-labs/amp-schema/errors"
)

// FromAny converts a Go-native decoded value into a Value. It understands
// what encoding/json, gopkg.in/yaml.v3 and most other decoders produce:
// nil, booleans, every integer and float type, strings, json.Number,
// time.Time (as a date-time), slices, arrays, and maps keyed by strings.
// Pointers are followed; nil pointers, slices and maps become null.
//
// Go maps have no order, so their entries are sorted with natural sort
// order ("a2" before "a10") to keep failure reports deterministic.
func FromAny(raw any) (Value, error) {
	return fromAny(raw, "")
}

func fromAny(raw any, path string) (Value, error) { //nolint:cyclop,funlen
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v), path)
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v, path)
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []byte:
		return String(string(v)), nil
	case json.Number:
		return fromNumber(string(v), path)
	case time.Time:
		return DateTime(v), nil
	case []any:
		return fromSlice(len(v), func(i int) any { return v[i] }, path)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		return fromKeys(keys, func(k string) any { return v[k] }, path)
	}

	return fromReflect(reflect.ValueOf(raw), path)
}

func fromReflect(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint(), path)
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}

		return fromAny(rv.Elem().Interface(), path)
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}

		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, path)
	case reflect.Array:
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, path)
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}

		return fromReflectMap(rv, path)
	}

	return Null(), unsupported(rv.Interface(), path)
}

func fromReflectMap(rv reflect.Value, path string) (Value, error) {
	byKey := make(map[string]reflect.Value, rv.Len())
	keys := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		for key.Kind() == reflect.Interface && !key.IsNil() {
			key = key.Elem()
		}

		if key.Kind() != reflect.String {
			return Null(), fmt.Errorf("%w: map key of type %s at %s", errors.ErrUnsupportedValue, key.Type(), where(path))
		}

		keys = append(keys, key.String())
		byKey[key.String()] = iter.Value()
	}

	return fromKeys(keys, func(k string) any { return byKey[k].Interface() }, path)
}

func fromSlice(n int, at func(int) any, path string) (Value, error) {
	elems := make([]Value, n)

	for i := range n {
		elem, err := fromAny(at(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return Null(), err
		}

		elems[i] = elem
	}

	return List(elems...), nil
}

func fromKeys(keys []string, at func(string) any, path string) (Value, error) {
	natsort.Sort(keys)

	entries := make([]Entry, 0, len(keys))

	for _, k := range keys {
		elem, err := fromAny(at(k), path+"."+k)
		if err != nil {
			return Null(), err
		}

		entries = append(entries, Entry{Key: k, Value: elem})
	}

	return Map(entries...), nil
}

func fromUint(u uint64, path string) (Value, error) {
	if u > math.MaxInt64 {
		return Null(), fmt.Errorf("%w: %d overflows int64 at %s", errors.ErrUnsupportedValue, u, where(path))
	}

	return Int(int64(u)), nil
}

// fromNumber keeps integral literals as ints and everything carrying a
// fraction or exponent as a float, the way JSON decoders in dynamic
// languages do. An integral literal outside the int64 range is an error
// rather than a lossy float.
func fromNumber(text, path string) (Value, error) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return Int(i), nil
	}

	if goerrors.Is(err, strconv.ErrRange) {
		return Null(), fmt.Errorf("%w: %s overflows int64 at %s", errors.ErrUnsupportedValue, text, where(path))
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Null(), fmt.Errorf("%w: number %q at %s", errors.ErrUnsupportedValue, text, where(path))
	}

	return Float(f), nil
}

func unsupported(raw any, path string) error {
	return fmt.Errorf("%w: %T at %s", errors.ErrUnsupportedValue, raw, where(path))
}

func where(path string) string {
	if path == "" {
		return "root"
	}

	return path
}
