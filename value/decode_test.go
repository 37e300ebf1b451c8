package value

import (
	"testing"

	"github.com/amp-labs/amp-schema/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	t.Parallel()

	got, err := FromJSON([]byte(`{"z": 1, "a": [1.5, "x", null, true], "m": {}}`))
	require.NoError(t, err)

	want := Map(
		Entry{Key: "z", Value: Int(1)},
		Entry{Key: "a", Value: List(Float(1.5), String("x"), Null(), Bool(true))},
		Entry{Key: "m", Value: Map()},
	)
	assert.True(t, Equal(want, got), "got %s", got)

	entries, _ := got.AsMap()
	assert.Equal(t, "z", entries[0].Key, "document order is kept")
}

func TestFromJSON_Scalars(t *testing.T) {
	t.Parallel()

	v, err := FromJSON([]byte(`null`))
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = FromJSON([]byte(` 42 `))
	require.NoError(t, err)
	assert.True(t, Equal(Int(42), v))

	v, err = FromJSON([]byte(`"2019-03-04"`))
	require.NoError(t, err)
	assert.True(t, Equal(String("2019-03-04"), v))
}

func TestFromJSON_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{``, `{`, `[1,]`, `{"a": 1} {"b": 2}`, `nope`} {
		_, err := FromJSON([]byte(in))
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, errors.ErrMalformedInput, "input %q", in)
	}
}

func TestFromJSON_IntegerOverflow(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`12345678901234567890`, `[-98765432109876543210]`} {
		_, err := FromJSON([]byte(in))
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, errors.ErrMalformedInput, "input %q", in)
		assert.ErrorIs(t, err, errors.ErrUnsupportedValue, "input %q", in)
		assert.ErrorContains(t, err, "overflows int64", "input %q", in)
	}

	// The same magnitude written with an exponent is a float.
	v, err := FromJSON([]byte(`1.2345678901234567e19`))
	require.NoError(t, err)
	f, ok := v.AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 1.2345678901234567e19, f, 1e4)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	doc := `
name: widget
count: 3
ratio: 0.5
enabled: true
nothing: ~
released: 2019-03-04
quoted: "12"
tags:
  - a
  - b
base: &base
  x: 1
copy: *base
`

	got, err := FromYAML([]byte(doc))
	require.NoError(t, err)

	want := Map(
		Entry{Key: "name", Value: String("widget")},
		Entry{Key: "count", Value: Int(3)},
		Entry{Key: "ratio", Value: Float(0.5)},
		Entry{Key: "enabled", Value: Bool(true)},
		Entry{Key: "nothing", Value: Null()},
		Entry{Key: "released", Value: String("2019-03-04")},
		Entry{Key: "quoted", Value: String("12")},
		Entry{Key: "tags", Value: List(String("a"), String("b"))},
		Entry{Key: "base", Value: Map(Entry{Key: "x", Value: Int(1)})},
		Entry{Key: "copy", Value: Map(Entry{Key: "x", Value: Int(1)})},
	)
	assert.True(t, Equal(want, got), "got %s", got)
}

func TestFromYAML_EmptyDocument(t *testing.T) {
	t.Parallel()

	v, err := FromYAML([]byte(""))
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFromYAML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := FromYAML([]byte("a: [1, 2"))
	require.ErrorIs(t, err, errors.ErrMalformedInput)

	_, err = FromYAML([]byte("? [1, 2]\n: value\n"))
	require.ErrorIs(t, err, errors.ErrMalformedInput)
}

func TestFromJSON_ByteOrderMark(t *testing.T) {
	t.Parallel()

	v, err := FromJSON([]byte("\xEF\xBB\xBF{\"a\": 1}"))
	require.NoError(t, err)

	assert.True(t, Equal(Map(Entry{Key: "a", Value: Int(1)}), v))
}

func TestFromYAML_UTF16(t *testing.T) {
	t.Parallel()

	// "a: 1" in UTF-16LE with a byte-order mark.
	v, err := FromYAML([]byte{0xFF, 0xFE, 'a', 0, ':', 0, ' ', 0, '1', 0})
	require.NoError(t, err)

	assert.True(t, Equal(Map(Entry{Key: "a", Value: Int(1)}), v))
}
