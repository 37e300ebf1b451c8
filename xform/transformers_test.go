package xform

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want value.Value
	}{
		{"2019-03-04", value.Date(2019, time.March, 4)},
		{"2019-1-1", value.Date(2019, time.January, 1)},
		{"2020-02-29", value.Date(2020, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, value.KindDate, got.Kind())
			assert.True(t, value.Equal(tt.want, got), "got %s", got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"not-a-date", "123", "", "2019-02-30", "2019-03-04T10:00:00", "19-03-04"} {
		_, err := ParseDate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, errors.ErrUnparsable, "input %q", in)
	}
}

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	got, err := ParseDateTime("2019-03-04T10:20:30")
	require.NoError(t, err)
	assert.Equal(t, value.KindDateTime, got.Kind())
	assert.True(t, value.Equal(value.DateTime(time.Date(2019, 3, 4, 10, 20, 30, 0, time.UTC)), got))

	for _, in := range []string{"2019-03-04T10:20:30.5", "2019-03-04T10:20:30,123"} {
		_, err = ParseDateTime(in)
		require.ErrorIs(t, err, errors.ErrUnparsable, "input %q", in)
	}

	_, err = ParseDateTime("2019-03-04")
	require.ErrorIs(t, err, errors.ErrUnparsable)

	_, err = ParseDateTime("2019-03-04 10:20:30")
	require.ErrorIs(t, err, errors.ErrUnparsable)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	got, err := ParseTime("08:15:00")
	require.NoError(t, err)
	assert.Equal(t, value.KindTime, got.Kind())
	assert.True(t, value.Equal(value.Time(8, 15, 0, 0), got))

	got, err = ParseTime("8:5:0")
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Time(8, 5, 0, 0), got))

	for _, in := range []string{"25:00:00", "12:00", "noon", "10:20:30.5", "10:20:30,5"} {
		_, err := ParseTime(in)
		require.ErrorIs(t, err, errors.ErrUnparsable, "input %q", in)
	}
}

func TestTransforms_PassThroughStructuredInput(t *testing.T) {
	t.Parallel()

	date := value.Date(2019, time.March, 4)
	moment := value.DateTime(time.Date(2019, 3, 4, 1, 2, 3, 0, time.UTC))
	clock := value.Time(1, 2, 3, 0)
	number := value.Int(12)

	for _, tt := range []struct {
		name string
		fn   func(value.Value) (value.Value, error)
		in   value.Value
	}{
		{"date", ToDate, date},
		{"date-time", ToDateTime, moment},
		{"time", ToTime, clock},
		{"number to date", ToDate, number},
		{"null to time", ToTime, value.Null()},
	} {
		got, err := tt.fn(tt.in)
		require.NoError(t, err, tt.name)
		assert.True(t, value.Equal(tt.in, got), tt.name)
	}
}

func TestTransforms_ParseText(t *testing.T) {
	t.Parallel()

	got, err := ToDate(value.String("2019-03-04"))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Date(2019, time.March, 4), got))

	got, err = ToTime(value.String("23:59:59"))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Time(23, 59, 59, 0), got))

	_, err = ToDateTime(value.String("yesterday"))
	require.ErrorIs(t, err, errors.ErrUnparsable)
}
