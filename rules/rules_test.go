package rules

import (
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/value"
	"github.com/stretchr/testify/assert"
)

func TestIf(t *testing.T) {
	t.Parallel()

	assert.True(t, If(false, "boom").IsValid())
	assert.True(t, If(true, "boom").Equals(outcome.Invalid("boom")))
}

func TestTypeCheck(t *testing.T) {
	t.Parallel()

	rule := TypeCheck(value.KindInt, messages.IntegerType)

	assert.True(t, rule(value.Int(0)).IsValid())
	assert.Equal(t, "Value must be Integer", rule(value.String("")).Message())
	assert.Equal(t, "Value must be Integer", rule(value.Float(1)).Message())
	assert.Equal(t, "Value must be Integer", rule(value.Bool(true)).Message(), "booleans are not integers")
}

func TestMinMax_Inclusive(t *testing.T) {
	t.Parallel()

	lower := Min(value.Int(2), messages.IntegerType)
	upper := Max(value.Int(4), messages.IntegerType)

	assert.Equal(t, "Integer must be greater or equal to 2", lower(value.Int(1)).Message())
	assert.True(t, lower(value.Int(2)).IsValid())
	assert.True(t, upper(value.Int(4)).IsValid())
	assert.Equal(t, "Integer must be smaller or equal to 4", upper(value.Int(5)).Message())
}

func TestMinMax_Temporal(t *testing.T) {
	t.Parallel()

	lower := Min(value.Date(2018, time.January, 1), messages.DateType)

	assert.Equal(t, "Date must be greater or equal to 2018-01-01", lower(value.Date(2017, time.January, 1)).Message())
	assert.True(t, lower(value.Date(2018, time.January, 1)).IsValid())
}

func TestMinMax_Float(t *testing.T) {
	t.Parallel()

	upper := Max(value.Float(2.2), messages.FloatType)

	assert.Equal(t, "Float must be smaller or equal to 2.2", upper(value.Float(4.1)).Message())
	assert.True(t, upper(value.Float(2.2)).IsValid())
}

func TestMinMax_NaNFailsBoth(t *testing.T) {
	t.Parallel()

	lower := Min(value.Float(0), messages.FloatType)
	upper := Max(value.Float(10), messages.FloatType)

	assert.Equal(t, "Float must be greater or equal to 0.0", lower(value.Float(math.NaN())).Message())
	assert.Equal(t, "Float must be smaller or equal to 10.0", upper(value.Float(math.NaN())).Message())
}

func TestMin_IncomparableValue(t *testing.T) {
	t.Parallel()

	lower := Min(value.Int(2), messages.IntegerType)

	assert.Equal(t, "Value must be Integer", lower(value.String("3")).Message())
}

func TestLength(t *testing.T) {
	t.Parallel()

	short := MinLen(2, messages.StringType)
	long := MaxLen(2, messages.StringType)

	assert.Equal(t, "String's length must be larger or equal to 2", short(value.String("")).Message())
	assert.True(t, short(value.String("ab")).IsValid())
	assert.Equal(t, "String's length must be shorter or equal to 2", long(value.String("123")).Message())
	assert.True(t, long(value.List(value.Int(1), value.Int(2))).IsValid())
	assert.Equal(t, "Value must be String", long(value.Int(12)).Message())

	few := MinEntries(1, messages.MapType)
	many := MaxEntries(1, messages.MapType)
	two := value.Map(value.Entry{Key: "a"}, value.Entry{Key: "b"})

	assert.Equal(t, "Dictionary must contain 1 or more elements", few(value.Map()).Message())
	assert.Equal(t, "Dictionary must contain 1 or less elements", many(two).Message())
}
