package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/amp-labs/amp-schema/messages"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/rules"
	"github.com/amp-labs/amp-schema/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotANumber = errors.New("not a number")

// countingRule records how often it runs and fails with msg when fail is set.
func countingRule(calls *int, fail bool, msg string) rules.Rule {
	return func(value.Value) outcome.Outcome {
		*calls++

		return rules.If(fail, msg)
	}
}

// parseDigits turns "7" into 7 and rejects everything else.
func parseDigits(in value.Value) (value.Value, error) {
	s, ok := in.AsString()
	if !ok || len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return in, errNotANumber
	}

	return value.Int(int64(s[0] - '0')), nil
}

func TestCompose_NullNotPermitted(t *testing.T) {
	t.Parallel()

	calls := 0
	v := Compose([]rules.Rule{countingRule(&calls, false, "")})

	got := v.Validate(value.Null())

	assert.True(t, got.Equals(outcome.Invalid("null not permitted")))
	assert.Zero(t, calls, "rules never see a null input")
}

func TestCompose_NullableAcceptsNull(t *testing.T) {
	t.Parallel()

	calls := 0
	v := Compose([]rules.Rule{countingRule(&calls, true, "always fails")}, Nullable(true))

	assert.True(t, v.Validate(value.Null()).IsValid())
	assert.Zero(t, calls)
}

func TestCompose_NullCheckWithoutRules(t *testing.T) {
	t.Parallel()

	assert.Equal(t, messages.NullNotPermitted, Compose(nil).Validate(value.Null()).Message())
	assert.True(t, Compose(nil).Validate(value.Int(1)).IsValid())
	assert.True(t, Compose(nil, Nullable(true)).Validate(value.Null()).IsValid())
}

func TestCompose_NullSkipsTransform(t *testing.T) {
	t.Parallel()

	transformed := false
	v := Compose(nil, Nullable(true), WithTransform(func(in value.Value) (value.Value, error) {
		transformed = true

		return in, nil
	}))

	v.Validate(value.Null())
	assert.False(t, transformed)
}

func TestCompose_FirstFailureWins(t *testing.T) {
	t.Parallel()

	first, second, third := 0, 0, 0
	v := Compose([]rules.Rule{
		countingRule(&first, false, ""),
		countingRule(&second, true, "second failed"),
		countingRule(&third, true, "third failed"),
	})

	got := v.Validate(value.Int(1))

	assert.Equal(t, "second failed", got.Message())
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Zero(t, third, "rules after a failure are not evaluated")
}

func TestCompose_AllRulesPass(t *testing.T) {
	t.Parallel()

	a, b := 0, 0
	v := Compose([]rules.Rule{countingRule(&a, false, ""), countingRule(&b, false, "")})

	assert.True(t, v.Validate(value.Int(1)).IsValid())
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestCompose_TransformSuccess(t *testing.T) {
	t.Parallel()

	v := Compose([]rules.Rule{
		rules.TypeCheck(value.KindInt, messages.IntegerType),
		rules.Max(value.Int(5), messages.IntegerType),
	}, WithTransform(parseDigits))

	assert.True(t, v.Validate(value.String("4")).IsValid())
	assert.Equal(t, "Integer must be smaller or equal to 5", v.Validate(value.String("9")).Message())
}

func TestCompose_TransformFailureFallsBackToInput(t *testing.T) {
	t.Parallel()

	var seen value.Value

	v := Compose([]rules.Rule{
		func(in value.Value) outcome.Outcome {
			seen = in

			return outcome.Valid()
		},
		rules.TypeCheck(value.KindInt, messages.IntegerType),
	}, WithTransform(parseDigits))

	got := v.Validate(value.String("forty-two"))

	assert.Equal(t, "Value must be Integer", got.Message())
	assert.True(t, value.Equal(value.String("forty-two"), seen), "rules saw the untransformed input")
}

func TestCompose_CopiesRules(t *testing.T) {
	t.Parallel()

	rs := []rules.Rule{rules.TypeCheck(value.KindInt, messages.IntegerType)}
	v := Compose(rs)
	rs[0] = rules.TypeCheck(value.KindString, messages.StringType)

	assert.True(t, v.Validate(value.Int(1)).IsValid())
}

func TestCompose_Idempotent(t *testing.T) {
	t.Parallel()

	v := Compose([]rules.Rule{
		rules.TypeCheck(value.KindInt, messages.IntegerType),
		rules.Min(value.Int(2), messages.IntegerType),
	})

	first := v.Validate(value.Int(1))

	for range 5 {
		assert.True(t, first.Equals(v.Validate(value.Int(1))))
	}
}

func TestCompose_ConcurrentUse(t *testing.T) {
	t.Parallel()

	v := Compose([]rules.Rule{
		rules.TypeCheck(value.KindInt, messages.IntegerType),
		rules.Min(value.Int(0), messages.IntegerType),
	}, WithTransform(parseDigits))

	var wg sync.WaitGroup

	results := make([]outcome.Outcome, 64)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = v.Validate(value.String("7"))
		}()
	}

	wg.Wait()

	for _, r := range results {
		require.True(t, r.IsValid())
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var nilFunc Func

	assert.True(t, nilFunc.Validate(value.Null()).IsValid())

	reject := Func(func(value.Value) outcome.Outcome { return outcome.Invalid("no") })
	assert.Equal(t, "no", reject.Validate(value.Int(1)).Message())
}

func TestOptions_NilIgnored(t *testing.T) {
	t.Parallel()

	v := Compose(nil, nil, WithTransform(nil))

	assert.Equal(t, messages.NullNotPermitted, v.Validate(value.Null()).Message())
	assert.True(t, v.Validate(value.String("x")).IsValid())
}
