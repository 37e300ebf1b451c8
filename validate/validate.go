// Package validate runs schema validators at the boundary where decoded
// data enters an application. Every entry point returns nil or an error
// wrapping errors.ErrValidation (the input broke a constraint) or
// errors.ErrMalformedInput (the input could not be decoded at all). Each
// call is logged and counted in Prometheus.
package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-schema/engine"
	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/logger"
	"github.com/amp-labs/amp-schema/outcome"
	"github.com/amp-labs/amp-schema/value"
)

// Validate checks input with v. The error, when there is one, carries one
// line per failure: the message of a scalar failure, or "<path> => <message>"
// for each failing element of a collection. Use Outcome if the structured
// result is needed.
//
// Example:
//
//	if err := validate.Validate(ctx, userSchema, input); err != nil {
//	    return err // errors.Is(err, errors.ErrValidation)
//	}
func Validate(ctx context.Context, v engine.Validator, input value.Value) error {
	return toError(Outcome(ctx, v, input))
}

// Outcome checks input with v and returns the structured result. It logs
// and records metrics exactly like Validate.
func Outcome(ctx context.Context, v engine.Validator, input value.Value) outcome.Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	result := v.Validate(input)
	label := resultLabel(result)

	observe(label, time.Since(start))

	if !result.IsValid() {
		logger.Get(ctx).Debug("validation failed",
			"result", label,
			"failures", result.Lines())
	}

	return result
}

// Decoded converts a Go-native decoded value (the output of
// encoding/json, yaml.v3 or similar decoders) and validates it.
func Decoded(ctx context.Context, v engine.Validator, raw any) error {
	input, err := value.FromAny(raw)
	if err != nil {
		return malformed(ctx, err)
	}

	return Validate(ctx, v, input)
}

// JSON decodes a JSON document and validates it.
func JSON(ctx context.Context, v engine.Validator, data []byte) error {
	input, err := value.FromJSON(data)
	if err != nil {
		return malformed(ctx, err)
	}

	return Validate(ctx, v, input)
}

// YAML decodes a YAML document and validates it.
func YAML(ctx context.Context, v engine.Validator, data []byte) error {
	input, err := value.FromYAML(data)
	if err != nil {
		return malformed(ctx, err)
	}

	return Validate(ctx, v, input)
}

func toError(result outcome.Outcome) error {
	err := result.Err()
	if err == nil {
		return nil
	}

	return logger.AnnotateError(fmt.Errorf("%w: %w", errors.ErrValidation, err),
		"failures", len(result.Lines()))
}

func malformed(ctx context.Context, err error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	observe(resultMalformed, 0)

	if !errors.Is(err, errors.ErrMalformedInput) {
		err = fmt.Errorf("%w: %w", errors.ErrMalformedInput, err)
	}

	logger.Get(ctx).Warn("input could not be decoded", "error", err)

	return err
}
