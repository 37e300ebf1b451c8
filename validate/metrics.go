package validate

import (
	"time"

	"github.com/amp-labs/amp-schema/outcome"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the result label.
const (
	resultValid     = "valid"
	resultInvalid   = "invalid"
	resultElements  = "elements"
	resultMalformed = "malformed"
)

var (
	// validationsTotal is a Prometheus counter of validation calls made
	// through this package (Validate, Outcome, Decoded, JSON and YAML).
	//
	// Labels:
	//   - result: the shape of the outcome.
	//     "valid" when the validator accepted the input,
	//     "invalid" when it returned a single message (wrong type, a failed
	//     rule, a missing field),
	//     "elements" when a List or Map reported per-element failures,
	//     "malformed" when the document could not be decoded and no validator
	//     ran at all.
	//
	// The counter increments once per call whatever the outcome, so
	// "malformed" separates broken payloads from payloads that decode but do
	// not conform.
	//
	// Usage example in dashboards:
	//   - sum(rate(schema_validations_total[5m])) - Validations per second
	//   - sum(rate(schema_validations_total[5m])) by (result) - Breakdown by result
	//   - sum(rate(schema_validations_total{result=~"invalid|elements"}[5m]))
	//     / sum(rate(schema_validations_total[5m])) - Rejection ratio
	//   - rate(schema_validations_total{result="malformed"}[5m]) - Undecodable inputs per second
	//
	// Prometheus metrics are registered once per process, hence the globals.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "schema_validations_total",
		Help: "The total number of schema validations, by result",
	}, []string{"result"})

	// validationTime is a Prometheus histogram of how long a validator takes
	// to run, in milliseconds. Decoding is not included, and malformed inputs
	// are not observed since no validator ran for them.
	//
	// Labels:
	//   - result: "valid", "invalid" or "elements", as for validationsTotal.
	//     Failing early on a wrong type is usually much cheaper than walking a
	//     valid document, so the label keeps the two distributions apart.
	//
	// Buckets: validators are pure in-memory checks, so the range is far
	// below typical request latencies:
	//   - 0.01, 0.05, 0.1ms - Scalars and small maps
	//   - 0.5, 1, 5ms - Lists and maps with hundreds of elements
	//   - 10, 50, 100, 500ms - Large documents; sustained values here usually
	//     mean a payload that should have been rejected by size first
	//
	// Usage example in dashboards:
	//   - histogram_quantile(0.95, sum(rate(schema_validation_time_millis_bucket[5m])) by (le)) - p95 latency
	//   - histogram_quantile(0.95, sum(rate(schema_validation_time_millis_bucket[5m])) by (le, result)) - p95 by result
	//   - rate(schema_validation_time_millis_sum[5m]) / rate(schema_validation_time_millis_count[5m]) - Average duration
	//   - schema_validation_time_millis_bucket{le="1"} - Validations finishing within 1ms
	//
	// Alerting examples:
	//   - Alert if p95 validation time stays above 50ms for 10 minutes
	//   - Alert if the malformed rate jumps after a client deploy
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "schema_validation_time_millis",
		Help: "The time it takes to run a schema validator, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500,
		},
	}, []string{"result"})
)

// init creates every result series of validationsTotal with a zero value.
//
// A counter series that has never been incremented is absent from the
// scrape, so rate() and ratio queries over it return no data instead of 0
// and alerts on "malformed" would stay silent until the first bad payload.
// Histogram series are left to appear on first use.
func init() {
	for _, result := range []string{resultValid, resultInvalid, resultElements, resultMalformed} {
		validationsTotal.WithLabelValues(result).Add(0)
	}
}

// resultLabel maps an outcome to the result label. Malformed is decided by
// the caller, before any outcome exists.
func resultLabel(result outcome.Outcome) string {
	switch {
	case result.IsValid():
		return resultValid
	case result.IsElements():
		return resultElements
	default:
		return resultInvalid
	}
}

func observe(label string, elapsed time.Duration) {
	validationsTotal.WithLabelValues(label).Inc()

	if label != resultMalformed {
		validationTime.WithLabelValues(label).Observe(float64(elapsed) / float64(time.Millisecond))
	}
}
