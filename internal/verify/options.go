package verify

import (
	"runtime"

	"github.com/hupe1980/numconv"
	"github.com/hupe1980/numconv/internal/logging"
	"github.com/hupe1980/numconv/matrix"
)

// ConvertFunc converts a dynamic value under a policy. numconv.Convert is
// the default.
type ConvertFunc func(policy matrix.Policy, dst matrix.Kind, v any) (any, error)

type options struct {
	workers       int
	samples       int
	seed          int64
	policies      []matrix.Policy
	logger        *logging.Logger
	convert       ConvertFunc
	maxViolations int
}

// Option configures a Verifier.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers:       runtime.GOMAXPROCS(0),
		samples:       256,
		seed:          1,
		policies:      matrix.Policies(),
		logger:        logging.NoopLogger(),
		convert:       numconv.Convert,
		maxViolations: 4,
	}
}

// WithWorkers bounds the number of pairs verified concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSamples sets the number of random samples drawn per source kind in
// addition to its boundary values. Sources of at most 16 bits are always
// sampled exhaustively.
func WithSamples(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.samples = n
		}
	}
}

// WithSeed sets the seed of the random samples.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithPolicies restricts the run to the given policies. Invalid policies are
// dropped; an empty list keeps all four.
func WithPolicies(ps ...matrix.Policy) Option {
	return func(o *options) {
		valid := make([]matrix.Policy, 0, len(ps))
		for _, p := range ps {
			if p.Valid() {
				valid = append(valid, p)
			}
		}
		if len(valid) > 0 {
			o.policies = valid
		}
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.NoopLogger()
		}
		o.logger = l
	}
}

// WithConvertFunc replaces the conversion under test.
func WithConvertFunc(fn ConvertFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.convert = fn
		}
	}
}

// WithMaxViolations caps the number of violations reported per pair.
func WithMaxViolations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxViolations = n
		}
	}
}
