package verify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/numconv"
	"github.com/hupe1980/numconv/matrix"
	"github.com/hupe1980/numconv/testutil"
)

// Property names used in violations.
const (
	PropertyCatalogue = "catalogue"
	PropertyValue     = "value"
	PropertyRoundTrip = "round-trip"
)

// Violation is one failed check.
type Violation struct {
	Policy   matrix.Policy
	Pair     matrix.Pair
	Property string
	Input    string
	Got      string
	Want     string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s %s: %s: input %s: got %s, want %s", v.Policy, v.Pair, v.Property, v.Input, v.Got, v.Want)
}

// Report summarises a verification run.
type Report struct {
	// Pairs is the number of supported (policy, pair) combinations swept.
	Pairs int
	// Checks is the number of individual conversions compared.
	Checks int64
	// Violations is the number of violations found.
	Violations int
}

// Verifier sweeps the conversion catalogue.
type Verifier struct {
	opts options
}

// New creates a Verifier.
func New(optFns ...Option) *Verifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Verifier{opts: opts}
}

// Run verifies every pair of the configured policies. The returned error is
// a *multierror.Error holding one *Violation per failed check, or the
// context's error if ctx is cancelled first.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	samples := buildSamples(testutil.NewRNG(v.opts.seed), v.opts.samples)
	report := &Report{}

	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	collect := func(vs []error) {
		if len(vs) == 0 {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		result = multierror.Append(result, vs...)
	}

	collect(v.checkCatalogue(samples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.workers)

	checks := make([]atomic.Int64, matrix.NumPolicies)
	found := make([]atomic.Int64, matrix.NumPolicies)
	for _, policy := range v.opts.policies {
		for _, pair := range matrix.Pairs(policy) {
			report.Pairs++
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				n, vs := v.checkPair(gctx, policy, pair, samples[pair.Src])
				checks[policy].Add(n)
				found[policy].Add(int64(len(vs)))
				if len(vs) > 0 {
					v.opts.logger.WithPolicy(policy).WithPair(pair).DebugContext(gctx, "pair failed", "violations", len(vs))
				}
				collect(vs)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("verify: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("verify: %w", err)
	}

	for _, policy := range v.opts.policies {
		c := checks[policy].Load()
		report.Checks += c
		v.opts.logger.WithPolicy(policy).LogSweep(ctx, matrix.Count(policy), c, int(found[policy].Load()))
	}

	err := result.ErrorOrNil()
	if result != nil {
		report.Violations = len(result.Errors)
	}
	v.opts.logger.LogVerify(ctx, report.Pairs, report.Checks, err)
	return report, err
}

// checkCatalogue asserts that every pair outside a policy is rejected with
// ErrUnsupported.
func (v *Verifier) checkCatalogue(samples [matrix.NumKinds][]any) []error {
	var vs []error
	for _, policy := range v.opts.policies {
		for _, src := range matrix.Kinds() {
			for _, dst := range matrix.Kinds() {
				if matrix.Supports(policy, src, dst) {
					continue
				}
				in := samples[src][0]
				got, err := v.opts.convert(policy, dst, in)
				if errors.Is(err, numconv.ErrUnsupported) {
					continue
				}
				vs = append(vs, &Violation{
					Policy:   policy,
					Pair:     matrix.Pair{Src: src, Dst: dst},
					Property: PropertyCatalogue,
					Input:    describe(in),
					Got:      describeResult(got, err),
					Want:     "error " + numconv.ErrUnsupported.Error(),
				})
			}
		}
	}
	return vs
}

func (v *Verifier) checkPair(ctx context.Context, policy matrix.Policy, pair matrix.Pair, inputs []any) (int64, []error) {
	var (
		vs     []error
		checks int64
	)
	report := func(viol *Violation) {
		if len(vs) < v.opts.maxViolations {
			vs = append(vs, viol)
		}
	}

	back, roundTrip := reverse(policy, pair)
	for i, in := range inputs {
		if i%4096 == 0 && ctx.Err() != nil {
			break
		}
		n, _ := exact(in)
		want := expect(policy, pair.Src, pair.Dst, in, n)
		got, err := v.opts.convert(policy, pair.Dst, in)
		checks++

		if _, ok := matches(want, pair.Dst, got, err); !ok {
			report(&Violation{
				Policy:   policy,
				Pair:     pair,
				Property: PropertyValue,
				Input:    n.String(),
				Got:      describeResult(got, err),
				Want:     want.String(),
			})
			continue
		}
		if !roundTrip || want.err != nil {
			continue
		}

		orig, err := v.opts.convert(back, pair.Src, got)
		checks++
		if m, _ := exact(orig); err != nil || !m.equal(n) {
			report(&Violation{
				Policy:   policy,
				Pair:     pair,
				Property: PropertyRoundTrip,
				Input:    n.String(),
				Got:      describeResult(orig, err),
				Want:     n.String(),
			})
		}
	}
	return checks, vs
}

// reverse returns the policy that undoes policy on pair, if any: wrapping
// undoes itself, truncating undoes extending between integers, and an
// infallible checked conversion is undone by the checked conversion back.
func reverse(policy matrix.Policy, pair matrix.Pair) (matrix.Policy, bool) {
	switch policy {
	case matrix.Wrapping:
		return matrix.Wrapping, true
	case matrix.Extending:
		return matrix.Truncating, matrix.Supports(matrix.Truncating, pair.Dst, pair.Src)
	case matrix.Checked:
		return matrix.Checked, matrix.CheckedRule(pair.Src, pair.Dst) == matrix.Infallible
	}
	return policy, false
}

func describe(v any) string {
	if n, ok := exact(v); ok {
		return fmt.Sprintf("%T(%s)", v, n)
	}
	return fmt.Sprintf("%T(%v)", v, v)
}

func describeResult(v any, err error) string {
	if err != nil {
		return "error " + err.Error()
	}
	return describe(v)
}
