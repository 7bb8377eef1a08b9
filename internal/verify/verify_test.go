package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numconv"
	"github.com/hupe1980/numconv/matrix"
)

func TestVerifyPasses(t *testing.T) {
	t.Run("wrapping", func(t *testing.T) {
		report, err := New(WithPolicies(matrix.Wrapping), WithSamples(64), WithWorkers(4)).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, matrix.Count(matrix.Wrapping), report.Pairs)
		assert.Positive(t, report.Checks)
		assert.Zero(t, report.Violations)
	})

	t.Run("truncating", func(t *testing.T) {
		_, err := New(WithPolicies(matrix.Truncating), WithSamples(64)).Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("all policies", func(t *testing.T) {
		if testing.Short() {
			t.Skip("exhaustive sweep")
		}
		report, err := New(WithSamples(128), WithSeed(7)).Run(context.Background())
		require.NoError(t, err)

		total := 0
		for _, p := range matrix.Policies() {
			total += matrix.Count(p)
		}
		assert.Equal(t, total, report.Pairs)
	})
}

func TestVerifyFindsBrokenConversion(t *testing.T) {
	broken := func(policy matrix.Policy, dst matrix.Kind, v any) (any, error) {
		if x, ok := v.(uint16); ok && policy == matrix.Checked && dst == matrix.Uint8 {
			return uint8(x), nil // no overflow check
		}
		return numconv.Convert(policy, dst, v)
	}

	report, err := New(
		WithPolicies(matrix.Checked),
		WithSamples(0),
		WithConvertFunc(broken),
		WithMaxViolations(3),
	).Run(context.Background())
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.Equal(t, 3, report.Violations)

	for _, e := range merr.Errors {
		var v *Violation
		require.True(t, errors.As(e, &v))
		assert.Equal(t, matrix.Checked, v.Policy)
		assert.Equal(t, matrix.Pair{Src: matrix.Uint16, Dst: matrix.Uint8}, v.Pair)
		assert.Equal(t, PropertyValue, v.Property)
		assert.Contains(t, v.Want, "overflow")
	}
}

func TestVerifyFindsBrokenRoundTrip(t *testing.T) {
	broken := func(policy matrix.Policy, dst matrix.Kind, v any) (any, error) {
		if x, ok := v.(int8); ok && policy == matrix.Wrapping && dst == matrix.Uint8 && x == -1 {
			return uint8(254), nil
		}
		return numconv.Convert(policy, dst, v)
	}

	_, err := New(WithPolicies(matrix.Wrapping), WithSamples(0), WithConvertFunc(broken)).Run(context.Background())
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))

	props := map[string]int{}
	for _, e := range merr.Errors {
		var v *Violation
		require.True(t, errors.As(e, &v))
		props[v.Property]++
	}
	// int8 -1 -> uint8 is wrong; uint8 255 -> int8 -> uint8 fails the round trip.
	assert.Equal(t, 1, props[PropertyValue])
	assert.Equal(t, 1, props[PropertyRoundTrip])
}

func TestVerifyFindsCatalogueHole(t *testing.T) {
	leaky := func(policy matrix.Policy, dst matrix.Kind, v any) (any, error) {
		if policy == matrix.Extending && dst == matrix.Int8 {
			return int8(0), nil
		}
		return numconv.Convert(policy, dst, v)
	}

	_, err := New(WithPolicies(matrix.Extending), WithSamples(0), WithConvertFunc(leaky)).Run(context.Background())
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	for _, e := range merr.Errors {
		var v *Violation
		require.True(t, errors.As(e, &v))
		assert.Equal(t, PropertyCatalogue, v.Property)
		assert.Equal(t, matrix.Int8, v.Pair.Dst)
	}
	assert.Len(t, merr.Errors, matrix.NumKinds)
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithPolicies(matrix.Wrapping)).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	o := defaultOptions()
	WithWorkers(0)(&o)
	WithSamples(-1)(&o)
	WithPolicies()(&o)
	WithLogger(nil)(&o)
	WithConvertFunc(nil)(&o)
	WithMaxViolations(0)(&o)

	def := defaultOptions()
	assert.Equal(t, def.workers, o.workers)
	assert.Equal(t, def.samples, o.samples)
	assert.Equal(t, def.policies, o.policies)
	assert.Equal(t, def.maxViolations, o.maxViolations)
	assert.NotNil(t, o.logger)
	assert.NotNil(t, o.convert)

	WithPolicies(matrix.Policy(7), matrix.Extending)(&o)
	assert.Equal(t, []matrix.Policy{matrix.Extending}, o.policies)
	WithPolicies(matrix.Policy(7))(&o)
	assert.Equal(t, []matrix.Policy{matrix.Extending}, o.policies)
}
