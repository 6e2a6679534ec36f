// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3michele/hgraph/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn,
// including the nil-RNG fallbacks.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	assert.Equal(t, -3.5, builder.ConstantWeightFn(-3.5)(rng))

	uniform := builder.UniformWeightFn(2, 4)
	assert.Equal(t, 2.0, uniform(nil))
	for i := 0; i < 100; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}
	assert.Equal(t, 7.0, builder.UniformWeightFn(7, 7)(rng))

	assert.Equal(t, 10.0, builder.NormalWeightFn(10, 1)(nil))
	assert.Equal(t, 10.0, builder.NormalWeightFn(10, 0)(rng))

	exp := builder.ExponentialWeightFn(4)
	assert.Equal(t, 0.25, exp(nil))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}
}
