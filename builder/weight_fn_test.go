// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvroute/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"ConstantWeightFn_Inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformIntWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformIntWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}

	assert.NotPanics(t, func() { builder.ConstantWeightFn(-3) }, "negative constants are allowed")
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	constant := builder.ConstantWeightFn(7)
	assert.Equal(t, 7.0, constant(nil))
	assert.Equal(t, 7.0, constant(rng))

	uni := builder.UniformWeightFn(3, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, uni(nil))
	assert.Equal(t, 3.0, uni(rng))

	uni = builder.UniformWeightFn(2, 4)
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}

	ints := builder.UniformIntWeightFn(1, 20)
	assert.Equal(t, builder.DefaultEdgeWeight, ints(nil))
	seen := make(map[float64]bool)
	for i := 0; i < 2000; i++ {
		w := ints(rng)
		assert.Equal(t, math.Trunc(w), w)
		seen[w] = true
	}
	assert.Len(t, seen, 20, "both bounds are inclusive")
	assert.True(t, seen[1] && seen[20])

	norm := builder.NormalWeightFn(10, 2)
	assert.Equal(t, builder.DefaultEdgeWeight, norm(nil))
	assert.GreaterOrEqual(t, builder.NormalWeightFn(-50, 1)(rng), 0.0, "clipped at zero")

	exp := builder.ExponentialWeightFn(1.5)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	assert.GreaterOrEqual(t, exp(rng), 0.0)
}
