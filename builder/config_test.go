// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, core.NodeID(7), newBuilderConfig().idFn(7))
	assert.Equal(t, core.NodeID(107), newBuilderConfig(WithIDOffset(100)).idFn(7))

	// Last option wins.
	cfg := newBuilderConfig(WithIDOffset(100), WithIDScheme(func(i int) core.NodeID { return core.NodeID(-i) }))
	assert.Equal(t, core.NodeID(-3), cfg.idFn(3))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

// TestRNGOptions verifies RNG configuration and seed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	require.NotNil(t, a)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

// TestWeightOptions verifies the default and overridden weight policy.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultEdgeWeight, newBuilderConfig().weightFn(nil))
	assert.Equal(t, 2.5, newBuilderConfig(WithConstantWeight(2.5)).weightFn(nil))
	assert.Panics(t, func() { WithWeightFn(nil) })
}
