// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = sequentialID (0,1,2,...)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn

package builder

import (
	"math/rand"

	"github.com/3michele/hgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node id strategy: index -> NodeID.
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator; consulted only for weighted hypergraphs.
	weightFn WeightFn
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later options override earlier ones).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     sequentialID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sequentialID maps index i to NodeID i.
func sequentialID(i int) core.NodeID {
	return core.NodeID(i)
}
