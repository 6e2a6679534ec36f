// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Validation order: sizes (ErrTooFewNodes, ErrBadEdgeSize) first, then
//     probability/RNG, then construction.

package builder

import "errors"

// ErrTooFewNodes indicates a count parameter (nodes, edges, petals) below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadEdgeSize indicates an edge size k outside the admissible range.
var ErrBadEdgeSize = errors.New("builder: invalid edge size")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed (nil
// constructor, or the hypergraph rejected an edge).
var ErrConstructFailed = errors.New("builder: construction failed")
