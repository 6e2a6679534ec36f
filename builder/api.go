// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildHypergraph(hopts, bopts, cons...). Creates h, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical hypergraphs.
//   - Never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

// Constructor applies a deterministic hypergraph mutation using the resolved
// builderConfig. Constructors validate parameters before adding anything and
// return sentinel errors wrapped with their method name.
type Constructor func(h *core.Hypergraph, cfg builderConfig) error

// BuildHypergraph creates a new core.Hypergraph with options hopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildHypergraph: %w" and returned
// immediately.
//
// Constructors may share node ids (e.g. two Sunflower calls both use index 0);
// AddNode is idempotent, so shared ids join the two shapes.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildHypergraph(hopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Hypergraph, error) {
	h := core.NewHypergraph(hopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(h, cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	return h, nil
}
