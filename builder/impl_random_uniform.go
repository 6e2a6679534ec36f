// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_random_uniform.go - implementation of RandomUniform(n, m, k) constructor.
//
// Model:
//   - m independent draws, each a uniformly random k-subset of the n nodes.
//     Repeated subsets become parallel edges (hypergraphs allow multi-edges).
//
// Contract:
//   - n ≥ 1, m ≥ 0 (else ErrTooFewNodes); 1 ≤ k ≤ n (else ErrBadEdgeSize).
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n + m·(n + k log k)) (a permutation per draw).
//
// Determinism:
//   - Fixed seed ⇒ identical hypergraph; draws happen in edge order, the
//     weight of edge i is drawn right after its members.

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

const minRandomUniformNodes = 1

// RandomUniform returns a Constructor that samples m random k-uniform edges over n nodes.
func RandomUniform(n, m, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if n < minRandomUniformNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomUniform, n, minRandomUniformNodes, ErrTooFewNodes)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", MethodRandomUniform, m, ErrTooFewNodes)
		}
		if k < MinEdgeSize || k > n {
			return fmt.Errorf("%s: k=%d not in [%d,%d]: %w", MethodRandomUniform, k, MinEdgeSize, n, ErrBadEdgeSize)
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: %w", MethodRandomUniform, ErrNeedRandSource)
		}

		ids := addIndexedNodes(h, cfg, n)
		members := make([]core.NodeID, 0, k)
		for e := 0; e < m; e++ {
			members = pick(members, ids, cfg.rng.Perm(n)[:k])
			if err := addEdge(h, cfg, MethodRandomUniform, members); err != nil {
				return err
			}
		}

		return nil
	}
}
