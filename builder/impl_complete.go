// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_complete.go - implementation of Complete(n, k) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 1 ≤ k ≤ n (else ErrBadEdgeSize).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits every k-subset of the nodes exactly once (the complete k-uniform
//     hypergraph, C(n,k) edges).
//   - Weight policy: weighted hypergraphs draw cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(C(n,k) · k log k).
//   - Space: O(n + k) extra.
//
// Determinism:
//   - Subsets are emitted in lexicographic order of their index tuples.

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete k-uniform hypergraph on n nodes.
func Complete(n, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		if k < MinEdgeSize || k > n {
			return fmt.Errorf("%s: k=%d not in [%d,%d]: %w", MethodComplete, k, MinEdgeSize, n, ErrBadEdgeSize)
		}

		ids := addIndexedNodes(h, cfg, n)

		// idx walks the k-combinations of 0..n-1 in lexicographic order.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		members := make([]core.NodeID, 0, k)
		for {
			members = pick(members, ids, idx)
			if err := addEdge(h, cfg, MethodComplete, members); err != nil {
				return err
			}

			// Advance: find the rightmost index that can still grow.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return nil
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
