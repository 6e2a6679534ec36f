// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_cycle.go - implementation of LooseCycle(edges, k) constructor.
//
// Contract:
//   - edges ≥ 3 (else ErrTooFewNodes); k ≥ 2 (else ErrBadEdgeSize).
//   - Like LoosePath, but the last edge wraps around to index 0.
//     Nodes: edges·(k-1).
//
// Complexity:
//   - Time: O(edges · k log k).

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

// LooseCycle returns a Constructor that builds a k-uniform loose cycle.
func LooseCycle(edges, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if edges < MinLooseCycleEdges {
			return fmt.Errorf("%s: edges=%d < min=%d: %w", MethodLooseCycle, edges, MinLooseCycleEdges, ErrTooFewNodes)
		}
		if k < MinChainEdgeSize {
			return fmt.Errorf("%s: k=%d < min=%d: %w", MethodLooseCycle, k, MinChainEdgeSize, ErrBadEdgeSize)
		}

		step := k - 1
		n := edges * step
		ids := addIndexedNodes(h, cfg, n)

		members := make([]core.NodeID, k)
		for i := 0; i < edges; i++ {
			for j := range members {
				members[j] = ids[(i*step+j)%n]
			}
			if err := addEdge(h, cfg, MethodLooseCycle, members); err != nil {
				return err
			}
		}

		return nil
	}
}
