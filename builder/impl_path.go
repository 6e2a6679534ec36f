// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_path.go - implementation of LoosePath(edges, k) constructor.
//
// Contract:
//   - edges ≥ 1 (else ErrTooFewNodes); k ≥ 2 (else ErrBadEdgeSize).
//   - Edge i covers indices i·(k-1) .. i·(k-1)+k-1, so consecutive edges share
//     exactly one node and non-consecutive edges are disjoint.
//   - Nodes: edges·(k-1)+1, added in ascending index order.
//
// Complexity:
//   - Time: O(edges · k log k).

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

const minLoosePathEdges = 1

// LoosePath returns a Constructor that builds a k-uniform loose path of the given length.
func LoosePath(edges, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if edges < minLoosePathEdges {
			return fmt.Errorf("%s: edges=%d < min=%d: %w", MethodLoosePath, edges, minLoosePathEdges, ErrTooFewNodes)
		}
		if k < MinChainEdgeSize {
			return fmt.Errorf("%s: k=%d < min=%d: %w", MethodLoosePath, k, MinChainEdgeSize, ErrBadEdgeSize)
		}

		step := k - 1
		ids := addIndexedNodes(h, cfg, edges*step+1)
		for i := 0; i < edges; i++ {
			if err := addEdge(h, cfg, MethodLoosePath, ids[i*step:i*step+k]); err != nil {
				return err
			}
		}

		return nil
	}
}
