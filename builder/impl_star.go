// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_star.go - implementation of Sunflower(petals, size) constructor.
//
// Contract:
//   - petals ≥ 1 (else ErrTooFewNodes); size ≥ 2 (else ErrBadEdgeSize).
//   - Index 0 is the kernel shared by every petal; petal p owns the
//     size-1 indices 1+p·(size-1) .. (p+1)·(size-1).
//   - Emits petals in ascending p; weighted hypergraphs draw a weight per petal.
//
// Complexity:
//   - Time: O(petals · size log size). Nodes: 1 + petals·(size-1).
//
// Determinism:
//   - Fixed index layout and emission order.

package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

const minSunflowerPetals = 1

// Sunflower returns a Constructor that builds petals edges of the given size
// pairwise intersecting in exactly the kernel node (index 0).
func Sunflower(petals, size int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if petals < minSunflowerPetals {
			return fmt.Errorf("%s: petals=%d < min=%d: %w", MethodSunflower, petals, minSunflowerPetals, ErrTooFewNodes)
		}
		if size < MinChainEdgeSize {
			return fmt.Errorf("%s: size=%d < min=%d: %w", MethodSunflower, size, MinChainEdgeSize, ErrBadEdgeSize)
		}

		own := size - 1
		ids := addIndexedNodes(h, cfg, 1+petals*own)

		members := make([]core.NodeID, 0, size)
		for p := 0; p < petals; p++ {
			members = append(members[:0], ids[0])
			members = append(members, ids[1+p*own:1+(p+1)*own]...)
			if err := addEdge(h, cfg, MethodSunflower, members); err != nil {
				return err
			}
		}

		return nil
	}
}
