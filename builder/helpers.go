// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/3michele/hgraph/core"
)

// addIndexedNodes inserts the nodes for indices 0..n-1 and returns their ids.
// Existing ids are kept (AddNode is idempotent).
// Complexity: O(n) time and space.
func addIndexedNodes(h *core.Hypergraph, cfg builderConfig, n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		h.AddNode(ids[i])
	}

	return ids
}

// addEdge inserts members in the hypergraph's mode, drawing a weight from
// cfg.weightFn only when h is weighted.
// Complexity: O(k log k) for k members.
func addEdge(h *core.Hypergraph, cfg builderConfig, method string, members []core.NodeID) error {
	var err error
	if h.Weighted() {
		w := cfg.weightFn(cfg.rng)
		_, err = h.AddEdgeWeighted(w, members...)
	} else {
		_, err = h.AddEdge(members...)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%v): %w: %w", method, members, ErrConstructFailed, err)
	}

	return nil
}

// pick returns ids[idx[0]], ids[idx[1]], ... into buf.
func pick(buf []core.NodeID, ids []core.NodeID, idx []int) []core.NodeID {
	buf = buf[:0]
	for _, i := range idx {
		buf = append(buf, ids[i])
	}

	return buf
}
