// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing hypergraph instances.
// Determinism:
//   - Clone keeps every EdgeID (tombstones included), so ids are interchangeable
//     between the source and the clone until either is mutated.

package core

import (
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Clone returns a deep copy of g: mode, nodes, edges with their ids and weights.
// Logger and metrics handles are shared.
// Complexity: O(V + S + Σ k).
func (g *Hypergraph) Clone() *Hypergraph {
	out := NewHypergraph(g.options()...)
	for n, incident := range g.incidence {
		out.incidence[n] = maps.Clone(incident)
	}
	out.slots = make([]edgeSlot, len(g.slots))
	for i, s := range g.slots {
		out.slots[i] = edgeSlot{members: slices.Clone(s.members), weight: s.weight}
	}
	out.liveEdges = g.liveEdges

	return out
}

// Clear removes every node and edge and restarts edge id allocation at 0.
// The weighted/unweighted mode is preserved.
// Complexity: O(1) apart from releasing the old maps.
func (g *Hypergraph) Clear() {
	nodes, edges := len(g.incidence), g.liveEdges

	g.incidence = make(map[NodeID]map[EdgeID]struct{})
	g.slots = nil
	g.liveEdges = 0

	g.metrics.nodesRemoved(nodes)
	g.metrics.edgesRemoved(removeCleared, edges)
	g.logger.Debug("hypergraph cleared",
		zap.Int("nodes", nodes),
		zap.Int("edges", edges),
	)
}
