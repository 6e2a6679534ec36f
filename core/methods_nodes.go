// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node registry lifecycle and node-centric queries.
// Determinism:
//   - Nodes(), IncidentEdges() and Neighbors() return ascending ids.
// Policy:
//   - AddNode is idempotent; removing an absent node is a no-op.
//   - RemoveNode shrinks incident edges; StrongRemoveNode deletes them.

package core

import (
	"slices"

	"go.uber.org/zap"
)

// AddNode inserts id into the node registry.
//
// Behavior highlights:
//   - Idempotent: adding a live node changes nothing, including its incidence set.
//
// Returns:
//   - bool: true if the node was new.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Hypergraph) AddNode(id NodeID) bool {
	if _, exists := g.incidence[id]; exists {
		return false
	}
	g.incidence[id] = make(map[EdgeID]struct{})
	g.metrics.nodeAdded()

	return true
}

// AddNodes inserts every id and returns how many were new.
// Complexity: O(len(ids)).
func (g *Hypergraph) AddNodes(ids ...NodeID) int {
	added := 0
	for _, id := range ids {
		if g.AddNode(id) {
			added++
		}
	}

	return added
}

// HasNode reports whether id is a live node.
func (g *Hypergraph) HasNode(id NodeID) bool {
	_, ok := g.incidence[id]
	return ok
}

// RemoveNode deletes id from the registry and from every edge containing it.
//
// Implementation:
//   - Stage 1: Return false if id is not live.
//   - Stage 2: For each incident edge, drop id from its member set; an edge left
//     with no members is tombstoned.
//   - Stage 3: Drop id's incidence entry (which also removes it from the registry).
//
// Behavior highlights:
//   - Surviving edges keep their id and weight.
//   - Only the removed node's own incidence entry changes; other members'
//     incidence sets still point at the (shrunken) surviving edges.
//
// Returns:
//   - bool: true if the node existed.
//
// Complexity:
//   - Time O(Σ k_e) over the incident edges e, Space O(1).
func (g *Hypergraph) RemoveNode(id NodeID) bool {
	incident, ok := g.incidence[id]
	if !ok {
		return false
	}

	emptied := 0
	for eid := range incident {
		s := &g.slots[eid]
		s.members = slices.DeleteFunc(s.members, func(n NodeID) bool { return n == id })
		if len(s.members) == 0 {
			// id was the last member; its incidence entry goes away below.
			s.members = nil
			s.weight = 0
			g.liveEdges--
			emptied++
		}
	}
	delete(g.incidence, id)

	g.metrics.nodesRemoved(1)
	g.metrics.edgesRemoved(removeEmptied, emptied)
	g.logger.Debug("node removed",
		zap.Int64("node", int64(id)),
		zap.Int("incident_edges", len(incident)),
		zap.Int("emptied_edges", emptied),
	)

	return true
}

// RemoveNodes removes every id; absent ids are skipped.
// Returns how many nodes were actually removed.
func (g *Hypergraph) RemoveNodes(ids ...NodeID) int {
	removed := 0
	for _, id := range ids {
		if g.RemoveNode(id) {
			removed++
		}
	}

	return removed
}

// StrongRemoveNode deletes id together with every edge containing it.
//
// Implementation:
//   - Stage 1: Return false if id is not live.
//   - Stage 2: Delete each incident edge, unlinking it from all of its members.
//   - Stage 3: Drop id's (now empty) incidence entry.
//
// Behavior highlights:
//   - Unlike RemoveNode, no edge survives in a shrunken form; the other
//     members of the deleted edges stay in the registry.
//
// Returns:
//   - bool: true if the node existed.
//
// Complexity:
//   - Time O(d log d + Σ k_e) over the d incident edges e, Space O(d).
func (g *Hypergraph) StrongRemoveNode(id NodeID) bool {
	if !g.HasNode(id) {
		return false
	}

	// deleteEdge mutates g.incidence[id]; iterate over a sorted copy.
	incident := g.IncidentEdges(id)
	for _, eid := range incident {
		g.deleteEdge(eid, &g.slots[eid])
	}
	delete(g.incidence, id)

	g.metrics.nodesRemoved(1)
	g.metrics.edgesRemoved(removeStrong, len(incident))
	g.logger.Debug("node strongly removed",
		zap.Int64("node", int64(id)),
		zap.Int("deleted_edges", len(incident)),
	)

	return true
}

// StrongRemoveNodes applies StrongRemoveNode to every id; absent ids are skipped.
// Returns how many nodes were actually removed.
func (g *Hypergraph) StrongRemoveNodes(ids ...NodeID) int {
	removed := 0
	for _, id := range ids {
		if g.StrongRemoveNode(id) {
			removed++
		}
	}

	return removed
}

// Nodes returns all live node ids in ascending order.
// Complexity: O(V log V).
func (g *Hypergraph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.incidence))
	for id := range g.incidence {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns the number of live nodes.
func (g *Hypergraph) NodeCount() int { return len(g.incidence) }

// IncidentEdges returns the ids of the edges containing id, ascending.
// Unknown nodes yield an empty result.
// Complexity: O(d log d) for degree d.
func (g *Hypergraph) IncidentEdges(id NodeID) []EdgeID {
	incident := g.incidence[id]
	out := make([]EdgeID, 0, len(incident))
	for eid := range incident {
		out = append(out, eid)
	}
	slices.Sort(out)

	return out
}

// Degree returns the number of edges containing id (0 for unknown nodes).
// Complexity: O(1).
func (g *Hypergraph) Degree(id NodeID) int { return len(g.incidence[id]) }

// Neighbors returns the nodes that share at least one edge with id, excluding
// id itself, in ascending order.
// Complexity: O(Σ k_e + m log m) over the incident edges e, for m neighbors.
func (g *Hypergraph) Neighbors(id NodeID) []NodeID {
	seen := make(map[NodeID]struct{})
	for eid := range g.incidence[id] {
		for _, n := range g.slots[eid].members {
			if n != id {
				seen[n] = struct{}{}
			}
		}
	}
	out := make([]NodeID, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}
