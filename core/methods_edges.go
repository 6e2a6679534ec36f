// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/AddEdgeWeighted/batches/RemoveEdge(s)/SetWeight)
//       and id-addressed edge queries.
// Determinism:
//   - Edges() and Weights() follow ascending EdgeID.
// Policy:
//   - AddEdge is the unweighted-mode insertion, AddEdgeWeighted the weighted one;
//     calling the other one fails with ErrMode.
//   - Insertions are all-or-nothing. On error nothing changes, not even the id counter.

package core

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// AddEdge inserts an unweighted hyperedge over members and returns its id.
//
// Implementation:
//   - Stage 1: Reject on a weighted hypergraph (ErrMode).
//   - Stage 2: Validate: non-empty (ErrEmptyEdge), every member live (*ReferenceError).
//   - Stage 3: Store the deduplicated member set and link the incidence index.
//
// Errors:
//   - ErrMode, ErrEmptyEdge, *ReferenceError (errors.Is(err, ErrNodeNotFound)).
//
// Complexity:
//   - Time O(k log k) for k members, Space O(k).
func (g *Hypergraph) AddEdge(members ...NodeID) (EdgeID, error) {
	if g.weighted {
		g.metrics.edgeRejected(rejectMode)
		return 0, modeError("AddEdge", g.weighted)
	}

	return g.addEdge(members, 0)
}

// AddEdgeWeighted inserts a weighted hyperedge over members and returns its id.
// Any finite weight is accepted, including zero and negative values.
//
// Errors:
//   - ErrMode on an unweighted hypergraph.
//   - ErrEmptyEdge, ErrBadWeight (NaN or ±Inf), *ReferenceError.
//
// Complexity:
//   - Time O(k log k) for k members, Space O(k).
func (g *Hypergraph) AddEdgeWeighted(weight float64, members ...NodeID) (EdgeID, error) {
	if !g.weighted {
		g.metrics.edgeRejected(rejectMode)
		return 0, modeError("AddEdgeWeighted", g.weighted)
	}

	return g.addEdge(members, weight)
}

func (g *Hypergraph) addEdge(members []NodeID, weight float64) (EdgeID, error) {
	norm, reason, err := g.validateEdge(members, weight)
	if err != nil {
		g.metrics.edgeRejected(reason)
		return 0, err
	}
	id := g.insertEdge(norm, weight)

	g.metrics.edgeAdded(g.weighted)
	g.logger.Debug("edge added",
		zap.Uint64("edge_id", uint64(id)),
		zap.Int("size", len(norm)),
	)

	return id, nil
}

// AddEdges inserts several unweighted hyperedges atomically: either every edge
// is created (ids returned in input order) or none is.
//
// Errors:
//   - ErrMode, ErrEmptyEdge; a *ReferenceError lists missing nodes across all edges.
//
// Complexity:
//   - Time O(Σ k log k), Space O(Σ k).
func (g *Hypergraph) AddEdges(edges [][]NodeID) ([]EdgeID, error) {
	if g.weighted {
		g.metrics.edgeRejected(rejectMode)
		return nil, modeError("AddEdges", g.weighted)
	}

	return g.addEdges(edges, nil)
}

// AddEdgesWeighted is the weighted counterpart of AddEdges; weights[i] belongs
// to edges[i].
//
// Errors:
//   - ErrMode, ErrWeightCount (len(weights) != len(edges)), ErrEmptyEdge,
//     ErrBadWeight, *ReferenceError.
func (g *Hypergraph) AddEdgesWeighted(edges [][]NodeID, weights []float64) ([]EdgeID, error) {
	if !g.weighted {
		g.metrics.edgeRejected(rejectMode)
		return nil, modeError("AddEdgesWeighted", g.weighted)
	}
	if len(weights) != len(edges) {
		g.metrics.edgeRejected(rejectCount)
		return nil, ErrWeightCount
	}

	return g.addEdges(edges, weights)
}

// addEdges validates the whole batch before touching any state.
func (g *Hypergraph) addEdges(edges [][]NodeID, weights []float64) ([]EdgeID, error) {
	normalized := make([][]NodeID, len(edges))
	var missing []NodeID
	for i, members := range edges {
		var w float64
		if weights != nil {
			w = weights[i]
		}
		norm, reason, err := g.validateEdge(members, w)
		if err != nil {
			var ref *ReferenceError
			if errors.As(err, &ref) {
				missing = append(missing, ref.Missing...)
				continue
			}
			g.metrics.edgeRejected(reason)
			return nil, err
		}
		normalized[i] = norm
	}
	if len(missing) > 0 {
		g.metrics.edgeRejected(rejectReference)
		return nil, &ReferenceError{Missing: normalizeMembers(missing)}
	}

	ids := make([]EdgeID, len(normalized))
	for i, norm := range normalized {
		var w float64
		if weights != nil {
			w = weights[i]
		}
		ids[i] = g.insertEdge(norm, w)
		g.metrics.edgeAdded(g.weighted)
	}
	g.logger.Debug("edges added", zap.Int("count", len(ids)))

	return ids, nil
}

// RemoveEdge deletes the edge and unlinks it from every former member.
// Removing an unknown or already removed id is a no-op.
//
// Returns:
//   - bool: true if a live edge was removed.
//
// Complexity:
//   - Time O(k) for k members.
func (g *Hypergraph) RemoveEdge(id EdgeID) bool {
	s := g.slot(id)
	if s == nil {
		return false
	}
	g.deleteEdge(id, s)

	g.metrics.edgesRemoved(removeExplicit, 1)
	g.logger.Debug("edge removed", zap.Uint64("edge_id", uint64(id)))

	return true
}

// RemoveEdges removes every listed edge; unknown or already removed ids are
// skipped. Returns how many live edges were removed.
// Complexity: O(Σ k) over the removed edges.
func (g *Hypergraph) RemoveEdges(ids ...EdgeID) int {
	removed := 0
	for _, id := range ids {
		if g.RemoveEdge(id) {
			removed++
		}
	}

	return removed
}

// HasEdge reports whether id names a live edge.
func (g *Hypergraph) HasEdge(id EdgeID) bool { return g.slot(id) != nil }

// Edge returns a snapshot of the edge, or ok == false if id is not live.
// Complexity: O(k).
func (g *Hypergraph) Edge(id EdgeID) (Hyperedge, bool) {
	s := g.slot(id)
	if s == nil {
		return Hyperedge{}, false
	}

	return g.snapshot(id, s), true
}

// Members returns the sorted member set of edge id, or nil if id is not live.
// Complexity: O(k).
func (g *Hypergraph) Members(id EdgeID) []NodeID {
	s := g.slot(id)
	if s == nil {
		return nil
	}
	out := make([]NodeID, len(s.members))
	copy(out, s.members)

	return out
}

// Weight returns the weight of edge id. ok is false if the edge is not live or
// the hypergraph is unweighted.
// Complexity: O(1).
func (g *Hypergraph) Weight(id EdgeID) (float64, bool) {
	if !g.weighted {
		return 0, false
	}
	s := g.slot(id)
	if s == nil {
		return 0, false
	}

	return s.weight, true
}

// SetWeight replaces the weight of edge id and returns the previous one.
//
// Errors:
//   - ErrMode on an unweighted hypergraph, ErrEdgeNotFound, ErrBadWeight.
//
// Complexity:
//   - Time O(1).
func (g *Hypergraph) SetWeight(id EdgeID, weight float64) (float64, error) {
	if !g.weighted {
		return 0, modeError("SetWeight", g.weighted)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrBadWeight
	}
	s := g.slot(id)
	if s == nil {
		return 0, ErrEdgeNotFound
	}
	prev := s.weight
	s.weight = weight

	return prev, nil
}

// Edges returns snapshots of all live edges in ascending id order.
// Complexity: O(S + Σ k) where S is the number of arena slots.
func (g *Hypergraph) Edges() []Hyperedge {
	out := make([]Hyperedge, 0, g.liveEdges)
	for i := range g.slots {
		if s := &g.slots[i]; s.live() {
			out = append(out, g.snapshot(EdgeID(i), s))
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Hypergraph) EdgeCount() int { return g.liveEdges }

// Weights returns the weights of all live edges in ascending id order,
// or nil for an unweighted hypergraph.
func (g *Hypergraph) Weights() []float64 {
	if !g.weighted {
		return nil
	}
	out := make([]float64, 0, g.liveEdges)
	for i := range g.slots {
		if s := &g.slots[i]; s.live() {
			out = append(out, s.weight)
		}
	}

	return out
}
