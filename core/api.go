// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: bulk constructors and the Stats snapshot.
// Policy:
//   - No hidden state here; everything delegates to the methods_* files.
//   - Every exported function documents its complexity.

package core

// FromEdges builds an unweighted hypergraph from an edge list, registering every
// referenced node first. Identical member lists produce distinct edges.
// A WithWeighted option in opts is overridden: the result is always unweighted.
//
// Errors:
//   - ErrEmptyEdge if any edge has no members.
//
// Complexity:
//   - Time O(Σ k log k), Space O(Σ k).
func FromEdges(edges [][]NodeID, opts ...Option) (*Hypergraph, error) {
	g := NewHypergraph(opts...)
	g.weighted = false
	for _, members := range edges {
		g.AddNodes(members...)
	}
	if _, err := g.AddEdges(edges); err != nil {
		return nil, err
	}

	return g, nil
}

// FromWeightedEdges builds a weighted hypergraph; weights[i] belongs to edges[i].
//
// Errors:
//   - ErrWeightCount if the lengths differ, ErrEmptyEdge, ErrBadWeight.
//
// Complexity:
//   - Time O(Σ k log k), Space O(Σ k).
func FromWeightedEdges(edges [][]NodeID, weights []float64, opts ...Option) (*Hypergraph, error) {
	weighted := make([]Option, 0, len(opts)+1)
	weighted = append(weighted, opts...)
	weighted = append(weighted, WithWeighted())
	g := NewHypergraph(weighted...)
	if len(edges) != len(weights) {
		g.metrics.edgeRejected(rejectCount)
		return nil, ErrWeightCount
	}
	for _, members := range edges {
		g.AddNodes(members...)
	}
	if _, err := g.AddEdgesWeighted(edges, weights); err != nil {
		return nil, err
	}

	return g, nil
}

// Stats is a point-in-time summary of a hypergraph.
type Stats struct {
	Weighted    bool
	NodeCount   int
	EdgeCount   int
	Incidences  int // Σ edge sizes, equal to Σ node degrees
	MaxSize     int
	Uniform     bool
	UniformSize int
	Isolated    int // nodes in no edge
}

// Stats returns a summary of g.
// Complexity: O(V + S).
func (g *Hypergraph) Stats() Stats {
	st := Stats{
		Weighted:  g.weighted,
		NodeCount: len(g.incidence),
		EdgeCount: g.liveEdges,
		MaxSize:   g.MaxSize(),
	}
	st.UniformSize, st.Uniform = g.Uniform()
	for _, incident := range g.incidence {
		st.Incidences += len(incident)
		if len(incident) == 0 {
			st.Isolated++
		}
	}

	return st
}
