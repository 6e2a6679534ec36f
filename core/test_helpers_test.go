// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and invariant checks shared by the core tests.

package core_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
)

// Scenario weights: the reference weighted hypergraph over nodes 0..7.
const (
	WeightA = 27.7 // {0,2,3,4}
	WeightB = 12.3 // {0,6,7}
	WeightC = 69.0 // {2,5}
)

// Scenario holds the reference weighted hypergraph and its edge ids.
type Scenario struct {
	G       *core.Hypergraph
	A, B, C core.EdgeID
}

// NewScenario builds the weighted hypergraph
//
//	nodes 0..7, A={0,2,3,4}=27.7, B={0,6,7}=12.3, C={2,5}=69.0
func NewScenario(t testing.TB) Scenario {
	t.Helper()

	g := core.NewHypergraph(core.WithWeighted())
	g.AddNodes(0, 1, 2, 3, 4, 5, 6, 7)

	a, err := g.AddEdgeWeighted(WeightA, 0, 2, 3, 4)
	require.NoError(t, err)
	b, err := g.AddEdgeWeighted(WeightB, 0, 6, 7)
	require.NoError(t, err)
	c, err := g.AddEdgeWeighted(WeightC, 2, 5)
	require.NoError(t, err)

	return Scenario{G: g, A: a, B: b, C: c}
}

// nodeRange returns ids lo..hi inclusive.
func nodeRange(lo, hi int) []core.NodeID {
	out := make([]core.NodeID, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, core.NodeID(i))
	}

	return out
}

func nan() float64        { return math.NaN() }
func inf(sign int) float64 { return math.Inf(sign) }

// RequireConsistent fails the test unless the public view of g satisfies the
// structural invariants: every member is live, incidence matches membership
// exactly, no edge is empty, and counts agree with enumerations.
func RequireConsistent(t require.TestingT, g *core.Hypergraph) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount(), "EdgeCount must match Edges()")
	require.Len(t, g.Nodes(), g.NodeCount(), "NodeCount must match Nodes()")

	want := make(map[core.NodeID][]core.EdgeID)
	for _, e := range edges {
		members := e.Members()
		require.NotEmpty(t, members, "edge %d has no members", e.ID())
		require.True(t, slices.IsSorted(members), "edge %d members unsorted", e.ID())
		require.Len(t, slices.Compact(slices.Clone(members)), len(members), "edge %d has duplicates", e.ID())
		for _, n := range members {
			require.True(t, g.HasNode(n), "edge %d references dead node %d", e.ID(), n)
			want[n] = append(want[n], e.ID())
		}
		_, hasWeight := e.Weight()
		require.Equal(t, g.Weighted(), hasWeight, "edge %d weight visibility", e.ID())
	}

	for _, n := range g.Nodes() {
		got := g.IncidentEdges(n)
		exp := want[n]
		if exp == nil {
			exp = []core.EdgeID{}
		}
		require.Equal(t, exp, got, "incidence of node %d", n)
		require.Equal(t, len(exp), g.Degree(n), "degree of node %d", n)
	}
}
