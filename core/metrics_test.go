// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/3michele/hgraph/core"
)

func TestMetrics_CountMutations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := core.NewMetrics(reg)
	g := core.NewHypergraph(core.WithWeighted(), core.WithMetrics(m))

	g.AddNodes(0, 1, 2, 3)
	g.AddNode(0) // existing: not counted
	_, err := g.AddEdgeWeighted(1.5, 0, 1)
	require.NoError(t, err)
	solo, err := g.AddEdgeWeighted(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdgesWeighted([][]core.NodeID{{1, 2}, {0, 2, 3}}, []float64{1, 1})
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1)
	require.ErrorIs(t, err, core.ErrMode)
	_, err = g.AddEdgeWeighted(1, 0, 9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddEdgeWeighted(1)
	require.ErrorIs(t, err, core.ErrEmptyEdge)
	_, err = g.AddEdgeWeighted(nan(), 0)
	require.ErrorIs(t, err, core.ErrBadWeight)

	require.True(t, g.RemoveEdge(solo))
	require.True(t, g.RemoveNode(1)) // {0,1} and {1,2} shrink, nothing emptied
	g.AddNode(7)
	_, err = g.AddEdgeWeighted(3, 7)
	require.NoError(t, err)
	require.True(t, g.RemoveNode(7)) // empties {7}
	_ = g.Subhypergraph(0, 2)
	g.Clear() // nodes 0,2,3 and edges {0},{2},{0,2,3}

	assert.Equal(t, 5.0, testutil.ToFloat64(m.NodesAdded))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.NodesRemoved))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.EdgesAdded.WithLabelValues("weighted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EdgesAdded.WithLabelValues("unweighted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EdgesRemoved.WithLabelValues("explicit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EdgesRemoved.WithLabelValues("emptied")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EdgesRemoved.WithLabelValues("cleared")))
	for _, reason := range []string{"mode", "reference", "empty", "weight"} {
		assert.Equal(t, 1.0, testutil.ToFloat64(m.EdgeRejections.WithLabelValues(reason)), reason)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Extractions))
}

func TestMetrics_StrongRemovalAndWeightCount(t *testing.T) {
	m := core.NewMetrics(prometheus.NewRegistry())

	_, err := core.FromWeightedEdges([][]core.NodeID{{1}}, nil, core.WithMetrics(m))
	require.ErrorIs(t, err, core.ErrWeightCount)

	g, err := core.FromWeightedEdges([][]core.NodeID{{0, 1}, {0, 2}, {1, 2}}, []float64{1, 2, 3}, core.WithMetrics(m))
	require.NoError(t, err)
	_, err = g.AddEdgesWeighted([][]core.NodeID{{0}}, []float64{1, 2})
	require.ErrorIs(t, err, core.ErrWeightCount)

	require.True(t, g.StrongRemoveNode(0))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EdgeRejections.WithLabelValues("count")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EdgesRemoved.WithLabelValues("strong")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodesRemoved))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EdgesRemoved.WithLabelValues("emptied")))
}

func TestMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := core.NewMetrics(reg)
	g := core.NewHypergraph(core.WithMetrics(m))
	g.AddNode(1)

	n, err := testutil.GatherAndCount(reg, "hgraph_hypergraph_nodes_added_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second registration of the same collectors is refused.
	assert.Panics(t, func() { core.NewMetrics(reg) })
}

func TestMetrics_NilIsNoop(t *testing.T) {
	g := core.NewHypergraph(core.WithMetrics(nil))
	g.AddNodes(1, 2)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	g.RemoveNode(1)
	g.Clear()
}

func TestLogger_DebugEvents(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := newLoggedHypergraph(zap.New(obs))

	g.AddNode(1)
	g.AddNode(2)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	g.RemoveNode(2)
	_ = g.Subhypergraph(1)
	g.AddNode(3)
	_, err = g.AddEdge(1, 3)
	require.NoError(t, err)
	g.StrongRemoveNode(3)
	g.Clear()

	added := logs.FilterMessage("edge added").All()
	require.Len(t, added, 2)
	assert.Equal(t, int64(2), added[0].ContextMap()["size"])
	assert.Contains(t, added[0].ContextMap(), "edge_id")
	removed := logs.FilterMessage("node removed").All()
	require.Len(t, removed, 1)
	assert.Equal(t, int64(2), removed[0].ContextMap()["node"])
	assert.Equal(t, int64(1), removed[0].ContextMap()["incident_edges"])
	assert.Equal(t, int64(0), removed[0].ContextMap()["emptied_edges"])
	strong := logs.FilterMessage("node strongly removed").All()
	require.Len(t, strong, 1)
	assert.Equal(t, int64(3), strong[0].ContextMap()["node"])
	assert.Equal(t, int64(1), strong[0].ContextMap()["deleted_edges"])
	assert.Equal(t, 1, logs.FilterMessage("subhypergraph extracted").Len())
	assert.Equal(t, 1, logs.FilterMessage("hypergraph cleared").Len())
}

func TestLogger_SharedWithDerivedGraphs(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := newLoggedHypergraph(zap.New(obs))
	g.AddNode(1)

	clone := g.Clone()
	_, err := clone.AddEdge(1)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("edge added").Len())
}

func newLoggedHypergraph(l *zap.Logger) *core.Hypergraph {
	return core.NewHypergraph(core.WithLogger(l))
}
