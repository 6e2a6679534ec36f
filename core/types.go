// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node/edge identifiers, the Hypergraph container, construction options.
// Policy:
//   - Mode (weighted vs. unweighted) is fixed at construction and never changes.
//   - The incidence index is derived state; it is updated in the same call as the edge table.
//   - No internal locking: a Hypergraph must not be mutated from several goroutines at once.

package core

import (
	"slices"

	"go.uber.org/zap"
)

// NodeID identifies a node within one Hypergraph. Nodes carry no payload.
type NodeID int64

// EdgeID identifies a hyperedge within one Hypergraph. It is assigned by the
// container and stays valid until the edge is removed or the graph is cleared.
// Ids of removed edges are never handed out again before Clear.
type EdgeID uint64

// Hyperedge is a read-only snapshot of one hyperedge.
//
// Members are deduplicated and sorted ascending. The weight is only observable
// when the owning Hypergraph is weighted.
type Hyperedge struct {
	id       EdgeID
	members  []NodeID
	weight   float64
	weighted bool
}

// ID returns the container-assigned edge identifier.
func (e Hyperedge) ID() EdgeID { return e.id }

// Members returns a copy of the member node ids in ascending order.
func (e Hyperedge) Members() []NodeID { return slices.Clone(e.members) }

// Size returns the number of member nodes.
func (e Hyperedge) Size() int { return len(e.members) }

// Order returns Size()-1, the usual hypergraph convention.
func (e Hyperedge) Order() int { return len(e.members) - 1 }

// Weight returns the edge weight. ok is false for edges of an unweighted hypergraph.
func (e Hyperedge) Weight() (w float64, ok bool) {
	if !e.weighted {
		return 0, false
	}

	return e.weight, true
}

// Contains reports whether n is a member of the edge.
// Complexity: O(log k) for k members.
func (e Hyperedge) Contains(n NodeID) bool {
	_, found := slices.BinarySearch(e.members, n)
	return found
}

// Option configures a Hypergraph before first use.
type Option func(g *Hypergraph)

// WithWeighted selects weighted mode: edges are inserted with AddEdgeWeighted
// and always carry a weight. Without it the hypergraph is unweighted.
func WithWeighted() Option {
	return func(g *Hypergraph) { g.weighted = true }
}

// WithLogger attaches a structured logger. Mutations are reported at Debug level.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(g *Hypergraph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics attaches a Metrics set. Hypergraphs derived through Subhypergraph
// or Clone report to the same set.
func WithMetrics(m *Metrics) Option {
	return func(g *Hypergraph) { g.metrics = m }
}

// Hypergraph is an in-memory hypergraph H = (V, E) where every edge is a
// non-empty set of nodes, optionally weighted.
//
// Storage:
//   - incidence doubles as the node registry: a node is live iff it is a key.
//     incidence[n] is exactly the set of ids of edges containing n.
//   - slots is an arena indexed by EdgeID. Removed edges leave a tombstone
//     (nil members) so that ids of unrelated edges never move.
type Hypergraph struct {
	weighted bool

	incidence map[NodeID]map[EdgeID]struct{}
	slots     []edgeSlot
	liveEdges int

	logger  *zap.Logger
	metrics *Metrics
}

// NewHypergraph creates an empty hypergraph. By default it is unweighted;
// pass WithWeighted() for weighted mode.
// Complexity: O(len(opts)).
func NewHypergraph(opts ...Option) *Hypergraph {
	g := &Hypergraph{
		incidence: make(map[NodeID]map[EdgeID]struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports the construction-time mode. It never changes, not even on Clear.
func (g *Hypergraph) Weighted() bool { return g.weighted }

// options reproduces the configuration of g for derived hypergraphs.
func (g *Hypergraph) options() []Option {
	opts := []Option{WithLogger(g.logger), WithMetrics(g.metrics)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}

	return opts
}
