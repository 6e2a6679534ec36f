// Package core provides an in-memory Hypergraph: nodes plus hyperedges that
// join any positive number of nodes, optionally weighted.
//
// The Hypergraph H = (V, E) is built from two cooperating structures:
//
//   - Node registry + incidence index: incidence[n] is the set of EdgeIDs whose
//     member set contains n. It is derived state, updated in the same call as the
//     edge table, so node removal and neighbor queries never scan all edges.
//   - Edge table: a slot arena indexed by EdgeID. Removed edges leave tombstones,
//     so ids of unrelated edges stay valid; Clear restarts allocation at 0.
//
// Modes (fixed at construction):
//
//	NewHypergraph()               // unweighted: insert with AddEdge
//	NewHypergraph(WithWeighted()) // weighted:   insert with AddEdgeWeighted
//
// Calling the other mode's insertion returns ErrMode. Edges of an unweighted
// hypergraph never expose a weight.
//
// Core Methods:
//
//	// Node registry
//	AddNode(id) bool                    // O(1), idempotent
//	RemoveNode(id) bool                 // O(Σ k) over incident edges; no-op if absent
//	StrongRemoveNode(id) bool           // also deletes every incident edge
//	HasNode, Nodes, NodeCount, Degree, IncidentEdges, Neighbors
//
//	// Edge table
//	AddEdge(members...) (EdgeID, error)                 // unweighted mode
//	AddEdgeWeighted(w, members...) (EdgeID, error)      // weighted mode
//	AddEdges / AddEdgesWeighted                         // all-or-nothing batches
//	RemoveEdge(id) bool                                 // no-op if absent
//	RemoveEdges(ids...) int                             // batch; returns removed count
//	Edge, Members, Weight, SetWeight, Edges, EdgeCount, Weights
//
//	// Sizes (size = number of members, order = size-1)
//	EdgesWithSize, EdgeCountWithSize, Sizes, MaxSize, MaxOrder, SizeDistribution, Uniform
//	IncidentEdgesWithSize, NeighborsWithSize, WeightsWithSize
//
//	// Derived hypergraphs (deep copies)
//	Subhypergraph(nodes...)             // induced: edges wholly inside the selection
//	SubhypergraphBySizes(sizes, keep)   // edges of the listed sizes
//	Clone()                             // ids preserved
//
//	// Maintenance
//	Clear()                             // empty, mode preserved
//	Stats(), String()
//
// Errors:
//
//	ErrMode           insertion/update not valid for the mode
//	*ReferenceError   edge names unknown nodes (errors.Is(err, ErrNodeNotFound))
//	ErrEmptyEdge      edge without members
//	ErrBadWeight      NaN or infinite weight
//	ErrEdgeNotFound   SetWeight on a dead id
//	ErrWeightCount    batch weights do not pair with edges
//
// A failed mutation leaves the hypergraph unchanged.
//
// Concurrency: a Hypergraph holds no locks. Callers that share one across
// goroutines must serialize access themselves.
//
// Observability: WithLogger (zap, Debug level) and WithMetrics (Prometheus
// counters) are optional; the defaults record nothing.
package core
