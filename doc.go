// Package hgraph is an in-memory hypergraph library: nodes, hyperedges that
// join any number of nodes, optional weights, and induced subhypergraphs.
//
// What is in the box?
//
//	• Core primitives: add/remove nodes and hyperedges with cascading removal
//	• Two modes fixed at construction: weighted or unweighted
//	• Size queries: edges by size, size distribution, uniformity
//	• Induced and size-filtered subhypergraphs as independent deep copies
//	• Optional zap logging and Prometheus counters
//
// Everything is organized under a few packages:
//
//	core/             Hypergraph, Hyperedge, NodeID/EdgeID, errors, metrics
//	builder/          deterministic fixtures (complete, sunflower, loose paths/cycles, random)
//	internal/loader/  YAML descriptions in and out
//	cmd/hgraph/       CLI: inspect, subgraph, stats, generate
//
// Quick example:
//
//	  e0 = {0,2,3,4}   e1 = {0,6,7}   e2 = {2,5}
//
//	represents three hyperedges over eight nodes (node 1 is isolated).
//	Removing node 7 shrinks e1 to {0,6}; the subhypergraph induced by
//	{0,2,3,4,5} keeps e0 and e2 and drops e1.
//
//	go get github.com/3michele/hgraph/core
package hgraph
