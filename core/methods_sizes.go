// SPDX-License-Identifier: MIT
//
// File: methods_sizes.go
// Role: Queries over hyperedge sizes (size = number of members, order = size-1).
// Determinism:
//   - Slice results follow ascending EdgeID (NodeID for neighbors).
// Policy:
//   - Every filter takes (size, upTo): exactly size members, or at most size when upTo.

package core

import "slices"

// EdgesWithSize returns the live edges with exactly size members, or with at
// most size members when upTo is true.
// Complexity: O(S + Σ k) where S is the number of arena slots.
func (g *Hypergraph) EdgesWithSize(size int, upTo bool) []Hyperedge {
	var out []Hyperedge
	for i := range g.slots {
		s := &g.slots[i]
		if s.live() && sizeMatches(len(s.members), size, upTo) {
			out = append(out, g.snapshot(EdgeID(i), s))
		}
	}

	return out
}

// EdgeCountWithSize counts the edges EdgesWithSize would return.
// Complexity: O(S).
func (g *Hypergraph) EdgeCountWithSize(size int, upTo bool) int {
	n := 0
	for i := range g.slots {
		s := &g.slots[i]
		if s.live() && sizeMatches(len(s.members), size, upTo) {
			n++
		}
	}

	return n
}

func sizeMatches(k, size int, upTo bool) bool {
	if upTo {
		return k <= size
	}

	return k == size
}

// IncidentEdgesWithSize returns the ids of the edges containing id whose size
// passes the filter, ascending. Unknown nodes yield an empty result.
// Complexity: O(d log d) for degree d.
func (g *Hypergraph) IncidentEdgesWithSize(id NodeID, size int, upTo bool) []EdgeID {
	out := make([]EdgeID, 0, len(g.incidence[id]))
	for eid := range g.incidence[id] {
		if sizeMatches(len(g.slots[eid].members), size, upTo) {
			out = append(out, eid)
		}
	}
	slices.Sort(out)

	return out
}

// NeighborsWithSize returns the nodes sharing with id at least one edge whose
// size passes the filter, excluding id itself, ascending.
// Complexity: O(Σ k_e + m log m) over the incident edges e, for m neighbors.
func (g *Hypergraph) NeighborsWithSize(id NodeID, size int, upTo bool) []NodeID {
	seen := make(map[NodeID]struct{})
	for eid := range g.incidence[id] {
		members := g.slots[eid].members
		if !sizeMatches(len(members), size, upTo) {
			continue
		}
		for _, n := range members {
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

// WeightsWithSize returns the weights of the edges whose size passes the
// filter, in ascending id order, or nil for an unweighted hypergraph.
// Complexity: O(S).
func (g *Hypergraph) WeightsWithSize(size int, upTo bool) []float64 {
	if !g.weighted {
		return nil
	}
	out := make([]float64, 0)
	for i := range g.slots {
		s := &g.slots[i]
		if s.live() && sizeMatches(len(s.members), size, upTo) {
			out = append(out, s.weight)
		}
	}

	return out
}

// Sizes returns the size of every live edge in ascending id order.
func (g *Hypergraph) Sizes() []int {
	out := make([]int, 0, g.liveEdges)
	for i := range g.slots {
		if s := &g.slots[i]; s.live() {
			out = append(out, len(s.members))
		}
	}

	return out
}

// MaxSize returns the largest edge size, 0 when there are no edges.
func (g *Hypergraph) MaxSize() int {
	best := 0
	for i := range g.slots {
		best = max(best, len(g.slots[i].members))
	}

	return best
}

// MaxOrder returns MaxSize()-1, clamped at 0 for an edgeless hypergraph.
func (g *Hypergraph) MaxOrder() int {
	return max(g.MaxSize()-1, 0)
}

// SizeDistribution maps each occurring edge size to its number of edges.
func (g *Hypergraph) SizeDistribution() map[int]int {
	dist := make(map[int]int)
	for i := range g.slots {
		if s := &g.slots[i]; s.live() {
			dist[len(s.members)]++
		}
	}

	return dist
}

// Uniform reports whether every edge has the same size, and that size.
// A hypergraph without edges is 0-uniform.
func (g *Hypergraph) Uniform() (size int, ok bool) {
	size = -1
	for i := range g.slots {
		s := &g.slots[i]
		if !s.live() {
			continue
		}
		switch {
		case size < 0:
			size = len(s.members)
		case size != len(s.members):
			return 0, false
		}
	}
	if size < 0 {
		return 0, true
	}

	return size, true
}
