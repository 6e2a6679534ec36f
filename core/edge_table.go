// SPDX-License-Identifier: MIT
//
// File: edge_table.go
// Role: Slot arena for hyperedges and the helpers that keep it in lock-step
//       with the incidence index.
// Invariants (checked by the callers' validation, relied upon here):
//   - members of a live slot are sorted, deduplicated, non-empty and all live nodes.
//   - a tombstone has nil members and is never referenced from incidence.

package core

import (
	"math"
	"slices"
)

// edgeSlot is one arena cell. nil members marks a removed edge.
type edgeSlot struct {
	members []NodeID
	weight  float64
}

func (s *edgeSlot) live() bool { return s.members != nil }

// slot returns the live slot for id, or nil.
func (g *Hypergraph) slot(id EdgeID) *edgeSlot {
	if id >= EdgeID(len(g.slots)) {
		return nil
	}
	s := &g.slots[id]
	if !s.live() {
		return nil
	}

	return s
}

// snapshot builds the public read model for a live slot.
func (g *Hypergraph) snapshot(id EdgeID, s *edgeSlot) Hyperedge {
	return Hyperedge{
		id:       id,
		members:  slices.Clone(s.members),
		weight:   s.weight,
		weighted: g.weighted,
	}
}

// insertEdge appends a new slot and links every member in the incidence index.
// members must already be normalized and validated; ownership passes to g.
// Complexity: O(k) amortized for k members.
func (g *Hypergraph) insertEdge(members []NodeID, weight float64) EdgeID {
	id := EdgeID(len(g.slots))
	g.slots = append(g.slots, edgeSlot{members: members, weight: weight})
	g.liveEdges++
	for _, n := range members {
		g.incidence[n][id] = struct{}{}
	}

	return id
}

// deleteEdge unlinks every member and tombstones the slot.
// Complexity: O(k) for k members.
func (g *Hypergraph) deleteEdge(id EdgeID, s *edgeSlot) {
	for _, n := range s.members {
		delete(g.incidence[n], id)
	}
	s.members = nil
	s.weight = 0
	g.liveEdges--
}

// normalizeMembers returns a sorted, deduplicated copy of members.
func normalizeMembers(members []NodeID) []NodeID {
	out := slices.Clone(members)
	slices.Sort(out)

	return slices.Compact(out)
}

// missingNodes returns the sorted members (normalized input) absent from the registry.
func (g *Hypergraph) missingNodes(members []NodeID) []NodeID {
	var missing []NodeID
	for _, n := range members {
		if _, ok := g.incidence[n]; !ok {
			missing = append(missing, n)
		}
	}

	return missing
}

// validateEdge checks one prospective edge and returns its normalized members.
// The returned reason is the metrics label for a rejection.
func (g *Hypergraph) validateEdge(members []NodeID, weight float64) ([]NodeID, string, error) {
	if len(members) == 0 {
		return nil, rejectEmpty, ErrEmptyEdge
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, rejectWeight, ErrBadWeight
	}
	norm := normalizeMembers(members)
	if missing := g.missingNodes(norm); len(missing) > 0 {
		return nil, rejectReference, &ReferenceError{Missing: missing}
	}

	return norm, "", nil
}
