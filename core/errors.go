// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the ReferenceError type.
//
// Error policy:
//   - Callers branch with errors.Is / errors.As, never on message text.
//   - Sentinels are defined without parameters; context is attached with %w.
//   - A failing mutation leaves the hypergraph exactly as it was.

package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMode indicates an edge operation that is not valid for the hypergraph's
	// mode, e.g. AddEdge on a weighted hypergraph or AddEdgeWeighted on an unweighted one.
	ErrMode = errors.New("core: operation not valid for hypergraph mode")

	// ErrNodeNotFound is the sentinel every *ReferenceError unwraps to.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an update addressed an edge id that is not live.
	// Read queries report absence with ok == false instead.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyEdge indicates an edge insertion with no members.
	ErrEmptyEdge = errors.New("core: hyperedge has no members")

	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrWeightCount indicates a batch insertion whose weights do not pair up with its edges.
	ErrWeightCount = errors.New("core: number of weights does not match number of edges")
)

// ReferenceError reports an edge insertion naming nodes absent from the registry.
// Missing is sorted ascending and free of duplicates.
type ReferenceError struct {
	Missing []NodeID
}

// Error implements error.
func (e *ReferenceError) Error() string {
	ids := make([]string, len(e.Missing))
	for i, n := range e.Missing {
		ids[i] = fmt.Sprint(int64(n))
	}

	return fmt.Sprintf("core: hyperedge references unknown nodes [%s]", strings.Join(ids, " "))
}

// Unwrap lets errors.Is(err, ErrNodeNotFound) match.
func (e *ReferenceError) Unwrap() error { return ErrNodeNotFound }

// modeError wraps ErrMode with the offending operation.
func modeError(op string, weighted bool) error {
	mode := "unweighted"
	if weighted {
		mode = "weighted"
	}

	return fmt.Errorf("%w: %s on %s hypergraph", ErrMode, op, mode)
}
