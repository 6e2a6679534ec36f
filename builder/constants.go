// Package builder defines shared constants used by hypergraph builders, ensuring
// consistent method tags and minima across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodSunflower is the canonical name for the Sunflower constructor.
	MethodSunflower = "Sunflower"
	// MethodLoosePath is the canonical name for the LoosePath constructor.
	MethodLoosePath = "LoosePath"
	// MethodLooseCycle is the canonical name for the LooseCycle constructor.
	MethodLooseCycle = "LooseCycle"
	// MethodRandomUniform is the canonical name for the RandomUniform constructor.
	MethodRandomUniform = "RandomUniform"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinEdgeSize is the smallest hyperedge the builders emit.
const MinEdgeSize = 1

// MinChainEdgeSize is the smallest edge size for loose paths, cycles and
// sunflower petals: consecutive edges share one node and each needs at least
// one node of its own.
const MinChainEdgeSize = 2

// MinLooseCycleEdges is the smallest loose cycle; fewer edges would overlap in
// more than one node.
const MinLooseCycleEdges = 3
