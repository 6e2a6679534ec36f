// Package builder provides functional-options style generators for
// core.Hypergraph fixtures: deterministic shapes for tests, examples and the
// hgraph CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     - BuildHypergraph(hopts, bopts, cons...): creates the hypergraph and
//     applies constructors in order.
//     - Constructor: func(*core.Hypergraph, builderConfig) error.
//   - Constructors:
//     - Complete(n, k):        every k-subset of n nodes.
//     - Sunflower(petals, s):  s-edges sharing exactly one kernel node.
//     - LoosePath(edges, k):   consecutive k-edges overlap in one node.
//     - LooseCycle(edges, k):  loose path closed back onto node 0.
//     - RandomUniform(n,m,k):  m uniformly random k-subsets (needs an RNG).
//   - Options (BuilderOption):
//     - WithIDScheme / WithIDOffset: index -> NodeID mapping.
//     - WithSeed / WithRand:         randomness source.
//     - WithWeightFn and the WeightFn family (Default, Constant, Uniform,
//     Normal, Exponential): weights for weighted hypergraphs.
//
// Guarantees:
//
//   - Deterministic output for equal parameters, options and seed.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewNodes, ErrBadEdgeSize, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with the method name.
//   - The hypergraph mode decides whether weights are drawn: unweighted
//     hypergraphs never consult the WeightFn.
package builder
