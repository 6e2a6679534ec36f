// SPDX-License-Identifier: MIT

// Package loader reads and writes YAML hypergraph descriptions:
//
//	weighted: true
//	nodes: [0, 1, 2]
//	edges:
//	  - members: [0, 1]
//	    weight: 2.5
//
// Every edge member must be listed under nodes. Weighted descriptions need a
// weight on every edge; unweighted ones must not carry any. Edges are inserted
// as one atomic batch, so edge ids follow document order.
package loader

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/3michele/hgraph/core"
)

var (
	// ErrMissingWeight is returned for an edge without weight in a weighted description.
	ErrMissingWeight = errors.New("loader: weighted edge without weight")
	// ErrUnexpectedWeight is returned for an edge with weight in an unweighted description.
	ErrUnexpectedWeight = errors.New("loader: weight on unweighted edge")
)

// Document is the YAML form of a hypergraph.
type Document struct {
	Weighted bool          `yaml:"weighted"`
	Nodes    []core.NodeID `yaml:"nodes,flow"`
	Edges    []Edge        `yaml:"edges"`
}

// Edge is one hyperedge of a Document.
type Edge struct {
	Members []core.NodeID `yaml:"members,flow"`
	Weight  *float64      `yaml:"weight,omitempty"`
}

// Load decodes the description stored at path.
func Load(path string, opts ...core.Option) (*core.Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open description")
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

// Decode reads one YAML document from r and builds the hypergraph.
// Unknown keys are rejected.
func Decode(r io.Reader, opts ...core.Option) (*core.Hypergraph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	return Build(doc, opts...)
}

// Build materializes doc. The mode comes from doc.Weighted; opts typically
// carry a logger or metrics. A WithWeighted option on an unweighted
// description is rejected with core.ErrMode.
func Build(doc Document, opts ...core.Option) (*core.Hypergraph, error) {
	members := make([][]core.NodeID, len(doc.Edges))
	var weights []float64
	if doc.Weighted {
		weights = make([]float64, len(doc.Edges))
	}
	for i, e := range doc.Edges {
		members[i] = e.Members
		switch {
		case doc.Weighted && e.Weight == nil:
			return nil, errors.Wrapf(ErrMissingWeight, "edge %d", i)
		case !doc.Weighted && e.Weight != nil:
			return nil, errors.Wrapf(ErrUnexpectedWeight, "edge %d", i)
		case doc.Weighted:
			weights[i] = *e.Weight
		}
	}

	all := make([]core.Option, 0, len(opts)+1)
	all = append(all, opts...)
	if doc.Weighted {
		all = append(all, core.WithWeighted())
	}
	g := core.NewHypergraph(all...)
	if g.Weighted() != doc.Weighted {
		return nil, errors.Wrap(core.ErrMode, "options select weighted mode for an unweighted description")
	}
	g.AddNodes(doc.Nodes...)

	var err error
	if doc.Weighted {
		_, err = g.AddEdgesWeighted(members, weights)
	} else {
		_, err = g.AddEdges(members)
	}
	if err != nil {
		return nil, errors.Wrap(err, "add edges")
	}

	return g, nil
}

// FromHypergraph captures g as a Document: nodes ascending, edges in id order.
func FromHypergraph(g *core.Hypergraph) Document {
	doc := Document{
		Weighted: g.Weighted(),
		Nodes:    g.Nodes(),
		Edges:    make([]Edge, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		edge := Edge{Members: e.Members()}
		if w, ok := e.Weight(); ok {
			edge.Weight = &w
		}
		doc.Edges = append(doc.Edges, edge)
	}

	return doc
}

// Encode writes g as YAML to w. Edge ids are not preserved: decoding the
// output numbers edges from 0 in the same order.
func Encode(w io.Writer, g *core.Hypergraph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromHypergraph(g)); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return errors.Wrap(enc.Close(), "flush yaml")
}
