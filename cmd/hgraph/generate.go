// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/3michele/hgraph/builder"
	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/loader"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		shape      string
		n, m, k    int
		seed       int64
		weighted   bool
		minW, maxW float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a hypergraph description",
		Long: `Build a fixture hypergraph and print it as YAML.

Shapes:
  complete   every k-subset of n nodes
  sunflower  n petals of size k sharing node 0
  path       loose path of n edges of size k
  cycle      loose cycle of n edges of size k
  random     m random k-subsets of n nodes (uses --seed)`,
		Example: `
hgraph generate --shape complete -n 5 -k 3
hgraph generate --shape random -n 20 -m 40 -k 4 --seed 7 --weighted --min-weight 1 --max-weight 10
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctor builder.Constructor
			switch shape {
			case "complete":
				ctor = builder.Complete(n, k)
			case "sunflower":
				ctor = builder.Sunflower(n, k)
			case "path":
				ctor = builder.LoosePath(n, k)
			case "cycle":
				ctor = builder.LooseCycle(n, k)
			case "random":
				ctor = builder.RandomUniform(n, m, k)
			default:
				return errors.Errorf("unknown shape %q", shape)
			}
			if maxW < minW {
				return errors.Errorf("--max-weight %g is below --min-weight %g", maxW, minW)
			}

			hopts := a.options()
			if weighted {
				hopts = append(hopts, core.WithWeighted())
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithUniformWeight(minW, maxW),
			}

			h, err := builder.BuildHypergraph(hopts, bopts, ctor)
			if err != nil {
				return errors.Wrap(err, "generate")
			}

			return loader.Encode(cmd.OutOrStdout(), h)
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "complete", "complete, sunflower, path, cycle or random")
	cmd.Flags().IntVarP(&n, "n", "n", 4, "Node count (complete, random) or edge/petal count (path, cycle, sunflower)")
	cmd.Flags().IntVarP(&m, "m", "m", 8, "Edge count for random")
	cmd.Flags().IntVarP(&k, "k", "k", 3, "Edge size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&weighted, "weighted", false, "Generate a weighted hypergraph")
	cmd.Flags().Float64Var(&minW, "min-weight", builder.DefaultEdgeWeight, "Lower weight bound")
	cmd.Flags().Float64Var(&maxW, "max-weight", builder.DefaultEdgeWeight, "Upper weight bound")

	return cmd
}
