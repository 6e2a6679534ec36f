// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/3michele/hgraph/core"
)

func newStatsCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a hypergraph description",
		Long:  "Print counts, size distribution and uniformity of a YAML description",
		Example: `
hgraph stats -f scenario.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(file)
			if err != nil {
				return err
			}

			return writeStats(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML description to read")

	return cmd
}

func writeStats(w io.Writer, g *core.Hypergraph) error {
	s := g.Stats()
	mode := "unweighted"
	if s.Weighted {
		mode = "weighted"
	}
	uniform := "no"
	if s.Uniform {
		uniform = fmt.Sprintf("yes (size %d)", s.UniformSize)
	}

	dist := g.SizeDistribution()
	if _, err := fmt.Fprintf(w,
		"mode:       %s\nnodes:      %d (isolated %d)\nedges:      %d\nincidences: %d\nmax size:   %d (order %d)\nuniform:    %s\n",
		mode, s.NodeCount, s.Isolated, s.EdgeCount, s.Incidences, s.MaxSize, g.MaxOrder(), uniform,
	); err != nil {
		return err
	}
	for _, size := range slices.Sorted(maps.Keys(dist)) {
		if _, err := fmt.Fprintf(w, "  size %d: %d\n", size, dist[size]); err != nil {
			return err
		}
	}

	return nil
}
