// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a hypergraph description",
		Long:  "Load a YAML description and print nodes and edges in canonical order",
		Example: `
# Print every node and edge
hgraph inspect -f scenario.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.String())

			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML description to read")

	return cmd
}
