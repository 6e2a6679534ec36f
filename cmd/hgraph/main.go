// SPDX-License-Identifier: MIT

// Command hgraph loads YAML hypergraph descriptions, prints them, extracts
// induced subhypergraphs and generates fixtures.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
