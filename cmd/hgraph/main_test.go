// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/loader"
)

const scenarioYAML = `weighted: true
nodes: [0, 1, 2, 3, 4, 5, 6, 7]
edges:
  - members: [0, 2, 3, 4]
    weight: 27.7
  - members: [0, 6, 7]
    weight: 12.3
  - members: [2, 5]
    weight: 69.0
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	return path
}

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "-f", writeScenario(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Hypergraph{weighted nodes=8 edges=3}\n"), out)
	assert.Contains(t, out, "e2: [2 5] w=69\n")
}

func TestInspect_MissingFile(t *testing.T) {
	_, _, err := run(t, "inspect")
	assert.Error(t, err)

	_, _, err = run(t, "inspect", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSubgraph_ReferenceScenario(t *testing.T) {
	out, _, err := run(t, "subgraph", "-f", writeScenario(t), "--remove", "7", "--nodes", "0,2,4,3,5", "--yaml")
	require.NoError(t, err)

	g, err := loader.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, []core.NodeID{0, 2, 3, 4}, g.Members(0))
	assert.Equal(t, []core.NodeID{2, 5}, g.Members(1))
	assert.Equal(t, []float64{27.7, 69.0}, g.Weights())
}

func TestSubgraph_Sizes(t *testing.T) {
	out, _, err := run(t, "subgraph", "-f", writeScenario(t), "--sizes", "2")
	require.NoError(t, err)
	assert.Equal(t, "Hypergraph{weighted nodes=2 edges=1}\n  nodes: [2 5]\n  e0: [2 5] w=69\n", out)
}

func TestSubgraph_RequiresOneSelection(t *testing.T) {
	path := writeScenario(t)

	_, _, err := run(t, "subgraph", "-f", path)
	assert.Error(t, err)
	_, _, err = run(t, "subgraph", "-f", path, "--nodes", "1", "--sizes", "2")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", "-f", writeScenario(t))
	require.NoError(t, err)

	assert.Contains(t, out, "mode:       weighted\n")
	assert.Contains(t, out, "nodes:      8 (isolated 1)\n")
	assert.Contains(t, out, "incidences: 9\n")
	assert.Contains(t, out, "max size:   4 (order 3)\n")
	assert.Contains(t, out, "uniform:    no\n")
	assert.Contains(t, out, "  size 3: 1\n")
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--shape", "complete", "-n", "4", "-k", "3")
	require.NoError(t, err)

	g, err := loader.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	size, ok := g.Uniform()
	assert.True(t, ok)
	assert.Equal(t, 3, size)

	_, _, err = run(t, "generate", "--shape", "hexagon")
	assert.Error(t, err)
}

func TestGenerate_RandomIsSeeded(t *testing.T) {
	args := []string{"generate", "--shape", "random", "-n", "10", "-m", "5", "-k", "3", "--seed", "3", "--weighted", "--max-weight", "5"}
	a, _, err := run(t, args...)
	require.NoError(t, err)
	b, _, err := run(t, args...)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, a, "weighted: true")
}

func TestMetricsDump(t *testing.T) {
	_, stderr, err := run(t, "subgraph", "-f", writeScenario(t), "--nodes", "0,2", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, stderr, "hgraph_hypergraph_nodes_added_total 8")
	assert.Contains(t, stderr, "hgraph_hypergraph_subhypergraph_extractions_total 1")
}

func TestStats_SizeLinesAreDistinct(t *testing.T) {
	g, err := core.FromEdges([][]core.NodeID{{0, 1}, {1, 2}, {0, 1, 2}})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeStats(&out, g))
	assert.Equal(t, 1, strings.Count(out.String(), "  size 2: 2\n"))
	assert.True(t, strings.HasSuffix(out.String(), "  size 2: 2\n  size 3: 1\n"), out.String())
}
