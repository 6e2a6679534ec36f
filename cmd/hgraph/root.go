// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/loader"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	verbose     bool
	dumpMetrics bool

	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *core.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hgraph",
		Short: "Inspect and slice hypergraph descriptions",
		Long: `hgraph reads YAML hypergraph descriptions (weighted or unweighted),
prints them, extracts induced subhypergraphs and generates fixtures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable development (debug) logging")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "Print hypergraph counters to stderr on exit")

	root.AddCommand(
		newInspectCmd(a),
		newSubgraphCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func (a *app) setup() error {
	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	a.registry = prometheus.NewRegistry()
	a.metrics = core.NewMetrics(a.registry)

	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	if a.dumpMetrics {
		families, err := a.registry.Gather()
		if err != nil {
			return errors.Wrap(err, "gather metrics")
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
				return errors.Wrap(err, "write metrics")
			}
		}
	}
	// Sync fails on non-syncable stderr (e.g. a terminal); that is not a command failure.
	_ = a.logger.Sync()

	return nil
}

// options returns the core options carrying this invocation's observers.
func (a *app) options() []core.Option {
	return []core.Option{core.WithLogger(a.logger), core.WithMetrics(a.metrics)}
}

// load reads the description at path with the invocation's observers attached.
func (a *app) load(path string) (*core.Hypergraph, error) {
	if path == "" {
		return nil, errors.New("no description file given (use -f)")
	}
	g, err := loader.Load(path, a.options()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("description loaded",
		zap.String("path", path),
		zap.Bool("weighted", g.Weighted()),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}
