// SPDX-License-Identifier: MIT

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hgraph"
	metricsSubsystem = "hypergraph"
)

// Label values for edge removals.
const (
	removeExplicit = "explicit" // RemoveEdge
	removeEmptied  = "emptied"  // last member removed by RemoveNode
	removeCleared  = "cleared"  // Clear
	removeStrong   = "strong"   // incident edge of a StrongRemoveNode target
)

// Label values for rejected edge insertions.
const (
	rejectMode      = "mode"
	rejectReference = "reference"
	rejectEmpty     = "empty"
	rejectWeight    = "weight"
	rejectCount     = "count"
)

// Metrics holds Prometheus counters for hypergraph mutations.
// All methods are safe on a nil *Metrics, which records nothing.
type Metrics struct {
	NodesAdded     prometheus.Counter
	NodesRemoved   prometheus.Counter
	EdgesAdded     *prometheus.CounterVec
	EdgesRemoved   *prometheus.CounterVec
	EdgeRejections *prometheus.CounterVec
	Extractions    prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
// A nil reg creates unregistered counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		NodesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "nodes_added_total",
			Help:      "Total number of nodes inserted into the registry",
		}),
		NodesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "nodes_removed_total",
			Help:      "Total number of nodes removed from the registry",
		}),
		EdgesAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "edges_added_total",
				Help:      "Total number of hyperedges inserted",
			},
			[]string{"mode"}, // weighted, unweighted
		),
		EdgesRemoved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "edges_removed_total",
				Help:      "Total number of hyperedges deleted",
			},
			[]string{"reason"}, // explicit, emptied, cleared, strong
		),
		EdgeRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "edge_rejections_total",
				Help:      "Total number of rejected hyperedge insertions",
			},
			[]string{"reason"}, // mode, reference, empty, weight, count
		),
		Extractions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "subhypergraph_extractions_total",
			Help:      "Total number of subhypergraph extractions",
		}),
	}
}

func (m *Metrics) nodeAdded() {
	if m == nil {
		return
	}
	m.NodesAdded.Inc()
}

func (m *Metrics) nodesRemoved(n int) {
	if m == nil || n == 0 {
		return
	}
	m.NodesRemoved.Add(float64(n))
}

func (m *Metrics) edgeAdded(weighted bool) {
	if m == nil {
		return
	}
	mode := "unweighted"
	if weighted {
		mode = "weighted"
	}
	m.EdgesAdded.WithLabelValues(mode).Inc()
}

func (m *Metrics) edgesRemoved(reason string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.EdgesRemoved.WithLabelValues(reason).Add(float64(n))
}

func (m *Metrics) edgeRejected(reason string) {
	if m == nil {
		return
	}
	m.EdgeRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) extracted() {
	if m == nil {
		return
	}
	m.Extractions.Inc()
}
