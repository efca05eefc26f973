package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Traversal metrics, labelled by strategy ("bfs" or "dfs").
var (
	TraversalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontier_traversals_total",
		Help: "Completed and aborted traversals by outcome",
	}, []string{"strategy", "outcome"})

	NodesVisitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontier_nodes_visited_total",
		Help: "Nodes emitted by traversals",
	}, []string{"strategy"})

	ClaimConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontier_claim_conflicts_total",
		Help: "Neighbor claims that found the node already visited",
	}, []string{"strategy"})

	RegionWidth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frontier_region_width",
		Help:    "Items expanded per parallel region (level size or neighbor count)",
		Buckets: []float64{1, 4, 16, 64, 256, 1024, 4096, 16384},
	}, []string{"strategy"})

	TraversalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frontier_traversal_duration_seconds",
		Help:    "Wall time of a single traversal",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"strategy"})
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Outcome maps an engine error to its outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
