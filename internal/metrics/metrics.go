// Package metrics exposes enumeration results as Prometheus metrics so a run
// can be dropped into a node-exporter textfile directory.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BradMears/peg-game/internal/solver"
)

const (
	namespace = "peggame"
)

// Metrics holds the collectors of one run on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	// GamesTotal counts finished games by start hole and pegs left
	GamesTotal *prometheus.CounterVec

	// NodesTotal counts boards visited by start hole
	NodesTotal *prometheus.CounterVec

	// SearchDuration measures the wall time of each start's search
	SearchDuration *prometheus.HistogramVec

	// StartsTotal counts completed start searches
	StartsTotal prometheus.Counter
}

// New registers the run metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		GamesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "games_total",
				Help:      "Finished games by starting hole and remaining pegs",
			},
			[]string{"start", "remaining"},
		),
		NodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_total",
				Help:      "Boards visited by the search, by starting hole",
			},
			[]string{"start"},
		),
		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time of the search from one starting hole",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"start"},
		),
		StartsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "starts_total",
				Help:      "Starting holes searched",
			},
		),
	}
}

// RecordResult adds one start's outcome. Buckets without games are still
// emitted so every series exists in the output.
func (m *Metrics) RecordResult(res *solver.Result) {
	start := strconv.Itoa(int(res.Start))

	for _, e := range res.Histogram.Entries() {
		m.GamesTotal.WithLabelValues(start, strconv.Itoa(e.Remaining)).Add(float64(e.Games))
	}
	m.NodesTotal.WithLabelValues(start).Add(float64(res.Stats.Nodes))
	m.SearchDuration.WithLabelValues(start).Observe(res.Stats.Duration.Seconds())
	m.StartsTotal.Inc()
}

// WriteTextfile writes every metric in the text exposition format.
func (m *Metrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.Registry)
}
