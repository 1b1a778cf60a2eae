package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the analysis
// toolkit.
type Metrics struct {
	DatasetLoads *prometheus.CounterVec // labels: outcome={success,not_found,error}
	RowsLoaded   prometheus.Counter
	LoadDuration prometheus.Histogram

	// Summary metrics.
	ExtractFailures    prometheus.Counter
	SummariesGenerated prometheus.Counter

	// Map rendering metrics.
	MapsRendered  prometheus.Counter
	PointsPlotted prometheus.Histogram
}

// NewMetrics creates and registers all toolkit metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "dataset_loads_total",
			Help:      "Yearly extract load attempts by outcome.",
		}, []string{"outcome"}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "rows_loaded_total",
			Help:      "Total accident rows read from yearly extracts.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "load_duration_seconds",
			Help:      "Duration of a single yearly extract load, decompression included.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ExtractFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "extract_failures_total",
			Help:      "Per-year extraction failures reported as warnings.",
		}),
		SummariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "summaries_generated_total",
			Help:      "Month-by-year summary tables produced.",
		}),
		MapsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "maps_rendered_total",
			Help:      "State accident maps rendered.",
		}),
		PointsPlotted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "points_plotted",
			Help:      "Accident points drawn per rendered map.",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}

	prometheus.MustRegister(
		m.DatasetLoads,
		m.RowsLoaded,
		m.LoadDuration,
		m.ExtractFailures,
		m.SummariesGenerated,
		m.MapsRendered,
		m.PointsPlotted,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetLoads:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fars", Name: "dataset_loads_total"}, []string{"outcome"}),
		RowsLoaded:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "rows_loaded_total"}),
		LoadDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "load_duration_seconds"}),
		ExtractFailures:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "extract_failures_total"}),
		SummariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "summaries_generated_total"}),
		MapsRendered:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "maps_rendered_total"}),
		PointsPlotted:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "points_plotted"}),
	}
}
