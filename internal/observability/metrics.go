package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/starseer/internal/domain"
)

// Metrics holds the Prometheus counters and gauges for one catalog run.
type Metrics struct {
	CatalogLines       prometheus.Counter
	ParseErrors        prometheus.Counter
	BodiesParsed       prometheus.Counter
	BodiesWritten      prometheus.Counter
	BodiesSkipped      *prometheus.CounterVec // labels: reason
	ColorTableEntries  prometheus.Gauge
	RunDurationSeconds prometheus.Gauge
}

// NewMetrics creates all run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.CatalogLines,
		m.ParseErrors,
		m.BodiesParsed,
		m.BodiesWritten,
		m.BodiesSkipped,
		m.ColorTableEntries,
		m.RunDurationSeconds,
	)
	return m
}

// NewMetricsForTesting creates Metrics on a throwaway registry so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func newMetrics() *Metrics {
	m := &Metrics{
		CatalogLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "starseer",
			Name:      "catalog_lines_total",
			Help:      "Total lines read from the catalog.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "starseer",
			Name:      "parse_errors_total",
			Help:      "Catalog lines that could not be parsed into a body.",
		}),
		BodiesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "starseer",
			Name:      "bodies_parsed_total",
			Help:      "Catalog lines parsed into a body.",
		}),
		BodiesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "starseer",
			Name:      "bodies_written_total",
			Help:      "Bodies written to the starfile.",
		}),
		BodiesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "starseer",
			Name:      "bodies_skipped_total",
			Help:      "Bodies left out of the starfile, by missing field.",
		}, []string{"reason"}),
		ColorTableEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "starseer",
			Name:      "color_table_entries",
			Help:      "Temperatures loaded from the color table.",
		}),
		RunDurationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "starseer",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
	}
	// Pre-create the label values so zero counts are exported.
	for _, r := range []string{domain.FieldJ2000, domain.FieldColor, domain.FieldVisualMagnitude} {
		m.BodiesSkipped.WithLabelValues(r)
	}
	return m
}

// WriteTextfile dumps everything g gathers to path in the node exporter
// textfile collector format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
