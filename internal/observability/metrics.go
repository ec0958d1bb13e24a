package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "outage"

// Metrics holds the Prometheus counters and histograms for ingestion, reconciliation and crowd detection.
type Metrics struct {
	RawSignalsStored prometheus.Counter
	FetchErrors      *prometheus.CounterVec // labels: operator
	ParseErrors      *prometheus.CounterVec // labels: operator
	// outcome={created,updated,skipped,failed}
	RecordsReconciled *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec // labels: from, to
	EventPublishFails prometheus.Counter

	IngestCycleDuration prometheus.Histogram

	HotspotsDetected *prometheus.CounterVec // labels: type
	ReportsSubmitted prometheus.Counter

	OutagesPurged    prometheus.Counter
	RawSignalsPurged prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.RawSignalsStored,
		m.FetchErrors,
		m.ParseErrors,
		m.RecordsReconciled,
		m.StatusTransitions,
		m.EventPublishFails,
		m.IngestCycleDuration,
		m.HotspotsDetected,
		m.ReportsSubmitted,
		m.OutagesPurged,
		m.RawSignalsPurged,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		RawSignalsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raw_signals_stored_total",
			Help:      help("Raw source payloads persisted."),
		}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      help("Source fetch failures by operator."),
		}, []string{"operator"}),
		ParseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      help("Payloads or items an adapter could not parse, by operator."),
		}, []string{"operator"}),
		RecordsReconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_reconciled_total",
			Help:      help("Canonical records by reconciliation outcome."),
		}, []string{"outcome"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      help("Outage status changes applied by reconciliation."),
		}, []string{"from", "to"}),
		EventPublishFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      help("Status transition events that could not be published."),
		}),
		IngestCycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_cycle_duration_seconds",
			Help:      help("Duration of a complete fetch and reconcile cycle."),
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		HotspotsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotspots_detected_total",
			Help:      help("Hotspots produced by the crowd detector, by type."),
		}, []string{"type"}),
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_reports_submitted_total",
			Help:      help("User reports accepted."),
		}),
		OutagesPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outages_purged_total",
			Help:      help("Resolved outages removed by retention."),
		}),
		RawSignalsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raw_signals_purged_total",
			Help:      help("Raw signals removed by retention."),
		}),
	}
}
