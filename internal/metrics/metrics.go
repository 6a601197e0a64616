// Package metrics records the outcome of one monitoring run in a private
// Prometheus registry that can be dumped for the node_exporter textfile
// collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "liquidation_monitor"

// Recorder holds the per-run metrics.
type Recorder struct {
	registry *prometheus.Registry

	fetched    *prometheus.GaugeVec
	flagged    *prometheus.GaugeVec
	failures   *prometheus.CounterVec
	alertsSent prometheus.Counter
	lastRun    prometheus.Gauge
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fetched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "positions_fetched",
			Help:      "Unhealthy positions returned by a source in the last run.",
		}, []string{"source"}),
		flagged: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "positions_flagged",
			Help:      "Positions that passed the health factor and debt thresholds.",
		}, []string{"source"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Sources that could not be fetched or processed.",
		}, []string{"source", "reason"}),
		alertsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_sent_total",
			Help:      "Reports delivered to the messaging channel.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run completed.",
		}),
	}
	r.registry.MustRegister(r.fetched, r.flagged, r.failures, r.alertsSent, r.lastRun)
	return r
}

// ObserveSource records how many positions a source returned and how many were flagged.
func (r *Recorder) ObserveSource(source string, fetched, flagged int) {
	r.fetched.WithLabelValues(source).Set(float64(fetched))
	r.flagged.WithLabelValues(source).Set(float64(flagged))
}

// SourceFailed counts a failed source. reason is "fetch" or "process".
func (r *Recorder) SourceFailed(source, reason string) {
	r.failures.WithLabelValues(source, reason).Inc()
}

func (r *Recorder) AlertSent() {
	r.alertsSent.Inc()
}

func (r *Recorder) RunCompleted(at time.Time) {
	r.lastRun.Set(float64(at.Unix()))
}

// WriteTextfile atomically writes the metrics in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
