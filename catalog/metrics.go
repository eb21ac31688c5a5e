package catalog

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects runner counters and timings in its own Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the runner collectors and registers them.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "idioms",
			Name:      "example_runs_total",
			Help:      "Example executions by topic and outcome.",
		}, []string{"topic", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "idioms",
			Name:      "example_duration_seconds",
			Help:      "Wall time spent in example bodies.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"status"}),
	}
	m.registry.MustRegister(m.runs, m.duration)
	return m
}

// Runs returns the run counter; exposed for tests and exporters.
func (m *Metrics) Runs() *prometheus.CounterVec {
	return m.runs
}

func (m *Metrics) observe(topic string, status Status, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(topic, string(status)).Inc()
	m.duration.WithLabelValues(string(status)).Observe(elapsed.Seconds())
}

// WriteTextfile writes the collected metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
